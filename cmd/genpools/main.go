// Command genpools builds rarity pool files from per-card metadata folders.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/cheggaaa/pb/v3"
	"github.com/joho/godotenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/poolgen"
	"github.com/special-brownies/booster-pack/internal/validation"
)

func main() {
	_ = godotenv.Load()

	inputDir := flag.String("input", envOr("DATASET_PATH", "pokemon_series"), "Folder of per-set card metadata folders")
	outputDir := flag.String("output", envOr("POOLS_DIR", "pools"), "Folder to write <set_id>.json pools to")
	verify := flag.Bool("verify", true, "Check each written pool loads against the pool schema")
	quiet := flag.Bool("quiet", false, "Hide the progress bar and per-set lines")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger.InitLoggerWithWriter(logger.CLIConfig("genpools", *logLevel), os.Stderr)

	setDirs, err := poolgen.SetDirs(*inputDir)
	if err != nil {
		log.Fatalf("Failed to scan input: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := poolgen.Options{InputDir: *inputDir, OutputDir: *outputDir}
	if *verify {
		opts.Schemas = validation.NewSchemaValidator()
	}

	var bar *pb.ProgressBar
	var lines []string
	if !*quiet {
		bar = pb.New(len(setDirs)).SetWriter(os.Stderr).Start()
		opts.OnSet = func(s poolgen.SetSummary) {
			lines = append(lines, describe(s))
			bar.Increment()
		}
	}

	summary, err := poolgen.Run(ctx, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		log.Fatalf("Pool generation failed: %v", err)
	}

	for _, line := range lines {
		fmt.Fprintln(os.Stderr, line)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}
}

var title = cases.Title(language.English)

func describe(s poolgen.SetSummary) string {
	c := s.Counts
	return fmt.Sprintf("%s: %d cards (%s %d, %s %d, %s %d, %s %d), %d anomalies -> %s",
		s.SetID, c.TotalCardsScanned,
		title.String(string(domain.RarityCommon)), c.Common,
		title.String(string(domain.RarityUncommon)), c.Uncommon,
		title.String(string(domain.RarityRare)), c.Rare,
		title.String(string(domain.RarityHolo)), c.Holo,
		s.AnomaliesTotal, s.OutputFile)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
