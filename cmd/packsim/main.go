// Command packsim draws many seeded packs from one set and prints rarity
// statistics as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/cheggaaa/pb/v3"
	"github.com/joho/godotenv"

	"github.com/special-brownies/booster-pack/internal/catalog"
	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/pack"
	"github.com/special-brownies/booster-pack/internal/simulation"
	"github.com/special-brownies/booster-pack/internal/validation"
)

func main() {
	_ = godotenv.Load()

	poolsDir := flag.String("pools", envOr("POOLS_DIR", "pools"), "Directory of <set_id>.json pool files")
	setID := flag.String("set", "base2", "Set to simulate")
	packs := flag.Int("packs", 10000, "Number of packs to draw")
	workers := flag.Int("workers", runtime.NumCPU(), "Concurrent draws")
	seed := flag.Int64("seed", 1, "Base seed; pack i uses seed+i")
	configPath := flag.String("config", "", "Optional JSON pack config file")
	confidence := flag.Float64("confidence", simulation.DefaultConfidence, "Holo-rate interval confidence")
	quiet := flag.Bool("quiet", false, "Hide the progress bar")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger.InitLoggerWithWriter(logger.CLIConfig("packsim", *logLevel), os.Stderr)

	var packCfg *domain.PackConfig
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to read pack config: %v", err)
		}
		cfg, err := pack.ParseConfig(raw)
		if err != nil {
			log.Fatalf("Invalid pack config: %v", err)
		}
		packCfg = &cfg
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine := pack.NewEngine(catalog.NewDirSource(*poolsDir, validation.NewSchemaValidator()), nil)

	opts := simulation.Options{
		SetID:      *setID,
		Config:     packCfg,
		Packs:      *packs,
		Workers:    *workers,
		BaseSeed:   *seed,
		Confidence: *confidence,
	}

	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.New(*packs).SetWriter(os.Stderr).Start()
		opts.OnDraw = func() { bar.Increment() }
	}

	report, err := simulation.Run(ctx, engine, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
