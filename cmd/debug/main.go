// Command debug prints the binder progression as the running service would
// see it, without starting the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/special-brownies/booster-pack/internal/bootstrap"
	"github.com/special-brownies/booster-pack/internal/config"
	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
)

type dump struct {
	Store        string                 `json:"store"`
	UnlockedSets []string               `json:"unlocked_sets"`
	Global       *domain.GlobalProgress `json:"global_progress"`
	Events       []domain.Event         `json:"events"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitLoggerWithWriter(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "debug", cfg.Version, cfg.Environment, false), os.Stderr)

	ctx := context.Background()
	store, err := bootstrap.OpenBinderStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open binder store: %v", err)
	}
	defer store.Close()

	svc, err := bootstrap.BuildServices(ctx, cfg, store)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}
	defer svc.Events.Stop()

	out := dump{
		Store:        store.Name,
		UnlockedSets: svc.Binder.UnlockedSets(ctx),
		Global:       svc.Binder.GlobalProgress(ctx),
		Events:       svc.Binder.State(ctx).Events,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
