package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/special-brownies/booster-pack/internal/binder"
	"github.com/special-brownies/booster-pack/internal/cardmeta"
	"github.com/special-brownies/booster-pack/internal/catalog"
	"github.com/special-brownies/booster-pack/internal/config"
	"github.com/special-brownies/booster-pack/internal/pack"
	"github.com/special-brownies/booster-pack/internal/progression"
	"github.com/special-brownies/booster-pack/internal/server"
	"github.com/special-brownies/booster-pack/internal/sse"
	"github.com/special-brownies/booster-pack/internal/validation"
)

// BuildServices wires the catalog, card metadata, binder and pack services
// on top of an opened binder store. The returned event hub is running; stop
// it through GracefulShutdown.
func BuildServices(ctx context.Context, cfg *config.Config, store *BinderStore) (server.Services, error) {
	schemas := validation.NewSchemaValidator()

	cards, err := catalog.Load(ctx, cfg.PoolsDir, schemas)
	if err != nil {
		return server.Services{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, LogFieldPoolsDir, cfg.PoolsDir, LogFieldSets, cards.SetIDs())

	progressionCfg := progression.LoadConfig(ctx, cfg.ProgressionConfig)

	hub := sse.NewHub()
	hub.Start()

	binderSvc, err := binder.NewService(ctx, store.Repo, cards, progressionCfg, EventObservers(hub)...)
	if err != nil {
		hub.Stop()
		return server.Services{}, fmt.Errorf("%s: %w", ErrMsgFailedInitBinder, err)
	}

	meta := cardmeta.NewStore(cfg.DatasetPath, cfg.MetadataCacheSize, cfg.MetadataCacheTTL)

	// Draws read pool files per call so edited pools apply without a restart.
	engine := pack.NewEngine(catalog.NewDirSource(cfg.PoolsDir, schemas), meta)

	slog.Info(LogMsgServicesInitialized,
		LogFieldStore, store.Name,
		LogFieldProgressionOrder, progressionCfg.Order)

	return server.Services{
		Pack:      pack.NewService(engine, binderSvc),
		Binder:    binderSvc,
		Sets:      cards,
		Cards:     meta,
		Readiness: store.Health,
		Events:    hub,
	}, nil
}
