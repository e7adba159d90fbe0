package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/special-brownies/booster-pack/internal/binder"
	"github.com/special-brownies/booster-pack/internal/config"
	"github.com/special-brownies/booster-pack/internal/database"
	"github.com/special-brownies/booster-pack/internal/database/postgres"
	"github.com/special-brownies/booster-pack/internal/database/sqlite"
	"github.com/special-brownies/booster-pack/internal/handler"
	"github.com/special-brownies/booster-pack/internal/repository"
)

// BinderStore is the persistence backend selected by BINDER_STORE.
type BinderStore struct {
	Name string
	Repo repository.Binder

	// Health probes the backend for /readyz; nil for the file store.
	Health handler.HealthChecker

	close func() error
}

// Close releases the backend's connections.
func (s *BinderStore) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	err := s.close()
	slog.Info(LogMsgBinderStoreClosed, LogFieldStore, s.Name)
	return err
}

// OpenBinderStore opens the binder backend named by cfg.BinderStore,
// applying migrations for the database backends.
func OpenBinderStore(ctx context.Context, cfg *config.Config) (*BinderStore, error) {
	var (
		store *BinderStore
		err   error
	)
	switch cfg.BinderStore {
	case config.StoreFile, "":
		repo := binder.NewFileRepository(cfg.BinderFile)
		store = &BinderStore{Name: config.StoreFile, Repo: repo}
	case config.StorePostgres:
		store, err = openPostgres(ctx, cfg)
	case config.StoreSQLite:
		store, err = openSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBinderStore, cfg.BinderStore)
	}
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgBinderStoreOpened, LogFieldStore, store.Name)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*BinderStore, error) {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPostgres, err)
	}
	if err := database.MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	return &BinderStore{
		Name:   config.StorePostgres,
		Repo:   postgres.NewBinderRepository(pool, BinderDocumentID),
		Health: handler.HealthCheckFunc(pool.Ping),
		close:  closePool(pool),
	}, nil
}

func closePool(pool *pgxpool.Pool) func() error {
	return func() error {
		pool.Close()
		return nil
	}
}

func openSQLite(ctx context.Context, path string) (*BinderStore, error) {
	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
	}
	return newSQLiteStore(db), nil
}

func newSQLiteStore(db *sql.DB) *BinderStore {
	return &BinderStore{
		Name:   config.StoreSQLite,
		Repo:   sqlite.NewBinderRepository(db, BinderDocumentID),
		Health: handler.HealthCheckFunc(db.PingContext),
		close:  db.Close,
	}
}
