// Package sqlite provides a SQLite-backed binder repository.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/special-brownies/booster-pack/internal/binder"
	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/repository"
)

// BinderRepository stores the binder as one JSON text row.
type BinderRepository struct {
	db  *sql.DB
	id  string
	now func() string
}

var _ repository.Binder = (*BinderRepository)(nil)

// NewBinderRepository creates a repository on an already migrated database.
func NewBinderRepository(db *sql.DB, documentID string) *BinderRepository {
	if documentID == "" {
		documentID = DefaultBinderDocumentID
	}
	return &BinderRepository{db: db, id: documentID, now: nowTimestamp}
}

// StoreName labels this store in metrics.
func (r *BinderRepository) StoreName() string { return StoreName }

// Load fetches the stored document; a missing or corrupt row is an empty binder.
func (r *BinderRepository) Load(ctx context.Context) (map[string]any, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM binder_documents WHERE id = ?`, r.id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadBinder, err)
	}

	doc, err := binder.DecodeDocument([]byte(raw))
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgBinderDocumentCorrupt, LogFieldDocumentID, r.id, LogFieldError, err)
		return nil, nil
	}
	return doc, nil
}

// Save upserts the document inside a transaction.
func (r *BinderRepository) Save(ctx context.Context, state *domain.BinderState) error {
	data, err := binder.EncodeDocument(state)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.FromContext(ctx).Error(LogMsgRollbackFailed, LogFieldError, err)
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO binder_documents (id, version, document, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			version = excluded.version,
			document = excluded.document,
			updated_at = excluded.updated_at
	`, r.id, state.Version, string(data), r.now())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveBinder, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Close closes the underlying database handle.
func (r *BinderRepository) Close() error {
	return r.db.Close()
}
