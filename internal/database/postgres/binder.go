package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/special-brownies/booster-pack/internal/binder"
	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/repository"
)

type binderRepository struct {
	db *pgxpool.Pool
	id string
}

// NewBinderRepository creates a PostgreSQL binder repository storing the
// whole binder as one JSONB row keyed by documentID.
func NewBinderRepository(db *pgxpool.Pool, documentID string) repository.Binder {
	if documentID == "" {
		documentID = DefaultBinderDocumentID
	}
	return &binderRepository{db: db, id: documentID}
}

// StoreName labels this store in metrics.
func (r *binderRepository) StoreName() string { return StoreName }

// Load fetches the stored document. No row means an empty binder; a row
// that does not decode to an object is logged and treated the same way.
func (r *binderRepository) Load(ctx context.Context) (map[string]any, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `
		SELECT document FROM binder_documents WHERE id = $1
	`, r.id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadBinder, err)
	}

	doc, err := binder.DecodeDocument(raw)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgBinderDocumentCorrupt, LogFieldDocumentID, r.id, LogFieldError, err)
		return nil, nil
	}
	return doc, nil
}

// Save upserts the document inside a transaction.
func (r *binderRepository) Save(ctx context.Context, state *domain.BinderState) error {
	data, err := binder.EncodeDocument(state)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO binder_documents (id, version, document, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET version = EXCLUDED.version,
		    document = EXCLUDED.document,
		    updated_at = EXCLUDED.updated_at
	`, r.id, state.Version, data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveBinder, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
