package repository

import (
	"context"

	"github.com/special-brownies/booster-pack/internal/domain"
)

// Binder defines the persistence contract of the binder service.
// Load returns the raw stored document so the service can validate it
// against the catalog; a nil map means nothing usable is stored.
// Save replaces the whole stored document.
type Binder interface {
	Load(ctx context.Context) (map[string]any, error)
	Save(ctx context.Context, state *domain.BinderState) error
}
