package pack

import (
	"context"
	"fmt"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/metrics"
)

// OwnershipReader reports the cards a collector already owns in a set.
type OwnershipReader interface {
	OwnedCardIDs(ctx context.Context, setID string) ([]string, error)
}

// OpenRequest is a normalized open-pack call.
type OpenRequest struct {
	SetID  string
	Config *domain.PackConfig
	Seed   *int64
}

// Service opens packs against the current binder contents.
type Service interface {
	OpenPack(ctx context.Context, req OpenRequest) (*domain.PackResult, error)
}

type service struct {
	engine *Engine
	owned  OwnershipReader
}

// NewService creates a pack service. owned may be nil, in which case every
// drawn card is reported as new.
func NewService(engine *Engine, owned OwnershipReader) Service {
	return &service{engine: engine, owned: owned}
}

// OpenPack draws one pack, tagging slots against the binder's owned cards.
func (s *service) OpenPack(ctx context.Context, req OpenRequest) (*domain.PackResult, error) {
	log := logger.FromContext(ctx)

	var owned []string
	if s.owned != nil && req.SetID != "" {
		ids, err := s.owned.OwnedCardIDs(ctx, req.SetID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextOwnedCards, err)
		}
		owned = ids
	}

	res, err := s.engine.Draw(ctx, DrawRequest{
		SetID:  req.SetID,
		Config: req.Config,
		Seed:   req.Seed,
		Owned:  owned,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPack(res)
	log.Info(LogMsgPackOpened, LogFieldSetID, res.SetID, LogFieldNewCards, res.Summary.NewCards)
	return res, nil
}
