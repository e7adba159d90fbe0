package pack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/domain"
)

type stubOwnership struct {
	ids []string
	err error
	got string
}

func (s *stubOwnership) OwnedCardIDs(_ context.Context, setID string) ([]string, error) {
	s.got = setID
	return s.ids, s.err
}

func TestService_OpenPackTagsOwnedCards(t *testing.T) {
	owned := &stubOwnership{ids: []string{"c1", "u1", "r1"}}
	svc := NewService(testEngine(domain.RarityPools{
		Common:   []string{"c1"},
		Uncommon: []string{"u1"},
		Rare:     []string{"r1"},
	}), owned)

	res, err := svc.OpenPack(context.Background(), OpenRequest{SetID: "base2", Seed: seed(1)})
	require.NoError(t, err)

	assert.Equal(t, "base2", owned.got)
	assert.Equal(t, 0, res.Summary.NewCards)
	assert.Equal(t, domain.PackSize, res.Summary.DuplicateCards)
}

func TestService_OpenPackOwnershipError(t *testing.T) {
	boom := errors.New("store offline")
	svc := NewService(testEngine(fullPools()), &stubOwnership{err: boom})

	_, err := svc.OpenPack(context.Background(), OpenRequest{SetID: "base2"})
	assert.ErrorIs(t, err, boom)
}

func TestService_OpenPackWithoutOwnership(t *testing.T) {
	svc := NewService(testEngine(fullPools()), nil)

	res, err := svc.OpenPack(context.Background(), OpenRequest{SetID: "base2", Seed: seed(2)})
	require.NoError(t, err)
	assert.Equal(t, domain.PackSize, res.Summary.NewCards)
}
