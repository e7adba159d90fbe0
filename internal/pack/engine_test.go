package pack

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/catalog"
	"github.com/special-brownies/booster-pack/internal/domain"
)

func ids(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}

func testEngine(pools domain.RarityPools) *Engine {
	return NewEngine(catalog.New("pools", map[string]domain.RarityPools{"base2": pools}), nil)
}

func fullPools() domain.RarityPools {
	return domain.RarityPools{
		Common:   ids("c", 20),
		Uncommon: ids("u", 10),
		Rare:     ids("r", 5),
		Holo:     ids("h", 5),
	}
}

func seed(v int64) *int64 { return &v }

func TestDraw_Deterministic(t *testing.T) {
	e := testEngine(fullPools())
	ctx := context.Background()

	a, err := e.Draw(ctx, DrawRequest{SetID: "base2", Seed: seed(42)})
	require.NoError(t, err)
	b, err := e.Draw(ctx, DrawRequest{SetID: "base2", Seed: seed(42)})
	require.NoError(t, err)

	assert.Equal(t, a.Slots, b.Slots)
	assert.Equal(t, a.Debug, b.Debug)
	require.NotNil(t, a.Seed)
	assert.Equal(t, int64(42), *a.Seed)
}

func TestDraw_SlotLayout(t *testing.T) {
	e := testEngine(fullPools())

	res, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Seed: seed(7)})
	require.NoError(t, err)
	require.Len(t, res.Slots, domain.PackSize)

	for i, s := range res.Slots {
		assert.Equal(t, i+1, s.SlotIndex)
		assert.Equal(t, s.CardID, s.CardName, "names default to card ids")
		switch {
		case i == 0:
			assert.Equal(t, domain.RarityRare, s.SlotType)
			assert.Contains(t, []domain.Rarity{domain.RarityRare, domain.RarityHolo}, s.Rarity)
		case i < 4:
			assert.Equal(t, domain.RarityUncommon, s.SlotType)
			assert.Equal(t, domain.RarityUncommon, s.Rarity)
		default:
			assert.Equal(t, domain.RarityCommon, s.SlotType)
			assert.Equal(t, domain.RarityCommon, s.Rarity)
		}
	}

	assert.Equal(t, domain.PackSummary{TotalCards: 10, PackSize: 10, NewCards: 10, DuplicateCards: 0}, res.Summary)
	assert.Equal(t, "pools", res.Debug.PoolsDir)
	require.Len(t, res.Debug.RareSlotRolls, 1)
	roll := res.Debug.RareSlotRolls[0]
	assert.Equal(t, 1, roll.RareSlotIndex)
	assert.GreaterOrEqual(t, roll.Roll, 0.0)
	assert.Less(t, roll.Roll, 1.0)
	assert.Equal(t, roll.Roll < roll.Threshold, roll.UpgradedToHolo)
}

func TestDraw_NoHoloWhenChanceZero(t *testing.T) {
	e := testEngine(fullPools())
	cfg := domain.DefaultPackConfig()
	cfg.HoloUpgradeChance = 0

	for i := int64(0); i < 200; i++ {
		res, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Config: &cfg, Seed: seed(i)})
		require.NoError(t, err)
		assert.Equal(t, domain.RarityRare, res.Slots[0].Rarity)
		assert.False(t, res.Debug.RareSlotRolls[0].UpgradedToHolo)
	}
}

func TestDraw_EmptyHoloPoolFallsBackToRare(t *testing.T) {
	pools := fullPools()
	pools.Holo = nil
	e := testEngine(pools)
	cfg := domain.DefaultPackConfig()
	cfg.HoloUpgradeChance = 1

	res, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Config: &cfg, Seed: seed(3)})
	require.NoError(t, err)
	assert.Equal(t, domain.RarityRare, res.Slots[0].Rarity)
	assert.False(t, res.Debug.RareSlotRolls[0].UpgradedToHolo)
}

func TestDraw_HoloChanceOneAlwaysUpgrades(t *testing.T) {
	e := testEngine(fullPools())
	cfg := domain.DefaultPackConfig()
	cfg.HoloUpgradeChance = 1

	res, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Config: &cfg, Seed: seed(11)})
	require.NoError(t, err)
	assert.Equal(t, domain.RarityHolo, res.Slots[0].Rarity)
	assert.Contains(t, fullPools().Holo, res.Slots[0].CardID)
}

func TestDraw_NoDuplicatesWhenDisallowed(t *testing.T) {
	e := testEngine(domain.RarityPools{
		Common:   ids("c", 6),
		Uncommon: ids("u", 3),
		Rare:     ids("r", 1),
	})
	cfg := domain.DefaultPackConfig()
	cfg.AllowDuplicatesWithinPack = false

	for i := int64(0); i < 50; i++ {
		res, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Config: &cfg, Seed: seed(i)})
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, s := range res.Slots {
			assert.False(t, seen[s.CardID], "card %s drawn twice", s.CardID)
			seen[s.CardID] = true
		}
	}
}

func TestDraw_PoolExhausted(t *testing.T) {
	e := testEngine(domain.RarityPools{
		Common:   ids("c", 5),
		Uncommon: ids("u", 3),
		Rare:     ids("r", 1),
	})
	cfg := domain.DefaultPackConfig()
	cfg.AllowDuplicatesWithinPack = false

	_, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Config: &cfg, Seed: seed(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPoolExhausted)
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
}

func TestDraw_EmptyPool(t *testing.T) {
	pools := fullPools()
	pools.Uncommon = nil
	e := testEngine(pools)

	_, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Seed: seed(1)})
	assert.ErrorIs(t, err, domain.ErrEmptyPool)
}

func TestDraw_OwnedCardsAreDuplicates(t *testing.T) {
	pools := domain.RarityPools{
		Common:   []string{"c1"},
		Uncommon: []string{"u1"},
		Rare:     []string{"r1"},
	}
	e := testEngine(pools)

	res, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Seed: seed(5), Owned: []string{"c1"}})
	require.NoError(t, err)

	for _, s := range res.Slots {
		assert.Equal(t, s.CardID == "c1", s.IsDuplicate)
		assert.Equal(t, !s.IsDuplicate, s.IsNew)
	}
	assert.Equal(t, 4, res.Summary.NewCards)
	assert.Equal(t, 6, res.Summary.DuplicateCards)
}

func TestDraw_Errors(t *testing.T) {
	e := testEngine(fullPools())
	bad := domain.DefaultPackConfig()
	bad.CommonSlots = 7

	tests := []struct {
		name string
		req  DrawRequest
		want error
	}{
		{"missing set id", DrawRequest{}, domain.ErrMissingSetID},
		{"unknown set", DrawRequest{SetID: "fossil"}, domain.ErrPoolNotFound},
		{"bad layout", DrawRequest{SetID: "base2", Config: &bad}, domain.ErrPackSizeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Draw(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDraw_NilSeedIsNotEchoed(t *testing.T) {
	e := testEngine(fullPools())

	res, err := e.Draw(context.Background(), DrawRequest{SetID: "base2"})
	require.NoError(t, err)
	assert.Nil(t, res.Seed)
	assert.Len(t, res.Slots, domain.PackSize)
}

func TestDraw_PityIsEchoedButInert(t *testing.T) {
	e := testEngine(fullPools())
	withPity := domain.DefaultPackConfig()
	pity := 5
	withPity.PityAfterPacks = &pity

	a, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Config: &withPity, Seed: seed(9)})
	require.NoError(t, err)
	b, err := e.Draw(context.Background(), DrawRequest{SetID: "base2", Seed: seed(9)})
	require.NoError(t, err)

	assert.Equal(t, a.Slots, b.Slots)
	require.NotNil(t, a.Config.PityAfterPacks)
	assert.Equal(t, 5, *a.Config.PityAfterPacks)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    func(*domain.PackConfig)
		wantErr error
	}{
		{name: "empty", raw: ``},
		{name: "null", raw: `null`},
		{name: "partial", raw: `{"holo_upgrade_chance":0.5}`, want: func(c *domain.PackConfig) { c.HoloUpgradeChance = 0.5 }},
		{name: "pity", raw: `{"pity_after_packs":3}`, want: func(c *domain.PackConfig) { p := 3; c.PityAfterPacks = &p }},
		{name: "unknown field", raw: `{"rare_slots":1,"mythic_slots":2}`, wantErr: domain.ErrUnknownConfigField},
		{name: "not an object", raw: `[1,2]`, wantErr: domain.ErrInvalidConfig},
		{name: "wrong type", raw: `{"rare_slots":"one"}`, wantErr: domain.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.raw))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			want := domain.DefaultPackConfig()
			if tt.want != nil {
				tt.want(&want)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestParseConfig_UnknownFieldsAreNamed(t *testing.T) {
	_, err := ConfigFromMap(map[string]any{"zeta": 1, "alpha": true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[alpha zeta]")
	assert.Equal(t, domain.KindConfiguration, domain.KindOf(err))
}
