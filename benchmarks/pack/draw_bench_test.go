package pack_bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/special-brownies/booster-pack/internal/binder"
	"github.com/special-brownies/booster-pack/internal/catalog"
	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/pack"
	"github.com/special-brownies/booster-pack/internal/progression"
)

// --- Fixtures (in-memory catalog, no disk access) ---

func ids(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}

func benchCatalog() *catalog.Catalog {
	return catalog.New("pools", map[string]domain.RarityPools{
		"base2": {
			Common:   ids("c", 32),
			Uncommon: ids("u", 18),
			Rare:     ids("r", 6),
			Holo:     ids("h", 8),
		},
	})
}

func quietLogs(b *testing.B) {
	b.Helper()
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	b.Cleanup(func() { slog.SetDefault(prev) })
}

func toIngest(res *domain.PackResult) domain.IngestRequest {
	req := domain.IngestRequest{SetID: res.SetID, Slots: make([]domain.IngestSlot, len(res.Slots))}
	for i, s := range res.Slots {
		req.Slots[i] = domain.IngestSlot{CardID: s.CardID}
	}
	return req
}

// BenchmarkDraw measures one seeded pack draw.
func BenchmarkDraw(b *testing.B) {
	quietLogs(b)
	engine := pack.NewEngine(benchCatalog(), nil)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seed := int64(i)
		if _, err := engine.Draw(ctx, pack.DrawRequest{SetID: "base2", Seed: &seed}); err != nil {
			b.Fatalf("Draw failed: %v", err)
		}
	}
}

// BenchmarkDrawParallel measures draws from concurrent callers sharing one engine.
func BenchmarkDrawParallel(b *testing.B) {
	quietLogs(b)
	engine := pack.NewEngine(benchCatalog(), nil)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		var seed int64
		for pb.Next() {
			seed++
			s := seed
			if _, err := engine.Draw(ctx, pack.DrawRequest{SetID: "base2", Seed: &s}); err != nil {
				b.Errorf("Draw failed: %v", err)
				return
			}
		}
	})
}

// BenchmarkOpenAndIngest measures the full open-pack then add-to-binder loop
// against an in-memory binder that grows as the benchmark runs.
func BenchmarkOpenAndIngest(b *testing.B) {
	quietLogs(b)
	ctx := context.Background()
	cards := benchCatalog()

	cfg := progression.DefaultConfig()
	cfg.Order = []string{"base2"}
	svc, err := binder.NewService(ctx, binder.NewMemoryRepository(nil), cards, cfg)
	if err != nil {
		b.Fatalf("NewService failed: %v", err)
	}
	packs := pack.NewService(pack.NewEngine(cards, nil), svc)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seed := int64(i)
		res, err := packs.OpenPack(ctx, pack.OpenRequest{SetID: "base2", Seed: &seed})
		if err != nil {
			b.Fatalf("OpenPack failed: %v", err)
		}
		if _, err := svc.AddCards(ctx, toIngest(res)); err != nil {
			b.Fatalf("AddCards failed: %v", err)
		}
	}
}
