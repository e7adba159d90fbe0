// Package simulation estimates pack statistics by drawing many seeded packs.
package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/metrics"
	"github.com/special-brownies/booster-pack/internal/pack"
	"github.com/special-brownies/booster-pack/internal/worker"
)

// Drawer opens one pack.
type Drawer interface {
	Draw(ctx context.Context, req pack.DrawRequest) (*domain.PackResult, error)
}

// Options controls a simulation run. Pack i is drawn with seed BaseSeed+i,
// so a run is reproducible whatever the worker count.
type Options struct {
	SetID      string
	Config     *domain.PackConfig
	Packs      int
	Workers    int
	BaseSeed   int64
	Confidence float64
	// OnDraw is called after every pack, from worker goroutines.
	OnDraw func()
}

// Report summarises a run.
type Report struct {
	SetID             string                    `json:"set_id"`
	Packs             int                       `json:"packs"`
	BaseSeed          int64                     `json:"base_seed"`
	Config            domain.PackConfig         `json:"config"`
	RarityCounts      map[domain.Rarity]int     `json:"rarity_counts"`
	RarityFrequencies map[domain.Rarity]float64 `json:"rarity_frequencies"`
	RareSlots         int                       `json:"rare_slots"`
	HoloUpgrades      int                       `json:"holo_upgrades"`
	HoloRate          Proportion                `json:"holo_rate"`
	Confidence        float64                   `json:"confidence"`
	DistinctPerPack   Moments                   `json:"distinct_per_pack"`
	UniqueCardsSeen   int                       `json:"unique_cards_seen"`
	Duration          time.Duration             `json:"duration_ns"`
}

// Run draws opts.Packs packs on a worker pool and summarises them. The
// first failing pack, by index, aborts the run with its error.
func Run(ctx context.Context, drawer Drawer, opts Options) (*Report, error) {
	if opts.Packs <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPacksNotPositive)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Confidence <= 0 || opts.Confidence >= 1 {
		opts.Confidence = DefaultConfidence
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgSimulationStarted,
		LogFieldSetID, opts.SetID,
		LogFieldPacks, opts.Packs,
		LogFieldWorkers, opts.Workers,
		LogFieldBaseSeed, opts.BaseSeed)
	start := time.Now()

	results := make([]*domain.PackResult, opts.Packs)
	errs := make([]error, opts.Packs)

	pool := worker.NewPool(opts.Workers, DefaultQueueSize)
	pool.Start(ctx)
	var enqueueErr error
	for i := 0; i < opts.Packs; i++ {
		i := i
		seed := opts.BaseSeed + int64(i)
		err := pool.Enqueue(ctx, worker.JobFunc(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return err
			}
			res, err := drawer.Draw(ctx, pack.DrawRequest{
				SetID:  opts.SetID,
				Config: opts.Config,
				Seed:   &seed,
			})
			results[i], errs[i] = res, err
			if opts.OnDraw != nil {
				opts.OnDraw()
			}
			return err
		}))
		if err != nil {
			enqueueErr = err
			break
		}
	}
	pool.Stop()

	if enqueueErr != nil {
		return nil, enqueueErr
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s (pack %d): %w", ErrMsgDrawFailed, i, err)
		}
	}
	metrics.SimulatedPacks.Add(float64(opts.Packs))

	report := Summarize(results, opts.Confidence)
	report.BaseSeed = opts.BaseSeed
	report.Duration = time.Since(start)
	log.Info(LogMsgSimulationFinished,
		LogFieldSetID, report.SetID,
		LogFieldPacks, report.Packs,
		LogFieldHoloRate, report.HoloRate.Hat,
		LogFieldDuration, report.Duration)
	return report, nil
}

// Summarize aggregates drawn packs in order. Results must share one set and
// config; the first result supplies both.
func Summarize(results []*domain.PackResult, confidence float64) *Report {
	r := &Report{
		Packs:             len(results),
		Confidence:        confidence,
		RarityCounts:      make(map[domain.Rarity]int, len(domain.Rarities)),
		RarityFrequencies: make(map[domain.Rarity]float64, len(domain.Rarities)),
	}
	for _, rarity := range domain.Rarities {
		r.RarityCounts[rarity] = 0
	}
	if len(results) == 0 {
		return r
	}
	r.SetID = results[0].SetID
	r.Config = results[0].Config

	seen := make(map[string]struct{})
	distinct := make([]float64, 0, len(results))
	totalCards := 0
	for _, res := range results {
		inPack := make(map[string]struct{}, len(res.Slots))
		for _, slot := range res.Slots {
			r.RarityCounts[slot.Rarity]++
			inPack[slot.CardID] = struct{}{}
			seen[slot.CardID] = struct{}{}
		}
		totalCards += len(res.Slots)
		distinct = append(distinct, float64(len(inPack)))

		for _, roll := range res.Debug.RareSlotRolls {
			r.RareSlots++
			if roll.UpgradedToHolo {
				r.HoloUpgrades++
			}
		}
	}

	for rarity, n := range r.RarityCounts {
		if totalCards > 0 {
			r.RarityFrequencies[rarity] = float64(n) / float64(totalCards)
		}
	}
	r.HoloRate = ClopperPearson(r.HoloUpgrades, r.RareSlots, confidence)
	r.DistinctPerPack = moments(distinct)
	r.UniqueCardsSeen = len(seen)
	return r
}
