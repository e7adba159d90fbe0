// Package poolgen builds the rarity-pool files the catalog loads from a
// dataset of per-card metadata folders.
package poolgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/special-brownies/booster-pack/internal/catalog"
	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/validation"
)

type PackTemplate struct {
	RareOrHolo int `json:"rare_or_holo"`
	Uncommon   int `json:"uncommon"`
	Common     int `json:"common"`
}

type Assumptions struct {
	HoloRule          string       `json:"holo_rule"`
	IncludeCategories string       `json:"include_categories"`
	DuplicatePolicy   string       `json:"duplicate_policy"`
	PackTemplate      PackTemplate `json:"pack_template"`
}

type Counts struct {
	TotalCardsScanned int `json:"total_cards_scanned"`
	Common            int `json:"common"`
	Uncommon          int `json:"uncommon"`
	Rare              int `json:"rare"`
	Holo              int `json:"holo"`
	Unclassified      int `json:"unclassified"`
	ParseErrors       int `json:"parse_errors"`
}

// Unclassified is a card whose rarity matched no bucket. Rarity is the raw
// JSON value, null when absent.
type Unclassified struct {
	CardID string          `json:"card_id"`
	Rarity json.RawMessage `json:"rarity"`
}

type ParseError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

type Anomalies struct {
	MissingRarity      []string       `json:"missing_rarity"`
	UnclassifiedRarity []Unclassified `json:"unclassified_rarity"`
	ParseErrors        []ParseError   `json:"parse_errors"`
}

// Total counts every anomaly entry.
func (a Anomalies) Total() int {
	return len(a.MissingRarity) + len(a.UnclassifiedRarity) + len(a.ParseErrors)
}

// SetPool is one generated pool file.
type SetPool struct {
	SetID          string             `json:"set_id"`
	GeneratedAtUTC string             `json:"generated_at_utc"`
	SourceDir      string             `json:"source_dir"`
	Assumptions    Assumptions        `json:"assumptions"`
	Counts         Counts             `json:"counts"`
	Pools          domain.RarityPools `json:"pools"`
	Anomalies      Anomalies          `json:"anomalies"`
}

type cardFile struct {
	ID             any             `json:"id"`
	Rarity         json.RawMessage `json:"rarity"`
	VariantDetails any             `json:"variant_details"`
}

var nullJSON = json.RawMessage("null")

// BuildSetPool scans the *.json card files of one set folder in name order
// and buckets every card. Unreadable files are anomalies, not errors.
func BuildSetPool(setDir string, now time.Time) (*SetPool, error) {
	entries, err := os.ReadDir(setDir)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextReadSetDir, setDir, err)
	}

	defaults := domain.DefaultPackConfig()
	out := &SetPool{
		SetID:          filepath.Base(setDir),
		GeneratedAtUTC: now.UTC().Format(time.RFC3339Nano),
		SourceDir:      filepath.ToSlash(setDir),
		Assumptions: Assumptions{
			HoloRule:          AssumptionHoloRule,
			IncludeCategories: AssumptionIncludeCategories,
			DuplicatePolicy:   AssumptionDuplicatePolicy,
			PackTemplate: PackTemplate{
				RareOrHolo: defaults.RareSlots,
				Uncommon:   defaults.UncommonSlots,
				Common:     defaults.CommonSlots,
			},
		},
		Pools: domain.RarityPools{
			Common:   []string{},
			Uncommon: []string{},
			Rare:     []string{},
			Holo:     []string{},
		},
		Anomalies: Anomalies{
			MissingRarity:      []string{},
			UnclassifiedRarity: []Unclassified{},
			ParseErrors:        []ParseError{},
		},
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), CardFileExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		card, err := readCard(filepath.Join(setDir, name))
		if err != nil {
			out.Anomalies.ParseErrors = append(out.Anomalies.ParseErrors, ParseError{File: name, Error: err.Error()})
			continue
		}
		out.Counts.TotalCardsScanned++

		cardID := cardIDOf(card.ID, strings.TrimSuffix(name, filepath.Ext(name)))
		rarityText, rarityMissing := rarityOf(card.Rarity)
		if rarityMissing {
			out.Anomalies.MissingRarity = append(out.Anomalies.MissingRarity, cardID)
		}

		bucket, ok := Classify(rarityText, card.VariantDetails)
		if !ok {
			raw := card.Rarity
			if rarityMissing {
				raw = nullJSON
			}
			out.Anomalies.UnclassifiedRarity = append(out.Anomalies.UnclassifiedRarity, Unclassified{CardID: cardID, Rarity: raw})
			continue
		}

		switch bucket {
		case domain.RarityCommon:
			out.Pools.Common = append(out.Pools.Common, cardID)
		case domain.RarityUncommon:
			out.Pools.Uncommon = append(out.Pools.Uncommon, cardID)
		case domain.RarityRare:
			out.Pools.Rare = append(out.Pools.Rare, cardID)
		case domain.RarityHolo:
			out.Pools.Holo = append(out.Pools.Holo, cardID)
		}
	}

	for _, r := range domain.Rarities {
		sort.Strings(out.Pools.Bucket(r))
	}
	out.Counts.Common = len(out.Pools.Common)
	out.Counts.Uncommon = len(out.Pools.Uncommon)
	out.Counts.Rare = len(out.Pools.Rare)
	out.Counts.Holo = len(out.Pools.Holo)
	out.Counts.Unclassified = len(out.Anomalies.UnclassifiedRarity)
	out.Counts.ParseErrors = len(out.Anomalies.ParseErrors)
	return out, nil
}

func readCard(path string) (*cardFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var card cardFile
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// cardIDOf renders a present, non-empty id as text and falls back to the
// file stem otherwise.
func cardIDOf(id any, stem string) string {
	switch v := id.(type) {
	case nil:
		return stem
	case string:
		if v == "" {
			return stem
		}
		return v
	case bool:
		if !v {
			return stem
		}
	case float64:
		if v == 0 {
			return stem
		}
	}
	b, err := json.Marshal(id)
	if err != nil {
		return stem
	}
	return string(b)
}

// rarityOf returns the rarity text, empty for non-string values, and whether
// the field was absent or null.
func rarityOf(raw json.RawMessage) (text string, missing bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, nullJSON) {
		return "", true
	}
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return "", false
	}
	return text, false
}

// WriteSetPool writes p to <outDir>/<set_id>.json and returns the path.
func WriteSetPool(outDir string, p *SetPool) (string, error) {
	data, err := json.MarshalIndent(p, "", JSONIndent)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextWritePool, err)
	}
	data = append(data, '\n')

	path := filepath.Join(outDir, p.SetID+CardFileExt)
	if err := os.WriteFile(path, data, OutputPerm); err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextWritePool, err)
	}
	return path, nil
}

// Options controls a generation run.
type Options struct {
	InputDir  string
	OutputDir string
	// Schemas, when set, checks every written file loads as a catalog pool.
	Schemas validation.SchemaValidator
	Now     func() time.Time
	// OnSet is called after each set is written.
	OnSet func(SetSummary)
}

// SetSummary reports one generated file.
type SetSummary struct {
	SetID          string `json:"set_id"`
	OutputFile     string `json:"output_file"`
	Counts         Counts `json:"counts"`
	AnomaliesTotal int    `json:"anomalies_total"`
}

// Summary reports a whole run.
type Summary struct {
	Sets              []SetSummary `json:"sets"`
	TotalCardsScanned int          `json:"total_cards_scanned"`
	TotalAnomalies    int          `json:"total_anomalies"`
}

// SetDirs lists the set folders of inputDir in name order.
func SetDirs(inputDir string) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputDirNotFound, inputDir)
	}
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextReadSetDir, inputDir, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(inputDir, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Run generates one pool file per set folder under opts.InputDir.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	log := logger.FromContext(ctx)
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	dirs, err := SetDirs(opts.InputDir)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoSetFolders, opts.InputDir)
	}
	if err := os.MkdirAll(opts.OutputDir, OutputDirPerm); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextWritePool, err)
	}

	summary := &Summary{Sets: make([]SetSummary, 0, len(dirs))}
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pool, err := BuildSetPool(dir, now())
		if err != nil {
			return nil, err
		}
		path, err := WriteSetPool(opts.OutputDir, pool)
		if err != nil {
			return nil, err
		}
		if opts.Schemas != nil {
			if _, err := catalog.ReadPoolFile(path, opts.Schemas); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextVerifyPool, err)
			}
		}

		s := SetSummary{
			SetID:          pool.SetID,
			OutputFile:     filepath.ToSlash(path),
			Counts:         pool.Counts,
			AnomaliesTotal: pool.Anomalies.Total(),
		}
		summary.Sets = append(summary.Sets, s)
		summary.TotalCardsScanned += s.Counts.TotalCardsScanned
		summary.TotalAnomalies += s.AnomaliesTotal

		log.Info(LogMsgSetGenerated,
			LogFieldSetID, s.SetID,
			LogFieldScanned, s.Counts.TotalCardsScanned,
			LogFieldCommon, s.Counts.Common,
			LogFieldUncommon, s.Counts.Uncommon,
			LogFieldRare, s.Counts.Rare,
			LogFieldHolo, s.Counts.Holo,
			LogFieldAnomalies, s.AnomaliesTotal,
			LogFieldOutput, s.OutputFile)
		if s.AnomaliesTotal > 0 {
			log.Debug(LogMsgAnomalies,
				LogFieldSetID, s.SetID,
				LogFieldMissing, pool.Anomalies.MissingRarity,
				LogFieldUnclassified, len(pool.Anomalies.UnclassifiedRarity),
				LogFieldParseErrors, pool.Anomalies.ParseErrors)
		}
		if opts.OnSet != nil {
			opts.OnSet(s)
		}
	}
	return summary, nil
}
