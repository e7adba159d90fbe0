package progression

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/special-brownies/booster-pack/internal/logger"
)

// DefaultOrder is the built-in set progression.
var DefaultOrder = []string{"base2", "jungle", "fossil", "base3", "base4", "base5"}

// DefaultThresholds are the completion percentages tracked per set.
var DefaultThresholds = []int{25, 50, 75, 100}

// Config controls set unlocking, milestone tracking and pack history.
type Config struct {
	Order                  []string `json:"progression_order"`
	TrackPartialMilestones bool     `json:"track_partial_milestones"`
	MilestoneThresholds    []int    `json:"milestone_thresholds"`
	MaintainPackHistory    bool     `json:"maintain_pack_history"`
}

// DefaultConfig returns the built-in progression settings.
func DefaultConfig() Config {
	return Config{
		Order:                  append([]string(nil), DefaultOrder...),
		TrackPartialMilestones: true,
		MilestoneThresholds:    append([]int(nil), DefaultThresholds...),
		MaintainPackHistory:    false,
	}
}

// First returns the set that is always unlocked, or "" for an empty order.
func (c Config) First() string {
	if len(c.Order) == 0 {
		return ""
	}
	return c.Order[0]
}

// LoadConfig reads a progression config from path. YAML is used for
// .yaml/.yml files and JSON otherwise. A missing or unusable file yields
// DefaultConfig; invalid fields fall back to their defaults one by one.
func LoadConfig(ctx context.Context, path string) Config {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info(LogMsgConfigMissing, LogFieldPath, path)
		} else {
			log.Warn(LogMsgConfigUnreadable, LogFieldPath, path, LogFieldError, err)
		}
		return DefaultConfig()
	}

	var raw any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&raw)
	}
	if err != nil {
		log.Warn(LogMsgConfigUnreadable, LogFieldPath, path, LogFieldError, err)
		return DefaultConfig()
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		log.Warn(LogMsgConfigNotObject, LogFieldPath, path)
		return DefaultConfig()
	}

	cfg := FromMap(ctx, obj)
	log.Info(LogMsgConfigLoaded, LogFieldPath, path, LogFieldOrder, cfg.Order)
	return cfg
}

// FromMap applies per-field fallbacks to an already-decoded config object.
func FromMap(ctx context.Context, raw map[string]any) Config {
	log := logger.FromContext(ctx)
	cfg := DefaultConfig()

	if v, present := raw[KeyProgressionOrder]; present {
		if order, ok := setOrder(v); ok {
			cfg.Order = order
		} else {
			log.Warn(LogMsgFieldFallback, LogFieldField, KeyProgressionOrder)
		}
	}
	if v, present := raw[KeyTrackPartialMilestones]; present {
		if b, ok := v.(bool); ok {
			cfg.TrackPartialMilestones = b
		} else {
			log.Warn(LogMsgFieldFallback, LogFieldField, KeyTrackPartialMilestones)
		}
	}
	if v, present := raw[KeyMilestoneThresholds]; present {
		if thresholds, ok := thresholdList(v); ok {
			cfg.MilestoneThresholds = thresholds
		} else {
			log.Warn(LogMsgFieldFallback, LogFieldField, KeyMilestoneThresholds)
		}
	}
	if v, present := raw[KeyMaintainPackHistory]; present {
		if b, ok := v.(bool); ok {
			cfg.MaintainPackHistory = b
		} else {
			log.Warn(LogMsgFieldFallback, LogFieldField, KeyMaintainPackHistory)
		}
	}
	return cfg
}

func setOrder(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil, false
	}
	order := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, false
		}
		order = append(order, s)
	}
	return order, true
}

// thresholdList accepts integers in (0,100] and returns them sorted and unique.
func thresholdList(v any) ([]int, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	seen := make(map[int]struct{}, len(items))
	out := make([]int, 0, len(items))
	for _, item := range items {
		n, ok := AsInt(item)
		if !ok || n <= 0 || n > MaxThreshold {
			return nil, false
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out, true
}

// AsInt converts integral JSON or YAML numbers to int. Booleans, strings and
// fractional values are rejected.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
