package cardmeta

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
)

var (
	weaknessType   = regexp.MustCompile(`type='([^']+)'`)
	errNotAnObject = errors.New("metadata root is not an object")
)

// ValidSegment reports whether s may be used as a set or card path segment.
func ValidSegment(s string) bool {
	return domain.ValidPathSegment(s)
}

type cachedCard struct {
	raw   map[string]any
	found bool
}

// Store reads per-card metadata files laid out as <base>/<set_id>/<card_id>.json.
// Parsed files, including misses, are kept in an expiring LRU.
type Store struct {
	baseDir string
	cache   *expirable.LRU[string, cachedCard]
}

// NewStore creates a metadata store rooted at baseDir.
func NewStore(baseDir string, cacheSize int, ttl time.Duration) *Store {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Store{
		baseDir: baseDir,
		cache:   expirable.NewLRU[string, cachedCard](cacheSize, nil, ttl),
	}
}

// BaseDir returns the dataset root.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Name returns the display name of a card, falling back to the card id when
// the metadata file is absent, unreadable, or has no non-blank name.
func (s *Store) Name(ctx context.Context, setID, cardID string) string {
	if !ValidSegment(setID) || !ValidSegment(cardID) {
		return cardID
	}
	card, err := s.load(setID, cardID)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgMetadataUnreadable, LogFieldSetID, setID, LogFieldCardID, cardID, LogFieldError, err)
		return cardID
	}
	if !card.found {
		return cardID
	}
	if name, ok := card.raw[KeyName].(string); ok && strings.TrimSpace(name) != "" {
		return name
	}
	return cardID
}

// Metadata returns the display metadata of one card.
func (s *Store) Metadata(ctx context.Context, setID, cardID string) (*domain.CardMetadata, error) {
	if !ValidSegment(setID) || !ValidSegment(cardID) {
		return nil, domain.ErrInvalidSegment
	}
	card, err := s.load(setID, cardID)
	if err != nil {
		return nil, err
	}
	if !card.found {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrCardNotFound, setID, cardID)
	}

	raw := card.raw
	meta := &domain.CardMetadata{
		SetID:       setID,
		CardID:      cardID,
		Name:        optionalString(raw[KeyName]),
		Category:    optionalString(raw[KeyCategory]),
		DexID:       parseDexID(raw[KeyDexID]),
		Description: optionalString(raw[KeyDescription]),
		Types:       stringItems(raw[KeyTypes]),
		Weaknesses:  parseWeaknesses(raw[KeyWeaknesses]),
		Rarity:      optionalString(raw[KeyRarity]),
	}

	logger.FromContext(ctx).Info(LogMsgMetadataResolved,
		LogFieldSetID, setID,
		LogFieldCardID, cardID,
		LogFieldHasDescription, meta.Description != nil && *meta.Description != "",
		LogFieldHasTypes, len(meta.Types) > 0,
		LogFieldHasWeaknesses, len(meta.Weaknesses) > 0)
	return meta, nil
}

// ImagePath resolves the image file of a card inside the dataset root.
func (s *Store) ImagePath(setID, cardID string) (string, error) {
	return s.resolve(setID, cardID, ImageFileExt)
}

func (s *Store) resolve(setID, cardID, ext string) (string, error) {
	if !ValidSegment(setID) || !ValidSegment(cardID) {
		return "", domain.ErrInvalidSegment
	}
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve dataset path: %w", err)
	}
	path := filepath.Join(base, setID, cardID+ext)
	if !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", domain.ErrInvalidSegment
	}
	return path, nil
}

func (s *Store) load(setID, cardID string) (cachedCard, error) {
	key := setID + "/" + cardID
	if card, ok := s.cache.Get(key); ok {
		return card, nil
	}

	path, err := s.resolve(setID, cardID, MetadataFileExt)
	if err != nil {
		return cachedCard{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.cache.Add(key, cachedCard{})
			return cachedCard{}, nil
		}
		return cachedCard{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return cachedCard{}, fmt.Errorf("parse %s: %w", path, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return cachedCard{}, fmt.Errorf("parse %s: %w", path, errNotAnObject)
	}

	card := cachedCard{raw: obj, found: true}
	s.cache.Add(key, card)
	return card, nil
}

func optionalString(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func stringItems(v any) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// parseDexID accepts an integer or a list whose first element is an integer.
func parseDexID(v any) *int {
	if items, ok := v.([]any); ok {
		if len(items) == 0 {
			return nil
		}
		v = items[0]
	}
	n, ok := v.(json.Number)
	if !ok {
		return nil
	}
	i, err := n.Int64()
	if err != nil {
		return nil
	}
	out := int(i)
	return &out
}

// parseWeaknesses accepts serialized "CardWeakRes(type='Fighting', ...)" strings
// or {"type": "Fighting"} objects.
func parseWeaknesses(v any) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		switch w := item.(type) {
		case string:
			if m := weaknessType.FindStringSubmatch(w); m != nil {
				out = append(out, m[1])
			} else {
				out = append(out, w)
			}
		case map[string]any:
			if t, ok := w[KeyType].(string); ok {
				out = append(out, t)
			}
		}
	}
	return out
}
