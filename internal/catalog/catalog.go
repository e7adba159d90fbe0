package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/validation"
)

// Catalog is the read-only index of known cards, built once at startup
// from every pool file in a directory. It is never mutated after Load
// returns, so lookups need no locking.
type Catalog struct {
	dir        string
	pools      map[string]domain.RarityPools
	cardsBySet map[string]map[string]struct{}
	setsByCard map[string]map[string]struct{}
	setIDs     []string
}

// Load builds a catalog from dir/*.json. A missing directory wraps
// domain.ErrCatalogDirNotFound; any unreadable or malformed pool file
// aborts loading.
func Load(ctx context.Context, dir string, schemas validation.SchemaValidator) (*Catalog, error) {
	log := logger.FromContext(ctx)

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogDirNotFound, dir)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextListPools, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrCatalogDirNotFound, dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, PoolFilePattern))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListPools, err)
	}
	sort.Strings(files)

	pools := make(map[string]domain.RarityPools, len(files))
	for _, file := range files {
		pf, err := ReadPoolFile(file, schemas)
		if err != nil {
			log.Error(LogMsgPoolFileInvalid, LogFieldFile, file, LogFieldError, err)
			return nil, err
		}
		if _, dup := pools[pf.SetID]; dup {
			log.Warn(LogMsgDuplicateSetID, LogFieldSetID, pf.SetID, LogFieldFile, file)
		}
		pools[pf.SetID] = pf.Pools
		log.Debug(LogMsgPoolFileLoaded, LogFieldFile, file, LogFieldSetID, pf.SetID)
	}

	c := New(dir, pools)
	log.Info(LogMsgCatalogLoaded, LogFieldDir, dir, LogFieldSets, len(c.setIDs))
	return c, nil
}

// New indexes already-parsed pools. Load is the usual entry point; New
// serves tests and tools that build pools in memory.
func New(dir string, pools map[string]domain.RarityPools) *Catalog {
	c := &Catalog{
		dir:        dir,
		pools:      make(map[string]domain.RarityPools, len(pools)),
		cardsBySet: make(map[string]map[string]struct{}, len(pools)),
		setsByCard: make(map[string]map[string]struct{}),
	}
	for setID, p := range pools {
		c.pools[setID] = p
		cards := make(map[string]struct{})
		for _, r := range domain.Rarities {
			for _, cardID := range p.Bucket(r) {
				cards[cardID] = struct{}{}
			}
		}
		c.cardsBySet[setID] = cards
		for cardID := range cards {
			if c.setsByCard[cardID] == nil {
				c.setsByCard[cardID] = make(map[string]struct{})
			}
			c.setsByCard[cardID][setID] = struct{}{}
		}
		c.setIDs = append(c.setIDs, setID)
	}
	sort.Strings(c.setIDs)
	return c
}

// IsKnownSet reports whether a pool file declared setID.
func (c *Catalog) IsKnownSet(setID string) bool {
	_, ok := c.cardsBySet[setID]
	return ok
}

// IsKnownCard reports whether any set contains cardID.
func (c *Catalog) IsKnownCard(cardID string) bool {
	_, ok := c.setsByCard[cardID]
	return ok
}

// IsKnownCardInSet reports whether setID contains cardID.
func (c *Catalog) IsKnownCardInSet(cardID, setID string) bool {
	_, ok := c.cardsBySet[setID][cardID]
	return ok
}

// CandidateSetsForCard returns the sorted ids of every set containing cardID.
func (c *Catalog) CandidateSetsForCard(cardID string) []string {
	sets := make([]string, 0, len(c.setsByCard[cardID]))
	for setID := range c.setsByCard[cardID] {
		sets = append(sets, setID)
	}
	sort.Strings(sets)
	return sets
}

// TotalCards returns the number of unique cards in setID, 0 for unknown sets.
func (c *Catalog) TotalCards(setID string) int {
	return len(c.cardsBySet[setID])
}

// SetIDs returns every known set id, sorted.
func (c *Catalog) SetIDs() []string {
	return append([]string(nil), c.setIDs...)
}

// Pools returns the rarity pools of setID, or domain.ErrPoolNotFound.
func (c *Catalog) Pools(setID string) (domain.RarityPools, error) {
	p, ok := c.pools[setID]
	if !ok {
		return domain.RarityPools{}, fmt.Errorf("%w for set '%s'", domain.ErrPoolNotFound, setID)
	}
	return p, nil
}

// Dir returns the directory the catalog was loaded from.
func (c *Catalog) Dir() string {
	return c.dir
}

// SetCatalog lists the cards of setID in common, uncommon, rare, holo order.
func (c *Catalog) SetCatalog(setID string) (*domain.SetCatalog, error) {
	p, ok := c.pools[setID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSetNotFound, setID)
	}
	out := &domain.SetCatalog{SetID: setID, Cards: []domain.SetCatalogCard{}}
	for _, r := range domain.Rarities {
		for _, cardID := range p.Bucket(r) {
			out.Cards = append(out.Cards, domain.SetCatalogCard{
				CardID:   cardID,
				Rarity:   r,
				ImageURL: fmt.Sprintf(ImageURLTemplate, setID, cardID),
			})
		}
	}
	return out, nil
}
