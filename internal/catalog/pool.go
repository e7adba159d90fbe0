package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/validation"
)

// PoolFile is a parsed rarity-pool file.
type PoolFile struct {
	SetID string
	Pools domain.RarityPools
}

type rawPoolFile struct {
	SetID *string                      `json:"set_id"`
	Pools map[string][]json.RawMessage `json:"pools"`
}

// ReadPoolFile reads and validates one pool file. A missing file wraps
// domain.ErrPoolNotFound, a malformed one domain.ErrInvalidPool; both name
// the file stem, never the full path. The set id falls back to the file stem
// when the file does not declare one.
func ReadPoolFile(path string, schemas validation.SchemaValidator) (*PoolFile, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w for set %q", domain.ErrPoolNotFound, stem)
		}
		return nil, fmt.Errorf("%s %s: %w", ErrContextReadPool, path, err)
	}
	return ParsePool(data, stem, schemas)
}

// ParsePool validates data against the pool schema and decodes it.
func ParsePool(data []byte, fallbackSetID string, schemas validation.SchemaValidator) (*PoolFile, error) {
	if err := schemas.ValidateBytes(data, validation.PoolSchema); err != nil {
		return nil, fmt.Errorf("%w (%s): %v", domain.ErrInvalidPool, fallbackSetID, err)
	}

	var raw rawPoolFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w (%s): %s: %v", domain.ErrInvalidPool, fallbackSetID, ErrContextParsePool, err)
	}

	out := &PoolFile{SetID: fallbackSetID}
	if raw.SetID != nil && *raw.SetID != "" {
		out.SetID = *raw.SetID
	}
	out.Pools = domain.RarityPools{
		Common:   cardIDs(raw.Pools[string(domain.RarityCommon)]),
		Uncommon: cardIDs(raw.Pools[string(domain.RarityUncommon)]),
		Rare:     cardIDs(raw.Pools[string(domain.RarityRare)]),
		Holo:     cardIDs(raw.Pools[string(domain.RarityHolo)]),
	}
	return out, nil
}

// cardIDs renders every bucket entry as a string; numeric ids keep their literal form.
func cardIDs(items []json.RawMessage) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			ids = append(ids, s)
			continue
		}
		ids = append(ids, string(bytes.TrimSpace(item)))
	}
	return ids
}

// DirSource reads pools straight from disk on every call, so edits to a
// pool file are picked up without a restart.
type DirSource struct {
	dir     string
	schemas validation.SchemaValidator
}

// NewDirSource creates a pool source reading <dir>/<set_id>.json.
func NewDirSource(dir string, schemas validation.SchemaValidator) *DirSource {
	return &DirSource{dir: dir, schemas: schemas}
}

// Pools loads the pools of setID. A set id that is not a plain path segment
// is rejected before touching the filesystem.
func (d *DirSource) Pools(setID string) (domain.RarityPools, error) {
	if !domain.ValidPathSegment(setID) {
		return domain.RarityPools{}, fmt.Errorf("%w: %q", domain.ErrInvalidSegment, setID)
	}
	pf, err := ReadPoolFile(filepath.Join(d.dir, setID+PoolFileExt), d.schemas)
	if err != nil {
		return domain.RarityPools{}, err
	}
	return pf.Pools, nil
}

// Dir returns the pool directory.
func (d *DirSource) Dir() string {
	return d.dir
}
