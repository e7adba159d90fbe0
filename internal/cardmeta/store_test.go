package cardmeta

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/domain"
)

func writeCard(t *testing.T, base, setID, cardID, body string) {
	t.Helper()
	dir := filepath.Join(base, setID)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, cardID+".json"), []byte(body), 0o644))
}

func TestStore_Name(t *testing.T) {
	base := t.TempDir()
	writeCard(t, base, "base2", "base2-1", `{"name": "Clefable"}`)
	writeCard(t, base, "base2", "base2-2", `{"name": "   "}`)
	writeCard(t, base, "base2", "base2-3", `{"name": 7}`)
	writeCard(t, base, "base2", "base2-4", `not json`)
	writeCard(t, base, "base2", "base2-5", `["Clefable"]`)

	s := NewStore(base, 16, time.Minute)
	ctx := context.Background()

	assert.Equal(t, "Clefable", s.Name(ctx, "base2", "base2-1"))
	assert.Equal(t, "base2-2", s.Name(ctx, "base2", "base2-2"), "blank name")
	assert.Equal(t, "base2-3", s.Name(ctx, "base2", "base2-3"), "non-string name")
	assert.Equal(t, "base2-4", s.Name(ctx, "base2", "base2-4"), "unparsable file")
	assert.Equal(t, "base2-5", s.Name(ctx, "base2", "base2-5"), "non-object root")
	assert.Equal(t, "base2-9", s.Name(ctx, "base2", "base2-9"), "missing file")
	assert.Equal(t, "../x", s.Name(ctx, "base2", "../x"), "unsafe id")
}

func TestStore_NameIsCached(t *testing.T) {
	base := t.TempDir()
	writeCard(t, base, "jungle", "jungle-1", `{"name": "Clefable"}`)
	s := NewStore(base, 16, time.Minute)
	ctx := context.Background()

	require.Equal(t, "Clefable", s.Name(ctx, "jungle", "jungle-1"))
	writeCard(t, base, "jungle", "jungle-1", `{"name": "Changed"}`)
	assert.Equal(t, "Clefable", s.Name(ctx, "jungle", "jungle-1"))
}

func TestStore_Metadata(t *testing.T) {
	base := t.TempDir()
	writeCard(t, base, "base2", "base2-1", `{
		"name": "Clefable",
		"category": "Pokemon",
		"dexId": [36, 35],
		"description": "A timid fairy.",
		"types": ["Colorless", 3],
		"weaknesses": ["CardWeakRes(type='Fighting', value='x2')", {"type": "Psychic"}, "Plain", 5],
		"rarity": "Rare"
	}`)
	writeCard(t, base, "base2", "base2-2", `{"dexId": 12}`)
	writeCard(t, base, "base2", "base2-3", `{"dexId": 1.5, "types": "Fire"}`)

	s := NewStore(base, 16, time.Minute)
	ctx := context.Background()

	meta, err := s.Metadata(ctx, "base2", "base2-1")
	require.NoError(t, err)
	require.NotNil(t, meta.Name)
	assert.Equal(t, "Clefable", *meta.Name)
	assert.Equal(t, "Pokemon", *meta.Category)
	require.NotNil(t, meta.DexID)
	assert.Equal(t, 36, *meta.DexID)
	assert.Equal(t, []string{"Colorless"}, meta.Types)
	assert.Equal(t, []string{"Fighting", "Psychic", "Plain"}, meta.Weaknesses)
	assert.Equal(t, "Rare", *meta.Rarity)

	meta, err = s.Metadata(ctx, "base2", "base2-2")
	require.NoError(t, err)
	assert.Equal(t, 12, *meta.DexID)
	assert.Nil(t, meta.Name)
	assert.Empty(t, meta.Types)

	meta, err = s.Metadata(ctx, "base2", "base2-3")
	require.NoError(t, err)
	assert.Nil(t, meta.DexID)
	assert.Empty(t, meta.Types)

	_, err = s.Metadata(ctx, "base2", "base2-99")
	assert.ErrorIs(t, err, domain.ErrCardNotFound)

	_, err = s.Metadata(ctx, "base2", "..")
	assert.ErrorIs(t, err, domain.ErrInvalidSegment)
}

func TestStore_ImagePath(t *testing.T) {
	base := t.TempDir()
	s := NewStore(base, 0, time.Minute)

	path, err := s.ImagePath("fossil", "fossil-3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "fossil", "fossil-3.png"), path)

	_, err = s.ImagePath("fossil", "a/b")
	assert.ErrorIs(t, err, domain.ErrInvalidSegment)
}

func TestValidSegment(t *testing.T) {
	assert.True(t, ValidSegment("base2-1"))
	assert.True(t, ValidSegment("swsh_12"))
	assert.False(t, ValidSegment(""))
	assert.False(t, ValidSegment(".."))
	assert.False(t, ValidSegment("a b"))
}
