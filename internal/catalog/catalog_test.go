package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/validation"
)

func writePool(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writePool(t, dir, "base2.json", `{"set_id":"base2","pools":{"common":["c1","c2"],"uncommon":["u1"],"rare":["r1"],"holo":["h1","shared"]}}`)
	writePool(t, dir, "jungle.json", `{"pools":{"common":["j1","shared"],"uncommon":[],"rare":[],"holo":[]}}`)
	writePool(t, dir, "notes.txt", `ignored`)

	c, err := Load(context.Background(), dir, validation.NewSchemaValidator())
	require.NoError(t, err)

	assert.Equal(t, []string{"base2", "jungle"}, c.SetIDs())
	assert.True(t, c.IsKnownSet("jungle"), "set id falls back to file stem")
	assert.False(t, c.IsKnownSet("fossil"))

	assert.True(t, c.IsKnownCard("c1"))
	assert.False(t, c.IsKnownCard("zz"))
	assert.True(t, c.IsKnownCardInSet("c1", "base2"))
	assert.False(t, c.IsKnownCardInSet("c1", "jungle"))
	assert.False(t, c.IsKnownCardInSet("c1", "fossil"))

	assert.Equal(t, []string{"base2", "jungle"}, c.CandidateSetsForCard("shared"))
	assert.Empty(t, c.CandidateSetsForCard("zz"))

	assert.Equal(t, 6, c.TotalCards("base2"))
	assert.Equal(t, 2, c.TotalCards("jungle"))
	assert.Equal(t, 0, c.TotalCards("fossil"))
	assert.Equal(t, dir, c.Dir())
}

func TestLoad_MissingDirIsNotFound(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope"), validation.NewSchemaValidator())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogDirNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestLoad_MalformedPoolAborts(t *testing.T) {
	dir := t.TempDir()
	writePool(t, dir, "bad.json", `{"set_id":"bad","pools":{"rare":"r1"}}`)

	_, err := Load(context.Background(), dir, validation.NewSchemaValidator())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPool)
}

func TestLoad_EmptyDir(t *testing.T) {
	c, err := Load(context.Background(), t.TempDir(), validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.Empty(t, c.SetIDs())
}

func TestCatalog_Pools(t *testing.T) {
	c := New("pools", map[string]domain.RarityPools{
		"base2": {Common: []string{"c1"}, Rare: []string{"r1"}},
	})

	p, err := c.Pools("base2")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, p.Rare)

	_, err = c.Pools("fossil")
	assert.ErrorIs(t, err, domain.ErrPoolNotFound)
}

func TestCatalog_SetCatalog(t *testing.T) {
	c := New("pools", map[string]domain.RarityPools{
		"base2": {Common: []string{"c1"}, Uncommon: []string{"u1"}, Rare: []string{"r1"}, Holo: []string{"h1"}},
	})

	sc, err := c.SetCatalog("base2")
	require.NoError(t, err)
	require.Len(t, sc.Cards, 4)
	assert.Equal(t, domain.SetCatalogCard{CardID: "c1", Rarity: domain.RarityCommon, ImageURL: "/cards/base2/c1.png"}, sc.Cards[0])
	assert.Equal(t, domain.RarityHolo, sc.Cards[3].Rarity)

	_, err = c.SetCatalog("nope")
	assert.ErrorIs(t, err, domain.ErrSetNotFound)
}

func TestDirSource_RejectsPathTraversal(t *testing.T) {
	root := t.TempDir()
	pools := filepath.Join(root, "pools")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "secret"), 0o755))
	require.NoError(t, os.MkdirAll(pools, 0o755))
	writePool(t, filepath.Join(root, "secret"), "hidden.json", `{"set_id":"hidden","pools":{"common":["x"]}}`)

	src := NewDirSource(pools, validation.NewSchemaValidator())

	for _, setID := range []string{"../secret/hidden", "..", "base2/../base2", "a b", ""} {
		_, err := src.Pools(setID)
		assert.ErrorIs(t, err, domain.ErrInvalidSegment, setID)
		assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err), setID)
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	writePool(t, dir, "base2.json", `{"set_id":"base2","pools":{"common":[1,2],"rare":["r1"]}}`)
	writePool(t, dir, "broken.json", `{"set_id":"broken","pools":`)

	src := NewDirSource(dir, validation.NewSchemaValidator())

	p, err := src.Pools("base2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, p.Common)
	assert.Empty(t, p.Holo)

	_, err = src.Pools("fossil")
	assert.ErrorIs(t, err, domain.ErrPoolNotFound)
	assert.Contains(t, err.Error(), `"fossil"`)
	assert.NotContains(t, err.Error(), dir)

	_, err = src.Pools("broken")
	assert.ErrorIs(t, err, domain.ErrInvalidPool)
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
}
