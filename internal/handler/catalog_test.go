package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/cardmeta"
	"github.com/special-brownies/booster-pack/internal/catalog"
	"github.com/special-brownies/booster-pack/internal/domain"
)

func newCatalogHandler(t *testing.T) (*CatalogHandler, string) {
	t.Helper()
	dataset := t.TempDir()
	setDir := filepath.Join(dataset, "base2")
	require.NoError(t, os.MkdirAll(setDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(setDir, "base2-58.json"), []byte(`{
		"name": "Pikachu",
		"category": "Pokemon",
		"dexId": [25],
		"types": ["Lightning", 3],
		"weaknesses": ["CardWeakRes(type='Fighting', value='x2')", {"type": "Metal"}],
		"rarity": "Common"
	}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(setDir, "base2-58.png"), []byte("\x89PNG fake"), 0o644))

	sets := catalog.New("pools", map[string]domain.RarityPools{
		"base2": {Common: []string{"base2-58"}, Holo: []string{"base2-4"}},
	})
	return NewCatalogHandler(sets, cardmeta.NewStore(dataset, 16, time.Minute)), dataset
}

func TestHandleSetCatalog(t *testing.T) {
	h, _ := newCatalogHandler(t)

	w := httptest.NewRecorder()
	h.HandleSetCatalog(w, httptest.NewRequest(http.MethodGet, "/set-catalog?setId=base2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.SetCatalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Cards, 2)
	assert.Equal(t, domain.RarityCommon, got.Cards[0].Rarity)
	assert.Equal(t, "/cards/base2/base2-4.png", got.Cards[1].ImageURL)

	w = httptest.NewRecorder()
	h.HandleSetCatalog(w, httptest.NewRequest(http.MethodGet, "/set-catalog?set_id=nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	h.HandleSetCatalog(w, httptest.NewRequest(http.MethodGet, "/set-catalog", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCardMetadata(t *testing.T) {
	h, _ := newCatalogHandler(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedBody   string
	}{
		{"Success", "setId=base2&cardId=base2-58", http.StatusOK, `"dex_id":25`},
		{"Snake Case", "set_id=base2&card_id=base2-58", http.StatusOK, `"weaknesses":["Fighting","Metal"]`},
		{"Missing Card", "setId=base2", http.StatusBadRequest, ErrMsgMissingCardQuery},
		{"Unsafe Segment", "setId=..&cardId=base2-58", http.StatusBadRequest, ErrMsgInvalidSegment},
		{"Not Found", "setId=base2&cardId=base2-99", http.StatusNotFound, ErrMsgCardMetadataNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.HandleCardMetadata(w, httptest.NewRequest(http.MethodGet, "/card-metadata?"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleCardImage(t *testing.T) {
	h, _ := newCatalogHandler(t)
	r := chi.NewRouter()
	r.Get("/cards/{setID}/{cardID}.png", h.HandleCardImage)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cards/base2/base2-58.png", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypePNG, w.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG fake", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cards/base2/base2-99.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cards/base%202/base2-58.png", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
