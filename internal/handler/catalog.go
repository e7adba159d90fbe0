package handler

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
)

// SetCatalogReader lists the cards of a set.
type SetCatalogReader interface {
	SetCatalog(setID string) (*domain.SetCatalog, error)
}

// CardMetadataReader resolves card metadata and image files.
type CardMetadataReader interface {
	Metadata(ctx context.Context, setID, cardID string) (*domain.CardMetadata, error)
	ImagePath(setID, cardID string) (string, error)
}

// CatalogHandler serves set listings, card metadata and card images
type CatalogHandler struct {
	sets  SetCatalogReader
	cards CardMetadataReader
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(sets SetCatalogReader, cards CardMetadataReader) *CatalogHandler {
	return &CatalogHandler{sets: sets, cards: cards}
}

type cardQuery struct {
	SetID  string `validate:"required,segment"`
	CardID string `validate:"required,segment"`
}

// HandleSetCatalog lists every card of a set with its image URL
// @Summary Set catalog
// @Tags catalog
// @Produce json
// @Param setId query string true "Set id (set_id also accepted)"
// @Success 200 {object} domain.SetCatalog
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /set-catalog [get]
func (h *CatalogHandler) HandleSetCatalog(w http.ResponseWriter, r *http.Request) {
	setID, ok := GetQueryParamAny(r, w, ErrMsgMissingSetIDQuery, QueryParamSetID, QueryParamSetIDSnake)
	if !ok {
		return
	}

	listing, err := h.sets.SetCatalog(setID)
	if err != nil {
		respondServiceError(w, r, "Set catalog", ErrMsgGenericServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// HandleCardMetadata returns the display metadata of one card
// @Summary Card metadata
// @Tags catalog
// @Produce json
// @Param setId query string true "Set id (set_id also accepted)"
// @Param cardId query string true "Card id (card_id also accepted)"
// @Success 200 {object} domain.CardMetadata
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /card-metadata [get]
func (h *CatalogHandler) HandleCardMetadata(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := cardQuery{
		SetID:  firstNonBlank(q.Get(QueryParamSetID), q.Get(QueryParamSetIDSnake)),
		CardID: firstNonBlank(q.Get(QueryParamCardID), q.Get(QueryParamCardSnake)),
	}
	if query.SetID == "" || query.CardID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingCardQuery)
		return
	}
	if err := GetValidator().ValidateStruct(query); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidSegment,
			Fields: FormatValidationError(err),
		})
		return
	}

	meta, err := h.cards.Metadata(r.Context(), query.SetID, query.CardID)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			respondError(w, http.StatusNotFound, ErrMsgCardMetadataNotFound+": "+query.SetID+"/"+query.CardID)
			return
		}
		respondServiceError(w, r, "Card metadata", ErrMsgGenericServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, meta)
}

// HandleCardImage serves the PNG image of one card
// @Summary Card image
// @Tags catalog
// @Produce png
// @Param setID path string true "Set id"
// @Param cardID path string true "Card id"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cards/{setID}/{cardID}.png [get]
func (h *CatalogHandler) HandleCardImage(w http.ResponseWriter, r *http.Request) {
	setID := chi.URLParam(r, URLParamSetID)
	cardID := chi.URLParam(r, URLParamCardID)

	path, err := h.cards.ImagePath(setID, cardID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSegment) {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSegment)
			return
		}
		respondServiceError(w, r, "Card image", ErrMsgGenericServerError, err)
		return
	}

	info, statErr := os.Stat(path)
	exists := statErr == nil && info.Mode().IsRegular()
	logger.FromContext(r.Context()).Info(LogMsgCardImageResolved,
		LogFieldSetID, setID, LogFieldCardID, cardID, LogFieldPath, path, LogFieldExists, exists)
	if !exists {
		respondError(w, http.StatusNotFound, ErrMsgCardImageNotFound+": "+setID+"/"+cardID)
		return
	}

	w.Header().Set("Content-Type", ContentTypePNG)
	http.ServeFile(w, r, path)
}
