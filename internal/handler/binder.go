package handler

import (
	"errors"
	"net/http"

	"github.com/special-brownies/booster-pack/internal/binder"
	"github.com/special-brownies/booster-pack/internal/logger"
)

// BinderHandler handles binder and progression endpoints
type BinderHandler struct {
	service binder.Service
}

// NewBinderHandler creates a new binder handler
func NewBinderHandler(service binder.Service) *BinderHandler {
	return &BinderHandler{service: service}
}

// HandleAddCards ingests an opened pack into the binder
// @Summary Add cards to binder
// @Description Credit every valid slot of a pack result. Invalid slots are reported, never fatal.
// @Tags binder
// @Accept json
// @Produce json
// @Param request body AddCardsRequest true "Pack result under packResult or pack_result"
// @Success 200 {object} domain.IngestSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /add-cards-to-binder [post]
func (h *BinderHandler) HandleAddCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var body AddCardsRequest
	if err := DecodeAndValidateRequest(r, w, &body, "Add cards"); err != nil {
		return
	}

	req, err := body.Normalize()
	if err != nil {
		var missing errMissingPackResult
		if errors.As(err, &missing) {
			respondError(w, http.StatusBadRequest, ErrMsgMissingPackResult)
			return
		}
		respondServiceError(w, r, "Add cards", ErrMsgAddCardsFailed, err)
		return
	}
	LogRequestFields(log, LogFieldSetID, req.SetID, LogFieldSlots, len(req.Slots), LogFieldIgnored, req.IgnoredSlots)

	summary, err := h.service.AddCards(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, "Add cards", ErrMsgAddCardsFailed, err)
		return
	}

	log.Info(LogMsgCardsAdded, LogFieldSetID, summary.SetID, LogFieldWritten, summary.CardsWritten)
	respondJSON(w, http.StatusOK, summary)
}

// HandleCollectionProgress reports completion of one set
// @Summary Collection progress
// @Tags binder
// @Produce json
// @Param setId query string true "Set id (set_id also accepted)"
// @Success 200 {object} domain.CollectionProgress
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collection-progress [get]
func (h *BinderHandler) HandleCollectionProgress(w http.ResponseWriter, r *http.Request) {
	setID, ok := GetQueryParamAny(r, w, ErrMsgMissingSetIDQuery, QueryParamSetID, QueryParamSetIDSnake)
	if !ok {
		return
	}

	progress, err := h.service.CollectionProgress(r.Context(), setID)
	if err != nil {
		respondServiceError(w, r, "Collection progress", ErrMsgGenericServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, progress)
}

// HandleGlobalProgress reports completion across every set
// @Summary Global progress
// @Tags binder
// @Produce json
// @Success 200 {object} domain.GlobalProgress
// @Router /global-progress [get]
func (h *BinderHandler) HandleGlobalProgress(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.GlobalProgress(r.Context()))
}

// HandleUnlockedSets lists unlocked sets in progression order
// @Summary Unlocked sets
// @Tags binder
// @Produce json
// @Success 200 {array} string
// @Router /unlocked-sets [get]
func (h *BinderHandler) HandleUnlockedSets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.UnlockedSets(r.Context()))
}

// HandleBinderState returns a copy of the whole binder
// @Summary Binder state
// @Tags binder
// @Produce json
// @Success 200 {object} domain.BinderState
// @Router /binder-state [get]
func (h *BinderHandler) HandleBinderState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.State(r.Context()))
}
