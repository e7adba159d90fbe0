package handler

import (
	"net/http"

	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/pack"
)

// PackHandler handles pack opening endpoints
type PackHandler struct {
	service pack.Service
}

// NewPackHandler creates a new pack handler
func NewPackHandler(service pack.Service) *PackHandler {
	return &PackHandler{service: service}
}

// HandleOpenPack opens one booster pack
// @Summary Open pack
// @Description Draw a 10-card pack from a set. Cards already in the binder are tagged as duplicates.
// @Tags packs
// @Accept json
// @Produce json
// @Param request body OpenPackRequest true "Set id, optional config and seed"
// @Success 200 {object} domain.PackResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /open-pack [post]
func (h *PackHandler) HandleOpenPack(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req OpenPackRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open pack"); err != nil {
		return
	}

	setID := req.SetID()
	if setID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingSetID)
		return
	}
	LogRequestFields(log, LogFieldSetID, setID, "has_config", len(req.Config) > 0, "has_seed", req.Seed != nil)

	open := pack.OpenRequest{SetID: setID, Seed: req.Seed}
	if len(req.Config) > 0 {
		cfg, err := pack.ParseConfig(req.Config)
		if err != nil {
			respondServiceError(w, r, "Open pack", ErrMsgOpenPackFailed, err)
			return
		}
		open.Config = &cfg
	}

	result, err := h.service.OpenPack(r.Context(), open)
	if err != nil {
		respondServiceError(w, r, "Open pack", ErrMsgOpenPackFailed, err)
		return
	}

	log.Info(LogMsgPackOpened, LogFieldSetID, setID, LogFieldTotalCards, result.Summary.TotalCards)
	respondJSON(w, http.StatusOK, result)
}
