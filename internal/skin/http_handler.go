package skin

import (
	"net/http"

	"bookduck/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	service *Service
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPHandler{service: service, log: log}
}

// List handles GET /v1/skins
// @Summary List all skins
// @Tags skins
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/skins [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	skins, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, skins, nil)
}

// Equipped handles GET /v1/skins/equipped
// @Summary Get the caller's equipped skin or the default
// @Tags skins
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/skins/equipped [get]
func (h *HTTPHandler) Equipped(w http.ResponseWriter, r *http.Request) {
	eq, err := h.service.GetEquippedSkinOrDefault(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, eq, nil)
}
