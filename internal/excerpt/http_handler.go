package excerpt

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

// Create handles POST /v1/excerpts
// @Summary Create an excerpt
// @Tags excerpts
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateRequest true "Excerpt"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/excerpts [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}

	e, err := h.service.Create(r.Context(), httpx.UserIDFrom(r), req)
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONCreated(w, r, e)
}

// Get handles GET /v1/excerpts/{id}
// @Summary Get an excerpt
// @Tags excerpts
// @Produce json
// @Security Bearer
// @Param id path string true "Excerpt ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/excerpts/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.Get(r.Context(), httpx.UserIDFrom(r), r.PathValue("id"))
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, e, nil)
}

// ListByBook handles GET /v1/books/{id}/excerpts
// @Summary List the caller's excerpts of a book
// @Tags excerpts
// @Produce json
// @Security Bearer
// @Param id path string true "BookInfo ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{id}/excerpts [get]
func (h *HTTPHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListByBook(r.Context(), httpx.UserIDFrom(r), r.PathValue("id"))
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, list, map[string]any{"total": len(list)})
}

// Update handles PUT /v1/excerpts/{id}
// @Summary Update an excerpt
// @Tags excerpts
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Excerpt ID"
// @Param request body UpdateRequest true "New content and memo"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/excerpts/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}

	e, err := h.service.Update(r.Context(), httpx.UserIDFrom(r), r.PathValue("id"), req)
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, e, nil)
}

// Delete handles DELETE /v1/excerpts/{id}
// @Summary Delete an excerpt
// @Tags excerpts
// @Security Bearer
// @Param id path string true "Excerpt ID"
// @Success 204
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/excerpts/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), httpx.UserIDFrom(r), r.PathValue("id")); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONNoContent(w)
}
