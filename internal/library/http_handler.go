package library

import (
	"net/http"
	"strconv"

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

// Add handles POST /v1/userbooks
// @Summary Add a book to the caller's library
// @Tags userbooks
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body AddRequest true "Book id or provider data"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/userbooks [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}

	ub, err := h.service.AddBook(r.Context(), httpx.UserIDFrom(r), req)
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONCreated(w, r, ub)
}

// List handles GET /v1/userbooks?status=&limit=&offset=
// @Summary List the caller's library
// @Tags userbooks
// @Produce json
// @Security Bearer
// @Param status query string false "Read status filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/userbooks [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset, _ := strconv.Atoi(query.Get("offset"))

	entries, total, err := h.service.List(r.Context(), httpx.UserIDFrom(r), query.Get("status"), limit, offset)
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}

	httpx.JSONSuccess(w, r, entries, map[string]any{
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// ChangeStatus handles PATCH /v1/userbooks/{id}/status
// @Summary Change the read status of a library entry
// @Tags userbooks
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "UserBook ID"
// @Param request body statusRequest true "New status"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/userbooks/{id}/status [patch]
func (h *HTTPHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}

	ub, err := h.service.ChangeReadStatus(r.Context(), httpx.UserIDFrom(r), r.PathValue("id"), req.ReadStatus)
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, ub, nil)
}

// Delete handles DELETE /v1/userbooks/{id}
// @Summary Remove a book from the caller's library
// @Tags userbooks
// @Security Bearer
// @Param id path string true "UserBook ID"
// @Success 204
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/userbooks/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), httpx.UserIDFrom(r), r.PathValue("id")); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONNoContent(w)
}
