package bookinfo

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

// Search handles GET /v1/books/search?keyword=&page=&size=
// @Summary Search books at the provider
// @Tags books
// @Produce json
// @Security Bearer
// @Param keyword query string true "Search keyword"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Items per page" default(10)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(query.Get("size"))
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	items, err := h.service.SearchBookList(r.Context(), query.Get("keyword"), page, size)
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}

	httpx.JSONSuccess(w, r, items, map[string]any{
		"page": page,
		"size": size,
	})
}

// GetAPIBook handles GET /v1/volumes/{providerId}
// @Summary Get basic provider details of a volume
// @Tags books
// @Produce json
// @Security Bearer
// @Param providerId path string true "Provider volume ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/volumes/{providerId} [get]
func (h *HTTPHandler) GetAPIBook(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.GetAPIBookBasic(r.Context(), r.PathValue("providerId"))
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, detail, nil)
}

// Save handles POST /v1/books
// @Summary Save a provider book to the catalog
// @Description Returns the existing book when the provider id is already saved
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SaveRequest true "Book to save"
// @Success 200 {object} httpx.SuccessResponse
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books [post]
func (h *HTTPHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}

	b, err := h.service.SaveAPIBookInfo(r.Context(), req)
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONCreated(w, r, b)
}

// Get handles GET /v1/books/{id}
// @Summary Get a saved book
// @Tags books
// @Produce json
// @Security Bearer
// @Param id path string true "BookInfo ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Delete handles DELETE /v1/books/{id}
// @Summary Delete a saved book
// @Description Also removes the caller's library entries and excerpts of it. Refused while other users still reference the book.
// @Tags books
// @Security Bearer
// @Param id path string true "BookInfo ID"
// @Success 204
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), httpx.UserIDFrom(r), r.PathValue("id")); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONNoContent(w)
}
