package friend

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

// SendRequest handles POST /v1/friends/requests
// @Summary Send a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body sendRequest true "Receiver"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/friends/requests [post]
func (h *HTTPHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}

	fr, err := h.service.SendFriendRequest(r.Context(), httpx.UserIDFrom(r), req.ReceiverID)
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONCreated(w, r, fr)
}

// Accept handles POST /v1/friends/requests/{id}/accept
// @Summary Accept a received friend request
// @Description Accepting twice is a no-op
// @Tags friends
// @Security Bearer
// @Param id path string true "FriendRequest ID"
// @Success 204
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/friends/requests/{id}/accept [post]
func (h *HTTPHandler) Accept(w http.ResponseWriter, r *http.Request) {
	if err := h.service.AcceptFriendRequest(r.Context(), httpx.UserIDFrom(r), r.PathValue("id")); err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONNoContent(w)
}

// ListSent handles GET /v1/friends/requests/sent
// @Summary List friend requests the caller sent
// @Tags friends
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/friends/requests/sent [get]
func (h *HTTPHandler) ListSent(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.ListSentRequests(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, units, nil)
}

// ListReceived handles GET /v1/friends/requests/received
// @Summary List friend requests the caller received
// @Tags friends
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/friends/requests/received [get]
func (h *HTTPHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.ListReceivedRequests(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, units, nil)
}

// List handles GET /v1/friends
// @Summary List the caller's friends with their skins
// @Tags friends
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/friends [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.GetFriendList(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err, h.log)
		return
	}
	httpx.JSONSuccess(w, r, units, map[string]any{"total": len(units)})
}
