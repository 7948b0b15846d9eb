package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookduck/internal/apperr"
	"bookduck/internal/validation"

	"go.uber.org/zap"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Meta    any  `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    any               `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func buildMeta(r *http.Request, customMeta map[string]any) map[string]any {
	requestID := RequestIDFrom(r)
	if requestID == "" && len(customMeta) == 0 {
		return nil
	}
	meta := make(map[string]any, len(customMeta)+1)
	for k, v := range customMeta {
		meta[k] = v
	}
	if requestID != "" {
		meta["request_id"] = requestID
	}
	return meta
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func JSONSuccess(w http.ResponseWriter, r *http.Request, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data, Meta: buildMeta(r, meta)})
}

func JSONCreated(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, http.StatusCreated, SuccessResponse{Success: true, Data: data, Meta: buildMeta(r, nil)})
}

func JSONNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSONError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	writeJSON(w, status, ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: buildMeta(r, nil),
	})
}

// Error writes err as a JSON error. Domain errors keep their code and message;
// anything else is logged and reported as an internal error.
func Error(w http.ResponseWriter, r *http.Request, err error, log *zap.Logger) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status := appErr.Code.HTTPStatus()
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.Error(err),
				zap.String("code", string(appErr.Code)),
				zap.String("path", r.URL.Path),
				zap.String("request_id", RequestIDFrom(r)),
			)
		}
		JSONError(w, r, status, string(appErr.Code), appErr.Message, appErr.Details)
		return
	}

	log.Error("unhandled error",
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFrom(r)),
	)
	JSONError(w, r, http.StatusInternalServerError, string(apperr.CodeInternal), "Internal server error", nil)
}

// DecodeAndValidate decodes the JSON body into dst and runs struct validation.
func DecodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if errs := validation.Struct(dst); len(errs) > 0 {
		return apperr.ErrValidation.WithDetails(errs)
	}
	return nil
}
