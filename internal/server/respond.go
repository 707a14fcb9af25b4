package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/eventfile"
	"github.com/rshade/greenevent/internal/logging"
)

// Error codes of the error envelope.
const (
	codeInvalidRequest   = "invalid_request"
	codeValidation       = "validation_failed"
	codeDistribution     = "invalid_distribution"
	codeUnsupported      = "unsupported_schema"
	codeBodyTooLarge     = "body_too_large"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeInternal         = "internal_error"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// respondError maps err onto a status and code. Engine and document
// validation failures are 422; malformed bodies are 400.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error()}
	var status int

	var tooLarge *http.MaxBytesError
	var verr *engine.ValidationError
	switch {
	case errors.As(err, &tooLarge):
		status, resp.Code = http.StatusRequestEntityTooLarge, codeBodyTooLarge
	case errors.Is(err, engine.ErrDistribution):
		status, resp.Code = http.StatusUnprocessableEntity, codeDistribution
	case errors.Is(err, engine.ErrInvalidConfiguration):
		status, resp.Code = http.StatusUnprocessableEntity, codeValidation
	case errors.Is(err, eventfile.ErrUnsupportedSchema):
		status, resp.Code = http.StatusUnprocessableEntity, codeUnsupported
	case errors.Is(err, eventfile.ErrInvalidDocument):
		status, resp.Code = http.StatusBadRequest, codeInvalidRequest
	default:
		status, resp.Code = http.StatusInternalServerError, codeInternal
	}
	if errors.As(err, &verr) {
		resp.Field = verr.Field
	}

	logger := logging.FromContext(r.Context())
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Ctx(r.Context()).Err(err).Str("code", resp.Code).Msg("request failed")

	writeJSON(w, status, resp)
}
