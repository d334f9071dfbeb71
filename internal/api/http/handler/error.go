package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

type errorResponse struct {
	Error   model.Kind            `json:"error"`
	Reason  model.ForbiddenReason `json:"reason,omitempty"`
	Message string                `json:"message"`
}

// StatusFor maps an error kind to its HTTP status code.
func StatusFor(kind model.Kind) int {
	switch kind {
	case model.KindDuplicateAccount, model.KindConflict:
		return http.StatusConflict
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindInvalidCredential, model.KindUnauthenticated, model.KindInvalidToken, model.KindTokenExpired:
		return http.StatusUnauthorized
	case model.KindPendingApproval, model.KindForbidden:
		return http.StatusForbidden
	case model.KindValidation, model.KindResetTokenInvalid:
		return http.StatusBadRequest
	case model.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON error body. Unclassified errors never
// expose their text.
func WriteError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: model.KindInternal, Message: "internal server error"}

	var e *model.Error
	if errors.As(err, &e) && e.Kind != model.KindInternal {
		resp = errorResponse{Error: e.Kind, Reason: e.Reason, Message: e.Message}
	}

	writeJSON(w, StatusFor(resp.Error), resp)
}

// fail logs err and writes it. Server-side failures are logged as errors,
// client mistakes at info level.
func fail(log *logger.Logger, w http.ResponseWriter, event string, err error, args ...any) {
	args = append(args, "error", err.Error())
	if StatusFor(model.KindOf(err)) >= http.StatusInternalServerError {
		log.Error(event, args...)
	} else {
		log.Info(event, args...)
	}
	WriteError(w, err)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSON reads a single JSON object into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewValidationError("request body is required")
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.NewValidationError("request body exceeds %d bytes", tooLarge.Limit)
		}
		return model.NewValidationError("invalid request body: %v", err)
	}
	if dec.More() {
		return model.NewValidationError("request body must contain a single JSON object")
	}
	return nil
}
