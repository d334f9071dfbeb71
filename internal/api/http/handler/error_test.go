package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asconalumni/alumni-server/internal/model"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind model.Kind
		want int
	}{
		{model.KindDuplicateAccount, http.StatusConflict},
		{model.KindConflict, http.StatusConflict},
		{model.KindNotFound, http.StatusNotFound},
		{model.KindInvalidCredential, http.StatusUnauthorized},
		{model.KindUnauthenticated, http.StatusUnauthorized},
		{model.KindInvalidToken, http.StatusUnauthorized},
		{model.KindTokenExpired, http.StatusUnauthorized},
		{model.KindPendingApproval, http.StatusForbidden},
		{model.KindForbidden, http.StatusForbidden},
		{model.KindValidation, http.StatusBadRequest},
		{model.KindResetTokenInvalid, http.StatusBadRequest},
		{model.KindUpstream, http.StatusBadGateway},
		{model.KindInternal, http.StatusInternalServerError},
		{model.Kind("something_new"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.kind))
		})
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWriteError(t *testing.T) {
	t.Run("classified", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, model.ErrViewOnly)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		body := decodeError(t, rec)
		assert.Equal(t, model.KindForbidden, body.Error)
		assert.Equal(t, model.ReasonViewOnly, body.Reason)
		assert.Equal(t, "view-only, no edit rights", body.Message)
	})

	t.Run("upstream hides cause", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, model.NewUpstreamError("failed to create account", errors.New("pq: password=hunter2")))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hunter2")
	})

	t.Run("unclassified", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, errors.New("secret detail"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, model.KindInternal, body.Error)
		assert.Equal(t, "internal server error", body.Message)
	})
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"email":"a@x.com","password":"pw"}`},
		{name: "unknown field", body: `{"email":"a@x.com","isAdmin":true}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
		{name: "malformed", body: `{"email":`, wantErr: true},
		{name: "two objects", body: `{"email":"a"}{"email":"b"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst loginRequest
			err := decodeJSON(req, &dst)
			if tt.wantErr {
				assert.Equal(t, model.KindValidation, model.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
