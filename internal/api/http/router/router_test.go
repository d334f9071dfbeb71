package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpcontext "github.com/asconalumni/alumni-server/internal/api/http/context"
	"github.com/asconalumni/alumni-server/internal/metrics"
	"github.com/asconalumni/alumni-server/internal/mocks"
	"github.com/asconalumni/alumni-server/internal/model"
	"github.com/asconalumni/alumni-server/internal/testutil"
)

const (
	memberToken = "member-token"
	viewerToken = "viewer-token"
	editorToken = "editor-token"
)

type routerDeps struct {
	admin   *mocks.AdminService
	content *mocks.ContentService
	profile *mocks.ProfileService
}

func newTestRouter(t *testing.T) (http.Handler, routerDeps) {
	t.Helper()

	tokens := mocks.NewTokenVerifier(t)
	tokens.On("VerifyToken", mock.Anything, memberToken).Return(model.Claims{AccountID: uuid.New()}, nil).Maybe()
	tokens.On("VerifyToken", mock.Anything, viewerToken).Return(model.Claims{AccountID: uuid.New(), IsAdmin: true}, nil).Maybe()
	tokens.On("VerifyToken", mock.Anything, editorToken).Return(model.Claims{AccountID: uuid.New(), IsAdmin: true, CanEdit: true}, nil).Maybe()

	deps := routerDeps{
		admin:   mocks.NewAdminService(t),
		content: mocks.NewContentService(t),
		profile: mocks.NewProfileService(t),
	}

	r := New(
		Services{
			Auth:      mocks.NewAuthService(t),
			Reset:     mocks.NewResetService(t),
			Profile:   deps.profile,
			Directory: mocks.NewDirectoryService(t),
			Admin:     deps.admin,
			Content:   deps.content,
			Tokens:    tokens,
		},
		httpcontext.NewManager(),
		metrics.New(prometheus.NewRegistry()),
		Options{AllowedOrigins: []string{"*"}, MaxUploadBytes: 1 << 20, MaxBodyBytes: 1 << 10},
		testutil.MakeNoopLogger(),
	)
	return r.Register(), deps
}

func serve(h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(model.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Gates(t *testing.T) {
	t.Parallel()

	target := uuid.New()

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		setup      func(d routerDeps)
		wantStatus int
	}{
		{
			name:   "events listing is public",
			method: http.MethodGet,
			path:   "/api/events",
			setup: func(d routerDeps) {
				d.content.On("ListEvents", mock.Anything).Return([]model.Event{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "programmes listing is public",
			method: http.MethodGet,
			path:   "/api/programmes",
			setup: func(d routerDeps) {
				d.content.On("ListProgrammes", mock.Anything).Return([]model.Programme{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "profile needs a session",
			method:     http.MethodGet,
			path:       "/api/profile/me",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "member reads own profile",
			method: http.MethodGet,
			path:   "/api/profile/me",
			token:  memberToken,
			setup: func(d routerDeps) {
				d.profile.On("Me", mock.Anything, mock.Anything).Return(model.AccountSummary{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "event creation needs a session",
			method:     http.MethodPost,
			path:       "/api/events",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "member cannot list accounts",
			method:     http.MethodGet,
			path:       "/api/admin/users",
			token:      memberToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "view-only admin lists accounts",
			method: http.MethodGet,
			path:   "/api/admin/pending",
			token:  viewerToken,
			setup: func(d routerDeps) {
				d.admin.On("ListPending", mock.Anything).Return([]model.AccountSummary{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "view-only admin cannot approve",
			method:     http.MethodPut,
			path:       "/api/admin/verify/" + target.String(),
			token:      viewerToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "view-only admin cannot delete events",
			method:     http.MethodDelete,
			path:       "/api/events/" + uuid.NewString(),
			token:      viewerToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "editor toggles admin",
			method: http.MethodPut,
			path:   "/api/admin/users/" + target.String() + "/toggle-admin",
			token:  editorToken,
			setup: func(d routerDeps) {
				d.admin.On("ToggleAdmin", mock.Anything, mock.Anything, target).Return(model.AccountSummary{ID: target, IsAdmin: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "editor deletes account",
			method: http.MethodDelete,
			path:   "/api/admin/users/" + target.String(),
			token:  editorToken,
			setup: func(d routerDeps) {
				d.admin.On("DeleteAccount", mock.Anything, mock.Anything, target).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			path:       "/api/nowhere",
			token:      editorToken,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, deps := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(deps)
			}

			rec := serve(h, tt.method, tt.path, tt.token)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_Operational(t *testing.T) {
	t.Parallel()

	h, deps := newTestRouter(t)
	deps.content.On("ListEvents", mock.Anything).Return([]model.Event{}, nil)

	rec := serve(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	serve(h, http.MethodGet, "/api/events", "")

	rec = serve(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `alumni_http_requests_total{method="GET",route="/api/events",status="200"} 1`))
}

func TestRouter_OversizedBody(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t)

	body := `{"email":"a@b.c","password":"` + strings.Repeat("x", 4<<10) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got struct {
		Error model.Kind `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, model.KindValidation, got.Error)
}

func TestRouter_Preflight(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/admin/users/x/toggle-admin", nil)
	req.Header.Set("Origin", "https://alumni.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://alumni.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
