package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/asconalumni/alumni-server/internal/api/http/handler"
	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// TokenVerifier decodes session tokens into claims.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (model.Claims, error)
}

// Authenticate validates the auth-token header and injects claims into the
// request context. Role checks are separate and always run after it.
type Authenticate struct {
	tokenVerifier  TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenVerifier TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenVerifier: tokenVerifier, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid session token.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimSpace(r.Header.Get(model.TokenHeader))
		if tokenString == "" {
			handler.WriteError(w, model.ErrUnauthenticated)
			return
		}

		claims, err := m.tokenVerifier.VerifyToken(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			if kind := model.KindOf(err); kind != model.KindTokenExpired && kind != model.KindInvalidToken {
				err = model.ErrInvalidToken
			}
			handler.WriteError(w, err)
			return
		}

		ctx := m.contextManager.SetClaimsToContext(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize checks the role carried by authenticated claims.
type Authorize struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthorize creates a new Authorize middleware instance.
func NewAuthorize(contextManager model.ContextManager, logger *logger.Logger) *Authorize {
	return &Authorize{contextManager: contextManager, logger: logger}
}

// RequireAdmin admits admins with or without edit rights.
func (m *Authorize) RequireAdmin(next http.Handler) http.Handler {
	return m.require(next, func(role model.Role) error {
		if !role.IsAdmin() {
			return model.ErrNotAdmin
		}
		return nil
	})
}

// RequireEditor admits admins with edit rights only.
func (m *Authorize) RequireEditor(next http.Handler) http.Handler {
	return m.require(next, func(role model.Role) error {
		switch {
		case !role.IsAdmin():
			return model.ErrNotAdmin
		case !role.CanEdit():
			return model.ErrViewOnly
		}
		return nil
	})
}

// require resolves the claims to a Role so that an edit flag without admin
// access never counts as edit rights.
func (m *Authorize) require(next http.Handler, check func(model.Role) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.contextManager.GetClaimsFromContext(r.Context())
		if !ok {
			handler.WriteError(w, model.ErrUnauthenticated)
			return
		}
		if err := check(claims.Role()); err != nil {
			m.logger.Info("Authorize middleware: access denied",
				"account_id", claims.AccountID,
				"path", r.URL.Path,
				"error", err.Error())
			handler.WriteError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
