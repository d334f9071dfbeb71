package handler

import (
	"context"
	"net/http"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// AuthService defines registration and login operations.
type AuthService interface {
	Register(ctx context.Context, in model.RegisterInput) (model.RegisterResult, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
	FederatedLogin(ctx context.Context, providerToken string) (model.FederatedLoginResult, error)
}

// ResetService defines the password reset operations.
type ResetService interface {
	RequestReset(ctx context.Context, email string) error
	PerformReset(ctx context.Context, token, newPassword string) error
}

// AuthRecorder counts authentication outcomes.
type AuthRecorder interface {
	RecordAuth(flow, outcome string)
}

// Auth handles the public authentication endpoints.
type Auth struct {
	authService  AuthService
	resetService ResetService
	recorder     AuthRecorder
	logger       *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, resetService ResetService, recorder AuthRecorder, logger *logger.Logger) *Auth {
	return &Auth{
		authService:  authService,
		resetService: resetService,
		recorder:     recorder,
		logger:       logger,
	}
}

// Register creates an account. New accounts wait for approval unless the
// server verifies them on creation, in which case a session is returned too.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(h.logger, w, "Auth handler: invalid registration request", err)
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	result, err := h.authService.Register(r.Context(), model.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		FullName:         req.FullName,
		YearOfAttendance: req.YearOfAttendance,
		ProgrammeTitle:   req.ProgrammeTitle,
		CustomProgramme:  req.CustomProgramme,
		PhoneNumber:      req.PhoneNumber,
	})
	h.record("register", err)
	if err != nil {
		fail(h.logger, w, "Auth handler: registration failed", err, "email", req.Email)
		return
	}

	resp := registerResponse{
		Message: "Registration successful. Please wait for admin approval.",
		UserID:  result.AccountID,
	}
	if result.Session != nil {
		user := toUserResponse(result.Session.Account)
		resp.Message = "Registration successful."
		resp.Token = result.Session.Token
		resp.ExpiresAt = &result.Session.ExpiresAt
		resp.User = &user
		w.Header().Set(model.TokenHeader, result.Session.Token)
	}

	h.logger.Info("Auth handler: registration completed",
		"account_id", result.AccountID)
	writeJSON(w, http.StatusCreated, resp)
}

// Login exchanges email and password for a session token. The token is
// returned in the body and echoed in the auth-token header.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(h.logger, w, "Auth handler: invalid login request", err)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	h.record("login", err)
	if err != nil {
		fail(h.logger, w, "Auth handler: login failed", err, "email", req.Email)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"account_id", session.Account.ID)
	w.Header().Set(model.TokenHeader, session.Token)
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// OAuth signs in with an identity provider token. Unknown identities get
// registration prefill data instead of a session.
func (h *Auth) OAuth(w http.ResponseWriter, r *http.Request) {
	var req oauthRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(h.logger, w, "Auth handler: invalid oauth request", err)
		return
	}

	result, err := h.authService.FederatedLogin(r.Context(), req.ProviderToken)
	h.record("oauth", err)
	if err != nil {
		fail(h.logger, w, "Auth handler: federated login failed", err)
		return
	}

	if result.Session == nil {
		resp := oauthResponse{Registered: false}
		if result.Prefill != nil {
			resp.Prefill = &prefillResponse{
				Name:       result.Prefill.Name,
				Email:      result.Prefill.Email,
				PictureURL: result.Prefill.PictureURL,
			}
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	user := toUserResponse(result.Session.Account)
	w.Header().Set(model.TokenHeader, result.Session.Token)
	writeJSON(w, http.StatusOK, oauthResponse{
		Registered: true,
		Token:      result.Session.Token,
		ExpiresAt:  &result.Session.ExpiresAt,
		User:       &user,
	})
}

// ForgotPassword mails a reset link to a registered address.
func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(h.logger, w, "Auth handler: invalid forgot-password request", err)
		return
	}

	if err := h.resetService.RequestReset(r.Context(), req.Email); err != nil {
		fail(h.logger, w, "Auth handler: reset request failed", err, "email", req.Email)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "A password reset link has been sent to your email."})
}

// ResetPassword sets a new password using a mailed reset token.
func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(h.logger, w, "Auth handler: invalid reset-password request", err)
		return
	}

	err := h.resetService.PerformReset(r.Context(), req.Token, req.NewPassword)
	h.record("reset", err)
	if err != nil {
		fail(h.logger, w, "Auth handler: password reset failed", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Password updated successfully! Please login."})
}

func (h *Auth) record(flow string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(model.KindOf(err))
	}
	h.recorder.RecordAuth(flow, outcome)
}
