package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// Auth is the account gate: registration, password and federated login,
// approval and session token verification.
type Auth struct {
	accountStore model.AccountStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	identity     model.IdentityVerifier
	autoVerify   bool
	logger       *logger.Logger
	now          func() time.Time
}

// NewAuth creates the account gate. identity may be nil when federated login
// is disabled. autoVerify makes new accounts active immediately.
func NewAuth(
	accountStore model.AccountStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	identity model.IdentityVerifier,
	autoVerify bool,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accountStore: accountStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		identity:     identity,
		autoVerify:   autoVerify,
		logger:       logger,
		now:          time.Now,
	}
}

func (a *Auth) Register(ctx context.Context, in model.RegisterInput) (model.RegisterResult, error) {
	if err := in.Validate(a.now()); err != nil {
		return model.RegisterResult{}, err
	}

	a.logger.Debug("Auth service: starting registration",
		"email", in.Email)

	_, err := a.accountStore.GetByEmail(ctx, in.Email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", in.Email)
		return model.RegisterResult{}, model.ErrDuplicateAccount
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to look up account",
			"email", in.Email,
			"error", err.Error())
		return model.RegisterResult{}, model.NewUpstreamError("failed to look up account", err)
	}

	passwordHash, err := a.hasher.Hash(in.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", in.Email,
			"error", err.Error())
		return model.RegisterResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	account, err := a.accountStore.Create(ctx, model.Account{
		ID:               uuid.New(),
		Email:            in.Email,
		PasswordHash:     passwordHash,
		Role:             model.RoleMember,
		IsVerified:       a.autoVerify,
		FullName:         in.FullName,
		YearOfAttendance: in.YearOfAttendance,
		ProgrammeTitle:   in.ProgrammeTitle,
		CustomProgramme:  in.CustomProgramme,
		PhoneNumber:      in.PhoneNumber,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if errors.Is(err, model.ErrDuplicate) {
		a.logger.Info("Auth service: email registered concurrently",
			"email", in.Email)
		return model.RegisterResult{}, model.ErrDuplicateAccount
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create account",
			"email", in.Email,
			"error", err.Error())
		return model.RegisterResult{}, model.NewUpstreamError("failed to create account", err)
	}

	a.logger.Info("Auth service: account registered",
		"account_id", account.ID,
		"verified", account.IsVerified)

	result := model.RegisterResult{AccountID: account.ID}
	if !account.IsVerified {
		return result, nil
	}

	session, err := a.issueSession(account)
	if err != nil {
		return model.RegisterResult{}, err
	}
	result.Session = &session
	return result, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (model.Session, error) {
	email = model.NormalizeEmail(email)
	if email == "" || password == "" {
		return model.Session{}, model.NewValidationError("email and password are required")
	}

	account, err := a.accountStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", email)
		return model.Session{}, model.ErrAccountNotFound
	}
	if err != nil {
		a.logger.Error("Auth service: failed to look up account",
			"email", email,
			"error", err.Error())
		return model.Session{}, model.NewUpstreamError("failed to look up account", err)
	}

	if !a.hasher.Verify(password, account.PasswordHash) {
		a.logger.Info("Auth service: invalid password",
			"account_id", account.ID)
		return model.Session{}, model.ErrInvalidCredential
	}

	a.upgradeHash(ctx, account, password)

	return a.admit(account)
}

// upgradeHash rehashes a verified password stored under an outdated work
// factor. Failures are logged and never block the login.
func (a *Auth) upgradeHash(ctx context.Context, account model.Account, password string) {
	rehasher, ok := a.hasher.(model.Rehasher)
	if !ok || !rehasher.NeedsRehash(account.PasswordHash) {
		return
	}

	hash, err := a.hasher.Hash(password)
	if err == nil {
		err = a.accountStore.UpdatePassword(ctx, account.ID, hash)
	}
	if err != nil {
		a.logger.Warn("Auth service: failed to upgrade password hash",
			"account_id", account.ID,
			"error", err.Error())
		return
	}

	a.logger.Info("Auth service: password hash upgraded",
		"account_id", account.ID)
}

// FederatedLogin signs in the account matching the provider-verified email.
// When no account exists the verified identity is returned as registration
// prefill instead.
func (a *Auth) FederatedLogin(ctx context.Context, providerToken string) (model.FederatedLoginResult, error) {
	if a.identity == nil {
		return model.FederatedLoginResult{}, model.NewUpstreamError("federated login is not configured", nil)
	}

	identity, err := a.identity.Verify(ctx, providerToken)
	if err != nil {
		a.logger.Info("Auth service: provider token rejected",
			"error", err.Error())
		return model.FederatedLoginResult{}, err
	}

	account, err := a.accountStore.GetByEmail(ctx, identity.Email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: no account for federated identity",
			"email", identity.Email)
		return model.FederatedLoginResult{Prefill: &identity}, nil
	}
	if err != nil {
		a.logger.Error("Auth service: failed to look up account",
			"email", identity.Email,
			"error", err.Error())
		return model.FederatedLoginResult{}, model.NewUpstreamError("failed to look up account", err)
	}

	session, err := a.admit(account)
	if err != nil {
		return model.FederatedLoginResult{}, err
	}
	return model.FederatedLoginResult{Session: &session}, nil
}

// Approve marks an account verified. Approving a verified account is a no-op.
func (a *Auth) Approve(ctx context.Context, id uuid.UUID) (model.AccountSummary, error) {
	account, err := a.accountStore.MarkVerified(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.AccountSummary{}, model.ErrAccountNotFound
	}
	if err != nil {
		a.logger.Error("Auth service: failed to verify account",
			"account_id", id,
			"error", err.Error())
		return model.AccountSummary{}, model.NewUpstreamError("failed to verify account", err)
	}

	a.logger.Info("Auth service: account approved",
		"account_id", id)
	return account.Summary(), nil
}

// VerifyToken decodes a session token. It never touches the store.
func (a *Auth) VerifyToken(_ context.Context, token string) (model.Claims, error) {
	return a.tokenManager.Parse(token)
}

// admit applies the verification gate and issues a session.
func (a *Auth) admit(account model.Account) (model.Session, error) {
	if !account.IsVerified {
		a.logger.Info("Auth service: login blocked pending approval",
			"account_id", account.ID)
		return model.Session{}, model.ErrPendingApproval
	}

	session, err := a.issueSession(account)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: login succeeded",
		"account_id", account.ID,
		"role", string(account.Role))
	return session, nil
}

func (a *Auth) issueSession(account model.Account) (model.Session, error) {
	token, claims, err := a.tokenManager.Issue(model.ClaimsFor(account))
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"account_id", account.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	return model.Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		Account:   account.Summary(),
	}, nil
}
