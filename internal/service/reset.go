package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/mail"
	"github.com/asconalumni/alumni-server/internal/model"
)

// resetTokenBytes is the entropy of a reset token before hex encoding.
const resetTokenBytes = 32

// Reset runs the out-of-band password reset flow.
type Reset struct {
	accountStore model.AccountStore
	hasher       model.PasswordHasher
	mailer       model.MailSender
	ttl          time.Duration
	linkURL      string
	logger       *logger.Logger
	now          func() time.Time
	random       io.Reader
}

// NewReset creates the reset flow. Links are built as linkURL?token=<token>.
func NewReset(
	accountStore model.AccountStore,
	hasher model.PasswordHasher,
	mailer model.MailSender,
	ttl time.Duration,
	linkURL string,
	logger *logger.Logger,
) *Reset {
	return &Reset{
		accountStore: accountStore,
		hasher:       hasher,
		mailer:       mailer,
		ttl:          ttl,
		linkURL:      linkURL,
		logger:       logger,
		now:          time.Now,
		random:       rand.Reader,
	}
}

// RequestReset stores a fresh reset token for the account and mails the link.
// Unknown emails are reported as not found. A new request replaces any
// outstanding token.
func (r *Reset) RequestReset(ctx context.Context, email string) error {
	email = model.NormalizeEmail(email)
	if err := model.ValidateEmail(email); err != nil {
		return err
	}

	account, err := r.accountStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		r.logger.Info("Reset service: reset requested for unknown email",
			"email", email)
		return model.ErrAccountNotFound
	}
	if err != nil {
		r.logger.Error("Reset service: failed to look up account",
			"email", email,
			"error", err.Error())
		return model.NewUpstreamError("failed to look up account", err)
	}

	token, err := newResetToken(r.random)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := r.now().Add(r.ttl)
	if err := r.accountStore.SetResetToken(ctx, account.ID, hashResetToken(token), expiresAt); err != nil {
		r.logger.Error("Reset service: failed to store reset token",
			"account_id", account.ID,
			"error", err.Error())
		return model.NewUpstreamError("failed to store reset token", err)
	}

	link, err := r.resetLink(token)
	if err != nil {
		return err
	}

	msg, err := mail.ResetMessage(account.Email, account.FullName, link, r.ttl)
	if err != nil {
		return err
	}

	if err := r.mailer.Send(ctx, msg); err != nil {
		r.logger.Error("Reset service: failed to deliver reset mail",
			"account_id", account.ID,
			"error", err.Error())
		return model.NewUpstreamError("failed to deliver reset mail", err)
	}

	r.logger.Info("Reset service: reset link sent",
		"account_id", account.ID,
		"expires_at", expiresAt)
	return nil
}

// PerformReset replaces the password of the account holding token. The token
// is consumed by the same store update, so it works at most once.
func (r *Reset) PerformReset(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.NewValidationError("token is required")
	}
	if err := model.ValidatePassword(newPassword); err != nil {
		return err
	}
	if !wellFormedResetToken(token) {
		return model.ErrResetTokenInvalid
	}

	passwordHash, err := r.hasher.Hash(newPassword)
	if err != nil {
		r.logger.Error("Reset service: failed to hash password",
			"error", err.Error())
		return fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := r.accountStore.ConsumeResetToken(ctx, hashResetToken(token), passwordHash, r.now())
	if errors.Is(err, model.ErrNotFound) {
		r.logger.Info("Reset service: reset token rejected")
		return model.ErrResetTokenInvalid
	}
	if err != nil {
		r.logger.Error("Reset service: failed to consume reset token",
			"error", err.Error())
		return model.NewUpstreamError("failed to reset password", err)
	}

	r.logger.Info("Reset service: password reset",
		"account_id", id)
	return nil
}

func (r *Reset) resetLink(token string) (string, error) {
	u, err := url.Parse(r.linkURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse reset link url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func newResetToken(random io.Reader) (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// hashResetToken returns the digest persisted in place of the token.
func hashResetToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

func wellFormedResetToken(token string) bool {
	if len(token) != 2*resetTokenBytes {
		return false
	}
	_, err := hex.DecodeString(token)
	return err == nil
}
