package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// Approver verifies pending accounts.
type Approver interface {
	Approve(ctx context.Context, id uuid.UUID) (model.AccountSummary, error)
}

// Admin backs the admin console. Callers are expected to have passed the
// matching authorization check already.
type Admin struct {
	accountStore model.AccountStore
	approver     Approver
	logger       *logger.Logger
}

func NewAdmin(accountStore model.AccountStore, approver Approver, logger *logger.Logger) *Admin {
	return &Admin{
		accountStore: accountStore,
		approver:     approver,
		logger:       logger,
	}
}

func (s *Admin) ListAccounts(ctx context.Context) ([]model.AccountSummary, error) {
	return s.list(ctx, model.AccountFilter{})
}

func (s *Admin) ListPending(ctx context.Context) ([]model.AccountSummary, error) {
	return s.list(ctx, model.AccountFilter{OnlyPending: true})
}

func (s *Admin) list(ctx context.Context, filter model.AccountFilter) ([]model.AccountSummary, error) {
	accounts, err := s.accountStore.List(ctx, filter)
	if err != nil {
		s.logger.Error("Admin service: failed to list accounts",
			"pending_only", filter.OnlyPending,
			"error", err.Error())
		return nil, model.NewUpstreamError("failed to list accounts", err)
	}
	return summaries(accounts), nil
}

func (s *Admin) Approve(ctx context.Context, id uuid.UUID) (model.AccountSummary, error) {
	return s.approver.Approve(ctx, id)
}

// ToggleAdmin grants or revokes admin access. Revoking also removes edit rights.
func (s *Admin) ToggleAdmin(ctx context.Context, actor, target uuid.UUID) (model.AccountSummary, error) {
	if actor == target {
		return model.AccountSummary{}, model.NewValidationError("you cannot change your own roles")
	}

	account, err := s.accountStore.ToggleAdmin(ctx, target)
	if errors.Is(err, model.ErrNotFound) {
		return model.AccountSummary{}, model.ErrAccountNotFound
	}
	if err != nil {
		s.logger.Error("Admin service: failed to toggle admin",
			"account_id", target,
			"error", err.Error())
		return model.AccountSummary{}, model.NewUpstreamError("failed to toggle admin", err)
	}

	s.logger.Info("Admin service: admin access toggled",
		"actor_id", actor,
		"account_id", target,
		"role", string(account.Role))
	return account.Summary(), nil
}

// ToggleEdit grants or revokes edit rights of an admin.
func (s *Admin) ToggleEdit(ctx context.Context, actor, target uuid.UUID) (model.AccountSummary, error) {
	if actor == target {
		return model.AccountSummary{}, model.NewValidationError("you cannot change your own roles")
	}

	account, err := s.accountStore.ToggleEdit(ctx, target)
	if errors.Is(err, model.ErrNotFound) {
		return model.AccountSummary{}, s.explainToggleEditMiss(ctx, target)
	}
	if err != nil {
		s.logger.Error("Admin service: failed to toggle edit",
			"account_id", target,
			"error", err.Error())
		return model.AccountSummary{}, model.NewUpstreamError("failed to toggle edit rights", err)
	}

	s.logger.Info("Admin service: edit rights toggled",
		"actor_id", actor,
		"account_id", target,
		"role", string(account.Role))
	return account.Summary(), nil
}

// explainToggleEditMiss tells a missing account apart from a non-admin one.
func (s *Admin) explainToggleEditMiss(ctx context.Context, id uuid.UUID) error {
	_, err := s.accountStore.GetByID(ctx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.ErrAccountNotFound
	case err != nil:
		return model.NewUpstreamError("failed to look up account", err)
	default:
		return model.NewValidationError("account must be an admin before it can receive edit rights")
	}
}

func (s *Admin) DeleteAccount(ctx context.Context, actor, target uuid.UUID) error {
	if actor == target {
		return model.NewValidationError("you cannot delete your own account")
	}

	err := s.accountStore.Delete(ctx, target)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrAccountNotFound
	}
	if err != nil {
		s.logger.Error("Admin service: failed to delete account",
			"account_id", target,
			"error", err.Error())
		return model.NewUpstreamError("failed to delete account", err)
	}

	s.logger.Info("Admin service: account deleted",
		"actor_id", actor,
		"account_id", target)
	return nil
}

func summaries(accounts []model.Account) []model.AccountSummary {
	out := make([]model.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Summary())
	}
	return out
}
