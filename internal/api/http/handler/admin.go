package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// AdminService defines the admin console operations.
type AdminService interface {
	ListAccounts(ctx context.Context) ([]model.AccountSummary, error)
	ListPending(ctx context.Context) ([]model.AccountSummary, error)
	Approve(ctx context.Context, id uuid.UUID) (model.AccountSummary, error)
	ToggleAdmin(ctx context.Context, actor, target uuid.UUID) (model.AccountSummary, error)
	ToggleEdit(ctx context.Context, actor, target uuid.UUID) (model.AccountSummary, error)
	DeleteAccount(ctx context.Context, actor, target uuid.UUID) error
}

// Admin handles the admin console endpoints. Role checks happen in the
// router's middleware before these methods run.
type Admin struct {
	adminService   AdminService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAdmin creates a new Admin handler.
func NewAdmin(adminService AdminService, contextManager model.ContextManager, logger *logger.Logger) *Admin {
	return &Admin{
		adminService:   adminService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Admin) ListUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.adminService.ListAccounts(r.Context())
	if err != nil {
		fail(h.logger, w, "Admin handler: failed to list accounts", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(accounts))
}

func (h *Admin) ListPending(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.adminService.ListPending(r.Context())
	if err != nil {
		fail(h.logger, w, "Admin handler: failed to list pending accounts", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(accounts))
}

func (h *Admin) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	summary, err := h.adminService.Approve(r.Context(), id)
	if err != nil {
		fail(h.logger, w, "Admin handler: failed to verify account", err, "account_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(summary))
}

func (h *Admin) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "admin", h.adminService.ToggleAdmin)
}

func (h *Admin) ToggleEdit(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "edit", h.adminService.ToggleEdit)
}

func (h *Admin) toggle(
	w http.ResponseWriter,
	r *http.Request,
	what string,
	fn func(ctx context.Context, actor, target uuid.UUID) (model.AccountSummary, error),
) {
	actor, target, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	summary, err := fn(r.Context(), actor, target)
	if err != nil {
		fail(h.logger, w, "Admin handler: toggle failed", err,
			"toggle", what,
			"actor_id", actor,
			"account_id", target)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(summary))
}

func (h *Admin) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, target, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	if err := h.adminService.DeleteAccount(r.Context(), actor, target); err != nil {
		fail(h.logger, w, "Admin handler: failed to delete account", err,
			"actor_id", actor,
			"account_id", target)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "User deleted"})
}

func (h *Admin) actorAndTarget(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return uuid.Nil, uuid.Nil, false
	}
	target, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return uuid.Nil, uuid.Nil, false
	}
	return claims.AccountID, target, true
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uuid.UUID, error) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewValidationError("invalid id %q", raw)
	}
	return id, nil
}
