package model

import (
	"errors"
	"fmt"
)

// Repository-level sentinels. Stores wrap them, services translate them into
// typed errors.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Kind is a machine-checkable error category surfaced to clients.
type Kind string

const (
	KindInternal          Kind = "internal"
	KindDuplicateAccount  Kind = "duplicate_account"
	KindNotFound          Kind = "not_found"
	KindInvalidCredential Kind = "invalid_credential"
	KindPendingApproval   Kind = "pending_approval"
	KindUnauthenticated   Kind = "unauthenticated"
	KindForbidden         Kind = "forbidden"
	KindInvalidToken      Kind = "invalid_token"
	KindTokenExpired      Kind = "token_expired"
	KindResetTokenInvalid Kind = "reset_token_invalid"
	KindValidation        Kind = "validation_error"
	KindUpstream          Kind = "upstream_failure"
	KindConflict          Kind = "conflict"
)

// ForbiddenReason distinguishes the two Forbidden cases.
type ForbiddenReason string

const (
	ReasonNotAdmin ForbiddenReason = "not_admin"
	ReasonViewOnly ForbiddenReason = "view_only"
)

// Error is a classified error.
type Error struct {
	Kind    Kind
	Reason  ForbiddenReason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, model.ErrPendingApproval)
// works regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// Templates for errors.Is comparisons.
var (
	ErrDuplicateAccount  = &Error{Kind: KindDuplicateAccount, Message: "email already registered"}
	ErrAccountNotFound   = &Error{Kind: KindNotFound, Message: "account not found"}
	ErrInvalidCredential = &Error{Kind: KindInvalidCredential, Message: "invalid password"}
	ErrPendingApproval   = &Error{Kind: KindPendingApproval, Message: "account pending approval, please contact an admin"}
	ErrUnauthenticated   = &Error{Kind: KindUnauthenticated, Message: "access denied, no token provided"}
	ErrInvalidToken      = &Error{Kind: KindInvalidToken, Message: "invalid token"}
	ErrTokenExpired      = &Error{Kind: KindTokenExpired, Message: "token expired, please log in again"}
	ErrResetTokenInvalid = &Error{Kind: KindResetTokenInvalid, Message: "reset token is invalid or has expired"}
	ErrNotAdmin          = &Error{Kind: KindForbidden, Reason: ReasonNotAdmin, Message: "access denied, not an admin"}
	ErrViewOnly          = &Error{Kind: KindForbidden, Reason: ReasonViewOnly, Message: "view-only, no edit rights"}
)

// NewValidationError reports malformed or missing input.
func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError reports a missing resource by name.
func NewNotFoundError(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

// NewConflictError reports a uniqueness clash outside of accounts.
func NewConflictError(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NewUpstreamError wraps a failing store or collaborator call.
func NewUpstreamError(what string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: what, Err: err}
}

// KindOf classifies err. Unclassified errors are KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
