package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the default lifetime of a session token.
const SessionTTL = time.Hour

// TokenHeader carries the session token on requests and on login responses.
const TokenHeader = "auth-token"

// Claims is the decoded payload of a session token.
type Claims struct {
	AccountID uuid.UUID
	IsAdmin   bool
	CanEdit   bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Role returns the role encoded by the claims.
func (c Claims) Role() Role {
	return RoleFromFlags(c.IsAdmin, c.CanEdit)
}

// ClaimsFor builds claims from the current state of an account.
func ClaimsFor(account Account) Claims {
	return Claims{
		AccountID: account.ID,
		IsAdmin:   account.Role.IsAdmin(),
		CanEdit:   account.Role.CanEdit(),
	}
}

// TokenManager issues and verifies signed session tokens. Tokens are not
// stored and cannot be revoked before they expire.
type TokenManager interface {
	Issue(claims Claims) (string, Claims, error)
	Parse(token string) (Claims, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// Rehasher is implemented by hashers whose work factor can be raised. Login
// upgrades stored hashes that fall below the current factor.
type Rehasher interface {
	NeedsRehash(hash string) bool
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Account   AccountSummary
}
