package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountStore defines persistence operations for accounts.
//
// Every mutating method is a single statement on the store side, so concurrent
// requests never observe a half-applied update.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
	List(ctx context.Context, filter AccountFilter) ([]Account, error)
	Search(ctx context.Context, query DirectoryQuery) ([]Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (Account, error)
	MarkVerified(ctx context.Context, id uuid.UUID) (Account, error)
	ToggleAdmin(ctx context.Context, id uuid.UUID) (Account, error)
	ToggleEdit(ctx context.Context, id uuid.UUID) (Account, error)
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, tokenHash string, passwordHash string, now time.Time) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Account is a persisted alumni or admin identity.
type Account struct {
	ID                  uuid.UUID
	Email               string
	PasswordHash        string
	Role                Role
	IsVerified          bool
	FullName            string
	YearOfAttendance    int
	ProgrammeTitle      string
	CustomProgramme     string
	PhoneNumber         string
	Bio                 string
	JobTitle            string
	Organization        string
	LinkedIn            string
	ProfilePicture      string
	ResetTokenHash      string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Summary returns the client-safe view of the account.
func (a Account) Summary() AccountSummary {
	return AccountSummary{
		ID:               a.ID,
		Email:            a.Email,
		FullName:         a.FullName,
		IsAdmin:          a.Role.IsAdmin(),
		CanEdit:          a.Role.CanEdit(),
		IsVerified:       a.IsVerified,
		YearOfAttendance: a.YearOfAttendance,
		ProgrammeTitle:   a.ProgrammeTitle,
		CustomProgramme:  a.CustomProgramme,
		PhoneNumber:      a.PhoneNumber,
		Bio:              a.Bio,
		JobTitle:         a.JobTitle,
		Organization:     a.Organization,
		LinkedIn:         a.LinkedIn,
		ProfilePicture:   a.ProfilePicture,
		CreatedAt:        a.CreatedAt,
	}
}

// AccountSummary is an account without any secret material. It is the only
// account shape handed to clients.
type AccountSummary struct {
	ID               uuid.UUID
	Email            string
	FullName         string
	IsAdmin          bool
	CanEdit          bool
	IsVerified       bool
	YearOfAttendance int
	ProgrammeTitle   string
	CustomProgramme  string
	PhoneNumber      string
	Bio              string
	JobTitle         string
	Organization     string
	LinkedIn         string
	ProfilePicture   string
	CreatedAt        time.Time
}

// AccountFilter narrows List results.
type AccountFilter struct {
	// OnlyPending returns accounts still waiting for approval.
	OnlyPending bool
}

// ProfileUpdate holds the fields an account owner may change. Nil pointers
// leave the stored value untouched.
type ProfileUpdate struct {
	FullName         *string
	Bio              *string
	JobTitle         *string
	Organization     *string
	LinkedIn         *string
	PhoneNumber      *string
	YearOfAttendance *int
	ProgrammeTitle   *string
	CustomProgramme  *string
	ProfilePicture   *string
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.FullName == nil && u.Bio == nil && u.JobTitle == nil && u.Organization == nil &&
		u.LinkedIn == nil && u.PhoneNumber == nil && u.YearOfAttendance == nil &&
		u.ProgrammeTitle == nil && u.CustomProgramme == nil && u.ProfilePicture == nil
}

// DirectoryLimit caps the number of alumni returned by a single search.
const DirectoryLimit = 50

// DirectoryQuery describes a directory search over verified accounts.
type DirectoryQuery struct {
	Term  string
	Year  *int
	Limit int
}

// NormalizeEmail returns the lookup form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
