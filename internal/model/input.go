package model

import (
	"io"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MinPasswordLength is the shortest password accepted at registration and reset.
	MinPasswordLength = 6
	// MaxPasswordLength is the longest password bcrypt can hash without truncation.
	MaxPasswordLength = 72
	// FirstIntakeYear is the earliest accepted year of attendance.
	FirstIntakeYear = 1973
)

// RegisterInput is the payload of a registration request.
type RegisterInput struct {
	Email            string
	Password         string
	FullName         string
	YearOfAttendance int
	ProgrammeTitle   string
	CustomProgramme  string
	PhoneNumber      string
}

// Validate checks required fields. It trims and normalizes the input in place.
func (in *RegisterInput) Validate(now time.Time) error {
	in.Email = NormalizeEmail(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	in.ProgrammeTitle = strings.TrimSpace(in.ProgrammeTitle)
	in.CustomProgramme = strings.TrimSpace(in.CustomProgramme)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)

	if err := ValidateEmail(in.Email); err != nil {
		return err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return err
	}
	if in.FullName == "" {
		return NewValidationError("fullName is required")
	}
	if err := ValidateYear(in.YearOfAttendance, now); err != nil {
		return err
	}
	if in.ProgrammeTitle == "" {
		return NewValidationError("programmeTitle is required")
	}
	return nil
}

// RegisterResult is the outcome of a registration. Session is set only when
// new accounts are verified on creation.
type RegisterResult struct {
	AccountID uuid.UUID
	Session   *Session
}

// ValidateEmail rejects empty or malformed addresses.
func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return NewValidationError("email %q is not a valid address", email)
	}
	return nil
}

// ValidatePassword enforces password length bounds.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return NewValidationError("password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return NewValidationError("password must be at most %d bytes", MaxPasswordLength)
	}
	return nil
}

// ValidateYear accepts years from the first intake up to the current year.
func ValidateYear(year int, now time.Time) error {
	if year < FirstIntakeYear || year > now.Year() {
		return NewValidationError("yearOfAttendance must be between %d and %d", FirstIntakeYear, now.Year())
	}
	return nil
}

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProfileInput is a profile change requested by the account owner.
type ProfileInput struct {
	Update  ProfileUpdate
	Picture *Upload
}

// EventInput is the payload for creating or replacing an event.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Type        string
}

// Validate trims the input and checks required fields.
func (in *EventInput) Validate() (EventType, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	if in.Title == "" {
		return "", NewValidationError("title is required")
	}
	if in.Description == "" {
		return "", NewValidationError("description is required")
	}
	if in.Date.IsZero() {
		return "", NewValidationError("date is required")
	}
	if in.Location == "" {
		return "", NewValidationError("location is required")
	}
	t, ok := ParseEventType(in.Type)
	if !ok {
		return "", NewValidationError("unknown event type %q", in.Type)
	}
	return t, nil
}

// ProgrammeInput is the payload for creating or replacing a programme.
type ProgrammeInput struct {
	Title       string
	Code        string
	Description string
}

// Validate trims the input, upper-cases the code and checks required fields.
func (in *ProgrammeInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if in.Title == "" {
		return NewValidationError("title is required")
	}
	return nil
}
