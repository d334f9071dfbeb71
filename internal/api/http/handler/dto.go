package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/model"
)

type registerRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FullName         string `json:"fullName"`
	YearOfAttendance int    `json:"yearOfAttendance"`
	ProgrammeTitle   string `json:"programmeTitle"`
	CustomProgramme  string `json:"customProgramme"`
	PhoneNumber      string `json:"phoneNumber"`
}

type registerResponse struct {
	Message   string        `json:"message"`
	UserID    uuid.UUID     `json:"userId"`
	Token     string        `json:"token,omitempty"`
	ExpiresAt *time.Time    `json:"expiresAt,omitempty"`
	User      *userResponse `json:"user,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

type oauthRequest struct {
	ProviderToken string `json:"providerToken"`
}

type oauthResponse struct {
	Registered bool             `json:"registered"`
	Token      string           `json:"token,omitempty"`
	ExpiresAt  *time.Time       `json:"expiresAt,omitempty"`
	User       *userResponse    `json:"user,omitempty"`
	Prefill    *prefillResponse `json:"prefill,omitempty"`
}

type prefillResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	PictureURL string `json:"pictureUrl,omitempty"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// userResponse is the public account shape. It has no secret fields to leak.
type userResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"fullName"`
	IsAdmin          bool      `json:"isAdmin"`
	CanEdit          bool      `json:"canEdit"`
	IsVerified       bool      `json:"isVerified"`
	YearOfAttendance int       `json:"yearOfAttendance,omitempty"`
	ProgrammeTitle   string    `json:"programmeTitle,omitempty"`
	CustomProgramme  string    `json:"customProgramme,omitempty"`
	PhoneNumber      string    `json:"phoneNumber,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	JobTitle         string    `json:"jobTitle,omitempty"`
	Organization     string    `json:"organization,omitempty"`
	LinkedIn         string    `json:"linkedin,omitempty"`
	ProfilePicture   string    `json:"profilePicture,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toUserResponse(s model.AccountSummary) userResponse {
	return userResponse{
		ID:               s.ID,
		Email:            s.Email,
		FullName:         s.FullName,
		IsAdmin:          s.IsAdmin,
		CanEdit:          s.CanEdit,
		IsVerified:       s.IsVerified,
		YearOfAttendance: s.YearOfAttendance,
		ProgrammeTitle:   s.ProgrammeTitle,
		CustomProgramme:  s.CustomProgramme,
		PhoneNumber:      s.PhoneNumber,
		Bio:              s.Bio,
		JobTitle:         s.JobTitle,
		Organization:     s.Organization,
		LinkedIn:         s.LinkedIn,
		ProfilePicture:   s.ProfilePicture,
		CreatedAt:        s.CreatedAt,
	}
}

func toUserResponses(in []model.AccountSummary) []userResponse {
	out := make([]userResponse, 0, len(in))
	for _, s := range in {
		out = append(out, toUserResponse(s))
	}
	return out
}

func toSessionResponse(s model.Session) sessionResponse {
	return sessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      toUserResponse(s.Account),
	}
}

// profileUpdateRequest is the JSON form of a profile update. Absent fields
// stay unchanged.
type profileUpdateRequest struct {
	FullName         *string `json:"fullName"`
	Bio              *string `json:"bio"`
	JobTitle         *string `json:"jobTitle"`
	Organization     *string `json:"organization"`
	LinkedIn         *string `json:"linkedin"`
	PhoneNumber      *string `json:"phoneNumber"`
	YearOfAttendance *int    `json:"yearOfAttendance"`
	ProgrammeTitle   *string `json:"programmeTitle"`
	CustomProgramme  *string `json:"customProgramme"`
}

func (r profileUpdateRequest) toModel() model.ProfileUpdate {
	return model.ProfileUpdate{
		FullName:         r.FullName,
		Bio:              r.Bio,
		JobTitle:         r.JobTitle,
		Organization:     r.Organization,
		LinkedIn:         r.LinkedIn,
		PhoneNumber:      r.PhoneNumber,
		YearOfAttendance: r.YearOfAttendance,
		ProgrammeTitle:   r.ProgrammeTitle,
		CustomProgramme:  r.CustomProgramme,
	}
}

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
}

func (r eventRequest) toModel() model.EventInput {
	return model.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
		Type:        r.Type,
	}
}

type eventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toEventResponse(e model.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Type:        string(e.Type),
		CreatedAt:   e.CreatedAt,
	}
}

type programmeRequest struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (r programmeRequest) toModel() model.ProgrammeInput {
	return model.ProgrammeInput{Title: r.Title, Code: r.Code, Description: r.Description}
}

type programmeResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Code        string    `json:"code,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toProgrammeResponse(p model.Programme) programmeResponse {
	return programmeResponse{
		ID:          p.ID,
		Title:       p.Title,
		Code:        p.Code,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
