package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// pictureField is the multipart field holding a new profile picture.
const pictureField = "profilePicture"

// ProfileService defines the profile operations of the signed-in account.
type ProfileService interface {
	Me(ctx context.Context, id uuid.UUID) (model.AccountSummary, error)
	Update(ctx context.Context, id uuid.UUID, in model.ProfileInput) (model.AccountSummary, error)
}

// DirectoryService defines alumni directory search.
type DirectoryService interface {
	Search(ctx context.Context, term string) ([]model.AccountSummary, error)
}

// Profile handles the endpoints of signed-in alumni.
type Profile struct {
	profileService   ProfileService
	directoryService DirectoryService
	contextManager   model.ContextManager
	maxUploadBytes   int64
	logger           *logger.Logger
}

// NewProfile creates a new Profile handler. Request bodies of profile updates
// are capped at maxUploadBytes.
func NewProfile(
	profileService ProfileService,
	directoryService DirectoryService,
	contextManager model.ContextManager,
	maxUploadBytes int64,
	logger *logger.Logger,
) *Profile {
	return &Profile{
		profileService:   profileService,
		directoryService: directoryService,
		contextManager:   contextManager,
		maxUploadBytes:   maxUploadBytes,
		logger:           logger,
	}
}

func (h *Profile) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	summary, err := h.profileService.Me(r.Context(), claims.AccountID)
	if err != nil {
		fail(h.logger, w, "Profile handler: failed to load profile", err, "account_id", claims.AccountID)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(summary))
}

// Update changes the caller's profile. It accepts a multipart form with an
// optional profilePicture file, or a JSON object.
func (h *Profile) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	var (
		in  model.ProfileInput
		err error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req profileUpdateRequest
		err = decodeJSON(r, &req)
		in.Update = req.toModel()
	} else {
		in, err = h.parseMultipart(r)
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}
	if err != nil {
		fail(h.logger, w, "Profile handler: invalid update request", err, "account_id", claims.AccountID)
		return
	}
	if in.Picture != nil {
		if c, ok := in.Picture.Body.(io.Closer); ok {
			defer c.Close()
		}
	}

	summary, err := h.profileService.Update(r.Context(), claims.AccountID, in)
	if err != nil {
		fail(h.logger, w, "Profile handler: update failed", err, "account_id", claims.AccountID)
		return
	}

	h.logger.Info("Profile handler: profile updated",
		"account_id", claims.AccountID)
	writeJSON(w, http.StatusOK, toUserResponse(summary))
}

func (h *Profile) parseMultipart(r *http.Request) (model.ProfileInput, error) {
	var in model.ProfileInput
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return in, model.NewValidationError("upload exceeds %d bytes", tooLarge.Limit)
		}
		return in, model.NewValidationError("invalid multipart form: %v", err)
	}

	form := r.MultipartForm.Value
	text := func(key string) *string {
		if v, ok := form[key]; ok && len(v) > 0 {
			return &v[0]
		}
		return nil
	}

	in.Update = model.ProfileUpdate{
		FullName:        text("fullName"),
		Bio:             text("bio"),
		JobTitle:        text("jobTitle"),
		Organization:    text("organization"),
		LinkedIn:        text("linkedin"),
		PhoneNumber:     text("phoneNumber"),
		ProgrammeTitle:  text("programmeTitle"),
		CustomProgramme: text("customProgramme"),
	}
	if raw := text("yearOfAttendance"); raw != nil && *raw != "" {
		year, err := strconv.Atoi(*raw)
		if err != nil {
			return in, model.NewValidationError("yearOfAttendance must be a number")
		}
		in.Update.YearOfAttendance = &year
	}

	if headers := r.MultipartForm.File[pictureField]; len(headers) > 0 {
		upload, err := openUpload(headers[0])
		if err != nil {
			return in, err
		}
		in.Picture = upload
	}
	return in, nil
}

func openUpload(fh *multipart.FileHeader) (*model.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, model.NewValidationError("failed to read %s: %v", pictureField, err)
	}
	return &model.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, nil
}

// Directory searches verified alumni by the search query parameter.
func (h *Profile) Directory(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	results, err := h.directoryService.Search(r.Context(), term)
	if err != nil {
		fail(h.logger, w, "Profile handler: directory search failed", err, "term", term)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponses(results))
}
