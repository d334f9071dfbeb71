package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// pictureTypes maps accepted picture extensions to their content type.
var pictureTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Profile lets account owners read and edit their own profile.
type Profile struct {
	accountStore model.AccountStore
	storage      model.Storage
	logger       *logger.Logger
	now          func() time.Time
}

func NewProfile(accountStore model.AccountStore, storage model.Storage, logger *logger.Logger) *Profile {
	return &Profile{
		accountStore: accountStore,
		storage:      storage,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *Profile) Me(ctx context.Context, id uuid.UUID) (model.AccountSummary, error) {
	account, err := s.accountStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.AccountSummary{}, model.ErrAccountNotFound
	}
	if err != nil {
		s.logger.Error("Profile service: failed to get account",
			"account_id", id,
			"error", err.Error())
		return model.AccountSummary{}, model.NewUpstreamError("failed to get account", err)
	}
	return account.Summary(), nil
}

// Update applies the owner's changes and stores an optional new picture.
func (s *Profile) Update(ctx context.Context, id uuid.UUID, in model.ProfileInput) (model.AccountSummary, error) {
	update := in.Update
	if err := s.validate(&update); err != nil {
		return model.AccountSummary{}, err
	}

	var uploadedKey string
	if in.Picture != nil {
		key, url, err := s.storePicture(ctx, id, in.Picture)
		if err != nil {
			return model.AccountSummary{}, err
		}
		uploadedKey = key
		update.ProfilePicture = &url
	}

	if update.Empty() {
		return s.Me(ctx, id)
	}

	account, err := s.accountStore.UpdateProfile(ctx, id, update)
	if err != nil {
		if uploadedKey != "" {
			s.discardPicture(uploadedKey)
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.AccountSummary{}, model.ErrAccountNotFound
		}
		s.logger.Error("Profile service: failed to update profile",
			"account_id", id,
			"error", err.Error())
		return model.AccountSummary{}, model.NewUpstreamError("failed to update profile", err)
	}

	s.logger.Info("Profile service: profile updated",
		"account_id", id,
		"picture", uploadedKey != "")
	return account.Summary(), nil
}

func (s *Profile) validate(u *model.ProfileUpdate) error {
	for _, field := range []*string{
		u.FullName, u.Bio, u.JobTitle, u.Organization, u.LinkedIn,
		u.PhoneNumber, u.ProgrammeTitle, u.CustomProgramme,
	} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}

	if u.FullName != nil && *u.FullName == "" {
		return model.NewValidationError("fullName must not be empty")
	}
	if u.ProgrammeTitle != nil && *u.ProgrammeTitle == "" {
		return model.NewValidationError("programmeTitle must not be empty")
	}
	if u.YearOfAttendance != nil {
		if err := model.ValidateYear(*u.YearOfAttendance, s.now()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Profile) storePicture(ctx context.Context, id uuid.UUID, pic *model.Upload) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(pic.Filename))
	contentType, ok := pictureTypes[ext]
	if !ok {
		return "", "", model.NewValidationError("profilePicture must be a jpg, jpeg or png image")
	}
	if s.storage == nil {
		return "", "", model.NewUpstreamError("image storage is not configured", nil)
	}

	key := fmt.Sprintf("profiles/%s/%s%s", id, uuid.NewString(), ext)
	if err := s.storage.Upload(ctx, key, pic.Body, pic.Size, contentType); err != nil {
		s.logger.Error("Profile service: failed to upload picture",
			"account_id", id,
			"error", err.Error())
		return "", "", model.NewUpstreamError("failed to upload picture", err)
	}
	return key, s.storage.URL(key), nil
}

// discardPicture removes an upload whose profile update did not persist.
func (s *Profile) discardPicture(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("Profile service: failed to remove orphaned picture",
			"key", key,
			"error", err.Error())
	}
}
