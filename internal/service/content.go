package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// Content manages events and programmes shown to alumni.
type Content struct {
	events     model.EventStore
	programmes model.ProgrammeStore
	logger     *logger.Logger
	now        func() time.Time
}

func NewContent(events model.EventStore, programmes model.ProgrammeStore, logger *logger.Logger) *Content {
	return &Content{
		events:     events,
		programmes: programmes,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Content) ListEvents(ctx context.Context) ([]model.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		s.logger.Error("Content service: failed to list events", "error", err.Error())
		return nil, model.NewUpstreamError("failed to list events", err)
	}
	return events, nil
}

func (s *Content) CreateEvent(ctx context.Context, in model.EventInput) (model.Event, error) {
	eventType, err := in.Validate()
	if err != nil {
		return model.Event{}, err
	}

	event, err := s.events.Create(ctx, model.Event{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		Type:        eventType,
		CreatedAt:   s.now(),
	})
	if err != nil {
		s.logger.Error("Content service: failed to create event", "error", err.Error())
		return model.Event{}, model.NewUpstreamError("failed to create event", err)
	}

	s.logger.Info("Content service: event created", "event_id", event.ID)
	return event, nil
}

func (s *Content) UpdateEvent(ctx context.Context, id uuid.UUID, in model.EventInput) (model.Event, error) {
	eventType, err := in.Validate()
	if err != nil {
		return model.Event{}, err
	}

	event, err := s.events.Update(ctx, model.Event{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		Type:        eventType,
	})
	if errors.Is(err, model.ErrNotFound) {
		return model.Event{}, model.NewNotFoundError("event")
	}
	if err != nil {
		s.logger.Error("Content service: failed to update event", "event_id", id, "error", err.Error())
		return model.Event{}, model.NewUpstreamError("failed to update event", err)
	}
	return event, nil
}

func (s *Content) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	err := s.events.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewNotFoundError("event")
	}
	if err != nil {
		s.logger.Error("Content service: failed to delete event", "event_id", id, "error", err.Error())
		return model.NewUpstreamError("failed to delete event", err)
	}

	s.logger.Info("Content service: event deleted", "event_id", id)
	return nil
}

func (s *Content) ListProgrammes(ctx context.Context) ([]model.Programme, error) {
	programmes, err := s.programmes.List(ctx)
	if err != nil {
		s.logger.Error("Content service: failed to list programmes", "error", err.Error())
		return nil, model.NewUpstreamError("failed to list programmes", err)
	}
	return programmes, nil
}

func (s *Content) CreateProgramme(ctx context.Context, in model.ProgrammeInput) (model.Programme, error) {
	if err := in.Validate(); err != nil {
		return model.Programme{}, err
	}

	programme, err := s.programmes.Create(ctx, model.Programme{
		ID:          uuid.New(),
		Title:       in.Title,
		Code:        in.Code,
		Description: in.Description,
		CreatedAt:   s.now(),
	})
	if errors.Is(err, model.ErrDuplicate) {
		return model.Programme{}, model.NewConflictError("programme %q already exists", in.Title)
	}
	if err != nil {
		s.logger.Error("Content service: failed to create programme", "error", err.Error())
		return model.Programme{}, model.NewUpstreamError("failed to create programme", err)
	}

	s.logger.Info("Content service: programme created", "programme_id", programme.ID)
	return programme, nil
}

func (s *Content) UpdateProgramme(ctx context.Context, id uuid.UUID, in model.ProgrammeInput) (model.Programme, error) {
	if err := in.Validate(); err != nil {
		return model.Programme{}, err
	}

	programme, err := s.programmes.Update(ctx, model.Programme{
		ID:          id,
		Title:       in.Title,
		Code:        in.Code,
		Description: in.Description,
	})
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Programme{}, model.NewNotFoundError("programme")
	case errors.Is(err, model.ErrDuplicate):
		return model.Programme{}, model.NewConflictError("programme %q already exists", in.Title)
	case err != nil:
		s.logger.Error("Content service: failed to update programme", "programme_id", id, "error", err.Error())
		return model.Programme{}, model.NewUpstreamError("failed to update programme", err)
	}
	return programme, nil
}

func (s *Content) DeleteProgramme(ctx context.Context, id uuid.UUID) error {
	err := s.programmes.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewNotFoundError("programme")
	}
	if err != nil {
		s.logger.Error("Content service: failed to delete programme", "programme_id", id, "error", err.Error())
		return model.NewUpstreamError("failed to delete programme", err)
	}

	s.logger.Info("Content service: programme deleted", "programme_id", id)
	return nil
}
