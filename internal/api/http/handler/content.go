package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// ContentService defines event and programme management.
type ContentService interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	CreateEvent(ctx context.Context, in model.EventInput) (model.Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, in model.EventInput) (model.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	ListProgrammes(ctx context.Context) ([]model.Programme, error)
	CreateProgramme(ctx context.Context, in model.ProgrammeInput) (model.Programme, error)
	UpdateProgramme(ctx context.Context, id uuid.UUID, in model.ProgrammeInput) (model.Programme, error)
	DeleteProgramme(ctx context.Context, id uuid.UUID) error
}

// Content handles event and programme endpoints.
type Content struct {
	contentService ContentService
	logger         *logger.Logger
}

// NewContent creates a new Content handler.
func NewContent(contentService ContentService, logger *logger.Logger) *Content {
	return &Content{contentService: contentService, logger: logger}
}

func (h *Content) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.contentService.ListEvents(r.Context())
	if err != nil {
		fail(h.logger, w, "Content handler: failed to list events", err)
		return
	}

	resp := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Content) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	event, err := h.contentService.CreateEvent(r.Context(), req.toModel())
	if err != nil {
		fail(h.logger, w, "Content handler: failed to create event", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

func (h *Content) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	event, err := h.contentService.UpdateEvent(r.Context(), id, req.toModel())
	if err != nil {
		fail(h.logger, w, "Content handler: failed to update event", err, "event_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

func (h *Content) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.contentService.DeleteEvent(r.Context(), id); err != nil {
		fail(h.logger, w, "Content handler: failed to delete event", err, "event_id", id)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Event deleted"})
}

func (h *Content) ListProgrammes(w http.ResponseWriter, r *http.Request) {
	programmes, err := h.contentService.ListProgrammes(r.Context())
	if err != nil {
		fail(h.logger, w, "Content handler: failed to list programmes", err)
		return
	}

	resp := make([]programmeResponse, 0, len(programmes))
	for _, p := range programmes {
		resp = append(resp, toProgrammeResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Content) CreateProgramme(w http.ResponseWriter, r *http.Request) {
	var req programmeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	programme, err := h.contentService.CreateProgramme(r.Context(), req.toModel())
	if err != nil {
		fail(h.logger, w, "Content handler: failed to create programme", err)
		return
	}
	writeJSON(w, http.StatusCreated, toProgrammeResponse(programme))
}

func (h *Content) UpdateProgramme(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	var req programmeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	programme, err := h.contentService.UpdateProgramme(r.Context(), id, req.toModel())
	if err != nil {
		fail(h.logger, w, "Content handler: failed to update programme", err, "programme_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toProgrammeResponse(programme))
}

func (h *Content) DeleteProgramme(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.contentService.DeleteProgramme(r.Context(), id); err != nil {
		fail(h.logger, w, "Content handler: failed to delete programme", err, "programme_id", id)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Programme deleted"})
}
