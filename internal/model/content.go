package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventStore defines persistence operations for events.
type EventStore interface {
	List(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, event Event) (Event, error)
	Update(ctx context.Context, event Event) (Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProgrammeStore defines persistence operations for programmes.
type ProgrammeStore interface {
	List(ctx context.Context) ([]Programme, error)
	Create(ctx context.Context, programme Programme) (Programme, error)
	Update(ctx context.Context, programme Programme) (Programme, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventType enumerates event categories.
type EventType string

const (
	EventTypeReunion EventType = "Reunion"
	EventTypeSeminar EventType = "Seminar"
	EventTypeNews    EventType = "News"
	EventTypeGeneral EventType = "General"
)

// ParseEventType validates an event type. An empty value means News.
func ParseEventType(s string) (EventType, bool) {
	switch t := EventType(s); t {
	case "":
		return EventTypeNews, true
	case EventTypeReunion, EventTypeSeminar, EventTypeNews, EventTypeGeneral:
		return t, true
	default:
		return "", false
	}
}

// Event is an alumni event or news item.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Date        time.Time
	Location    string
	Type        EventType
	CreatedAt   time.Time
}

// Programme is a course offered by the institute.
type Programme struct {
	ID          uuid.UUID
	Title       string
	Code        string
	Description string
	CreatedAt   time.Time
}
