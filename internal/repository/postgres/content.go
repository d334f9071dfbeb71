package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/model"
)

var (
	_ model.EventStore     = (*EventRepository)(nil)
	_ model.ProgrammeStore = (*ProgrammeRepository)(nil)
)

type EventRepository struct {
	db *Connection
}

func NewEventRepository(db *Connection) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row rowScanner) (model.Event, error) {
	var (
		e         model.Event
		eventType string
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &eventType, &e.CreatedAt); err != nil {
		return model.Event{}, err
	}
	e.Type = model.EventType(eventType)
	return e, nil
}

// List returns events ordered by date, soonest first.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, date, location, type, created_at FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Create(ctx context.Context, e model.Event) (model.Event, error) {
	query := `INSERT INTO events (id, title, description, date, location, type, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, title, description, date, location, type, created_at`

	saved, err := scanEvent(r.db.QueryRowContext(ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.Location, string(e.Type), e.CreatedAt))
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to create event: %w", mapError(err))
	}
	return saved, nil
}

func (r *EventRepository) Update(ctx context.Context, e model.Event) (model.Event, error) {
	query := `UPDATE events SET title = $2, description = $3, date = $4, location = $5, type = $6
			  WHERE id = $1
			  RETURNING id, title, description, date, location, type, created_at`

	saved, err := scanEvent(r.db.QueryRowContext(ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.Location, string(e.Type)))
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to update event: %w", mapError(err))
	}
	return saved, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return expectAffected(res, "delete event")
}

type ProgrammeRepository struct {
	db *Connection
}

func NewProgrammeRepository(db *Connection) *ProgrammeRepository {
	return &ProgrammeRepository{db: db}
}

func scanProgramme(row rowScanner) (model.Programme, error) {
	var p model.Programme
	if err := row.Scan(&p.ID, &p.Title, &p.Code, &p.Description, &p.CreatedAt); err != nil {
		return model.Programme{}, err
	}
	return p, nil
}

func (r *ProgrammeRepository) List(ctx context.Context) ([]model.Programme, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, code, description, created_at FROM programmes ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list programmes: %w", err)
	}
	defer rows.Close()

	programmes := make([]model.Programme, 0)
	for rows.Next() {
		p, err := scanProgramme(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan programme: %w", err)
		}
		programmes = append(programmes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list programmes: %w", err)
	}
	return programmes, nil
}

func (r *ProgrammeRepository) Create(ctx context.Context, p model.Programme) (model.Programme, error) {
	query := `INSERT INTO programmes (id, title, code, description, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, title, code, description, created_at`

	saved, err := scanProgramme(r.db.QueryRowContext(ctx, query, p.ID, p.Title, p.Code, p.Description, p.CreatedAt))
	if err != nil {
		return model.Programme{}, fmt.Errorf("failed to create programme: %w", mapError(err))
	}
	return saved, nil
}

func (r *ProgrammeRepository) Update(ctx context.Context, p model.Programme) (model.Programme, error) {
	query := `UPDATE programmes SET title = $2, code = $3, description = $4
			  WHERE id = $1
			  RETURNING id, title, code, description, created_at`

	saved, err := scanProgramme(r.db.QueryRowContext(ctx, query, p.ID, p.Title, p.Code, p.Description))
	if err != nil {
		return model.Programme{}, fmt.Errorf("failed to update programme: %w", mapError(err))
	}
	return saved, nil
}

func (r *ProgrammeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM programmes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete programme: %w", err)
	}
	return expectAffected(res, "delete programme")
}
