package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/asconalumni/alumni-server/internal/mocks"
	"github.com/asconalumni/alumni-server/internal/model"
	"github.com/asconalumni/alumni-server/internal/testutil"
)

func newContentForTest(t *testing.T) (*Content, *mocks.EventStore, *mocks.ProgrammeStore) {
	events := mocks.NewEventStore(t)
	programmes := mocks.NewProgrammeStore(t)
	return NewContent(events, programmes, testutil.MakeNoopLogger()), events, programmes
}

func TestContent_CreateEvent(t *testing.T) {
	c, events, _ := newContentForTest(t)
	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	events.On("Create", mock.Anything, mock.MatchedBy(func(e model.Event) bool {
		return e.Title == "Reunion 2025" && e.Type == model.EventTypeNews && e.ID != uuid.Nil
	})).Return(func(_ context.Context, e model.Event) (model.Event, error) { return e, nil })

	got, err := c.CreateEvent(context.Background(), model.EventInput{Title: " Reunion 2025 ", Description: "Annual gathering", Date: date, Location: "Topo"})
	require.NoError(t, err)
	assert.Equal(t, model.EventTypeNews, got.Type)
}

func TestContent_CreateEvent_Validation(t *testing.T) {
	c, _, _ := newContentForTest(t)

	_, err := c.CreateEvent(context.Background(), model.EventInput{Title: "x", Description: "d", Date: time.Now(), Location: "l", Type: "Party"})
	assert.Equal(t, model.KindValidation, model.KindOf(err))

	_, err = c.CreateEvent(context.Background(), model.EventInput{Title: "x"})
	assert.Equal(t, model.KindValidation, model.KindOf(err))

	_, err = c.CreateEvent(context.Background(), model.EventInput{Title: "x", Date: time.Now(), Location: "l"})
	assert.Equal(t, model.KindValidation, model.KindOf(err))
}

func TestContent_EventNotFound(t *testing.T) {
	c, events, _ := newContentForTest(t)
	id := uuid.New()
	events.On("Update", mock.Anything, mock.Anything).Return(model.Event{}, model.ErrNotFound)
	events.On("Delete", mock.Anything, id).Return(model.ErrNotFound)

	_, err := c.UpdateEvent(context.Background(), id, model.EventInput{Title: "x", Description: "d", Date: time.Now(), Location: "l"})
	assert.Equal(t, model.KindNotFound, model.KindOf(err))

	err = c.DeleteEvent(context.Background(), id)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestContent_ListEvents_StoreFailure(t *testing.T) {
	c, events, _ := newContentForTest(t)
	events.On("List", mock.Anything).Return(nil, errors.New("boom"))

	_, err := c.ListEvents(context.Background())
	assert.Equal(t, model.KindUpstream, model.KindOf(err))
}

func TestContent_Programmes(t *testing.T) {
	t.Run("code is upper-cased", func(t *testing.T) {
		c, _, programmes := newContentForTest(t)
		programmes.On("Create", mock.Anything, mock.MatchedBy(func(p model.Programme) bool {
			return p.Code == "CPP" && p.Title == "Computer Programme"
		})).Return(func(_ context.Context, p model.Programme) (model.Programme, error) { return p, nil })

		got, err := c.CreateProgramme(context.Background(), model.ProgrammeInput{Title: "Computer Programme", Code: " cpp "})
		require.NoError(t, err)
		assert.Equal(t, "CPP", got.Code)
	})

	t.Run("duplicate title", func(t *testing.T) {
		c, _, programmes := newContentForTest(t)
		programmes.On("Create", mock.Anything, mock.Anything).Return(model.Programme{}, model.ErrDuplicate)
		programmes.On("Update", mock.Anything, mock.Anything).Return(model.Programme{}, model.ErrDuplicate)

		_, err := c.CreateProgramme(context.Background(), model.ProgrammeInput{Title: "Computer Programme"})
		assert.Equal(t, model.KindConflict, model.KindOf(err))

		_, err = c.UpdateProgramme(context.Background(), uuid.New(), model.ProgrammeInput{Title: "Computer Programme"})
		assert.Equal(t, model.KindConflict, model.KindOf(err))
	})

	t.Run("missing", func(t *testing.T) {
		c, _, programmes := newContentForTest(t)
		id := uuid.New()
		programmes.On("Delete", mock.Anything, id).Return(model.ErrNotFound)

		err := c.DeleteProgramme(context.Background(), id)
		assert.Equal(t, model.KindNotFound, model.KindOf(err))
	})

	t.Run("title required", func(t *testing.T) {
		c, _, _ := newContentForTest(t)
		_, err := c.CreateProgramme(context.Background(), model.ProgrammeInput{Title: " "})
		assert.Equal(t, model.KindValidation, model.KindOf(err))
	})
}
