package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func validInput() RegisterInput {
	return RegisterInput{
		Email:            "  Ada@Example.COM ",
		Password:         "secret1",
		FullName:         " Ada Obi ",
		YearOfAttendance: 2010,
		ProgrammeTitle:   "Public Administration",
	}
}

func TestRegisterInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(in *RegisterInput)
		wantMsg string
	}{
		{name: "valid"},
		{name: "missing email", mutate: func(in *RegisterInput) { in.Email = " " }, wantMsg: "email is required"},
		{name: "malformed email", mutate: func(in *RegisterInput) { in.Email = "ada" }, wantMsg: "not a valid address"},
		{name: "display name email", mutate: func(in *RegisterInput) { in.Email = "Ada <ada@example.com>" }, wantMsg: "not a valid address"},
		{name: "short password", mutate: func(in *RegisterInput) { in.Password = "12345" }, wantMsg: "at least 6"},
		{name: "long password", mutate: func(in *RegisterInput) { in.Password = strings.Repeat("x", 73) }, wantMsg: "at most 72"},
		{name: "blank name", mutate: func(in *RegisterInput) { in.FullName = "  " }, wantMsg: "fullName is required"},
		{name: "year before first intake", mutate: func(in *RegisterInput) { in.YearOfAttendance = 1972 }, wantMsg: "yearOfAttendance"},
		{name: "year in the future", mutate: func(in *RegisterInput) { in.YearOfAttendance = 2026 }, wantMsg: "yearOfAttendance"},
		{name: "blank programme", mutate: func(in *RegisterInput) { in.ProgrammeTitle = "" }, wantMsg: "programmeTitle is required"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			err := in.Validate(testNow)

			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, "ada@example.com", in.Email)
				assert.Equal(t, "Ada Obi", in.FullName)
				return
			}
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateYear_Bounds(t *testing.T) {
	assert.NoError(t, ValidateYear(FirstIntakeYear, testNow))
	assert.NoError(t, ValidateYear(testNow.Year(), testNow))
}

func TestEventInput_Validate(t *testing.T) {
	in := EventInput{Title: " Reunion 2025 ", Description: " Annual gathering ", Date: testNow, Location: " Topo "}
	typ, err := in.Validate()
	require.NoError(t, err)
	assert.Equal(t, EventTypeNews, typ)
	assert.Equal(t, "Reunion 2025", in.Title)
	assert.Equal(t, "Annual gathering", in.Description)
	assert.Equal(t, "Topo", in.Location)

	in.Type = "Seminar"
	typ, err = in.Validate()
	require.NoError(t, err)
	assert.Equal(t, EventTypeSeminar, typ)

	in.Type = "Party"
	_, err = in.Validate()
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = (&EventInput{Title: "x"}).Validate()
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestEventInput_Validate_RequiredFields(t *testing.T) {
	t.Parallel()

	valid := func() EventInput {
		return EventInput{Title: "Gala", Description: "Black tie", Date: testNow, Location: "Topo"}
	}

	tests := []struct {
		name    string
		mutate  func(in *EventInput)
		wantMsg string
	}{
		{name: "blank title", mutate: func(in *EventInput) { in.Title = "  " }, wantMsg: "title is required"},
		{name: "missing description", mutate: func(in *EventInput) { in.Description = "" }, wantMsg: "description is required"},
		{name: "blank description", mutate: func(in *EventInput) { in.Description = "\t " }, wantMsg: "description is required"},
		{name: "missing date", mutate: func(in *EventInput) { in.Date = time.Time{} }, wantMsg: "date is required"},
		{name: "missing location", mutate: func(in *EventInput) { in.Location = "" }, wantMsg: "location is required"},
		{name: "blank location", mutate: func(in *EventInput) { in.Location = "   " }, wantMsg: "location is required"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := valid()
			tt.mutate(&in)
			_, err := in.Validate()

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, KindValidation, e.Kind)
			assert.Equal(t, tt.wantMsg, e.Message)
		})
	}
}

func TestProgrammeInput_Validate(t *testing.T) {
	in := ProgrammeInput{Title: " Leadership ", Code: " pad-01 "}
	require.NoError(t, in.Validate())
	assert.Equal(t, "PAD-01", in.Code)
	assert.Equal(t, "Leadership", in.Title)

	assert.Equal(t, KindValidation, KindOf((&ProgrammeInput{Title: " "}).Validate()))
}
