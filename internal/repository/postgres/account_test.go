package postgres

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asconalumni/alumni-server/internal/model"
)

var accountCols = []string{
	"id", "email", "password_hash", "role", "is_verified", "full_name", "year_of_attendance",
	"programme_title", "custom_programme", "phone_number", "bio", "job_title", "organization", "linkedin",
	"profile_picture", "reset_token_hash", "reset_token_expires_at", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewAccountRepository(&Connection{DB: db}), mock
}

func accountRow(id uuid.UUID, role string, verified bool) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id.String(), "alice@x.com", "$2a$hash", role, verified, "Alice", 2019,
		"Computer Programme", "", "", "", "Engineer", "ASCON", "",
		"", nil, nil, now, now,
	}
}

func TestNewAccountRepository(t *testing.T) {
	db := &Connection{}
	repo := NewAccountRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM accounts WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("Alice@X.com").
		WillReturnRows(sqlmock.NewRows(accountCols).AddRow(accountRow(id, "editor", true)...))

	got, err := repo.GetByEmail(context.Background(), "Alice@X.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, model.RoleEditor, got.Role)
	assert.True(t, got.IsVerified)
	assert.Empty(t, got.ResetTokenHash)
	assert.Nil(t, got.ResetTokenExpiresAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM accounts WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(accountCols))

	_, err := repo.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByID_UnknownRole(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM accounts WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(accountCols).AddRow(accountRow(id, "superuser", true)...))

	_, err := repo.GetByID(context.Background(), id)
	require.Error(t, err)
}

func TestAccountRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO accounts`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

	_, err := repo.Create(context.Background(), model.Account{ID: uuid.New(), Email: "alice@x.com", Role: model.RoleMember})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(id, "alice@x.com", "$2a$hash", "member", false, "Alice", 2019,
			"Computer Programme", "", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(accountCols).AddRow(accountRow(id, "member", false)...))

	now := time.Now()
	saved, err := repo.Create(context.Background(), model.Account{
		ID: id, Email: "alice@x.com", PasswordHash: "$2a$hash", Role: model.RoleMember,
		FullName: "Alice", YearOfAttendance: 2019, ProgrammeTitle: "Computer Programme",
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, id, saved.ID)
	assert.False(t, saved.IsVerified)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_List(t *testing.T) {
	tests := []struct {
		name    string
		filter  model.AccountFilter
		pattern string
	}{
		{name: "all", filter: model.AccountFilter{}, pattern: `FROM accounts ORDER BY created_at DESC`},
		{name: "pending", filter: model.AccountFilter{OnlyPending: true}, pattern: `FROM accounts WHERE is_verified = FALSE ORDER BY`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(tt.pattern).
				WillReturnRows(sqlmock.NewRows(accountCols).
					AddRow(accountRow(uuid.New(), "member", false)...).
					AddRow(accountRow(uuid.New(), "admin", false)...))

			got, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, 2)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_Search(t *testing.T) {
	year := 2019

	tests := []struct {
		name    string
		query   model.DirectoryQuery
		pattern string
		args    []driver.Value
	}{
		{
			name:    "no term",
			query:   model.DirectoryQuery{},
			pattern: `WHERE is_verified = TRUE ORDER BY year_of_attendance DESC, full_name ASC LIMIT \$1`,
			args:    []driver.Value{int64(model.DirectoryLimit)},
		},
		{
			name:    "text term is escaped",
			query:   model.DirectoryQuery{Term: "50%_off", Limit: 10},
			pattern: `full_name ILIKE \$1 OR job_title ILIKE \$1 OR organization ILIKE \$1\) ORDER BY .* LIMIT \$2`,
			args:    []driver.Value{`%50\%\_off%`, int64(10)},
		},
		{
			name:    "year term",
			query:   model.DirectoryQuery{Term: "2019", Year: &year, Limit: 500},
			pattern: `\(full_name ILIKE \$1 OR year_of_attendance = \$2\) ORDER BY .* LIMIT \$3`,
			args:    []driver.Value{"%2019%", int64(2019), int64(model.DirectoryLimit)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(tt.pattern).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(accountCols).AddRow(accountRow(uuid.New(), "member", true)...))

			got, err := repo.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_ToggleAdmin(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SET role = CASE WHEN role = 'member' THEN 'admin' ELSE 'member' END`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(accountCols).AddRow(accountRow(id, "member", true)...))

	got, err := repo.ToggleAdmin(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.RoleMember, got.Role)
	assert.False(t, got.Role.CanEdit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_ToggleEdit_Member(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`WHERE id = \$1 AND role IN \('admin', 'editor'\)`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(accountCols))

	_, err := repo.ToggleEdit(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_SetResetToken(t *testing.T) {
	id := uuid.New()
	exp := time.Now().Add(time.Hour)

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "stored", affected: 1},
		{name: "missing account", affected: 0, wantErr: model.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectExec(`UPDATE accounts SET reset_token_hash = \$2, reset_token_expires_at = \$3`).
				WithArgs(id, "digest", exp).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.SetResetToken(context.Background(), id, "digest", exp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_ConsumeResetToken(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	now := time.Now()

	consume := `SET password_hash = \$2, reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = \$3\s+WHERE reset_token_hash = \$1 AND reset_token_expires_at > \$3`
	mock.ExpectQuery(consume).
		WithArgs("digest", "new-hash", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectQuery(consume).
		WithArgs("digest", "new-hash", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.ConsumeResetToken(context.Background(), "digest", "new-hash", now)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = repo.ConsumeResetToken(context.Background(), "digest", "new-hash", now)
	assert.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM accounts WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM accounts WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdatePassword(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE accounts SET password_hash = \$2`).
		WithArgs(id, "$2a$12$new").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE accounts SET password_hash = \$2`).
		WithArgs(id, "$2a$12$new").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdatePassword(context.Background(), id, "$2a$12$new"))
	assert.ErrorIs(t, repo.UpdatePassword(context.Background(), id, "$2a$12$new"), model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
