package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asconalumni/alumni-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

const accountColumns = `id, email, password_hash, role, is_verified, full_name, year_of_attendance,
	programme_title, custom_programme, phone_number, bio, job_title, organization, linkedin,
	profile_picture, reset_token_hash, reset_token_expires_at, created_at, updated_at`

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (model.Account, error) {
	var (
		a         model.Account
		role      string
		resetHash sql.NullString
		resetExp  sql.NullTime
	)
	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &role, &a.IsVerified, &a.FullName, &a.YearOfAttendance,
		&a.ProgrammeTitle, &a.CustomProgramme, &a.PhoneNumber, &a.Bio, &a.JobTitle, &a.Organization, &a.LinkedIn,
		&a.ProfilePicture, &resetHash, &resetExp, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, err
	}

	a.Role, err = model.ParseRole(role)
	if err != nil {
		return model.Account{}, err
	}
	if resetHash.Valid {
		a.ResetTokenHash = resetHash.String
	}
	if resetExp.Valid {
		exp := resetExp.Time
		a.ResetTokenExpiresAt = &exp
	}
	return a, nil
}

func (r *AccountRepository) queryOne(ctx context.Context, op, query string, args ...any) (model.Account, error) {
	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to %s: %w", op, mapError(err))
	}
	return account, nil
}

func (r *AccountRepository) queryMany(ctx context.Context, op, query string, args ...any) ([]model.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	accounts := make([]model.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return accounts, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE LOWER(email) = LOWER($1)`
	return r.queryOne(ctx, "get account by email", query, email)
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.queryOne(ctx, "get account by id", query, id)
}

func (r *AccountRepository) Create(ctx context.Context, a model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (id, email, password_hash, role, is_verified, full_name, year_of_attendance,
			  programme_title, custom_programme, phone_number, profile_picture, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			  RETURNING ` + accountColumns

	return r.queryOne(ctx, "create account", query,
		a.ID, a.Email, a.PasswordHash, string(a.Role), a.IsVerified, a.FullName, a.YearOfAttendance,
		a.ProgrammeTitle, a.CustomProgramme, a.PhoneNumber, a.ProfilePicture, a.CreatedAt, a.UpdatedAt,
	)
}

func (r *AccountRepository) List(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	if filter.OnlyPending {
		query += ` WHERE is_verified = FALSE`
	}
	query += ` ORDER BY created_at DESC`
	return r.queryMany(ctx, "list accounts", query)
}

// Search returns verified accounts matching the query, newest graduates first.
func (r *AccountRepository) Search(ctx context.Context, q model.DirectoryQuery) ([]model.Account, error) {
	limit := q.Limit
	if limit <= 0 || limit > model.DirectoryLimit {
		limit = model.DirectoryLimit
	}

	var (
		where = []string{"is_verified = TRUE"}
		args  []any
	)
	if q.Term != "" {
		args = append(args, "%"+escapeLike(q.Term)+"%")
		if q.Year != nil {
			args = append(args, *q.Year)
			where = append(where, `(full_name ILIKE $1 OR year_of_attendance = $2)`)
		} else {
			where = append(where, `(full_name ILIKE $1 OR job_title ILIKE $1 OR organization ILIKE $1)`)
		}
	}
	args = append(args, limit)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + strings.Join(where, " AND ") +
		fmt.Sprintf(` ORDER BY year_of_attendance DESC, full_name ASC LIMIT $%d`, len(args))

	return r.queryMany(ctx, "search accounts", query, args...)
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, id uuid.UUID, u model.ProfileUpdate) (model.Account, error) {
	query := `UPDATE accounts SET
			  full_name = COALESCE($2, full_name),
			  bio = COALESCE($3, bio),
			  job_title = COALESCE($4, job_title),
			  organization = COALESCE($5, organization),
			  linkedin = COALESCE($6, linkedin),
			  phone_number = COALESCE($7, phone_number),
			  year_of_attendance = COALESCE($8, year_of_attendance),
			  programme_title = COALESCE($9, programme_title),
			  custom_programme = COALESCE($10, custom_programme),
			  profile_picture = COALESCE($11, profile_picture),
			  updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + accountColumns

	return r.queryOne(ctx, "update profile", query, id,
		u.FullName, u.Bio, u.JobTitle, u.Organization, u.LinkedIn, u.PhoneNumber,
		u.YearOfAttendance, u.ProgrammeTitle, u.CustomProgramme, u.ProfilePicture,
	)
}

// MarkVerified sets is_verified. Verifying an already verified account is a no-op.
func (r *AccountRepository) MarkVerified(ctx context.Context, id uuid.UUID) (model.Account, error) {
	query := `UPDATE accounts SET is_verified = TRUE, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + accountColumns
	return r.queryOne(ctx, "verify account", query, id)
}

// ToggleAdmin flips admin access. Demotion lands on member, dropping edit rights in the same statement.
func (r *AccountRepository) ToggleAdmin(ctx context.Context, id uuid.UUID) (model.Account, error) {
	query := `UPDATE accounts
			  SET role = CASE WHEN role = 'member' THEN 'admin' ELSE 'member' END, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + accountColumns
	return r.queryOne(ctx, "toggle admin", query, id)
}

// ToggleEdit flips edit rights of an admin. Members are left untouched and reported as not found.
func (r *AccountRepository) ToggleEdit(ctx context.Context, id uuid.UUID) (model.Account, error) {
	query := `UPDATE accounts
			  SET role = CASE WHEN role = 'admin' THEN 'editor' ELSE 'admin' END, updated_at = NOW()
			  WHERE id = $1 AND role IN ('admin', 'editor')
			  RETURNING ` + accountColumns
	return r.queryOne(ctx, "toggle edit", query, id)
}

func (r *AccountRepository) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	query := `UPDATE accounts SET reset_token_hash = $2, reset_token_expires_at = $3, updated_at = NOW()
			  WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, tokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", mapError(err))
	}
	return expectAffected(res, "store reset token")
}

// ConsumeResetToken replaces the password of the account holding a live reset
// token and clears the token in the same statement. A second call with the
// same token matches no row.
func (r *AccountRepository) ConsumeResetToken(ctx context.Context, tokenHash string, passwordHash string, now time.Time) (uuid.UUID, error) {
	query := `UPDATE accounts
			  SET password_hash = $2, reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = $3
			  WHERE reset_token_hash = $1 AND reset_token_expires_at > $3
			  RETURNING id`

	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, tokenHash, passwordHash, now).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to consume reset token: %w", mapError(err))
	}
	return id, nil
}

// UpdatePassword replaces the stored password hash.
func (r *AccountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE accounts SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", mapError(err))
	}
	return expectAffected(res, "update password")
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return expectAffected(res, "delete account")
}

func expectAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("failed to %s: %w", op, model.ErrNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
