package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ride-management/internal/domain/user"
	"ride-management/internal/ports"
)

// UserRepo persists users using pgx and plain SQL.
type UserRepo struct{}

// NewUserRepo constructs a new UserRepo.
func NewUserRepo() ports.UserRepository {
	return &UserRepo{}
}

// CreateUser inserts a new user row. A duplicate email maps to ErrEmailTaken.
func (repo *UserRepo) CreateUser(ctx context.Context, u *user.User) error {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, email, role, password_hash, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`,
		u.Username,
		u.Email,
		u.Role.String(),
		u.PasswordHash,
		u.IsAvailable,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ports.ErrEmailTaken
		}
		return err
	}

	return nil
}

// GetByID returns one user by id.
func (repo *UserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return scanUser(tx.QueryRow(ctx, userSelect+` WHERE id = $1`, id))
}

// GetByEmail returns one user by email. Emails are unique.
func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return scanUser(tx.QueryRow(ctx, userSelect+` WHERE LOWER(email) = LOWER($1)`, email))
}

// SetDriverAvailability flips the is_available flag for a driver. Runs in the
// same transaction as the ride write that triggered it.
func (repo *UserRepo) SetDriverAvailability(ctx context.Context, driverID string, available bool) error {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET is_available = $1,
		    updated_at = now()
		WHERE id = $2 AND role = 'driver'
	`, available, driverID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}

	return nil
}

// ListAvailableDrivers returns driver-role users with no in-progress ride,
// ordered by username for stable form rendering.
func (repo *UserRepo) ListAvailableDrivers(ctx context.Context) ([]*user.User, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, userSelect+`
		WHERE role = 'driver'
		  AND NOT EXISTS (
		      SELECT 1 FROM rides r
		      WHERE r.driver_id = users.id AND r.status = 'in_progress'
		  )
		ORDER BY username
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, u)
	}

	return drivers, rows.Err()
}

const userSelect = `
	SELECT id, created_at, updated_at, username, email, role, password_hash, is_available
	FROM users`

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		out      user.User
		roleText string
	)

	err := row.Scan(
		&out.ID, &out.CreatedAt, &out.UpdatedAt,
		&out.Username, &out.Email, &roleText, &out.PasswordHash, &out.IsAvailable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	out.Role = user.Role(roleText)

	return &out, nil
}
