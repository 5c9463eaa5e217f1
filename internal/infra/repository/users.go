package repository

import (
	"context"

	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindAuthorized resolves the user behind a validated credential. Callers
// still check IsActive and role themselves.
func (r *UserRepository) FindAuthorized(ctx context.Context, id uuid.UUID) (user.AuthorizedUser, error) {
	var u user.AuthorizedUser
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, role, is_active
		FROM users
		WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.IsActive)
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return user.AuthorizedUser{}, errs.Mark(errs.Wrap(err, "user not found"), errs.ErrNotFound)
		}
		return user.AuthorizedUser{}, errs.Mark(errs.Wrap(err, "failed to find user"), errs.ErrPersistence)
	}
	return u, nil
}

func (r *UserRepository) FindNotificationTarget(ctx context.Context, id uuid.UUID) (user.NotificationTarget, error) {
	var t user.NotificationTarget
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, is_active,
		       notify_push, notify_email, notify_sms, notify_pickup, notify_dropoff
		FROM users
		WHERE id = $1`, id,
	).Scan(&t.UserID, &t.Name, &t.Email, &t.Phone, &t.IsActive,
		&t.Settings.Push, &t.Settings.Email, &t.Settings.SMS, &t.Settings.Pickup, &t.Settings.Dropoff)
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return user.NotificationTarget{}, errs.Mark(errs.Wrap(err, "user not found"), errs.ErrNotFound)
		}
		return user.NotificationTarget{}, errs.Mark(errs.Wrap(err, "failed to find notification target"), errs.ErrPersistence)
	}
	return t, nil
}

// ListGuardianIDs returns the active guardian accounts, used by the
// fleet-wide notice producers.
func (r *UserRepository) ListGuardianIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM users WHERE role = $1 AND is_active`, user.RoleGuardian)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list guardians"), errs.ErrPersistence)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to scan guardian id"), errs.ErrPersistence)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read guardians"), errs.ErrPersistence)
	}
	return ids, nil
}
