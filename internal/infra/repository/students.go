package repository

import (
	"context"

	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type StudentRepository struct {
	db DB
}

func NewStudentRepository(db DB) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `id, first_name, last_name, guardian_id, checkin_token, status, last_seen_at, assigned_vehicle_id, status_updated_at`

func scanStudent(row pgx.Row) (student.Student, error) {
	var st student.Student
	err := row.Scan(&st.ID, &st.FirstName, &st.LastName, &st.GuardianID, &st.Token,
		&st.Status, &st.LastSeenAt, &st.AssignedVehicleID, &st.StatusUpdatedAt)
	return st, err
}

// FindByToken resolves a scanned check-in token. Unknown tokens are a
// not-found, never an authorization error; the token itself is the
// credential.
func (r *StudentRepository) FindByToken(ctx context.Context, token string) (student.Student, error) {
	row := r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE checkin_token = $1`, token)
	st, err := scanStudent(row)
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return student.Student{}, errs.Mark(errs.Wrap(err, "unknown check-in token"), errs.ErrNotFound)
		}
		return student.Student{}, errs.Mark(errs.Wrap(err, "failed to find student by token"), errs.ErrPersistence)
	}
	return st, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id uuid.UUID) (student.Student, error) {
	row := r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	st, err := scanStudent(row)
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return student.Student{}, errs.Mark(errs.Wrap(err, "student not found"), errs.ErrNotFound)
		}
		return student.Student{}, errs.Mark(errs.Wrap(err, "failed to find student"), errs.ErrPersistence)
	}
	return st, nil
}

func (r *StudentRepository) ApplyStatusUpdate(ctx context.Context, id uuid.UUID, update student.StatusUpdate) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET status = $2, last_seen_at = $3, assigned_vehicle_id = $4, status_updated_at = $5
		WHERE id = $1`,
		id, update.Status, update.LastSeenAt, update.AssignedVehicleID, update.UpdatedAt,
	)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to update student status"), errs.ErrPersistence)
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(errs.New("student not found"), errs.ErrNotFound)
	}
	return nil
}

// ListOnBoard returns the students currently in transport on one vehicle.
func (r *StudentRepository) ListOnBoard(ctx context.Context, vehicleID uuid.UUID) ([]student.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE assigned_vehicle_id = $1 AND status = $2
		ORDER BY last_name, first_name`,
		vehicleID, student.StatusTransport,
	)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list students on board"), errs.ErrPersistence)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to scan student"), errs.ErrPersistence)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read students"), errs.ErrPersistence)
	}
	return students, nil
}
