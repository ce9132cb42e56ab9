package app

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

func (a *App) ListEnrollments(ctx context.Context, sessionID int64) ([]Enrollment, error) {
	q := `SELECT id, session_id, trainee_id, status, enrolled_at
	      FROM enrollments WHERE session_id=$1 ORDER BY enrolled_at`
	rows, err := a.DB.Query(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Enrollment
	for rows.Next() {
		var e Enrollment
		if err := rows.Scan(&e.ID, &e.SessionID, &e.TraineeID, &e.Status, &e.EnrolledAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CreateEnrollment re-reads the session capacity inside the transaction before
// inserting, so two concurrent enrollments cannot both take the last seat.
func (a *App) CreateEnrollment(ctx context.Context, e *Enrollment) error {
	tx, err := a.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var capacity int
	err = tx.QueryRow(ctx, `SELECT capacity FROM sessions WHERE id=$1 FOR UPDATE`, e.SessionID).Scan(&capacity)
	if errors.Is(err, pgx.ErrNoRows) {
		return &scheduling.NotFoundError{Entity: "session", ID: e.SessionID}
	}
	if err != nil {
		return err
	}

	var taken int
	q := `SELECT count(*) FROM enrollments WHERE session_id=$1 AND status <> 'cancelled'`
	if err := tx.QueryRow(ctx, q, e.SessionID).Scan(&taken); err != nil {
		return err
	}

	var dup int
	dupQ := `SELECT count(*) FROM enrollments
	         WHERE session_id=$1 AND trainee_id=$2 AND status <> 'cancelled'`
	if err := tx.QueryRow(ctx, dupQ, e.SessionID, e.TraineeID).Scan(&dup); err != nil {
		return err
	}
	if err := enrollmentAdmission(capacity, taken, dup); err != nil {
		return err
	}

	if e.Status == "" {
		e.Status = "confirmed"
	}
	e.EnrolledAt = time.Now().UTC()
	insertQ := `INSERT INTO enrollments (session_id, trainee_id, status, enrolled_at)
	            VALUES ($1,$2,$3,$4) RETURNING id`
	if err := tx.QueryRow(ctx, insertQ, e.SessionID, e.TraineeID, e.Status, e.EnrolledAt).Scan(&e.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (a *App) CancelEnrollment(ctx context.Context, id int64) (bool, error) {
	res, err := a.DB.Exec(ctx, `UPDATE enrollments SET status='cancelled' WHERE id=$1 AND status <> 'cancelled'`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
