package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

// PlanningFilter narrows ListPlannings. Zero values mean "no filter".
type PlanningFilter struct {
	SessionID int64
	TrainerID int64
	RoomID    int64
	From      string
	To        string
}

func (a *App) ListPlannings(ctx context.Context, f PlanningFilter) ([]scheduling.Planning, error) {
	q := `SELECT id, session_id, trainer_id, room_id, to_char(date,'YYYY-MM-DD'),
	             start_time, end_time, status, notes
	      FROM plannings WHERE 1=1`
	args := []any{}
	add := func(clause string, v any) {
		args = append(args, v)
		q += fmt.Sprintf(" AND %s$%d", clause, len(args))
	}
	if f.SessionID != 0 {
		add("session_id=", f.SessionID)
	}
	if f.TrainerID != 0 {
		add("trainer_id=", f.TrainerID)
	}
	if f.RoomID != 0 {
		add("room_id=", f.RoomID)
	}
	if f.From != "" {
		args = append(args, f.From)
		q += fmt.Sprintf(" AND date >= $%d::date", len(args))
	}
	if f.To != "" {
		args = append(args, f.To)
		q += fmt.Sprintf(" AND date <= $%d::date", len(args))
	}
	q += " ORDER BY date, start_time"

	rows, err := a.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scheduling.Planning
	for rows.Next() {
		var p scheduling.Planning
		if err := rows.Scan(&p.ID, &p.SessionID, &p.TrainerID, &p.RoomID,
			&p.Date, &p.Start, &p.End, &p.Status, &p.Notes); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (a *App) GetPlanning(ctx context.Context, id string) (*scheduling.Planning, error) {
	q := `SELECT id, session_id, trainer_id, room_id, to_char(date,'YYYY-MM-DD'),
	             start_time, end_time, status, notes
	      FROM plannings WHERE id=$1`
	var p scheduling.Planning
	if err := a.DB.QueryRow(ctx, q, id).Scan(&p.ID, &p.SessionID, &p.TrainerID, &p.RoomID,
		&p.Date, &p.Start, &p.End, &p.Status, &p.Notes); err != nil {
		return nil, err
	}
	return &p, nil
}

// overlapExistsExcluding mirrors the insert-time guard for reschedules: the planning
// being moved is excluded from its own conflict scan.
func (a *App) overlapExistsExcluding(ctx context.Context, trainerID int64, roomID *int64, date, start, end, excludeID string) (bool, error) {
	q := `SELECT count(*) FROM plannings
	      WHERE date=$1::date AND status <> 'cancelled' AND id <> $2
	        AND (trainer_id=$3 OR ($4::bigint IS NOT NULL AND room_id=$4))
	        AND (
	            (start_time <= $5 AND end_time > $5) OR
	            (start_time < $6 AND end_time >= $6) OR
	            (start_time >= $5 AND end_time <= $6)
	        )`
	var count int
	if err := a.DB.QueryRow(ctx, q, date, excludeID, trainerID, roomID, start, end).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReschedulePlanning moves an existing planning to a new date/time and/or status
// after the caller has validated the slot.
func (a *App) ReschedulePlanning(ctx context.Context, p *scheduling.Planning) error {
	q := `UPDATE plannings SET date=$1::date, start_time=$2, end_time=$3, status=$4, notes=$5
	      WHERE id=$6 RETURNING id`
	return a.DB.QueryRow(ctx, q, p.Date, p.Start, p.End, p.Status, p.Notes, p.ID).Scan(&p.ID)
}

// CancelPlanning flips the status to cancelled. Returns the planning as it was, or
// pgx.ErrNoRows when absent, or a ConflictError when already cancelled.
func (a *App) CancelPlanning(ctx context.Context, id string) (*scheduling.Planning, error) {
	p, err := a.GetPlanning(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == scheduling.StatusCancelled {
		return nil, &scheduling.ConflictError{Reason: "already_cancelled", Message: "planning already cancelled"}
	}
	res, err := a.DB.Exec(ctx, `UPDATE plannings SET status='cancelled' WHERE id=$1 AND status <> 'cancelled'`, id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	p.Status = scheduling.StatusCancelled
	return p, nil
}
