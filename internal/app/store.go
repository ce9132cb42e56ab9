package app

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

// App implements scheduling.Store so the planner runs straight against the pool.
var _ scheduling.Store = (*App)(nil)

func (a *App) TrainerByID(ctx context.Context, id int64) (*scheduling.TrainerInfo, error) {
	q := `SELECT id, first_name || ' ' || last_name, status FROM trainers WHERE id=$1`
	var info scheduling.TrainerInfo
	err := a.DB.QueryRow(ctx, q, id).Scan(&info.ID, &info.Name, &info.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (a *App) RoomByID(ctx context.Context, id int64) (*scheduling.RoomInfo, error) {
	q := `SELECT id, name, capacity, status FROM rooms WHERE id=$1`
	var info scheduling.RoomInfo
	err := a.DB.QueryRow(ctx, q, id).Scan(&info.ID, &info.Name, &info.Capacity, &info.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (a *App) SessionByID(ctx context.Context, id int64) (*scheduling.SessionInfo, error) {
	q := `SELECT id, course_id, trainer_id, room_id,
	             to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
	      FROM sessions WHERE id=$1`
	var info scheduling.SessionInfo
	err := a.DB.QueryRow(ctx, q, id).Scan(&info.ID, &info.CourseID, &info.TrainerID, &info.RoomID, &info.StartDate, &info.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (a *App) TrainerWindows(ctx context.Context, trainerID int64, weekday int, activeOnly bool) ([]scheduling.Window, error) {
	q := `SELECT id, trainer_id, weekday, start_time, end_time, recurrence,
	             to_char(valid_from, 'YYYY-MM-DD'), to_char(valid_until, 'YYYY-MM-DD'), active
	      FROM availabilities
	      WHERE trainer_id=$1 AND weekday=$2 AND ($3 = false OR active)
	      ORDER BY weekday, start_time`
	rows, err := a.DB.Query(ctx, q, trainerID, weekday, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scheduling.Window
	for rows.Next() {
		var w scheduling.Window
		if err := rows.Scan(&w.ID, &w.TrainerID, &w.Weekday, &w.Start, &w.End,
			&w.Recurrence, &w.ValidFrom, &w.ValidUntil, &w.Active); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (a *App) EntriesFor(ctx context.Context, kind scheduling.ResourceKind, resourceID int64, date string) ([]scheduling.Entry, error) {
	col := "trainer_id"
	if kind == scheduling.ResourceRoom {
		col = "room_id"
	}
	q := `SELECT id, session_id, start_time, end_time FROM plannings
	      WHERE ` + col + `=$1 AND date=$2::date AND status <> 'cancelled'
	      ORDER BY start_time`
	rows, err := a.DB.Query(ctx, q, resourceID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scheduling.Entry
	for rows.Next() {
		var e scheduling.Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Start, &e.End); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// InsertPlanning re-checks the overlap inside a transaction before writing, locking
// any overlapping row it finds. This narrows the check-then-insert window; when no
// conflicting row exists yet there is nothing to lock, so two concurrent inserts into
// a free slot can still both land.
func (a *App) InsertPlanning(ctx context.Context, p *scheduling.Planning) error {
	tx, err := a.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	checkQ := `SELECT id FROM plannings
	           WHERE date=$1::date AND status <> 'cancelled'
	             AND (trainer_id=$2 OR ($3::bigint IS NOT NULL AND room_id=$3))
	             AND (
	                 (start_time <= $4 AND end_time > $4) OR
	                 (start_time < $5 AND end_time >= $5) OR
	                 (start_time >= $4 AND end_time <= $5)
	             )
	           LIMIT 1
	           FOR UPDATE`
	var existingID string
	err = tx.QueryRow(ctx, checkQ, p.Date, p.TrainerID, p.RoomID, p.Start, p.End).Scan(&existingID)
	if err == nil {
		return scheduling.ErrSlotTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	insertQ := `INSERT INTO plannings
	            (id, session_id, trainer_id, room_id, date, start_time, end_time, status, notes, created_at)
	            VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	if _, err := tx.Exec(ctx, insertQ,
		p.ID, p.SessionID, p.TrainerID, p.RoomID, p.Date, p.Start, p.End, p.Status, p.Notes, now); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
