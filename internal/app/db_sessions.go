package app

import (
	"context"
	"time"
)

func (a *App) ListSessions(ctx context.Context) ([]Session, error) {
	q := `SELECT id, course_id, trainer_id, room_id,
	             to_char(start_date,'YYYY-MM-DD'), to_char(end_date,'YYYY-MM-DD'),
	             capacity, status, created_at
	      FROM sessions ORDER BY start_date DESC`
	rows, err := a.DB.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.CourseID, &s.TrainerID, &s.RoomID,
			&s.StartDate, &s.EndDate, &s.Capacity, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (a *App) GetSession(ctx context.Context, id int64) (*Session, error) {
	q := `SELECT id, course_id, trainer_id, room_id,
	             to_char(start_date,'YYYY-MM-DD'), to_char(end_date,'YYYY-MM-DD'),
	             capacity, status, created_at
	      FROM sessions WHERE id=$1`
	var s Session
	if err := a.DB.QueryRow(ctx, q, id).Scan(&s.ID, &s.CourseID, &s.TrainerID, &s.RoomID,
		&s.StartDate, &s.EndDate, &s.Capacity, &s.Status, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (a *App) InsertSession(ctx context.Context, s *Session) error {
	if s.Status == "" {
		s.Status = "scheduled"
	}
	s.CreatedAt = time.Now().UTC()
	q := `INSERT INTO sessions (course_id, trainer_id, room_id, start_date, end_date, capacity, status, created_at)
	      VALUES ($1,$2,$3,$4::date,$5::date,$6,$7,$8) RETURNING id`
	return a.DB.QueryRow(ctx, q, s.CourseID, s.TrainerID, s.RoomID,
		s.StartDate, s.EndDate, s.Capacity, s.Status, s.CreatedAt).Scan(&s.ID)
}

func (a *App) UpdateSession(ctx context.Context, s *Session) error {
	q := `UPDATE sessions SET course_id=$1, trainer_id=$2, room_id=$3,
	             start_date=$4::date, end_date=$5::date, capacity=$6, status=$7
	      WHERE id=$8 RETURNING id`
	return a.DB.QueryRow(ctx, q, s.CourseID, s.TrainerID, s.RoomID,
		s.StartDate, s.EndDate, s.Capacity, s.Status, s.ID).Scan(&s.ID)
}

// DeleteSession removes the session; its plannings go with it (ON DELETE CASCADE),
// no orphaned plannings may survive.
func (a *App) DeleteSession(ctx context.Context, id int64) (bool, error) {
	res, err := a.DB.Exec(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
