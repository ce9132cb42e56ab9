package app

import (
	"context"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

func (a *App) ListAvailabilities(ctx context.Context, trainerID int64) ([]scheduling.Window, error) {
	q := `SELECT id, trainer_id, weekday, start_time, end_time, recurrence,
	             to_char(valid_from,'YYYY-MM-DD'), to_char(valid_until,'YYYY-MM-DD'), active
	      FROM availabilities WHERE trainer_id=$1
	      ORDER BY weekday, start_time`
	rows, err := a.DB.Query(ctx, q, trainerID)
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

func (a *App) InsertAvailability(ctx context.Context, w *scheduling.Window) error {
	if w.Recurrence == "" {
		w.Recurrence = "weekly"
	}
	q := `INSERT INTO availabilities
	      (trainer_id, weekday, start_time, end_time, recurrence, valid_from, valid_until, active)
	      VALUES ($1,$2,$3,$4,$5,$6::date,$7::date,$8) RETURNING id`
	return a.DB.QueryRow(ctx, q, w.TrainerID, w.Weekday, w.Start, w.End,
		w.Recurrence, w.ValidFrom, w.ValidUntil, w.Active).Scan(&w.ID)
}

func (a *App) UpdateAvailability(ctx context.Context, w *scheduling.Window) error {
	q := `UPDATE availabilities
	      SET weekday=$1, start_time=$2, end_time=$3, recurrence=$4,
	          valid_from=$5::date, valid_until=$6::date, active=$7
	      WHERE id=$8 AND trainer_id=$9 RETURNING id`
	return a.DB.QueryRow(ctx, q, w.Weekday, w.Start, w.End, w.Recurrence,
		w.ValidFrom, w.ValidUntil, w.Active, w.ID, w.TrainerID).Scan(&w.ID)
}

func (a *App) DeleteAvailability(ctx context.Context, id int64) (bool, error) {
	res, err := a.DB.Exec(ctx, `DELETE FROM availabilities WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
