package app

import "context"

func (a *App) ListAttendance(ctx context.Context, planningID string) ([]AttendanceRecord, error) {
	q := `SELECT id, planning_id, trainee_id, present, note
	      FROM attendance WHERE planning_id=$1 ORDER BY trainee_id`
	rows, err := a.DB.Query(ctx, q, planningID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AttendanceRecord
	for rows.Next() {
		var r AttendanceRecord
		if err := rows.Scan(&r.ID, &r.PlanningID, &r.TraineeID, &r.Present, &r.Note); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpsertAttendance records or corrects one trainee's presence for a planning.
func (a *App) UpsertAttendance(ctx context.Context, r *AttendanceRecord) error {
	q := `INSERT INTO attendance (planning_id, trainee_id, present, note)
	      VALUES ($1,$2,$3,$4)
	      ON CONFLICT (planning_id, trainee_id)
	      DO UPDATE SET present=EXCLUDED.present, note=EXCLUDED.note
	      RETURNING id`
	return a.DB.QueryRow(ctx, q, r.PlanningID, r.TraineeID, r.Present, r.Note).Scan(&r.ID)
}
