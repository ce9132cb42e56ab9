package app

import (
	"context"
	"time"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

func (a *App) ListRooms(ctx context.Context) ([]Room, error) {
	q := `SELECT id, name, capacity, status, equipment, created_at FROM rooms ORDER BY name`
	rows, err := a.DB.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Room
	for rows.Next() {
		var r Room
		if err := rows.Scan(&r.ID, &r.Name, &r.Capacity, &r.Status, &r.Equipment, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (a *App) GetRoom(ctx context.Context, id int64) (*Room, error) {
	q := `SELECT id, name, capacity, status, equipment, created_at FROM rooms WHERE id=$1`
	var r Room
	if err := a.DB.QueryRow(ctx, q, id).Scan(&r.ID, &r.Name, &r.Capacity, &r.Status, &r.Equipment, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (a *App) InsertRoom(ctx context.Context, r *Room) error {
	if r.Status == "" {
		r.Status = scheduling.RoomAvailable
	}
	r.CreatedAt = time.Now().UTC()
	q := `INSERT INTO rooms (name, capacity, status, equipment, created_at)
	      VALUES ($1,$2,$3,$4,$5) RETURNING id`
	return a.DB.QueryRow(ctx, q, r.Name, r.Capacity, r.Status, r.Equipment, r.CreatedAt).Scan(&r.ID)
}

func (a *App) UpdateRoom(ctx context.Context, r *Room) error {
	q := `UPDATE rooms SET name=$1, capacity=$2, status=$3, equipment=$4
	      WHERE id=$5 RETURNING id`
	return a.DB.QueryRow(ctx, q, r.Name, r.Capacity, r.Status, r.Equipment, r.ID).Scan(&r.ID)
}

// DeleteRoom refuses to remove a room still referenced by non-cancelled plannings.
func (a *App) DeleteRoom(ctx context.Context, id int64) (bool, error) {
	var count int
	q := `SELECT count(*) FROM plannings WHERE room_id=$1 AND status <> 'cancelled'`
	if err := a.DB.QueryRow(ctx, q, id).Scan(&count); err != nil {
		return false, err
	}
	if err := referencedGuard("room", count); err != nil {
		return false, err
	}
	res, err := a.DB.Exec(ctx, `DELETE FROM rooms WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
