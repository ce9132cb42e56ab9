package app

import (
	"context"
	"time"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

func (a *App) ListTrainers(ctx context.Context) ([]Trainer, error) {
	q := `SELECT id, first_name, last_name, email, specialty, status, created_at
	      FROM trainers ORDER BY last_name, first_name`
	rows, err := a.DB.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trainer
	for rows.Next() {
		var t Trainer
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Specialty, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (a *App) GetTrainer(ctx context.Context, id int64) (*Trainer, error) {
	q := `SELECT id, first_name, last_name, email, specialty, status, created_at
	      FROM trainers WHERE id=$1`
	var t Trainer
	if err := a.DB.QueryRow(ctx, q, id).Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Specialty, &t.Status, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (a *App) InsertTrainer(ctx context.Context, t *Trainer) error {
	if t.Status == "" {
		t.Status = scheduling.TrainerActive
	}
	t.CreatedAt = time.Now().UTC()
	q := `INSERT INTO trainers (first_name, last_name, email, specialty, status, created_at)
	      VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	return a.DB.QueryRow(ctx, q, t.FirstName, t.LastName, t.Email, t.Specialty, t.Status, t.CreatedAt).Scan(&t.ID)
}

func (a *App) UpdateTrainer(ctx context.Context, t *Trainer) error {
	q := `UPDATE trainers SET first_name=$1, last_name=$2, email=$3, specialty=$4, status=$5
	      WHERE id=$6 RETURNING id`
	return a.DB.QueryRow(ctx, q, t.FirstName, t.LastName, t.Email, t.Specialty, t.Status, t.ID).Scan(&t.ID)
}

// DeleteTrainer refuses to remove a trainer still referenced by non-cancelled
// plannings.
func (a *App) DeleteTrainer(ctx context.Context, id int64) (bool, error) {
	var count int
	q := `SELECT count(*) FROM plannings WHERE trainer_id=$1 AND status <> 'cancelled'`
	if err := a.DB.QueryRow(ctx, q, id).Scan(&count); err != nil {
		return false, err
	}
	if err := referencedGuard("trainer", count); err != nil {
		return false, err
	}
	res, err := a.DB.Exec(ctx, `DELETE FROM trainers WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
