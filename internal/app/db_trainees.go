package app

import (
	"context"
	"time"
)

func (a *App) ListTrainees(ctx context.Context) ([]Trainee, error) {
	q := `SELECT id, first_name, last_name, email, phone, status, created_at
	      FROM trainees ORDER BY last_name, first_name`
	rows, err := a.DB.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trainee
	for rows.Next() {
		var t Trainee
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (a *App) GetTrainee(ctx context.Context, id int64) (*Trainee, error) {
	q := `SELECT id, first_name, last_name, email, phone, status, created_at
	      FROM trainees WHERE id=$1`
	var t Trainee
	if err := a.DB.QueryRow(ctx, q, id).Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.Status, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (a *App) InsertTrainee(ctx context.Context, t *Trainee) error {
	if t.Status == "" {
		t.Status = "active"
	}
	t.CreatedAt = time.Now().UTC()
	q := `INSERT INTO trainees (first_name, last_name, email, phone, status, created_at)
	      VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	return a.DB.QueryRow(ctx, q, t.FirstName, t.LastName, t.Email, t.Phone, t.Status, t.CreatedAt).Scan(&t.ID)
}

func (a *App) UpdateTrainee(ctx context.Context, t *Trainee) error {
	q := `UPDATE trainees SET first_name=$1, last_name=$2, email=$3, phone=$4, status=$5
	      WHERE id=$6 RETURNING id`
	return a.DB.QueryRow(ctx, q, t.FirstName, t.LastName, t.Email, t.Phone, t.Status, t.ID).Scan(&t.ID)
}

func (a *App) DeleteTrainee(ctx context.Context, id int64) (bool, error) {
	res, err := a.DB.Exec(ctx, `DELETE FROM trainees WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
