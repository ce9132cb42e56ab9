package app

import (
	"context"
	"time"
)

func (a *App) ListCourses(ctx context.Context) ([]Course, error) {
	q := `SELECT id, title, description, duration_hours, price_cents, created_at
	      FROM courses ORDER BY title`
	rows, err := a.DB.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.DurationHours, &c.PriceCents, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (a *App) GetCourse(ctx context.Context, id int64) (*Course, error) {
	q := `SELECT id, title, description, duration_hours, price_cents, created_at
	      FROM courses WHERE id=$1`
	var c Course
	if err := a.DB.QueryRow(ctx, q, id).Scan(&c.ID, &c.Title, &c.Description, &c.DurationHours, &c.PriceCents, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *App) InsertCourse(ctx context.Context, c *Course) error {
	c.CreatedAt = time.Now().UTC()
	q := `INSERT INTO courses (title, description, duration_hours, price_cents, created_at)
	      VALUES ($1,$2,$3,$4,$5) RETURNING id`
	return a.DB.QueryRow(ctx, q, c.Title, c.Description, c.DurationHours, c.PriceCents, c.CreatedAt).Scan(&c.ID)
}

func (a *App) UpdateCourse(ctx context.Context, c *Course) error {
	q := `UPDATE courses SET title=$1, description=$2, duration_hours=$3, price_cents=$4
	      WHERE id=$5 RETURNING id`
	return a.DB.QueryRow(ctx, q, c.Title, c.Description, c.DurationHours, c.PriceCents, c.ID).Scan(&c.ID)
}

func (a *App) DeleteCourse(ctx context.Context, id int64) (bool, error) {
	res, err := a.DB.Exec(ctx, `DELETE FROM courses WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
