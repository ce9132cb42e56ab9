package app

import (
	"context"
	"time"
)

func (a *App) ListPayments(ctx context.Context, traineeID int64) ([]Payment, error) {
	q := `SELECT id, trainee_id, session_id, amount_cents, method, reference, paid_at
	      FROM payments`
	args := []any{}
	if traineeID != 0 {
		q += ` WHERE trainee_id=$1`
		args = append(args, traineeID)
	}
	q += ` ORDER BY paid_at DESC`

	rows, err := a.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.TraineeID, &p.SessionID, &p.AmountCents, &p.Method, &p.Reference, &p.PaidAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (a *App) InsertPayment(ctx context.Context, p *Payment) error {
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now().UTC()
	}
	q := `INSERT INTO payments (trainee_id, session_id, amount_cents, method, reference, paid_at)
	      VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	return a.DB.QueryRow(ctx, q, p.TraineeID, p.SessionID, p.AmountCents, p.Method, p.Reference, p.PaidAt).Scan(&p.ID)
}
