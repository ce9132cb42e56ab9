package app

import "context"

// loadDashboardStats computes the aggregate block in one round trip.
func (a *App) loadDashboardStats(ctx context.Context) (*DashboardStats, error) {
	q := `SELECT
	        (SELECT count(*) FROM trainees WHERE status <> 'archived'),
	        (SELECT count(*) FROM trainers WHERE status = 'active'),
	        (SELECT count(*) FROM courses),
	        (SELECT count(*) FROM sessions WHERE status <> 'cancelled'),
	        (SELECT count(*) FROM rooms),
	        (SELECT count(*) FROM enrollments WHERE status <> 'cancelled'),
	        (SELECT count(*) FROM plannings
	           WHERE status = 'planned'
	             AND date >= date_trunc('week', current_date)
	             AND date <  date_trunc('week', current_date) + interval '7 days'),
	        (SELECT COALESCE(sum(amount_cents), 0) FROM payments)`
	var s DashboardStats
	if err := a.DB.QueryRow(ctx, q).Scan(
		&s.TraineeCount, &s.TrainerCount, &s.CourseCount, &s.SessionCount,
		&s.RoomCount, &s.ActiveEnrollments, &s.PlannedThisWeek, &s.RevenueCents); err != nil {
		return nil, err
	}
	return &s, nil
}
