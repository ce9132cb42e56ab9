package app

import "time"

type Trainee struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Trainer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Course struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	DurationHours int       `json:"duration_hours"`
	PriceCents    int64     `json:"price_cents"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

type Session struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	TrainerID int64     `json:"trainer_id"`
	RoomID    *int64    `json:"room_id,omitempty"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"`
	Equipment string    `json:"equipment,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Enrollment struct {
	ID         int64     `json:"id"`
	SessionID  int64     `json:"session_id"`
	TraineeID  int64     `json:"trainee_id"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolled_at,omitempty"`
}

type AttendanceRecord struct {
	ID         int64  `json:"id"`
	PlanningID string `json:"planning_id"`
	TraineeID  int64  `json:"trainee_id"`
	Present    bool   `json:"present"`
	Note       string `json:"note,omitempty"`
}

type Payment struct {
	ID          int64     `json:"id"`
	TraineeID   int64     `json:"trainee_id"`
	SessionID   int64     `json:"session_id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference,omitempty"`
	PaidAt      time.Time `json:"paid_at,omitempty"`
}

// DashboardStats is the cached aggregate block behind GET /api/stats/dashboard.
type DashboardStats struct {
	TraineeCount      int   `json:"trainee_count"`
	TrainerCount      int   `json:"trainer_count"`
	CourseCount       int   `json:"course_count"`
	SessionCount      int   `json:"session_count"`
	RoomCount         int   `json:"room_count"`
	ActiveEnrollments int   `json:"active_enrollments"`
	PlannedThisWeek   int   `json:"planned_this_week"`
	RevenueCents      int64 `json:"revenue_cents"`
}
