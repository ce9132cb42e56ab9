package scheduling

import "context"

// ResourceKind identifies which side of a planning entry a conflict scan targets.
type ResourceKind string

const (
	ResourceTrainer ResourceKind = "trainer"
	ResourceRoom    ResourceKind = "room"
)

// Planning statuses. Cancelled entries are invisible to the conflict detector.
const (
	StatusPlanned   = "planned"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Room statuses. Anything but "available" blocks new plannings regardless of time.
const (
	RoomAvailable   = "available"
	RoomMaintenance = "maintenance"
	RoomUnavailable = "unavailable"
)

// Trainer statuses.
const (
	TrainerActive   = "active"
	TrainerInactive = "inactive"
)

// Window is a trainer's recurring open range on a given weekday (0=Sunday..6=Saturday).
// Start and End are normalized "HH:MM" strings.
type Window struct {
	ID         int64   `json:"id"`
	TrainerID  int64   `json:"trainer_id"`
	Weekday    int     `json:"weekday"`
	Start      string  `json:"start_time"`
	End        string  `json:"end_time"`
	Recurrence string  `json:"recurrence"`
	ValidFrom  *string `json:"valid_from,omitempty"`
	ValidUntil *string `json:"valid_until,omitempty"`
	Active     bool    `json:"active"`
}

// Entry is an existing non-cancelled planning row as seen by the conflict detector.
type Entry struct {
	ID        string
	SessionID int64
	Start     string
	End       string
}

// Planning is a scheduled occurrence of a trainer teaching a session, optionally in a room.
type Planning struct {
	ID        string `json:"id"`
	SessionID int64  `json:"sessionId"`
	TrainerID int64  `json:"trainerId"`
	RoomID    *int64 `json:"roomId,omitempty"`
	Date      string `json:"date"`
	Start     string `json:"startTime"`
	End       string `json:"endTime"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

type TrainerInfo struct {
	ID     int64
	Name   string
	Status string
}

type RoomInfo struct {
	ID       int64
	Name     string
	Capacity int
	Status   string
}

type SessionInfo struct {
	ID        int64
	CourseID  int64
	TrainerID int64
	RoomID    *int64
	StartDate string
	EndDate   string
}

// Store is the data access contract the planner runs against. Lookup methods return
// (nil, nil) when the row does not exist. EntriesFor must exclude cancelled plannings.
// InsertPlanning must guard the insert against concurrent overlapping writes and return
// ErrSlotTaken when it loses that race.
type Store interface {
	TrainerByID(ctx context.Context, id int64) (*TrainerInfo, error)
	RoomByID(ctx context.Context, id int64) (*RoomInfo, error)
	SessionByID(ctx context.Context, id int64) (*SessionInfo, error)
	TrainerWindows(ctx context.Context, trainerID int64, weekday int, activeOnly bool) ([]Window, error)
	EntriesFor(ctx context.Context, kind ResourceKind, resourceID int64, date string) ([]Entry, error)
	InsertPlanning(ctx context.Context, p *Planning) error
}
