package scheduling

import (
	"errors"
	"fmt"
)

// Reason codes carried by ConflictError and batch conflict entries. The UI keys off
// these strings, keep them stable.
const (
	ReasonTrainerUnavailable = "trainer_unavailable"
	ReasonTrainerBusy        = "trainer_busy"
	ReasonRoomNonexistent    = "room_nonexistent"
	ReasonRoomUnavailable    = "room_unavailable"
	ReasonRoomBusy           = "room_busy"
	ReasonSlotTaken          = "slot_taken"
	ReasonPersistence        = "persistence_failed"
)

// ErrSlotTaken is returned by Store.InsertPlanning when the guarded insert finds an
// overlapping row that appeared after the planner's own checks.
var ErrSlotTaken = errors.New("slot already booked")

// ValidationError rejects a request before any data access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError reports a referenced trainer, room or session that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}

// ConflictError rejects a single-planning request with a machine-readable reason.
type ConflictError struct {
	Reason  string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
