package app

import (
	"fmt"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

// enrollmentAdmission decides whether a trainee may take a seat, given the session
// capacity, the non-cancelled seats already taken and the trainee's own
// non-cancelled enrollment count for the session.
func enrollmentAdmission(capacity, taken, existing int) error {
	if taken >= capacity {
		return &scheduling.ConflictError{Reason: "session_full", Message: "session is at capacity"}
	}
	if existing > 0 {
		return &scheduling.ConflictError{Reason: "already_enrolled", Message: "trainee already enrolled in session"}
	}
	return nil
}

// referencedGuard blocks deletion of a trainer or room still referenced by
// non-cancelled plannings.
func referencedGuard(entity string, refs int) error {
	if refs == 0 {
		return nil
	}
	return &scheduling.ConflictError{
		Reason:  entity + "_referenced",
		Message: fmt.Sprintf("%s has non-cancelled plannings", entity),
	}
}
