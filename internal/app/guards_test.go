package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

func TestEnrollmentAdmission_CapacityBoundary(t *testing.T) {
	// last seat is admissible, one past capacity is not
	assert.NoError(t, enrollmentAdmission(10, 9, 0))

	err := enrollmentAdmission(10, 10, 0)
	var cerr *scheduling.ConflictError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, "session_full", cerr.Reason)

	// overfull sessions stay closed
	err = enrollmentAdmission(10, 12, 0)
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, "session_full", cerr.Reason)
}

func TestEnrollmentAdmission_Duplicate(t *testing.T) {
	err := enrollmentAdmission(10, 3, 1)
	var cerr *scheduling.ConflictError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, "already_enrolled", cerr.Reason)
}

func TestEnrollmentAdmission_FullBeatsDuplicate(t *testing.T) {
	// a full session is reported as full even for an already-enrolled trainee
	err := enrollmentAdmission(5, 5, 1)
	var cerr *scheduling.ConflictError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, "session_full", cerr.Reason)
}

func TestReferencedGuard(t *testing.T) {
	assert.NoError(t, referencedGuard("trainer", 0))

	err := referencedGuard("trainer", 2)
	var cerr *scheduling.ConflictError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, "trainer_referenced", cerr.Reason)

	err = referencedGuard("room", 1)
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, "room_referenced", cerr.Reason)
	assert.Contains(t, cerr.Message, "room")
}
