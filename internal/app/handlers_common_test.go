package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestParseID(t *testing.T) {
	c, w := testContext(t, "/x")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := parseID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseID_Rejects(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3", ""} {
		c, w := testContext(t, "/x")
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := parseID(c, "id")
		assert.False(t, ok, "value %q", raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestQueryInt64_AbsentIsZero(t *testing.T) {
	c, _ := testContext(t, "/x")
	v, ok := queryInt64(c, "trainer_id")
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestQueryInt64_Present(t *testing.T) {
	c, _ := testContext(t, "/x?trainer_id=7")
	v, ok := queryInt64(c, "trainer_id")
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)
}

func TestQueryInt64_Invalid(t *testing.T) {
	c, w := testContext(t, "/x?trainer_id=oops")
	_, ok := queryInt64(c, "trainer_id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondError_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &scheduling.ValidationError{Field: "start_time", Reason: "bad"}, http.StatusBadRequest},
		{"not found", &scheduling.NotFoundError{Entity: "room", ID: 9}, http.StatusNotFound},
		{"conflict", &scheduling.ConflictError{Reason: scheduling.ReasonTrainerBusy, Message: "busy"}, http.StatusConflict},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext(t, "/x")
			respondError(c, tc.err)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestRespondError_ConflictCarriesReason(t *testing.T) {
	c, w := testContext(t, "/x")
	respondError(c, &scheduling.ConflictError{Reason: scheduling.ReasonRoomBusy, Message: "room occupied"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), scheduling.ReasonRoomBusy)
	assert.Contains(t, w.Body.String(), "room occupied")
}

func TestValidRoomStatus(t *testing.T) {
	assert.True(t, validRoomStatus(""))
	assert.True(t, validRoomStatus(scheduling.RoomAvailable))
	assert.True(t, validRoomStatus(scheduling.RoomMaintenance))
	assert.True(t, validRoomStatus(scheduling.RoomUnavailable))
	assert.False(t, validRoomStatus("open"))
}

func TestAvailabilityReqToWindow(t *testing.T) {
	req := availabilityReq{Weekday: 2, StartTime: "9:00", EndTime: "17:00"}
	w, err := req.toWindow(5)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), w.TrainerID)
	assert.Equal(t, "09:00", w.Start)
	assert.Equal(t, "17:00", w.End)
	assert.True(t, w.Active)
}

func TestAvailabilityReqToWindow_BadWeekday(t *testing.T) {
	req := availabilityReq{Weekday: 7, StartTime: "09:00", EndTime: "17:00"}
	_, err := req.toWindow(5)
	var verr *scheduling.ValidationError
	assert.ErrorAs(t, err, &verr)
}
