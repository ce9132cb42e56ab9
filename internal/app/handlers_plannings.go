package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/events"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

// GET /plannings?session_id=&trainer_id=&room_id=&from=&to=
func (a *App) ListPlanningsHandler(c *gin.Context) {
	var f PlanningFilter
	var ok bool
	if f.SessionID, ok = queryInt64(c, "session_id"); !ok {
		return
	}
	if f.TrainerID, ok = queryInt64(c, "trainer_id"); !ok {
		return
	}
	if f.RoomID, ok = queryInt64(c, "room_id"); !ok {
		return
	}
	f.From = c.Query("from")
	f.To = c.Query("to")

	plannings, err := a.ListPlannings(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plannings)
}

type planningReq struct {
	SessionID int64  `json:"session_id"`
	TrainerID int64  `json:"trainer_id"`
	RoomID    *int64 `json:"room_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes"`
}

// POST /plannings — single creation, fails fast on the first conflict.
func (a *App) CreatePlanningHandler(c *gin.Context) {
	var req planningReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	planning, warnings, err := a.Planner.Create(ctx, scheduling.CreateInput{
		SessionID: req.SessionID,
		TrainerID: req.TrainerID,
		RoomID:    req.RoomID,
		Date:      req.Date,
		Start:     req.StartTime,
		End:       req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	a.publishPlanningEvent(ctx, events.EventPlanningCreated, planning)
	a.invalidateDashboard(ctx)

	resp := gin.H{"planning": planning}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	c.JSON(http.StatusCreated, resp)
}

type rescheduleReq struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes"`
}

// applyReschedule folds the request into the stored planning. Absent fields keep
// their value; notes is a pointer so an explicit empty string clears it. The
// resulting time range is normalized and the status validated.
func applyReschedule(p *scheduling.Planning, req rescheduleReq) error {
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return &scheduling.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
		}
		p.Date = req.Date
	}
	if req.StartTime != "" {
		p.Start = req.StartTime
	}
	if req.EndTime != "" {
		p.End = req.EndTime
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.Status != "" {
		switch req.Status {
		case scheduling.StatusPlanned, scheduling.StatusCompleted, scheduling.StatusCancelled:
			p.Status = req.Status
		default:
			return &scheduling.ValidationError{Field: "status", Reason: "invalid status"}
		}
	}
	start, end, err := scheduling.NormalizeRange(p.Start, p.End)
	if err != nil {
		return err
	}
	p.Start, p.End = start, end
	return nil
}

// PUT /plannings/:id — reschedule and/or status transition. The new slot passes the
// same availability-containment check as creation, and the moved planning is excluded
// from its own overlap scan.
func (a *App) UpdatePlanningHandler(c *gin.Context) {
	id := c.Param("id")
	var req rescheduleReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	planning, err := a.GetPlanning(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "planning not found"})
			return
		}
		respondError(c, err)
		return
	}

	if err := applyReschedule(planning, req); err != nil {
		respondError(c, err)
		return
	}

	if planning.Status != scheduling.StatusCancelled {
		day, _ := time.Parse("2006-01-02", planning.Date)
		windows, err := a.TrainerWindows(ctx, planning.TrainerID, int(day.Weekday()), true)
		if err != nil {
			respondError(c, err)
			return
		}
		if !scheduling.HasCoveringWindow(windows, planning.Start, planning.End) {
			c.JSON(http.StatusConflict, gin.H{"error": "no declared availability covers the new slot", "reason": scheduling.ReasonTrainerUnavailable})
			return
		}

		busy, err := a.overlapExistsExcluding(ctx, planning.TrainerID, planning.RoomID,
			planning.Date, planning.Start, planning.End, planning.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		if busy {
			c.JSON(http.StatusConflict, gin.H{"error": "new slot overlaps an existing planning", "reason": scheduling.ReasonSlotTaken})
			return
		}
	}

	if err := a.ReschedulePlanning(ctx, planning); err != nil {
		respondError(c, err)
		return
	}

	a.publishPlanningEvent(ctx, events.EventPlanningUpdated, planning)
	a.invalidateDashboard(ctx)
	c.JSON(http.StatusOK, planning)
}

// DELETE /plannings/:id — cancels rather than deletes, so history survives.
func (a *App) CancelPlanningHandler(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	planning, err := a.CancelPlanning(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "planning not found"})
			return
		}
		respondError(c, err)
		return
	}

	a.publishPlanningEvent(ctx, events.EventPlanningCancelled, planning)
	a.invalidateDashboard(ctx)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type generateWeekReq struct {
	TrainerID int64  `json:"trainer_id"`
	RoomID    *int64 `json:"room_id"`
	StartDate string `json:"start_date"`
	Weekdays  []int  `json:"weekdays"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes"`
}

// POST /sessions/:id/plannings/generate-week — expands a weekday set over the next
// 7 days. Partial success is the normal outcome; the response carries both the
// created plannings and the per-day conflicts.
func (a *App) GenerateWeekHandler(c *gin.Context) {
	sessionID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req generateWeekReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	result, err := a.Planner.GenerateWeek(ctx, scheduling.WeekInput{
		SessionID: sessionID,
		TrainerID: req.TrainerID,
		RoomID:    req.RoomID,
		StartDate: req.StartDate,
		Weekdays:  req.Weekdays,
		Start:     req.StartTime,
		End:       req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	for i := range result.Created {
		a.publishPlanningEvent(ctx, events.EventPlanningCreated, &result.Created[i])
	}
	if len(result.Created) > 0 {
		a.invalidateDashboard(ctx)
	}
	c.JSON(http.StatusCreated, result)
}

// POST /plannings/check-conflicts — dry run; reports every finding at once.
func (a *App) CheckConflictsHandler(c *gin.Context) {
	var req planningReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	findings, err := a.Planner.CheckSlot(c.Request.Context(), scheduling.CreateInput{
		SessionID: req.SessionID,
		TrainerID: req.TrainerID,
		RoomID:    req.RoomID,
		Date:      req.Date,
		Start:     req.StartTime,
		End:       req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": findings, "ok": len(findings) == 0})
}

type attendanceReq struct {
	TraineeID int64  `json:"trainee_id" binding:"required"`
	Present   bool   `json:"present"`
	Note      string `json:"note"`
}

// GET /plannings/:id/attendance
func (a *App) ListAttendanceHandler(c *gin.Context) {
	id := c.Param("id")
	records, err := a.ListAttendance(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// POST /plannings/:id/attendance — accepts a sheet of records for the planning.
func (a *App) RecordAttendanceHandler(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if _, err := a.GetPlanning(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "planning not found"})
			return
		}
		respondError(c, err)
		return
	}

	var payload []attendanceReq
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var saved []AttendanceRecord
	for _, item := range payload {
		r := AttendanceRecord{PlanningID: id, TraineeID: item.TraineeID, Present: item.Present, Note: item.Note}
		if err := a.UpsertAttendance(ctx, &r); err != nil {
			respondError(c, err)
			return
		}
		saved = append(saved, r)
	}
	c.JSON(http.StatusCreated, saved)
}
