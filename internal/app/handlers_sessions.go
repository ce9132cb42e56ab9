package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// GET /sessions
func (a *App) ListSessionsHandler(c *gin.Context) {
	sessions, err := a.ListSessions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

type sessionReq struct {
	CourseID  int64  `json:"course_id" binding:"required"`
	TrainerID int64  `json:"trainer_id" binding:"required"`
	RoomID    *int64 `json:"room_id"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,gt=0"`
	Status    string `json:"status"`
}

func (r *sessionReq) validateDates() error {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return errors.New("invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return errors.New("invalid end_date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return errors.New("end_date must not precede start_date")
	}
	return nil
}

// POST /sessions
func (a *App) CreateSessionHandler(c *gin.Context) {
	var req sessionReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validateDates(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := Session{CourseID: req.CourseID, TrainerID: req.TrainerID, RoomID: req.RoomID,
		StartDate: req.StartDate, EndDate: req.EndDate, Capacity: req.Capacity, Status: req.Status}
	if err := a.InsertSession(c.Request.Context(), &s); err != nil {
		respondError(c, err)
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, s)
}

// GET /sessions/:id
func (a *App) GetSessionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s, err := a.GetSession(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// PUT /sessions/:id
func (a *App) UpdateSessionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req sessionReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validateDates(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := Session{ID: id, CourseID: req.CourseID, TrainerID: req.TrainerID, RoomID: req.RoomID,
		StartDate: req.StartDate, EndDate: req.EndDate, Capacity: req.Capacity, Status: req.Status}
	if s.Status == "" {
		s.Status = "scheduled"
	}
	if err := a.UpdateSession(c.Request.Context(), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /sessions/:id — plannings cascade with the session.
func (a *App) DeleteSessionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := a.DeleteSession(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /sessions/:id/enrollments
func (a *App) ListEnrollmentsHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	enrollments, err := a.ListEnrollments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

type enrollmentReq struct {
	TraineeID int64 `json:"trainee_id" binding:"required"`
}

// POST /sessions/:id/enrollments
func (a *App) CreateEnrollmentHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req enrollmentReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e := Enrollment{SessionID: id, TraineeID: req.TraineeID}
	if err := a.CreateEnrollment(c.Request.Context(), &e); err != nil {
		respondError(c, err)
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, e)
}

// DELETE /enrollments/:id
func (a *App) CancelEnrollmentHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cancelled, err := a.CancelEnrollment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !cancelled {
		c.JSON(http.StatusNotFound, gin.H{"error": "enrollment not found"})
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
