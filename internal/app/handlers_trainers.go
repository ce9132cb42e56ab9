package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

// GET /trainers
func (a *App) ListTrainersHandler(c *gin.Context) {
	trainers, err := a.ListTrainers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}

type trainerReq struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty"`
	Status    string `json:"status"`
}

// POST /trainers
func (a *App) CreateTrainerHandler(c *gin.Context) {
	var req trainerReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := Trainer{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Specialty: req.Specialty, Status: req.Status}
	if err := a.InsertTrainer(c.Request.Context(), &t); err != nil {
		respondError(c, err)
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, t)
}

// GET /trainers/:id
func (a *App) GetTrainerHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := a.GetTrainer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// PUT /trainers/:id
func (a *App) UpdateTrainerHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req trainerReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := Trainer{ID: id, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Specialty: req.Specialty, Status: req.Status}
	if err := a.UpdateTrainer(c.Request.Context(), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "trainer not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /trainers/:id — blocked while non-cancelled plannings reference the trainer.
func (a *App) DeleteTrainerHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := a.DeleteTrainer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "trainer not found"})
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /trainers/:id/availabilities
func (a *App) ListAvailabilitiesHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	windows, err := a.ListAvailabilities(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, windows)
}

type availabilityReq struct {
	Weekday    int     `json:"weekday"`
	StartTime  string  `json:"start_time" binding:"required"`
	EndTime    string  `json:"end_time" binding:"required"`
	Recurrence string  `json:"recurrence"`
	ValidFrom  *string `json:"valid_from"`
	ValidUntil *string `json:"valid_until"`
	Active     *bool   `json:"active"`
}

func (r *availabilityReq) toWindow(trainerID int64) (*scheduling.Window, error) {
	if r.Weekday < 0 || r.Weekday > 6 {
		return nil, &scheduling.ValidationError{Field: "weekday", Reason: "must be 0-6"}
	}
	start, end, err := scheduling.NormalizeRange(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &scheduling.Window{
		TrainerID:  trainerID,
		Weekday:    r.Weekday,
		Start:      start,
		End:        end,
		Recurrence: r.Recurrence,
		ValidFrom:  r.ValidFrom,
		ValidUntil: r.ValidUntil,
		Active:     active,
	}, nil
}

// POST /trainers/:id/availabilities — accepts a list of windows.
func (a *App) CreateAvailabilitiesHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload []availabilityReq
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	var saved []scheduling.Window
	for i := range payload {
		w, err := payload[i].toWindow(id)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := a.InsertAvailability(ctx, w); err != nil {
			respondError(c, err)
			return
		}
		saved = append(saved, *w)
	}
	c.JSON(http.StatusCreated, saved)
}

// PUT /trainers/:id/availabilities/:rule_id
func (a *App) UpdateAvailabilityHandler(c *gin.Context) {
	trainerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	ruleID, ok := parseID(c, "rule_id")
	if !ok {
		return
	}
	var req availabilityReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := req.toWindow(trainerID)
	if err != nil {
		respondError(c, err)
		return
	}
	w.ID = ruleID
	if err := a.UpdateAvailability(c.Request.Context(), w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "availability not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// DELETE /availabilities/:id
func (a *App) DeleteAvailabilityHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := a.DeleteAvailability(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "availability not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
