package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// GET /trainees
func (a *App) ListTraineesHandler(c *gin.Context) {
	trainees, err := a.ListTrainees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainees)
}

type traineeReq struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
}

// POST /trainees
func (a *App) CreateTraineeHandler(c *gin.Context) {
	var req traineeReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := Trainee{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Phone: req.Phone, Status: req.Status}
	if err := a.InsertTrainee(c.Request.Context(), &t); err != nil {
		respondError(c, err)
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, t)
}

// GET /trainees/:id
func (a *App) GetTraineeHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := a.GetTrainee(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// PUT /trainees/:id
func (a *App) UpdateTraineeHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req traineeReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := Trainee{ID: id, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Phone: req.Phone, Status: req.Status}
	if err := a.UpdateTrainee(c.Request.Context(), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "trainee not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /trainees/:id
func (a *App) DeleteTraineeHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := a.DeleteTrainee(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "trainee not found"})
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
