package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// GET /courses
func (a *App) ListCoursesHandler(c *gin.Context) {
	courses, err := a.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

type courseReq struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	DurationHours int    `json:"duration_hours" binding:"required,gt=0"`
	PriceCents    int64  `json:"price_cents"`
}

// POST /courses
func (a *App) CreateCourseHandler(c *gin.Context) {
	var req courseReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course := Course{Title: req.Title, Description: req.Description, DurationHours: req.DurationHours, PriceCents: req.PriceCents}
	if err := a.InsertCourse(c.Request.Context(), &course); err != nil {
		respondError(c, err)
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, course)
}

// GET /courses/:id
func (a *App) GetCourseHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	course, err := a.GetCourse(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// PUT /courses/:id
func (a *App) UpdateCourseHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req courseReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course := Course{ID: id, Title: req.Title, Description: req.Description, DurationHours: req.DurationHours, PriceCents: req.PriceCents}
	if err := a.UpdateCourse(c.Request.Context(), &course); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// DELETE /courses/:id
func (a *App) DeleteCourseHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := a.DeleteCourse(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
