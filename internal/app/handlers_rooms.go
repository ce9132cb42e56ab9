package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

// GET /rooms
func (a *App) ListRoomsHandler(c *gin.Context) {
	rooms, err := a.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type roomReq struct {
	Name      string `json:"name" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,gt=0"`
	Status    string `json:"status"`
	Equipment string `json:"equipment"`
}

func validRoomStatus(s string) bool {
	switch s {
	case "", scheduling.RoomAvailable, scheduling.RoomMaintenance, scheduling.RoomUnavailable:
		return true
	}
	return false
}

// POST /rooms
func (a *App) CreateRoomHandler(c *gin.Context) {
	var req roomReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validRoomStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room status"})
		return
	}
	room := Room{Name: req.Name, Capacity: req.Capacity, Status: req.Status, Equipment: req.Equipment}
	if err := a.InsertRoom(c.Request.Context(), &room); err != nil {
		respondError(c, err)
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, room)
}

// GET /rooms/:id
func (a *App) GetRoomHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, err := a.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// PUT /rooms/:id
func (a *App) UpdateRoomHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req roomReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validRoomStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room status"})
		return
	}
	room := Room{ID: id, Name: req.Name, Capacity: req.Capacity, Status: req.Status, Equipment: req.Equipment}
	if room.Status == "" {
		room.Status = scheduling.RoomAvailable
	}
	if err := a.UpdateRoom(c.Request.Context(), &room); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DELETE /rooms/:id — blocked while non-cancelled plannings reference the room.
func (a *App) DeleteRoomHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := a.DeleteRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
