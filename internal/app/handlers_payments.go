package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /payments?trainee_id=
func (a *App) ListPaymentsHandler(c *gin.Context) {
	traineeID, ok := queryInt64(c, "trainee_id")
	if !ok {
		return
	}
	payments, err := a.ListPayments(c.Request.Context(), traineeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

type paymentReq struct {
	TraineeID   int64  `json:"trainee_id" binding:"required"`
	SessionID   int64  `json:"session_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required"`
	Reference   string `json:"reference"`
	PaidAt      string `json:"paid_at"`
}

// POST /payments
func (a *App) CreatePaymentHandler(c *gin.Context) {
	var req paymentReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := Payment{TraineeID: req.TraineeID, SessionID: req.SessionID,
		AmountCents: req.AmountCents, Method: req.Method, Reference: req.Reference}
	if req.PaidAt != "" {
		ts, err := time.Parse(time.RFC3339, req.PaidAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paid_at, expected RFC 3339"})
			return
		}
		p.PaidAt = ts
	}
	if err := a.InsertPayment(c.Request.Context(), &p); err != nil {
		respondError(c, err)
		return
	}
	a.invalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, p)
}
