package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/cache"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/config"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/events"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/scheduling"
)

// App holds the service dependencies. Cache and Producer may be nil; everything
// that uses them degrades to a no-op.
type App struct {
	DB       *pgxpool.Pool
	Cache    *cache.Cache
	Producer *events.Producer
	Planner  *scheduling.Planner
	Logger   *slog.Logger
	Cfg      *config.Config
}

func New(db *pgxpool.Pool, c *cache.Cache, producer *events.Producer, logger *slog.Logger, cfg *config.Config) *App {
	a := &App{DB: db, Cache: c, Producer: producer, Logger: logger, Cfg: cfg}
	a.Planner = scheduling.NewPlanner(a)
	return a
}

// publishPlanningEvent emits a lifecycle event when a producer is configured.
// Publish failures are logged, never surfaced to the request.
func (a *App) publishPlanningEvent(ctx context.Context, eventType string, p *scheduling.Planning) {
	if a.Producer == nil || a.Cfg == nil || a.Cfg.Kafka.PlanningTopic == "" {
		return
	}
	event := events.PlanningEvent{
		Type:       eventType,
		PlanningID: p.ID,
		SessionID:  p.SessionID,
		TrainerID:  p.TrainerID,
		RoomID:     p.RoomID,
		Date:       p.Date,
		StartTime:  p.Start,
		EndTime:    p.End,
		Status:     p.Status,
	}
	if err := a.Producer.Publish(ctx, a.Cfg.Kafka.PlanningTopic, p.ID, event); err != nil {
		a.Logger.Warn("publish planning event failed", "type", eventType, "planning_id", p.ID, "err", err)
	}
}

func (a *App) invalidateDashboard(ctx context.Context) {
	if err := a.Cache.Delete(ctx, cache.DashboardKey()); err != nil {
		a.Logger.Warn("dashboard cache invalidation failed", "err", err)
	}
}

// respondError maps domain errors to HTTP statuses with the teacher-style
// {"error": ...} body. Conflict responses carry the machine-readable reason code.
func respondError(c *gin.Context, err error) {
	var verr *scheduling.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	var nf *scheduling.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}
	var cerr *scheduling.ConflictError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusConflict, gin.H{"error": cerr.Message, "reason": cerr.Reason})
		return
	}
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
