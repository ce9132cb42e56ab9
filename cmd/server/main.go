package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/app"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/cache"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/config"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/events"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("failed to load config", "path", configPath, "err", err)
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = cfg.Database.DSN()
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Error("failed to connect to db", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis, time.Duration(cfg.Stats.CacheTTLSeconds)*time.Second)
	}

	var producer *events.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = events.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
	}

	a := app.New(pool, c, producer, logger, cfg)

	router := gin.Default()

	// Unauthenticated: health probe and the OAuth2 callback, which Google calls
	// without our bearer token.
	router.GET("/healthz", a.HealthzHandler)
	router.GET("/oauth2callback", a.GoogleOAuth2CallbackHandler)

	router.Use(app.AuthMiddleware(cfg.Auth))

	api := router.Group("/api")
	{
		trainees := api.Group("/trainees")
		{
			trainees.GET("", a.ListTraineesHandler)
			trainees.POST("", a.CreateTraineeHandler)
			trainees.GET("/:id", a.GetTraineeHandler)
			trainees.PUT("/:id", a.UpdateTraineeHandler)
			trainees.DELETE("/:id", a.DeleteTraineeHandler)
		}

		trainers := api.Group("/trainers")
		{
			trainers.GET("", a.ListTrainersHandler)
			trainers.POST("", a.CreateTrainerHandler)
			trainers.GET("/:id", a.GetTrainerHandler)
			trainers.PUT("/:id", a.UpdateTrainerHandler)
			trainers.DELETE("/:id", a.DeleteTrainerHandler)
			trainers.GET("/:id/availabilities", a.ListAvailabilitiesHandler)
			trainers.POST("/:id/availabilities", a.CreateAvailabilitiesHandler)
			trainers.PUT("/:id/availabilities/:rule_id", a.UpdateAvailabilityHandler)
			trainers.POST("/:id/calendar/export", a.ExportTrainerCalendarHandler)
		}
		api.DELETE("/availabilities/:id", a.DeleteAvailabilityHandler)

		courses := api.Group("/courses")
		{
			courses.GET("", a.ListCoursesHandler)
			courses.POST("", a.CreateCourseHandler)
			courses.GET("/:id", a.GetCourseHandler)
			courses.PUT("/:id", a.UpdateCourseHandler)
			courses.DELETE("/:id", a.DeleteCourseHandler)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", a.ListRoomsHandler)
			rooms.POST("", a.CreateRoomHandler)
			rooms.GET("/:id", a.GetRoomHandler)
			rooms.PUT("/:id", a.UpdateRoomHandler)
			rooms.DELETE("/:id", a.DeleteRoomHandler)
		}

		sessions := api.Group("/sessions")
		{
			sessions.GET("", a.ListSessionsHandler)
			sessions.POST("", a.CreateSessionHandler)
			sessions.GET("/:id", a.GetSessionHandler)
			sessions.PUT("/:id", a.UpdateSessionHandler)
			sessions.DELETE("/:id", a.DeleteSessionHandler)
			sessions.GET("/:id/enrollments", a.ListEnrollmentsHandler)
			sessions.POST("/:id/enrollments", a.CreateEnrollmentHandler)
			sessions.POST("/:id/plannings/generate-week", a.GenerateWeekHandler)
		}
		api.DELETE("/enrollments/:id", a.CancelEnrollmentHandler)

		plannings := api.Group("/plannings")
		{
			plannings.GET("", a.ListPlanningsHandler)
			plannings.POST("", a.CreatePlanningHandler)
			plannings.POST("/check-conflicts", a.CheckConflictsHandler)
			plannings.PUT("/:id", a.UpdatePlanningHandler)
			plannings.DELETE("/:id", a.CancelPlanningHandler)
			plannings.GET("/:id/attendance", a.ListAttendanceHandler)
			plannings.POST("/:id/attendance", a.RecordAttendanceHandler)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", a.ListPaymentsHandler)
			payments.POST("", a.CreatePaymentHandler)
		}

		api.GET("/stats/dashboard", a.DashboardStatsHandler)
		api.GET("/calendar/auth", a.GoogleAuthHandler)
	}

	logger.Info("server starting", "addr", cfg.HTTP.Address)
	server.Run(router, cfg.HTTP.Address)
}
