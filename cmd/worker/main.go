package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/config"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/email"
	"github.com/hamzaht1/centre-formation-app-sub000/internal/events"
)

// The worker consumes planning lifecycle events and turns them into trainer
// notifications. It is a separate binary so the API server never blocks on
// notification delivery.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("failed to load config", "path", configPath, "err", err)
		os.Exit(1)
	}
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.PlanningTopic == "" {
		logger.Error("kafka brokers and planning_topic are required for the worker")
		os.Exit(1)
	}

	consumer := events.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.PlanningTopic)
	defer consumer.Close()

	sender := email.NewSender()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("worker starting", "topic", cfg.Kafka.PlanningTopic, "group", cfg.Kafka.GroupID)

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafka.Message) error {
		var event events.PlanningEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warn("skipping malformed event", "offset", msg.Offset, "err", err)
			return nil
		}
		if err := sender.Send(ctx, event); err != nil {
			logger.Error("notification failed", "planning_id", event.PlanningID, "err", err)
			return nil
		}
		logger.Info("notification sent", "type", event.Type, "planning_id", event.PlanningID)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("worker shut down")
}
