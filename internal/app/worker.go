package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/messaging/kafka/producer"
	"go-attendance/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker drains the outbox to the broker until a shutdown signal
// arrives.
func RunWorker(logger *zap.Logger) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "attendance"),
		getenv("DB_PORT", "5432"),
		getenv("DB_SSLMODE", "disable"),
		getenvInt("DB_MAX_RETRIES", 5),
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	writer, err := connection.ConnectKafkaWithRetry(
		getenv("KAFKA_BROKER", "localhost:9092"),
		getenvInt("KAFKA_MAX_RETRIES", 5),
	)
	if err != nil {
		return err
	}
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info("worker shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	pollInterval := time.Duration(getenvInt("OUTBOX_POLL_SECONDS", 3)) * time.Second
	producer.ProcessOutboxEvents(ctx, outboxRepo, writer, logger, pollInterval)
	return nil
}
