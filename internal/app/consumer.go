package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-cuti/internal/events"
	"go-cuti/internal/leavehistory"
	"go-cuti/internal/messaging/kafka/consumer"
	"go-cuti/internal/shared/connection"

	"go.uber.org/zap"
)

const historyConsumerGroup = "go-cuti-leave-history"

func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	cache := leavehistory.NewSnapshotCache(redisClient, cfg.CacheTTL)

	reader := connection.NewKafkaGroupReader(
		cfg.KafkaBroker,
		historyConsumerGroup,
		events.LeaveLifecycleTopic,
		events.EmployeeLifecycleTopic,
	)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeHistoryInvalidation(ctx, reader, cache, consumer.Backoff{}, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
