package consumer

import (
	"context"
	"encoding/json"
	"strings"

	"go-cuti/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader used by the consumers.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type SnapshotInvalidator interface {
	Invalidate(ctx context.Context, companyID string) error
}

// ConsumeHistoryInvalidation drops the cached leave history snapshot of every
// company named by a lifecycle event. A failed invalidation is retried with
// backoff before the next message is fetched, so offsets are committed in
// order. It returns when ctx is cancelled.
func ConsumeHistoryInvalidation(
	ctx context.Context,
	reader MessageReader,
	invalidator SnapshotInvalidator,
	backoff Backoff,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.history_invalidation")
	log.Info("history invalidation consumer started")

	fetchFailures := 0
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("history invalidation consumer stopped")
				return
			}
			fetchFailures++
			delay := backoff.Delay(fetchFailures)
			log.Error("fetch lifecycle message failed",
				zap.Int("attempt", fetchFailures),
				zap.Duration("retry_in", delay),
				zap.Error(err),
			)
			if !wait(ctx, delay) {
				log.Info("history invalidation consumer stopped")
				return
			}
			continue
		}
		fetchFailures = 0

		var event events.CompanyScopedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode lifecycle event failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			commit(ctx, reader, msg, log)
			continue
		}

		companyID := strings.TrimSpace(event.CompanyID)
		switch {
		case companyID == "":
			log.Warn("lifecycle event without company_id, skipping",
				zap.String("topic", msg.Topic),
				zap.String("event_type", event.EventType),
			)
			commit(ctx, reader, msg, log)
			continue
		case !event.AffectsHistory():
			log.Debug("lifecycle event ignored",
				zap.String("topic", msg.Topic),
				zap.String("event_type", event.EventType),
			)
			commit(ctx, reader, msg, log)
			continue
		}

		if !invalidateWithRetry(ctx, invalidator, companyID, backoff, log.With(
			zap.String("company_id", companyID),
			zap.String("event_type", event.EventType),
		)) {
			log.Info("history invalidation consumer stopped")
			return
		}

		if commit(ctx, reader, msg, log) {
			log.Info("leave history snapshot invalidated",
				zap.String("company_id", companyID),
				zap.String("event_type", event.EventType),
				zap.String("request_id", event.RequestID),
			)
		}
	}
}

// invalidateWithRetry keeps trying until the snapshot is dropped. It returns
// false only when ctx ends first.
func invalidateWithRetry(
	ctx context.Context,
	invalidator SnapshotInvalidator,
	companyID string,
	backoff Backoff,
	log *zap.Logger,
) bool {
	for attempt := 1; ; attempt++ {
		err := invalidator.Invalidate(ctx, companyID)
		if err == nil {
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		delay := backoff.Delay(attempt)
		log.Error("invalidate leave history snapshot failed",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)
		if !wait(ctx, delay) {
			return false
		}
	}
}

func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit lifecycle message failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return false
	}
	return true
}
