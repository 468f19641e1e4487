package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jobtrack/internal/app/service"
	"jobtrack/internal/domain/model"
	"jobtrack/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// NotificationWorker drains the notification queue and hands each task to
// the notification service for routing. Delivery is best-effort: a task that
// fails to decode or to deliver is logged and dropped, never retried.
type NotificationWorker struct {
	rdb       *redis.Client
	queueName string
	notifier  *service.NotificationService
}

func NewNotificationWorker(rdb *redis.Client, queueName string, notifier *service.NotificationService) *NotificationWorker {
	return &NotificationWorker{
		rdb:       rdb,
		queueName: queueName,
		notifier:  notifier,
	}
}

func (w *NotificationWorker) Start(ctx context.Context) {
	logger.Log.Infow("notification worker started", "queue", w.queueName)
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("notification worker stopping")
			return
		default:
			// Blocking pop from the Redis queue
			result, err := w.rdb.BRPop(ctx, 0*time.Second, w.queueName).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					continue
				}
				if errors.Is(err, redis.Nil) {
					time.Sleep(1 * time.Second)
					continue
				}
				logger.Log.Errorw("failed to pop from notification queue", "queue", w.queueName, "error", err)
				time.Sleep(5 * time.Second)
				continue
			}

			// result is [queueName, value]
			if len(result) < 2 || result[1] == "" {
				continue
			}

			var task model.NotificationTask
			if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
				logger.Log.Errorw("dropping malformed notification task", "payload", result[1], "error", err)
				continue
			}

			w.notifier.Dispatch(ctx, task)
		}
	}
}
