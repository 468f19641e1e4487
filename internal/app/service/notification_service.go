package service

import (
	"context"
	"encoding/json"
	"strings"

	"jobtrack/internal/domain/model"
	"jobtrack/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// EmailSender delivers a single plain-text email.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ConnectionRegistry pushes an event to a connected user's live channel.
// The bool result reports whether the user had a live connection.
type ConnectionRegistry interface {
	Send(userID string, event model.NotificationEvent) bool
}

// Notifier is the fire-and-forget notification contract used by the CRUD
// services: calls never block on delivery and never fail the caller.
type Notifier interface {
	Notify(target, subject, body string)
}

// NotificationService routes a notification to either the email transport or
// a live connection. A target containing "@" is an email address; anything
// else is treated as a user id. When a Redis client is present, Notify only
// enqueues and the worker drains the queue; without Redis, dispatch happens
// on a goroutine. Delivery is best-effort in both modes.
type NotificationService struct {
	rdb       *redis.Client
	queueName string
	mailer    EmailSender
	registry  ConnectionRegistry
}

func NewNotificationService(rdb *redis.Client, queueName string, mailer EmailSender, registry ConnectionRegistry) *NotificationService {
	return &NotificationService{
		rdb:       rdb,
		queueName: queueName,
		mailer:    mailer,
		registry:  registry,
	}
}

func (s *NotificationService) Notify(target, subject, body string) {
	if target == "" {
		return
	}
	task := model.NotificationTask{Target: target, Subject: subject, Body: body}

	if s.rdb == nil {
		go s.Dispatch(context.Background(), task)
		return
	}

	payload, err := json.Marshal(task)
	if err != nil {
		logger.Log.Errorw("failed to marshal notification task", "target", target, "error", err)
		return
	}
	if err := s.rdb.LPush(context.Background(), s.queueName, payload).Err(); err != nil {
		logger.Log.Errorw("failed to enqueue notification", "target", target, "error", err)
	}
}

// Dispatch performs the actual routing for one task. Errors are logged and
// absorbed here; nothing propagates to the triggering operation.
func (s *NotificationService) Dispatch(ctx context.Context, task model.NotificationTask) {
	if strings.Contains(task.Target, "@") {
		if s.mailer == nil {
			logger.Log.Warnw("no mail transport configured, dropping email notification", "to", task.Target)
			return
		}
		if err := s.mailer.Send(ctx, task.Target, task.Subject, task.Body); err != nil {
			logger.Log.Errorw("error sending email notification", "to", task.Target, "error", err)
		}
		return
	}

	if s.registry == nil {
		return
	}
	if s.registry.Send(task.Target, model.NotificationEvent{Message: task.Body}) {
		logger.Log.Infow("sent panel notification", "user_id", task.Target)
	}
	// User not connected: dropped silently, there is no queuing of missed
	// panel notifications.
}
