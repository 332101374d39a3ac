package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/pkg/logger"
	"github.com/fokanendapascal/internship-management-app/pkg/redis"
	"github.com/fokanendapascal/internship-management-app/pkg/retry"
)

// Notifier records a notification for a user and pushes it to the
// user's topic so connected clients receive it in real time. Delivery
// is best-effort: a failure is logged but never fails the request that
// caused the notification.
type Notifier interface {
	Notify(ctx context.Context, notification *domain.Notification)
}

type redisNotifier struct {
	notificationRepo repository.NotificationRepository
	client           *redis.Client
	retrier          *retry.Retrier
	log              *logger.Logger
}

// NewRedisNotifier creates a Notifier that persists notifications and
// publishes them over Redis pub/sub. Publishes are retried with a short
// backoff before the notification is declared undeliverable.
func NewRedisNotifier(notificationRepo repository.NotificationRepository, client *redis.Client, log *logger.Logger) Notifier {
	return &redisNotifier{
		notificationRepo: notificationRepo,
		client:           client,
		retrier:          retry.New(retry.DefaultConfig()),
		log:              log,
	}
}

// Topic returns the pub/sub channel carrying a user's notifications.
func Topic(userID int64) string {
	return fmt.Sprintf("notifications:%d", userID)
}

func (n *redisNotifier) Notify(ctx context.Context, notification *domain.Notification) {
	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		n.log.Error("failed to persist notification",
			zap.Int64("user_id", notification.UserID),
			zap.Error(err),
		)
		return
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		n.log.Error("failed to encode notification", zap.Error(err))
		return
	}
	err = n.retrier.Do(ctx, func(ctx context.Context) error {
		return n.client.Publish(ctx, Topic(notification.UserID), payload)
	})
	if err != nil {
		n.log.Error("failed to publish notification",
			zap.Int64("user_id", notification.UserID),
			zap.Error(err),
		)
	}
}

// NopNotifier discards all notifications. Used when Redis is disabled.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, *domain.Notification) {}
