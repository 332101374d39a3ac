package service

import (
	"context"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
)

// NotificationService defines the interface for per-user notifications
type NotificationService interface {
	// ListForUser lists the caller's notifications, newest first
	ListForUser(ctx context.Context, principal *domain.Principal) ([]*domain.Notification, error)
	// MarkRead marks one of the caller's notifications as read
	MarkRead(ctx context.Context, principal *domain.Principal, id int64) error
	// Delete removes one of the caller's notifications
	Delete(ctx context.Context, principal *domain.Principal, id int64) error
}

// notificationService implements NotificationService
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// ListForUser lists the caller's notifications
func (s *notificationService) ListForUser(ctx context.Context, principal *domain.Principal) ([]*domain.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, principal.AccountID)
}

// MarkRead marks one of the caller's notifications as read
func (s *notificationService) MarkRead(ctx context.Context, principal *domain.Principal, id int64) error {
	notification, err := s.owned(ctx, principal, id)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, notification.ID)
}

// Delete removes one of the caller's notifications
func (s *notificationService) Delete(ctx context.Context, principal *domain.Principal, id int64) error {
	notification, err := s.owned(ctx, principal, id)
	if err != nil {
		return err
	}
	return s.notificationRepo.Delete(ctx, notification.ID)
}

func (s *notificationService) owned(ctx context.Context, principal *domain.Principal, id int64) (*domain.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, domain.ErrNotificationNotFound
	}
	if notification.UserID != principal.AccountID {
		return nil, domain.ErrForbidden
	}
	return notification, nil
}
