package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/notifier"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// MessageService defines the interface for direct messaging
type MessageService interface {
	// Send delivers a message from the caller to another account
	Send(ctx context.Context, principal *domain.Principal, req *dto.SendMessageRequest) (*domain.Message, error)
	// Conversation lists messages exchanged between the caller and
	// another account, oldest first.
	Conversation(ctx context.Context, principal *domain.Principal, otherUserID int64) ([]*domain.Message, error)
	// MarkRead marks a message as read by its recipient
	MarkRead(ctx context.Context, principal *domain.Principal, id int64) error
}

// messageService implements MessageService
type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifier    notifier.Notifier
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, notifier notifier.Notifier) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// Send delivers a message from the caller to another account
func (s *messageService) Send(ctx context.Context, principal *domain.Principal, req *dto.SendMessageRequest) (*domain.Message, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.message.send")
	defer span.End()

	recipient, err := s.userRepo.GetByID(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, domain.ErrUserNotFound
	}

	message := &domain.Message{
		Content:     req.Content,
		SentDate:    time.Now(),
		SenderID:    principal.AccountID,
		RecipientID: recipient.ID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, &domain.Notification{
		Message:          "You have a new message",
		NotificationDate: time.Now(),
		RelatedURL:       fmt.Sprintf("/messages/conversation/%d", principal.AccountID),
		UserID:           recipient.ID,
	})
	return message, nil
}

// Conversation lists messages between the caller and another account
func (s *messageService) Conversation(ctx context.Context, principal *domain.Principal, otherUserID int64) ([]*domain.Message, error) {
	return s.messageRepo.ListConversation(ctx, principal.AccountID, otherUserID)
}

// MarkRead marks a message as read. Only the recipient may do so.
func (s *messageService) MarkRead(ctx context.Context, principal *domain.Principal, id int64) error {
	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return domain.ErrMessageNotFound
	}
	if message.RecipientID != principal.AccountID {
		return domain.ErrForbidden
	}
	return s.messageRepo.MarkRead(ctx, id)
}
