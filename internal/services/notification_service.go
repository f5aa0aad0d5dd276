package services

import (
	"context"
	"fmt"
	"time"

	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/repositories"
)

// Notifier is the sink the engine emits user-visible notices into.
// Delivery guarantees belong to the implementation, not the engine.
type Notifier interface {
	Emit(ctx context.Context, recipientID, message string) error
}

// NotificationService stores admin notices and implements Notifier on top of
// the relational store.
type NotificationService struct {
	notifications repositories.AdminNotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifications repositories.AdminNotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Emit records a notice for the recipient.
func (s *NotificationService) Emit(ctx context.Context, recipientID, message string) error {
	return s.notifications.Create(ctx, &models.AdminNotification{
		RecipientID: recipientID,
		Message:     message,
		IsRead:      false,
		CreatedAt:   time.Now(),
	})
}

// ListForRecipient returns a user's notices, newest first.
func (s *NotificationService) ListForRecipient(ctx context.Context, userID string) ([]models.AdminNotification, error) {
	return s.notifications.ListForRecipient(ctx, userID)
}

// UnreadCount returns the number of unread notices for a user.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notifications.UnreadCount(ctx, userID)
}

// MarkRead marks a single notice as read.
func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	return s.notifications.MarkRead(ctx, id)
}

// MarkAllRead marks all of a user's notices as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notifications.MarkAllRead(ctx, userID)
}

// Delete removes a notice. Only the recipient can delete their own notices;
// anything else reports ErrNotFound, matching a lookup scoped to the actor.
func (s *NotificationService) Delete(ctx context.Context, id uint, actorID string) error {
	deleted, err := s.notifications.DeleteForRecipient(ctx, id, actorID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: notification does not exist for this user", ErrNotFound)
	}
	return nil
}
