package repositories

import (
	"context"

	"github.com/navid88/opencircle/backend/internal/models"
	"gorm.io/gorm"
)

// AdminNotificationRepository defines the interface for admin notice operations
type AdminNotificationRepository interface {
	Create(ctx context.Context, notification *models.AdminNotification) error
	ListForRecipient(ctx context.Context, recipientID string) ([]models.AdminNotification, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context, recipientID string) error
	DeleteForRecipient(ctx context.Context, id uint, recipientID string) (bool, error)
}

type gormAdminNotificationRepository struct {
	db *gorm.DB
}

// NewAdminNotificationRepository creates a new gorm-backed AdminNotificationRepository
func NewAdminNotificationRepository(db *gorm.DB) AdminNotificationRepository {
	return &gormAdminNotificationRepository{db: db}
}

func (r *gormAdminNotificationRepository) Create(ctx context.Context, notification *models.AdminNotification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *gormAdminNotificationRepository) ListForRecipient(ctx context.Context, recipientID string) ([]models.AdminNotification, error) {
	var notifications []models.AdminNotification
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *gormAdminNotificationRepository) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminNotification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *gormAdminNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.AdminNotification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *gormAdminNotificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	return r.db.WithContext(ctx).Model(&models.AdminNotification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}

// DeleteForRecipient deletes a notice only when it belongs to the recipient.
func (r *gormAdminNotificationRepository) DeleteForRecipient(ctx context.Context, id uint, recipientID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&models.AdminNotification{})
	return res.RowsAffected > 0, res.Error
}
