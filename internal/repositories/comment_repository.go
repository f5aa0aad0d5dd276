package repositories

import (
	"context"

	"github.com/navid88/opencircle/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for moderatable comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListApprovedForSubject(ctx context.Context, subjectType models.SubjectType, subjectID uint) ([]models.Comment, error)
	ListPendingForOwner(ctx context.Context, ownerID string) ([]models.Comment, error)
	ListNewest(ctx context.Context, limit int) ([]models.Comment, error)
	Approve(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	DeleteForSubject(ctx context.Context, subjectType models.SubjectType, subjectID uint) error
}

type gormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new gorm-backed CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &gormCommentRepository{db: db}
}

func (r *gormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *gormCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListApprovedForSubject is the feed read path: approved comments only,
// no exception for the owner or the author.
func (r *gormCommentRepository) ListApprovedForSubject(ctx context.Context, subjectType models.SubjectType, subjectID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ? AND approved = ?", subjectType, subjectID, true).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *gormCommentRepository) ListPendingForOwner(ctx context.Context, ownerID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND approved = ?", ownerID, false).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// ListNewest returns comments of every state, newest first. Admin-only read.
func (r *gormCommentRepository) ListNewest(ctx context.Context, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// Approve is idempotent: approving an already-approved comment changes nothing.
func (r *gormCommentRepository) Approve(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", id).
		Update("approved", true).Error
}

// Delete removes the comment permanently; rejection keeps no tombstone.
func (r *gormCommentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Comment{}, id).Error
}

// DeleteForSubject removes every comment attached to a subject, used when the
// subject itself is deleted.
func (r *gormCommentRepository) DeleteForSubject(ctx context.Context, subjectType models.SubjectType, subjectID uint) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Delete(&models.Comment{}).Error
}
