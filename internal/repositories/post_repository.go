package repositories

import (
	"context"

	"github.com/navid88/opencircle/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListByOwner(ctx context.Context, userID string) ([]models.Post, error)
	ListNewest(ctx context.Context, limit int) ([]models.Post, error)
	Delete(ctx context.Context, id uint) error
}

type gormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new gorm-backed PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

func (r *gormPostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *gormPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *gormPostRepository) ListByOwner(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *gormPostRepository) ListNewest(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *gormPostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Post{}, id).Error
}
