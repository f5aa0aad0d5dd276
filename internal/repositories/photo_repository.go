package repositories

import (
	"context"

	"github.com/navid88/opencircle/backend/internal/models"
	"gorm.io/gorm"
)

// PhotoRepository defines the interface for album and photo data operations
type PhotoRepository interface {
	CreateAlbum(ctx context.Context, album *models.Album) error
	GetAlbum(ctx context.Context, id uint) (*models.Album, error)
	CreatePhoto(ctx context.Context, photo *models.Photo) error
	GetPhoto(ctx context.Context, id uint) (*models.Photo, error)
	OwnerOfPhoto(ctx context.Context, photoID uint) (string, error)
	ListNewestPhotos(ctx context.Context, limit int) ([]models.Photo, error)
	DeletePhoto(ctx context.Context, id uint) error
}

type gormPhotoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new gorm-backed PhotoRepository
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &gormPhotoRepository{db: db}
}

func (r *gormPhotoRepository) CreateAlbum(ctx context.Context, album *models.Album) error {
	return r.db.WithContext(ctx).Create(album).Error
}

func (r *gormPhotoRepository) GetAlbum(ctx context.Context, id uint) (*models.Album, error) {
	var album models.Album
	if err := r.db.WithContext(ctx).First(&album, id).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *gormPhotoRepository) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *gormPhotoRepository) GetPhoto(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// OwnerOfPhoto resolves the album owner governing a photo's visibility and
// moderation rights.
func (r *gormPhotoRepository) OwnerOfPhoto(ctx context.Context, photoID uint) (string, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, photoID).Error; err != nil {
		return "", err
	}
	var album models.Album
	if err := r.db.WithContext(ctx).First(&album, photo.AlbumID).Error; err != nil {
		return "", err
	}
	return album.UserID, nil
}

func (r *gormPhotoRepository) ListNewestPhotos(ctx context.Context, limit int) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&photos).Error
	return photos, err
}

func (r *gormPhotoRepository) DeletePhoto(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Photo{}, id).Error
}
