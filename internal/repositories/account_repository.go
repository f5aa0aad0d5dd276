package repositories

import (
	"context"

	"github.com/navid88/opencircle/backend/internal/models"
	"gorm.io/gorm"
)

// AccountRepository defines the interface for account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Account, error)
	SetProfilePublic(ctx context.Context, id string, public bool) error
}

type gormAccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new gorm-backed AccountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &gormAccountRepository{db: db}
}

func (r *gormAccountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *gormAccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *gormAccountRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Account, error) {
	var accounts []models.Account
	if len(ids) == 0 {
		return accounts, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *gormAccountRepository) SetProfilePublic(ctx context.Context, id string, public bool) error {
	return r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Update("is_profile_public", public).Error
}
