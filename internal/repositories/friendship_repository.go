package repositories

import (
	"context"
	"errors"

	"github.com/navid88/opencircle/backend/internal/models"
	"gorm.io/gorm"
)

// FriendshipRepository defines the interface for friendship edge operations
type FriendshipRepository interface {
	Create(ctx context.Context, req *models.FriendRequest) error
	GetByID(ctx context.Context, id uint) (*models.FriendRequest, error)
	GetByPair(ctx context.Context, a, b string) (*models.FriendRequest, error)
	ListPendingForReceiver(ctx context.Context, receiverID string) ([]models.FriendRequest, error)
	ListAcceptedFor(ctx context.Context, userID string) ([]models.FriendRequest, error)
	MarkAccepted(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type gormFriendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository creates a new gorm-backed FriendshipRepository
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &gormFriendshipRepository{db: db}
}

// Create inserts a new edge. The unique index on pair_key is the arbiter of
// "at most one edge per pair"; a duplicate surfaces as gorm.ErrDuplicatedKey.
func (r *gormFriendshipRepository) Create(ctx context.Context, req *models.FriendRequest) error {
	req.PairKey = models.PairKeyFor(req.SenderID, req.ReceiverID)
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *gormFriendshipRepository) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByPair retrieves the edge between two users regardless of direction or state.
// Returns (nil, nil) when no edge exists.
func (r *gormFriendshipRepository) GetByPair(ctx context.Context, a, b string) (*models.FriendRequest, error) {
	var req models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("pair_key = ?", models.PairKeyFor(a, b)).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *gormFriendshipRepository) ListPendingForReceiver(ctx context.Context, receiverID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND accepted = ?", receiverID, false).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *gormFriendshipRepository) ListAcceptedFor(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? OR receiver_id = ?) AND accepted = ?", userID, userID, true).
		Find(&requests).Error
	return requests, err
}

// MarkAccepted flips a pending edge to accepted. The conditional WHERE makes
// concurrent accepts resolve to a single winner; the bool reports whether
// this call was the one that flipped it.
func (r *gormFriendshipRepository) MarkAccepted(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.FriendRequest{}).
		Where("id = ? AND accepted = ?", id, false).
		Update("accepted", true)
	return res.RowsAffected > 0, res.Error
}

func (r *gormFriendshipRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.FriendRequest{}, id).Error
}
