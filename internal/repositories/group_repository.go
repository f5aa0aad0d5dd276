package repositories

import (
	"context"

	"github.com/navid88/opencircle/backend/internal/models"
	"gorm.io/gorm"
)

// GroupRepository defines the interface for group, membership, join-request
// and group-message operations
type GroupRepository interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, id uint) (*models.Group, error)
	DeleteGroupCascade(ctx context.Context, id uint) error
	ListGroupsOf(ctx context.Context, userID string) ([]models.Group, error)

	AddMember(ctx context.Context, member *models.GroupMember) error
	RemoveMember(ctx context.Context, groupID uint, userID string) (bool, error)
	IsMember(ctx context.Context, groupID uint, userID string) (bool, error)
	ListMembers(ctx context.Context, groupID uint) ([]models.GroupMember, error)

	CreateJoinRequest(ctx context.Context, req *models.GroupJoinRequest) error
	GetJoinRequest(ctx context.Context, id uint) (*models.GroupJoinRequest, error)
	HasJoinRequest(ctx context.Context, groupID uint, requesterID string) (bool, error)
	ListPendingJoinRequests(ctx context.Context, groupID uint) ([]models.GroupJoinRequest, error)
	SetJoinRequestStatus(ctx context.Context, id uint, from, to models.RequestStatus) (bool, error)

	CreateMessage(ctx context.Context, message *models.GroupMessage) error
	ListMessages(ctx context.Context, groupID uint) ([]models.GroupMessage, error)
}

type gormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new gorm-backed GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &gormGroupRepository{db: db}
}

func (r *gormGroupRepository) CreateGroup(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *gormGroupRepository) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteGroupCascade removes the group with its members, messages and join
// requests in one transaction so no orphaned rows survive.
func (r *gormGroupRepository) DeleteGroupCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("group_id = ?", id).Delete(&models.GroupMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("group_id = ?", id).Delete(&models.GroupJoinRequest{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Group{}, id).Error
	})
}

func (r *gormGroupRepository) ListGroupsOf(ctx context.Context, userID string) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Find(&groups).Error
	return groups, err
}

// AddMember inserts a membership row. The (group, user) unique index turns a
// concurrent double-add into gorm.ErrDuplicatedKey.
func (r *gormGroupRepository) AddMember(ctx context.Context, member *models.GroupMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *gormGroupRepository) RemoveMember(ctx context.Context, groupID uint, userID string) (bool, error) {
	res := r.db.WithContext(ctx).Unscoped().
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{})
	return res.RowsAffected > 0, res.Error
}

func (r *gormGroupRepository) IsMember(ctx context.Context, groupID uint, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormGroupRepository) ListMembers(ctx context.Context, groupID uint) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *gormGroupRepository) CreateJoinRequest(ctx context.Context, req *models.GroupJoinRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *gormGroupRepository) GetJoinRequest(ctx context.Context, id uint) (*models.GroupJoinRequest, error) {
	var req models.GroupJoinRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// HasJoinRequest reports whether any request row exists for the pair,
// whatever its status. A retained rejected row counts.
func (r *gormGroupRepository) HasJoinRequest(ctx context.Context, groupID uint, requesterID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GroupJoinRequest{}).
		Where("group_id = ? AND requester_id = ?", groupID, requesterID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormGroupRepository) ListPendingJoinRequests(ctx context.Context, groupID uint) ([]models.GroupJoinRequest, error) {
	var requests []models.GroupJoinRequest
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND status = ?", groupID, models.RequestStatusPending).
		Order("request_date ASC").
		Find(&requests).Error
	return requests, err
}

// SetJoinRequestStatus transitions a request from one status to another.
// The conditional WHERE makes two simultaneous responders resolve to one
// winner; the bool reports whether this call made the transition.
func (r *gormGroupRepository) SetJoinRequestStatus(ctx context.Context, id uint, from, to models.RequestStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.GroupJoinRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected > 0, res.Error
}

func (r *gormGroupRepository) CreateMessage(ctx context.Context, message *models.GroupMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *gormGroupRepository) ListMessages(ctx context.Context, groupID uint) ([]models.GroupMessage, error) {
	var messages []models.GroupMessage
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("sent_at ASC").
		Find(&messages).Error
	return messages, err
}
