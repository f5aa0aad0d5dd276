package models

import (
	"time"

	"gorm.io/gorm"
)

// RequestStatus is the lifecycle of a group join request.
// A resolved row is never reused; it stays as the record of the decision.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Group is a user-created group. The creator is a member from creation and
// holds capabilities ordinary members do not (remove members, delete, respond
// to join requests).
type Group struct {
	gorm.Model
	Name      string `json:"name" gorm:"type:varchar(100)"`
	CreatorID string `json:"creator_id" gorm:"type:varchar(36);index"`
}

// GroupMember links a user to a group. The (group, user) unique index makes
// concurrent double-adds collapse into one membership row.
type GroupMember struct {
	gorm.Model
	GroupID uint   `json:"group_id" gorm:"not null;uniqueIndex:idx_group_members_pair"`
	UserID  string `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_group_members_pair"`
}

// GroupJoinRequest is a non-member's request to join a group.
// The (group, requester) unique index allows at most one row per pair,
// so a rejected row blocks a later re-request until it is cleared.
type GroupJoinRequest struct {
	gorm.Model
	GroupID     uint          `json:"group_id" gorm:"not null;uniqueIndex:idx_join_requests_pair"`
	RequesterID string        `json:"requester_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_join_requests_pair"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	RequestDate time.Time     `json:"request_date"`
}

// GroupMessage is a message in a group's chat; removed when the group is deleted.
type GroupMessage struct {
	gorm.Model
	GroupID  uint      `json:"group_id" gorm:"not null;index"`
	SenderID string    `json:"sender_id" gorm:"type:varchar(36)"`
	Content  string    `json:"content" gorm:"type:text"`
	SentAt   time.Time `json:"sent_at"`
}

// CreateGroupRequest defines the request body for creating a group
type CreateGroupRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=100"`
	MemberIDs []string `json:"member_ids"`
}
