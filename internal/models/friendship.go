package models

import "gorm.io/gorm"

// FriendStatus describes the relationship between two accounts,
// seen from the first account's side. Direction only matters while pending.
type FriendStatus string

const (
	FriendStatusNone            FriendStatus = "none"
	FriendStatusPendingOutgoing FriendStatus = "pending_outgoing"
	FriendStatusPendingIncoming FriendStatus = "pending_incoming"
	FriendStatusAccepted        FriendStatus = "accepted"
)

// FriendRequest represents the single friendship edge between two users.
// PairKey is the order-normalized pair; its unique index is what enforces
// "at most one edge per pair" under concurrent sends, not the application check.
type FriendRequest struct {
	gorm.Model
	SenderID   string `json:"sender_id" gorm:"type:varchar(36);index"`
	ReceiverID string `json:"receiver_id" gorm:"type:varchar(36);index"`
	PairKey    string `json:"-" gorm:"type:varchar(80);uniqueIndex"`
	Accepted   bool   `json:"accepted" gorm:"default:false"`
}

// PairKeyFor builds the order-normalized key for a pair of account ids.
func PairKeyFor(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// SendFriendRequest defines the request body for sending a friend request
type SendFriendRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
}
