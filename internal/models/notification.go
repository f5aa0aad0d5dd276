package models

import "time"

// AdminNotification is a notice emitted to a user as a side effect of an
// admin override or warning. Owned by the recipient; only the recipient
// can delete it.
type AdminNotification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID string    `json:"recipient_id" gorm:"type:varchar(36);index"`
	Message     string    `json:"message" gorm:"type:varchar(1000)"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// SendWarningRequest defines the request body for an admin warning
type SendWarningRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Message     string `json:"message" validate:"required,min=1,max=1000"`
}
