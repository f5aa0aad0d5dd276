package models

import "gorm.io/gorm"

// Post is a text post on a user's profile. The engine only relies on UserID
// (the owner whose visibility settings govern the post); the rest of the
// schema belongs to the content subsystem.
type Post struct {
	gorm.Model
	UserID  string `json:"user_id" gorm:"type:varchar(36);index"`
	Content string `json:"content" gorm:"type:text"`
}

// Album groups photos under one owner.
type Album struct {
	gorm.Model
	UserID string `json:"user_id" gorm:"type:varchar(36);index"`
	Title  string `json:"title" gorm:"type:varchar(100)"`
}

// Photo belongs to an album; its visibility and moderation rights follow the
// album owner, not the photo row itself.
type Photo struct {
	gorm.Model
	AlbumID uint   `json:"album_id" gorm:"not null;index"`
	Caption string `json:"caption" gorm:"type:varchar(200)"`
}
