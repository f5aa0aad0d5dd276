package models

import "gorm.io/gorm"

// SubjectType identifies what kind of content a comment is attached to.
type SubjectType string

const (
	SubjectPost  SubjectType = "post"
	SubjectPhoto SubjectType = "photo"
)

// Comment is a moderatable comment on a post or a photo.
// OwnerID is the moderator for the comment: the post author, or the owner of
// the album the photo belongs to. It is resolved once, at submit time.
// Comments are always created unapproved; only the owner approves or rejects.
type Comment struct {
	gorm.Model
	SubjectType SubjectType `json:"subject_type" gorm:"type:varchar(10);index:idx_comments_subject"`
	SubjectID   uint        `json:"subject_id" gorm:"index:idx_comments_subject"`
	AuthorID    string      `json:"author_id" gorm:"type:varchar(36);index"`
	OwnerID     string      `json:"owner_id" gorm:"type:varchar(36);index"`
	Content     string      `json:"content" gorm:"type:varchar(500)"`
	Approved    bool        `json:"approved" gorm:"default:false;index"`
}

// CreateCommentRequest defines the request body for submitting a comment
type CreateCommentRequest struct {
	SubjectType string `json:"subject_type" validate:"required,oneof=post photo"`
	SubjectID   uint   `json:"subject_id" validate:"required"`
	Content     string `json:"content" validate:"required,min=1,max=500"`
}
