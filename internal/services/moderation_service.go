package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/repositories"
	"github.com/navid88/opencircle/backend/pkg/logger"
)

// ModerationService runs the comment workflow: every comment is born pending
// and only the content owner can approve or reject it. Rejection deletes.
type ModerationService struct {
	comments   repositories.CommentRepository
	content    *ContentService
	visibility *VisibilityService
	validate   *validator.Validate
}

// NewModerationService creates a new ModerationService.
func NewModerationService(
	comments repositories.CommentRepository,
	content *ContentService,
	visibility *VisibilityService,
	validate *validator.Validate,
) *ModerationService {
	return &ModerationService{
		comments:   comments,
		content:    content,
		visibility: visibility,
		validate:   validate,
	}
}

// Submit creates a comment in pending state. The author must pass the
// comment policy against the subject's owner; nobody, the owner included,
// gets an approval shortcut.
func (s *ModerationService) Submit(ctx context.Context, authorID string, req models.CreateCommentRequest) (*models.Comment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	subjectType := models.SubjectType(req.SubjectType)
	ownerID, err := s.content.OwnerOf(ctx, subjectType, req.SubjectID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.visibility.CanComment(ctx, authorID, ownerID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: not allowed to comment on this content", ErrForbidden)
	}

	comment := &models.Comment{
		SubjectType: subjectType,
		SubjectID:   req.SubjectID,
		AuthorID:    authorID,
		OwnerID:     ownerID,
		Content:     req.Content,
		Approved:    false,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"comment_id": comment.ID,
		"author_id":  authorID,
		"owner_id":   ownerID,
	}).Info("comment submitted for approval")
	return comment, nil
}

// Approve marks a comment as approved. Owner only; idempotent.
func (s *ModerationService) Approve(ctx context.Context, commentID uint, actorID string) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return translate(err)
	}
	if comment.OwnerID != actorID {
		return fmt.Errorf("%w: only the content owner can approve comments", ErrForbidden)
	}
	return s.comments.Approve(ctx, commentID)
}

// Reject deletes a comment permanently. Owner only; no tombstone remains.
func (s *ModerationService) Reject(ctx context.Context, commentID uint, actorID string) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return translate(err)
	}
	if comment.OwnerID != actorID {
		return fmt.Errorf("%w: only the content owner can reject comments", ErrForbidden)
	}
	return s.comments.Delete(ctx, commentID)
}

// ListPending returns the moderation queue for an owner, oldest first,
// collapsed to one entry per (subject, author): several pending comments by
// the same author on the same subject show up once.
func (s *ModerationService) ListPending(ctx context.Context, ownerID string) ([]models.Comment, error) {
	pending, err := s.comments.ListPendingForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	type queueKey struct {
		subjectType models.SubjectType
		subjectID   uint
		authorID    string
	}
	seen := make(map[queueKey]bool, len(pending))
	queue := make([]models.Comment, 0, len(pending))
	for _, comment := range pending {
		key := queueKey{comment.SubjectType, comment.SubjectID, comment.AuthorID}
		if !seen[key] {
			seen[key] = true
			queue = append(queue, comment)
		}
	}
	return queue, nil
}

// ApprovedForSubject is the only feed read path for comments: approved rows
// only, no owner or author exception.
func (s *ModerationService) ApprovedForSubject(ctx context.Context, subjectType models.SubjectType, subjectID uint) ([]models.Comment, error) {
	return s.comments.ListApprovedForSubject(ctx, subjectType, subjectID)
}
