package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/repositories"
	"github.com/navid88/opencircle/backend/pkg/logger"
)

// Fixed notice templates per content kind. Every admin delete emits one.
const (
	noticePostRemoved         = "Your post was removed by an admin."
	noticeCommentRemoved      = "Your comment was removed by an admin."
	noticePhotoRemoved        = "Your photo was removed by an admin."
	noticePhotoCommentRemoved = "Your photo comment was removed by an admin."
)

// AdminOverview is the moderation dashboard snapshot, newest first per kind.
type AdminOverview struct {
	Posts    []models.Post
	Comments []models.Comment
	Photos   []models.Photo
}

// AdminService is the admin override: role-gated deletions that bypass the
// visibility and moderation gates, always paired with a notice to the
// affected user.
type AdminService struct {
	accounts repositories.AccountRepository
	posts    repositories.PostRepository
	photos   repositories.PhotoRepository
	comments repositories.CommentRepository
	notifier Notifier
	validate *validator.Validate
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	accounts repositories.AccountRepository,
	posts repositories.PostRepository,
	photos repositories.PhotoRepository,
	comments repositories.CommentRepository,
	notifier Notifier,
	validate *validator.Validate,
) *AdminService {
	return &AdminService{
		accounts: accounts,
		posts:    posts,
		photos:   photos,
		comments: comments,
		notifier: notifier,
		validate: validate,
	}
}

func (s *AdminService) requireAdmin(ctx context.Context, actorID string) error {
	actor, err := s.accounts.GetByID(ctx, actorID)
	if err != nil {
		return translate(err)
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: admin role required", ErrForbidden)
	}
	return nil
}

// DeletePost removes a post and its comments unconditionally and notifies
// the author.
func (s *AdminService) DeletePost(ctx context.Context, postID uint, adminID string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return translate(err)
	}
	if err := s.comments.DeleteForSubject(ctx, models.SubjectPost, postID); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}
	s.logOverride(adminID, "post", postID, post.UserID)
	return s.notifier.Emit(ctx, post.UserID, noticePostRemoved)
}

// DeletePhoto removes a photo and its comments unconditionally and notifies
// the album owner.
func (s *AdminService) DeletePhoto(ctx context.Context, photoID uint, adminID string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	ownerID, err := s.photos.OwnerOfPhoto(ctx, photoID)
	if err != nil {
		return translate(err)
	}
	if err := s.comments.DeleteForSubject(ctx, models.SubjectPhoto, photoID); err != nil {
		return err
	}
	if err := s.photos.DeletePhoto(ctx, photoID); err != nil {
		return err
	}
	s.logOverride(adminID, "photo", photoID, ownerID)
	return s.notifier.Emit(ctx, ownerID, noticePhotoRemoved)
}

// DeleteComment removes a comment of either kind unconditionally and
// notifies its author with the template matching the comment's subject.
func (s *AdminService) DeleteComment(ctx context.Context, commentID uint, adminID string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return translate(err)
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	notice := noticeCommentRemoved
	if comment.SubjectType == models.SubjectPhoto {
		notice = noticePhotoCommentRemoved
	}
	s.logOverride(adminID, string(comment.SubjectType)+" comment", commentID, comment.AuthorID)
	return s.notifier.Emit(ctx, comment.AuthorID, notice)
}

// SendWarning emits a free-form notice from an admin to a user.
func (s *AdminService) SendWarning(ctx context.Context, adminID string, req models.SendWarningRequest) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid warning: %w", err)
	}
	if _, err := s.accounts.GetByID(ctx, req.RecipientID); err != nil {
		return translate(err)
	}
	return s.notifier.Emit(ctx, req.RecipientID, req.Message)
}

// Overview returns the moderation dashboard: recent posts and photos plus
// every comment, approved or not. This is the admin view-bypass read path.
func (s *AdminService) Overview(ctx context.Context, adminID string) (*AdminOverview, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	const recent = 100
	posts, err := s.posts.ListNewest(ctx, recent)
	if err != nil {
		return nil, err
	}
	photos, err := s.photos.ListNewestPhotos(ctx, recent)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListNewest(ctx, recent)
	if err != nil {
		return nil, err
	}

	return &AdminOverview{Posts: posts, Comments: comments, Photos: photos}, nil
}

func (s *AdminService) logOverride(adminID, kind string, targetID uint, ownerID string) {
	logger.Log.WithFields(map[string]interface{}{
		"admin_id":  adminID,
		"kind":      kind,
		"target_id": targetID,
		"owner_id":  ownerID,
	}).Info("admin removed content")
}
