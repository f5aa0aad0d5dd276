package services

import (
	"context"
	"fmt"

	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/repositories"
)

// ContentService resolves the owning account of a piece of content.
// The engine does not own the content schema; it only needs to know whose
// visibility and moderation rights govern a given subject.
type ContentService struct {
	posts  repositories.PostRepository
	photos repositories.PhotoRepository
}

// NewContentService creates a new ContentService.
func NewContentService(posts repositories.PostRepository, photos repositories.PhotoRepository) *ContentService {
	return &ContentService{
		posts:  posts,
		photos: photos,
	}
}

// OwnerOf returns the account id that moderates the given subject:
// the post author for posts, the album owner for photos.
func (s *ContentService) OwnerOf(ctx context.Context, subjectType models.SubjectType, subjectID uint) (string, error) {
	switch subjectType {
	case models.SubjectPost:
		post, err := s.posts.GetByID(ctx, subjectID)
		if err != nil {
			return "", translate(err)
		}
		return post.UserID, nil
	case models.SubjectPhoto:
		ownerID, err := s.photos.OwnerOfPhoto(ctx, subjectID)
		if err != nil {
			return "", translate(err)
		}
		return ownerID, nil
	default:
		return "", fmt.Errorf("%w: unknown subject type %q", ErrNotFound, subjectType)
	}
}
