package services

import (
	"context"
	"fmt"

	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/policy"
	"github.com/navid88/opencircle/backend/internal/repositories"
)

// VisibilityService binds the pure visibility policy to the relationship
// store and account store, so callers only pass opaque ids. Every content
// read or comment attempt goes through here instead of re-deriving the
// predicate.
type VisibilityService struct {
	accounts repositories.AccountRepository
	friends  *FriendService
	content  *ContentService
	posts    repositories.PostRepository
}

// NewVisibilityService creates a new VisibilityService.
func NewVisibilityService(
	accounts repositories.AccountRepository,
	friends *FriendService,
	content *ContentService,
	posts repositories.PostRepository,
) *VisibilityService {
	return &VisibilityService{
		accounts: accounts,
		friends:  friends,
		content:  content,
		posts:    posts,
	}
}

// resolve loads the viewer (nil for anonymous), the owner and the
// relationship between them.
func (s *VisibilityService) resolve(ctx context.Context, viewerID, ownerID string) (*models.Account, *models.Account, models.FriendStatus, error) {
	owner, err := s.accounts.GetByID(ctx, ownerID)
	if err != nil {
		return nil, nil, models.FriendStatusNone, translate(err)
	}

	var viewer *models.Account
	if viewerID != "" {
		viewer, err = s.accounts.GetByID(ctx, viewerID)
		if err != nil {
			return nil, nil, models.FriendStatusNone, translate(err)
		}
	}

	status, err := s.friends.StatusBetween(ctx, viewerID, ownerID)
	if err != nil {
		return nil, nil, models.FriendStatusNone, err
	}
	return viewer, owner, status, nil
}

// CanView reports whether viewerID may see content owned by ownerID.
// An empty viewerID is an anonymous visitor.
func (s *VisibilityService) CanView(ctx context.Context, viewerID, ownerID string) (bool, error) {
	viewer, owner, status, err := s.resolve(ctx, viewerID, ownerID)
	if err != nil {
		return false, err
	}
	return policy.CanView(viewer, owner, status), nil
}

// CanComment reports whether actorID may comment on content owned by ownerID.
func (s *VisibilityService) CanComment(ctx context.Context, actorID, ownerID string) (bool, error) {
	actor, owner, status, err := s.resolve(ctx, actorID, ownerID)
	if err != nil {
		return false, err
	}
	return policy.CanComment(actor, owner, status), nil
}

// CanViewSubject evaluates CanView against the owner governing a subject,
// so a photo is judged by its album owner, never the photo itself.
func (s *VisibilityService) CanViewSubject(ctx context.Context, viewerID string, subjectType models.SubjectType, subjectID uint) (bool, error) {
	ownerID, err := s.content.OwnerOf(ctx, subjectType, subjectID)
	if err != nil {
		return false, err
	}
	return s.CanView(ctx, viewerID, ownerID)
}

// ProfilePosts returns ownerID's posts when the viewer passes the visibility
// policy, newest first. A denied viewer gets ErrForbidden.
func (s *VisibilityService) ProfilePosts(ctx context.Context, viewerID, ownerID string) ([]models.Post, error) {
	allowed, err := s.CanView(ctx, viewerID, ownerID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: profile is restricted", ErrForbidden)
	}
	return s.posts.ListByOwner(ctx, ownerID)
}
