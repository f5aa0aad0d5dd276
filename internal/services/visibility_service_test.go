package services

import (
	"context"
	"testing"

	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanViewMatrix(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	private := e.account(t, "Private", false, "")
	public := e.account(t, "Public", true, "")
	stranger := e.account(t, "Stranger", false, "")
	friend := e.account(t, "Friend", false, "")
	admin := e.account(t, "Root", false, "admin")
	e.befriend(t, friend.ID, private.ID)

	tests := []struct {
		name     string
		viewerID string
		ownerID  string
		want     bool
	}{
		{"stranger vs public owner", stranger.ID, public.ID, true},
		{"anonymous vs public owner", "", public.ID, true},
		{"stranger vs private owner", stranger.ID, private.ID, false},
		{"anonymous vs private owner", "", private.ID, false},
		{"self", private.ID, private.ID, true},
		{"friend vs private owner", friend.ID, private.ID, true},
		{"admin vs private owner", admin.ID, private.ID, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.visibility.CanView(ctx, tt.viewerID, tt.ownerID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown owner", func(t *testing.T) {
		_, err := e.visibility.CanView(ctx, stranger.ID, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCanCommentDropsAdminBypass(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	private := e.account(t, "Private", false, "")
	admin := e.account(t, "Root", false, "admin")

	canView, err := e.visibility.CanView(ctx, admin.ID, private.ID)
	require.NoError(t, err)
	assert.True(t, canView)

	canComment, err := e.visibility.CanComment(ctx, admin.ID, private.ID)
	require.NoError(t, err)
	assert.False(t, canComment)
}

func TestCanViewSubjectFollowsAlbumOwner(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	owner := e.account(t, "Owner", false, "")
	stranger := e.account(t, "Stranger", false, "")
	friend := e.account(t, "Friend", false, "")
	e.befriend(t, friend.ID, owner.ID)
	photo := e.photo(t, owner.ID)

	got, err := e.visibility.CanViewSubject(ctx, stranger.ID, models.SubjectPhoto, photo.ID)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = e.visibility.CanViewSubject(ctx, friend.ID, models.SubjectPhoto, photo.ID)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestProfilePostsGate(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	owner := e.account(t, "Owner", false, "")
	viewer := e.account(t, "Viewer", false, "")
	e.post(t, owner.ID)

	_, err := e.visibility.ProfilePosts(ctx, viewer.ID, owner.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	e.befriend(t, owner.ID, viewer.ID)
	posts, err := e.visibility.ProfilePosts(ctx, viewer.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
