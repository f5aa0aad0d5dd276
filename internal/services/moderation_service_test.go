package services

import (
	"context"
	"testing"

	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitComment(t *testing.T, e *testEngine, authorID string, subjectType models.SubjectType, subjectID uint) *models.Comment {
	t.Helper()
	comment, err := e.moderation.Submit(context.Background(), authorID, models.CreateCommentRequest{
		SubjectType: string(subjectType),
		SubjectID:   subjectID,
		Content:     "a comment",
	})
	require.NoError(t, err)
	return comment
}

func TestSubmitAlwaysPending(t *testing.T) {
	e := newTestEngine(t)
	owner := e.account(t, "Owner", true, "")
	post := e.post(t, owner.ID)

	// Even the owner commenting on their own post gets no approval shortcut.
	comment := submitComment(t, e, owner.ID, models.SubjectPost, post.ID)
	assert.False(t, comment.Approved)
	assert.Equal(t, owner.ID, comment.OwnerID)

	approved, err := e.moderation.ApprovedForSubject(context.Background(), models.SubjectPost, post.ID)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestSubmitGatedByCommentPolicy(t *testing.T) {
	e := newTestEngine(t)
	owner := e.account(t, "Owner", false, "")
	stranger := e.account(t, "Stranger", false, "")
	post := e.post(t, owner.ID)

	_, err := e.moderation.Submit(context.Background(), stranger.ID, models.CreateCommentRequest{
		SubjectType: "post",
		SubjectID:   post.ID,
		Content:     "let me in",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitUnknownSubject(t *testing.T) {
	e := newTestEngine(t)
	author := e.account(t, "Author", false, "")

	_, err := e.moderation.Submit(context.Background(), author.ID, models.CreateCommentRequest{
		SubjectType: "post",
		SubjectID:   999,
		Content:     "hello?",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApproveOwnerOnlyAndIdempotent(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	owner := e.account(t, "Owner", true, "")
	author := e.account(t, "Author", false, "")
	post := e.post(t, owner.ID)
	comment := submitComment(t, e, author.ID, models.SubjectPost, post.ID)

	assert.ErrorIs(t, e.moderation.Approve(ctx, comment.ID, author.ID), ErrForbidden)

	require.NoError(t, e.moderation.Approve(ctx, comment.ID, owner.ID))
	require.NoError(t, e.moderation.Approve(ctx, comment.ID, owner.ID))

	approved, err := e.moderation.ApprovedForSubject(ctx, models.SubjectPost, post.ID)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, comment.ID, approved[0].ID)
}

func TestRejectDeletesPermanently(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	owner := e.account(t, "Owner", true, "")
	author := e.account(t, "Author", false, "")
	post := e.post(t, owner.ID)
	comment := submitComment(t, e, author.ID, models.SubjectPost, post.ID)

	assert.ErrorIs(t, e.moderation.Reject(ctx, comment.ID, author.ID), ErrForbidden)
	require.NoError(t, e.moderation.Reject(ctx, comment.ID, owner.ID))

	assert.ErrorIs(t, e.moderation.Approve(ctx, comment.ID, owner.ID), ErrNotFound)

	pending, err := e.moderation.ListPending(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)

	var count int64
	require.NoError(t, e.db.Unscoped().Model(&models.Comment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListPendingDeduplicatesByAuthorAndSubject(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	owner := e.account(t, "Owner", true, "")
	author := e.account(t, "Author", false, "")
	other := e.account(t, "Other", false, "")
	post := e.post(t, owner.ID)
	photo := e.photo(t, owner.ID)

	first := submitComment(t, e, author.ID, models.SubjectPost, post.ID)
	submitComment(t, e, author.ID, models.SubjectPost, post.ID)
	submitComment(t, e, author.ID, models.SubjectPost, post.ID)
	submitComment(t, e, other.ID, models.SubjectPost, post.ID)
	submitComment(t, e, author.ID, models.SubjectPhoto, photo.ID)

	queue, err := e.moderation.ListPending(ctx, owner.ID)
	require.NoError(t, err)
	// One entry per (subject, author): author on post, other on post, author on photo.
	require.Len(t, queue, 3)
	assert.Equal(t, first.ID, queue[0].ID)
}

func TestPhotoCommentModeratedByAlbumOwner(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	owner := e.account(t, "Owner", true, "")
	author := e.account(t, "Author", false, "")
	photo := e.photo(t, owner.ID)

	comment := submitComment(t, e, author.ID, models.SubjectPhoto, photo.ID)
	assert.Equal(t, owner.ID, comment.OwnerID)

	require.NoError(t, e.moderation.Approve(ctx, comment.ID, owner.ID))
	approved, err := e.moderation.ApprovedForSubject(ctx, models.SubjectPhoto, photo.ID)
	require.NoError(t, err)
	assert.Len(t, approved, 1)
}

// The scenario from the visibility and moderation rules working together:
// a private profile, a friendship forming, a comment passing moderation.
func TestPrivateProfileCommentScenario(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	u1 := e.account(t, "U1", false, "")
	u2 := e.account(t, "U2", false, "")
	post := e.post(t, u1.ID)

	canView, err := e.visibility.CanView(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	assert.False(t, canView)

	req, err := e.friends.SendRequest(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	require.NoError(t, e.friends.Accept(ctx, req.ID, u2.ID))

	canView, err = e.visibility.CanView(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	assert.True(t, canView)

	comment := submitComment(t, e, u2.ID, models.SubjectPost, post.ID)
	assert.False(t, comment.Approved)

	require.NoError(t, e.moderation.Approve(ctx, comment.ID, u1.ID))

	feed, err := e.moderation.ApprovedForSubject(ctx, models.SubjectPost, post.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, u2.ID, feed[0].AuthorID)
}
