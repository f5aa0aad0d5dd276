package policy

import (
	"testing"

	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func account(id string, public bool, role models.Role) *models.Account {
	return &models.Account{ID: id, IsProfilePublic: public, Role: role}
}

func TestCanView(t *testing.T) {
	tests := []struct {
		name   string
		viewer *models.Account
		owner  *models.Account
		status models.FriendStatus
		want   bool
	}{
		{
			name:   "public profile visible to anyone",
			viewer: account("v", false, models.RoleMember),
			owner:  account("o", true, models.RoleMember),
			status: models.FriendStatusNone,
			want:   true,
		},
		{
			name:   "public profile visible to anonymous",
			viewer: nil,
			owner:  account("o", true, models.RoleMember),
			status: models.FriendStatusNone,
			want:   true,
		},
		{
			name:   "private profile hidden from stranger",
			viewer: account("v", false, models.RoleMember),
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusNone,
			want:   false,
		},
		{
			name:   "private profile hidden from anonymous",
			viewer: nil,
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusNone,
			want:   false,
		},
		{
			name:   "owner always sees own content",
			viewer: account("o", false, models.RoleMember),
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusNone,
			want:   true,
		},
		{
			name:   "accepted friend sees private profile",
			viewer: account("v", false, models.RoleMember),
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusAccepted,
			want:   true,
		},
		{
			name:   "pending request grants nothing",
			viewer: account("v", false, models.RoleMember),
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusPendingOutgoing,
			want:   false,
		},
		{
			name:   "admin bypasses the private flag",
			viewer: account("v", false, models.RoleAdmin),
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusNone,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.viewer, tt.owner, tt.status))
		})
	}
}

func TestCanComment(t *testing.T) {
	tests := []struct {
		name   string
		actor  *models.Account
		owner  *models.Account
		status models.FriendStatus
		want   bool
	}{
		{
			name:   "anonymous never comments",
			actor:  nil,
			owner:  account("o", true, models.RoleMember),
			status: models.FriendStatusNone,
			want:   false,
		},
		{
			name:   "stranger comments on public profile",
			actor:  account("a", false, models.RoleMember),
			owner:  account("o", true, models.RoleMember),
			status: models.FriendStatusNone,
			want:   true,
		},
		{
			name:   "stranger blocked on private profile",
			actor:  account("a", false, models.RoleMember),
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusNone,
			want:   false,
		},
		{
			name:   "friend comments on private profile",
			actor:  account("a", false, models.RoleMember),
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusAccepted,
			want:   true,
		},
		{
			name:   "owner comments on own content",
			actor:  account("o", false, models.RoleMember),
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusNone,
			want:   true,
		},
		{
			name:   "admin gets no implicit comment right",
			actor:  account("a", false, models.RoleAdmin),
			owner:  account("o", false, models.RoleMember),
			status: models.FriendStatusNone,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanComment(tt.actor, tt.owner, tt.status))
		})
	}
}
