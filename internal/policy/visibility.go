// Package policy holds the pure visibility rules of the engine.
// Functions here perform no I/O and are safe for concurrent use; callers
// resolve accounts and relationship state first and pass them in.
package policy

import "github.com/navid88/opencircle/backend/internal/models"

// CanView reports whether viewer may see content owned by owner.
// A nil viewer is an anonymous visitor. The rule: public profile, self,
// accepted friendship, or an admin viewer.
func CanView(viewer, owner *models.Account, status models.FriendStatus) bool {
	if owner == nil {
		return false
	}
	if owner.IsProfilePublic {
		return true
	}
	if viewer == nil {
		return false
	}
	return viewer.ID == owner.ID ||
		status == models.FriendStatusAccepted ||
		viewer.Role == models.RoleAdmin
}

// CanComment reports whether actor may comment on content owned by owner.
// Same rule as CanView except commenting requires an authenticated actor and
// admins get no implicit comment right.
func CanComment(actor, owner *models.Account, status models.FriendStatus) bool {
	if actor == nil || owner == nil {
		return false
	}
	if actor.ID == owner.ID {
		return true
	}
	return owner.IsProfilePublic || status == models.FriendStatusAccepted
}
