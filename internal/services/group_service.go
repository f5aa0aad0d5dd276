package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/repositories"
	"github.com/navid88/opencircle/backend/pkg/logger"
)

// GroupService runs the group membership workflow: creation, direct adds,
// the request-to-join flow, removal and deletion, plus the member-gated
// group chat.
type GroupService struct {
	groups   repositories.GroupRepository
	validate *validator.Validate
}

// NewGroupService creates a new GroupService.
func NewGroupService(groups repositories.GroupRepository, validate *validator.Validate) *GroupService {
	return &GroupService{
		groups:   groups,
		validate: validate,
	}
}

// CreateGroup creates a group with the creator as its first member.
// Initial members are creator-initiated adds and skip the join-request flow.
func (s *GroupService) CreateGroup(ctx context.Context, creatorID string, req models.CreateGroupRequest) (*models.Group, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid group: %w", err)
	}

	group := &models.Group{
		Name:      req.Name,
		CreatorID: creatorID,
	}
	if err := s.groups.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	if err := s.addMemberIgnoringDuplicate(ctx, group.ID, creatorID); err != nil {
		return nil, err
	}
	for _, userID := range req.MemberIDs {
		if userID == creatorID {
			continue
		}
		if err := s.addMemberIgnoringDuplicate(ctx, group.ID, userID); err != nil {
			return nil, err
		}
	}

	logger.Log.WithFields(map[string]interface{}{
		"group_id":   group.ID,
		"creator_id": creatorID,
	}).Info("group created")
	return group, nil
}

// AddMembers adds users directly, skipping the join-request flow. Any caller
// reaching this path succeeds; a non-creator add is logged so the permissive
// behavior leaves a trace.
func (s *GroupService) AddMembers(ctx context.Context, groupID uint, actorID string, userIDs []string) error {
	group, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		return translate(err)
	}
	if actorID != group.CreatorID {
		logger.Log.WithFields(map[string]interface{}{
			"group_id": groupID,
			"actor_id": actorID,
		}).Warn("non-creator adding group members")
	}
	for _, userID := range userIDs {
		if err := s.addMemberIgnoringDuplicate(ctx, groupID, userID); err != nil {
			return err
		}
	}
	return nil
}

// RemoveMember removes a member. Creator only, and the creator can never be
// removed through this path.
func (s *GroupService) RemoveMember(ctx context.Context, groupID uint, actorID, targetUserID string) error {
	group, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		return translate(err)
	}
	if actorID != group.CreatorID {
		return fmt.Errorf("%w: only the group creator can remove members", ErrForbidden)
	}
	if targetUserID == group.CreatorID {
		return fmt.Errorf("%w: the creator cannot be removed from the group", ErrForbidden)
	}
	_, err = s.groups.RemoveMember(ctx, groupID, targetUserID)
	return err
}

// LeaveGroup removes the actor's own membership. The creator cannot leave;
// deleting the group is the only exit. Leaving a group the actor is not a
// member of reports ErrNotFound.
func (s *GroupService) LeaveGroup(ctx context.Context, groupID uint, actorID string) error {
	group, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		return translate(err)
	}
	if actorID == group.CreatorID {
		return fmt.Errorf("%w: the creator cannot leave the group", ErrForbidden)
	}
	removed, err := s.groups.RemoveMember(ctx, groupID, actorID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: not a member of this group", ErrNotFound)
	}
	return nil
}

// DeleteGroup deletes the group with all members, messages and join requests.
// Creator only.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID uint, actorID string) error {
	group, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		return translate(err)
	}
	if actorID != group.CreatorID {
		return fmt.Errorf("%w: only the group creator can delete the group", ErrForbidden)
	}
	if err := s.groups.DeleteGroupCascade(ctx, groupID); err != nil {
		return err
	}
	logger.Log.WithFields(map[string]interface{}{
		"group_id": groupID,
		"actor_id": actorID,
	}).Info("group deleted")
	return nil
}

// RequestToJoin files a pending join request. Already a member, or any
// existing request row for the pair (a retained rejected row included),
// makes this a benign no-op.
func (s *GroupService) RequestToJoin(ctx context.Context, groupID uint, requesterID string) error {
	if _, err := s.groups.GetGroup(ctx, groupID); err != nil {
		return translate(err)
	}

	isMember, err := s.groups.IsMember(ctx, groupID, requesterID)
	if err != nil {
		return err
	}
	hasRequest, err := s.groups.HasJoinRequest(ctx, groupID, requesterID)
	if err != nil {
		return err
	}
	if isMember || hasRequest {
		return nil
	}

	req := &models.GroupJoinRequest{
		GroupID:     groupID,
		RequesterID: requesterID,
		Status:      models.RequestStatusPending,
		RequestDate: time.Now(),
	}
	if err := translate(s.groups.CreateJoinRequest(ctx, req)); err != nil {
		// A concurrent duplicate lost the race against the unique index.
		if errors.Is(err, ErrConflict) {
			return nil
		}
		return err
	}
	return nil
}

// RespondToRequest resolves a pending join request. Creator only. Accepting
// adds the membership; rejecting keeps the row as a rejected record. When a
// concurrent responder already resolved the request, this is a no-op.
func (s *GroupService) RespondToRequest(ctx context.Context, requestID uint, actorID string, accept bool) error {
	req, err := s.groups.GetJoinRequest(ctx, requestID)
	if err != nil {
		return translate(err)
	}
	group, err := s.groups.GetGroup(ctx, req.GroupID)
	if err != nil {
		return translate(err)
	}
	if actorID != group.CreatorID {
		return fmt.Errorf("%w: only the group creator can respond to join requests", ErrForbidden)
	}

	target := models.RequestStatusRejected
	if accept {
		target = models.RequestStatusApproved
	}
	transitioned, err := s.groups.SetJoinRequestStatus(ctx, requestID, models.RequestStatusPending, target)
	if err != nil {
		return err
	}
	if !transitioned {
		return nil
	}
	if accept {
		return s.addMemberIgnoringDuplicate(ctx, req.GroupID, req.RequesterID)
	}
	return nil
}

// ListPendingRequests returns the pending join requests of a group, oldest
// first. Creator only.
func (s *GroupService) ListPendingRequests(ctx context.Context, groupID uint, actorID string) ([]models.GroupJoinRequest, error) {
	group, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		return nil, translate(err)
	}
	if actorID != group.CreatorID {
		return nil, fmt.Errorf("%w: only the group creator can manage join requests", ErrForbidden)
	}
	return s.groups.ListPendingJoinRequests(ctx, groupID)
}

// SendMessage appends a message to the group chat. Members only.
func (s *GroupService) SendMessage(ctx context.Context, groupID uint, senderID, content string) (*models.GroupMessage, error) {
	if err := s.requireMember(ctx, groupID, senderID); err != nil {
		return nil, err
	}
	message := &models.GroupMessage{
		GroupID:  groupID,
		SenderID: senderID,
		Content:  content,
		SentAt:   time.Now(),
	}
	if err := s.groups.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Messages lists the group chat, oldest first. Members only.
func (s *GroupService) Messages(ctx context.Context, groupID uint, actorID string) ([]models.GroupMessage, error) {
	if err := s.requireMember(ctx, groupID, actorID); err != nil {
		return nil, err
	}
	return s.groups.ListMessages(ctx, groupID)
}

// ListGroupsOf returns the groups a user belongs to.
func (s *GroupService) ListGroupsOf(ctx context.Context, userID string) ([]models.Group, error) {
	return s.groups.ListGroupsOf(ctx, userID)
}

// Members lists a group's membership rows, oldest first.
func (s *GroupService) Members(ctx context.Context, groupID uint) ([]models.GroupMember, error) {
	return s.groups.ListMembers(ctx, groupID)
}

// IsMember reports whether a user belongs to a group.
func (s *GroupService) IsMember(ctx context.Context, groupID uint, userID string) (bool, error) {
	return s.groups.IsMember(ctx, groupID, userID)
}

func (s *GroupService) requireMember(ctx context.Context, groupID uint, userID string) error {
	isMember, err := s.groups.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return fmt.Errorf("%w: not a member of this group", ErrForbidden)
	}
	return nil
}

// addMemberIgnoringDuplicate inserts a membership and treats a duplicate
// (already a member, or a concurrent add) as success.
func (s *GroupService) addMemberIgnoringDuplicate(ctx context.Context, groupID uint, userID string) error {
	err := translate(s.groups.AddMember(ctx, &models.GroupMember{GroupID: groupID, UserID: userID}))
	if errors.Is(err, ErrConflict) {
		return nil
	}
	return err
}
