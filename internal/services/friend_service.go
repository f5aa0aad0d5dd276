package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/repositories"
	"github.com/navid88/opencircle/backend/pkg/logger"
)

// FriendService is the relationship store: it owns the friendship edge
// lifecycle between accounts.
type FriendService struct {
	friendships repositories.FriendshipRepository
	accounts    repositories.AccountRepository
}

// NewFriendService creates a new FriendService.
func NewFriendService(friendships repositories.FriendshipRepository, accounts repositories.AccountRepository) *FriendService {
	return &FriendService{
		friendships: friendships,
		accounts:    accounts,
	}
}

// SendRequest creates a pending edge from sender to receiver.
// A self-request or an existing edge in either direction and either state
// returns ErrConflict; the caller may treat it as a benign no-op and retry
// safely. The pair_key unique index arbitrates concurrent sends.
func (s *FriendService) SendRequest(ctx context.Context, senderID, receiverID string) (*models.FriendRequest, error) {
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot send a friend request to yourself", ErrConflict)
	}
	if _, err := s.accounts.GetByID(ctx, receiverID); err != nil {
		return nil, translate(err)
	}

	req := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Accepted:   false,
	}
	if err := translate(s.friendships.Create(ctx, req)); err != nil {
		if errors.Is(err, ErrConflict) {
			logger.Log.WithFields(map[string]interface{}{
				"sender_id":   senderID,
				"receiver_id": receiverID,
			}).Info("friend request already exists, ignoring")
		}
		return nil, err
	}
	return req, nil
}

// Accept flips a pending edge to accepted. Only the receiver may accept;
// accepting an already-accepted edge is a no-op.
func (s *FriendService) Accept(ctx context.Context, requestID uint, actorID string) error {
	req, err := s.friendships.GetByID(ctx, requestID)
	if err != nil {
		return translate(err)
	}
	if req.ReceiverID != actorID {
		return fmt.Errorf("%w: only the receiver can accept a friend request", ErrForbidden)
	}
	if req.Accepted {
		return nil
	}
	_, err = s.friendships.MarkAccepted(ctx, requestID)
	return translate(err)
}

// Cancel withdraws a still-pending request. Only the sender may cancel;
// a missing edge is a no-op.
func (s *FriendService) Cancel(ctx context.Context, senderID, receiverID, actorID string) error {
	if actorID != senderID {
		return fmt.Errorf("%w: only the sender can cancel a friend request", ErrForbidden)
	}
	req, err := s.friendships.GetByPair(ctx, senderID, receiverID)
	if err != nil {
		return err
	}
	if req == nil || req.Accepted || req.SenderID != senderID {
		return nil
	}
	return s.friendships.Delete(ctx, req.ID)
}

// Remove dissolves an accepted friendship between two users, regardless of
// who originally sent the request. A missing edge is a no-op.
func (s *FriendService) Remove(ctx context.Context, userID, friendID string) error {
	req, err := s.friendships.GetByPair(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if req == nil || !req.Accepted {
		return nil
	}
	return s.friendships.Delete(ctx, req.ID)
}

// StatusBetween reports the relationship between a and b from a's perspective.
func (s *FriendService) StatusBetween(ctx context.Context, a, b string) (models.FriendStatus, error) {
	if a == "" || b == "" {
		return models.FriendStatusNone, nil
	}
	req, err := s.friendships.GetByPair(ctx, a, b)
	if err != nil {
		return models.FriendStatusNone, err
	}
	switch {
	case req == nil:
		return models.FriendStatusNone, nil
	case req.Accepted:
		return models.FriendStatusAccepted, nil
	case req.SenderID == a:
		return models.FriendStatusPendingOutgoing, nil
	default:
		return models.FriendStatusPendingIncoming, nil
	}
}

// FriendsOf returns every account with an accepted edge to userID,
// deduplicated by account id even if stray duplicate edges exist.
func (s *FriendService) FriendsOf(ctx context.Context, userID string) ([]models.Account, error) {
	edges, err := s.friendships.ListAcceptedFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(edges))
	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		other := edge.SenderID
		if other == userID {
			other = edge.ReceiverID
		}
		if !seen[other] {
			seen[other] = true
			ids = append(ids, other)
		}
	}
	return s.accounts.GetByIDs(ctx, ids)
}

// ReceivedRequests lists the pending requests addressed to userID, oldest first.
func (s *FriendService) ReceivedRequests(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	return s.friendships.ListPendingForReceiver(ctx, userID)
}
