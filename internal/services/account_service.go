package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/repositories"
)

// AccountService mints and reads the engine's view of accounts. The identity
// subsystem owns credentials; the engine only keeps id, display name, the
// profile flag and the role.
type AccountService struct {
	accounts repositories.AccountRepository
	validate *validator.Validate
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts repositories.AccountRepository, validate *validator.Validate) *AccountService {
	return &AccountService{
		accounts: accounts,
		validate: validate,
	}
}

// Create registers an account with a fresh opaque id. The role claim is
// parsed into the closed role set at this boundary, never re-parsed later.
func (s *AccountService) Create(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid account: %w", err)
	}

	account := &models.Account{
		ID:              uuid.NewString(),
		DisplayName:     req.DisplayName,
		IsProfilePublic: req.IsProfilePublic,
		Role:            models.ParseRole(req.Role),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Get fetches an account by id.
func (s *AccountService) Get(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return account, nil
}

// SetProfileVisibility flips the public flag on the actor's own profile.
func (s *AccountService) SetProfileVisibility(ctx context.Context, actorID string, public bool) error {
	if _, err := s.Get(ctx, actorID); err != nil {
		return err
	}
	return s.accounts.SetProfilePublic(ctx, actorID, public)
}
