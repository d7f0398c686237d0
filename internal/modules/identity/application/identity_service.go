package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/modules/identity/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

// IdentityService resolves callers and manages profiles.
type IdentityService struct {
	repo domain.ProfileRepository
}

func NewIdentityService(repo domain.ProfileRepository) *IdentityService {
	return &IdentityService{repo: repo}
}

// Resolve maps a session to a role and at most one profile. A missing profile
// row for an authenticated account is not an error: the identity degrades to
// no-profile while keeping the resolved role.
func (s *IdentityService) Resolve(ctx context.Context, sess *domain.Session) (domain.Identity, error) {
	role := domain.ResolveRole(sess)
	if sess == nil {
		return domain.Identity{Role: role}, nil
	}

	profile, err := s.repo.GetByAccountID(ctx, sess.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.Identity{Role: role}, nil
		}
		return domain.Identity{}, err
	}
	return domain.Identity{Profile: profile, Role: role}, nil
}

// CreateProfile provisions the 1:1 profile for the caller's account.
func (s *IdentityService) CreateProfile(ctx context.Context, sess *domain.Session, displayName string) (*domain.Profile, error) {
	if sess == nil {
		return nil, shared.ErrAuthenticationRequired
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name is required", shared.ErrValidation)
	}

	profile := &domain.Profile{
		ID:          uuid.New(),
		AccountID:   sess.AccountID,
		DisplayName: displayName,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrProfileAlreadyExists) {
			return nil, fmt.Errorf("%w: %s", shared.ErrConflict, err)
		}
		return nil, err
	}
	return profile, nil
}

// UpdateDisplayName renames the caller's own profile. The account link is
// immutable, so the profile is always looked up through the session.
func (s *IdentityService) UpdateDisplayName(ctx context.Context, sess *domain.Session, displayName string) (*domain.Profile, error) {
	if sess == nil {
		return nil, shared.ErrAuthenticationRequired
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name is required", shared.ErrValidation)
	}

	profile, err := s.repo.GetByAccountID(ctx, sess.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("%w: no profile for this account", shared.ErrNotFound)
		}
		return nil, err
	}

	if err := s.repo.UpdateDisplayName(ctx, profile.ID, displayName); err != nil {
		return nil, err
	}
	profile.DisplayName = displayName
	return profile, nil
}

// GetProfile fetches a profile by id for the public user page.
func (s *IdentityService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("%w: profile %s", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return profile, nil
}
