package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/modules/support/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
	"github.com/dottify/dottify-backend/internal/shared/utils"
)

type SubmitSupportInput struct {
	Email   string
	Subject string
	Message string
}

type SupportService struct {
	repo domain.SupportRepository
}

func NewSupportService(repo domain.SupportRepository) *SupportService {
	return &SupportService{repo: repo}
}

// Submit requires a session; the stored request carries the caller's profile
// when one exists.
func (s *SupportService) Submit(ctx context.Context, ident identitydomain.Identity, in SubmitSupportInput) (*domain.SupportRequest, error) {
	if err := identitydomain.Decide(ident.Role, ident.Profile, identitydomain.ActionSubmitSupport, nil); err != nil {
		return nil, err
	}

	if !utils.IsValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: invalid email address", shared.ErrValidation)
	}
	if in.Subject == "" {
		return nil, fmt.Errorf("%w: subject is required", shared.ErrValidation)
	}
	if in.Message == "" {
		return nil, fmt.Errorf("%w: message is required", shared.ErrValidation)
	}

	request := &domain.SupportRequest{
		ID:      uuid.New(),
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if ident.Profile != nil {
		id := ident.Profile.ID
		request.ProfileID = &id
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
