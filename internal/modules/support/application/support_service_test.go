package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/modules/support/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

type mockSupportRepo struct {
	createFn func(context.Context, *domain.SupportRequest) error
}

func (m mockSupportRepo) Create(ctx context.Context, r *domain.SupportRequest) error {
	return m.createFn(ctx, r)
}

func validInput() SubmitSupportInput {
	return SubmitSupportInput{Email: "listener@example.com", Subject: "Broken page", Message: "The album page 500s."}
}

func TestSupportService_SubmitRequiresSession(t *testing.T) {
	svc := NewSupportService(mockSupportRepo{createFn: func(context.Context, *domain.SupportRequest) error { return nil }})

	_, err := svc.Submit(context.Background(), identitydomain.Identity{Role: identitydomain.RoleAnonymous}, validInput())
	require.ErrorIs(t, err, shared.ErrAuthenticationRequired)
}

func TestSupportService_SubmitValidation(t *testing.T) {
	svc := NewSupportService(mockSupportRepo{createFn: func(context.Context, *domain.SupportRequest) error { return nil }})
	ctx := context.Background()
	member := identitydomain.Identity{Role: identitydomain.RoleMember}

	in := validInput()
	in.Email = "not-an-email"
	_, err := svc.Submit(ctx, member, in)
	require.ErrorIs(t, err, shared.ErrValidation)

	in = validInput()
	in.Subject = ""
	_, err = svc.Submit(ctx, member, in)
	require.ErrorIs(t, err, shared.ErrValidation)

	in = validInput()
	in.Message = ""
	_, err = svc.Submit(ctx, member, in)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestSupportService_SubmitLinksProfileWhenPresent(t *testing.T) {
	var stored *domain.SupportRequest
	svc := NewSupportService(mockSupportRepo{createFn: func(_ context.Context, r *domain.SupportRequest) error {
		stored = r
		return nil
	}})
	ctx := context.Background()

	profileID := uuid.New()
	member := identitydomain.Identity{
		Role:    identitydomain.RoleMember,
		Profile: &identitydomain.Profile{ID: profileID, DisplayName: "Listener"},
	}
	_, err := svc.Submit(ctx, member, validInput())
	require.NoError(t, err)
	require.NotNil(t, stored.ProfileID)
	assert.Equal(t, profileID, *stored.ProfileID)

	// An authenticated account without a provisioned profile may still ask
	// for help; the request is simply unlinked.
	noProfile := identitydomain.Identity{Role: identitydomain.RoleMember}
	_, err = svc.Submit(ctx, noProfile, validInput())
	require.NoError(t, err)
	assert.Nil(t, stored.ProfileID)
}
