package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dottify/dottify-backend/internal/modules/catalog/domain"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

type mockAlbumRepo struct {
	createFn  func(context.Context, *domain.Album) error
	getByIDFn func(context.Context, uuid.UUID) (*domain.Album, error)
	listFn    func(context.Context) ([]domain.Album, error)
	searchFn  func(context.Context, string) ([]domain.Album, error)
	updateFn  func(context.Context, *domain.Album) error
	deleteFn  func(context.Context, uuid.UUID) error
}

func (m mockAlbumRepo) Create(ctx context.Context, a *domain.Album) error { return m.createFn(ctx, a) }
func (m mockAlbumRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	return m.getByIDFn(ctx, id)
}
func (m mockAlbumRepo) List(ctx context.Context) ([]domain.Album, error) { return m.listFn(ctx) }
func (m mockAlbumRepo) Search(ctx context.Context, q string) ([]domain.Album, error) {
	return m.searchFn(ctx, q)
}
func (m mockAlbumRepo) Update(ctx context.Context, a *domain.Album) error { return m.updateFn(ctx, a) }
func (m mockAlbumRepo) Delete(ctx context.Context, id uuid.UUID) error    { return m.deleteFn(ctx, id) }

func artistIdentity(displayName string) identitydomain.Identity {
	return identitydomain.Identity{
		Role: identitydomain.RoleArtist,
		Profile: &identitydomain.Profile{
			ID:          uuid.New(),
			AccountID:   "acct-1",
			DisplayName: displayName,
		},
	}
}

func adminIdentity() identitydomain.Identity {
	return identitydomain.Identity{
		Role:    identitydomain.RoleAdministrator,
		Profile: &identitydomain.Profile{ID: uuid.New(), AccountID: "acct-admin", DisplayName: "Boss"},
	}
}

func validCreateInput(artistName string) CreateAlbumInput {
	return CreateAlbumInput{
		Title:       "Night Drive",
		ArtistName:  artistName,
		Format:      "single",
		RetailPrice: 9.99,
	}
}

func TestAlbumService_CreateAuthorization(t *testing.T) {
	svc := NewAlbumService(mockAlbumRepo{createFn: func(context.Context, *domain.Album) error { return nil }})
	ctx := context.Background()

	_, err := svc.Create(ctx, identitydomain.Identity{Role: identitydomain.RoleAnonymous}, validCreateInput("X"))
	require.ErrorIs(t, err, shared.ErrAuthenticationRequired)

	member := identitydomain.Identity{
		Role:    identitydomain.RoleMember,
		Profile: &identitydomain.Profile{ID: uuid.New(), DisplayName: "Listener"},
	}
	_, err = svc.Create(ctx, member, validCreateInput("Listener"))
	require.ErrorIs(t, err, shared.ErrForbidden)
}

func TestAlbumService_CreateArtistNameMustMatchDisplayName(t *testing.T) {
	svc := NewAlbumService(mockAlbumRepo{createFn: func(context.Context, *domain.Album) error { return nil }})

	_, err := svc.Create(context.Background(), artistIdentity("Mira Vance"), validCreateInput("Someone Else"))
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestAlbumService_CreateStampsOwnerForArtist(t *testing.T) {
	var stored *domain.Album
	svc := NewAlbumService(mockAlbumRepo{createFn: func(_ context.Context, a *domain.Album) error {
		stored = a
		return nil
	}})

	ident := artistIdentity("Mira Vance")
	album, err := svc.Create(context.Background(), ident, validCreateInput("Mira Vance"))
	require.NoError(t, err)
	require.NotNil(t, stored.OwnerProfileID)
	assert.Equal(t, ident.Profile.ID, *stored.OwnerProfileID)
	assert.Equal(t, "night-drive", album.Slug)
}

func TestAlbumService_CreateAdminLeavesOwnerEmpty(t *testing.T) {
	var stored *domain.Album
	svc := NewAlbumService(mockAlbumRepo{createFn: func(_ context.Context, a *domain.Album) error {
		stored = a
		return nil
	}})

	_, err := svc.Create(context.Background(), adminIdentity(), validCreateInput("Any Artist"))
	require.NoError(t, err)
	assert.Nil(t, stored.OwnerProfileID)
}

func TestAlbumService_CreateValidation(t *testing.T) {
	svc := NewAlbumService(mockAlbumRepo{createFn: func(context.Context, *domain.Album) error { return nil }})
	ctx := context.Background()
	ident := adminIdentity()

	in := validCreateInput("X")
	in.Title = ""
	_, err := svc.Create(ctx, ident, in)
	require.ErrorIs(t, err, shared.ErrValidation)

	in = validCreateInput("X")
	in.Format = "cassette"
	_, err = svc.Create(ctx, ident, in)
	require.ErrorIs(t, err, shared.ErrValidation)

	in = validCreateInput("X")
	in.RetailPrice = -1
	_, err = svc.Create(ctx, ident, in)
	require.ErrorIs(t, err, shared.ErrValidation)

	in = validCreateInput("X")
	farFuture := time.Now().Add(200 * 24 * time.Hour)
	in.ReleaseDate = &farFuture
	_, err = svc.Create(ctx, ident, in)
	require.ErrorIs(t, err, shared.ErrValidation)

	in = validCreateInput("X")
	soon := time.Now().Add(30 * 24 * time.Hour)
	in.ReleaseDate = &soon
	_, err = svc.Create(ctx, ident, in)
	require.NoError(t, err)
}

func TestAlbumService_CreateDuplicateIsConflict(t *testing.T) {
	svc := NewAlbumService(mockAlbumRepo{createFn: func(context.Context, *domain.Album) error {
		return domain.ErrDuplicateAlbum
	}})

	_, err := svc.Create(context.Background(), adminIdentity(), validCreateInput("X"))
	require.ErrorIs(t, err, shared.ErrConflict)
}

func TestAlbumService_UpdateChecksStoredOwner(t *testing.T) {
	owner := uuid.New()
	updateCalled := false
	repo := mockAlbumRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.Album, error) {
			return &domain.Album{ID: uuid.New(), Title: "Old", Format: domain.FormatSingle, OwnerProfileID: &owner}, nil
		},
		updateFn: func(context.Context, *domain.Album) error {
			updateCalled = true
			return nil
		},
	}
	svc := NewAlbumService(repo)

	// A different artist is denied and the repository is never written to.
	_, err := svc.Update(context.Background(), artistIdentity("Intruder"), uuid.New(), UpdateAlbumInput{
		Title: "Hijacked", Format: "single",
	})
	require.ErrorIs(t, err, shared.ErrForbidden)
	assert.False(t, updateCalled)

	// The owner gets through and the slug follows the new title.
	ident := artistIdentity("Mira Vance")
	ident.Profile.ID = owner
	album, err := svc.Update(context.Background(), ident, uuid.New(), UpdateAlbumInput{
		Title: "New Horizon", Format: "deluxe", RetailPrice: 15,
	})
	require.NoError(t, err)
	assert.True(t, updateCalled)
	assert.Equal(t, "new-horizon", album.Slug)
	assert.Equal(t, domain.FormatDeluxe, album.Format)
}

func TestAlbumService_DeleteUnknownAlbum(t *testing.T) {
	svc := NewAlbumService(mockAlbumRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.Album, error) {
			return nil, domain.ErrAlbumNotFound
		},
	})

	err := svc.Delete(context.Background(), adminIdentity(), uuid.New())
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAlbumService_SearchRequiresSession(t *testing.T) {
	svc := NewAlbumService(mockAlbumRepo{
		searchFn: func(_ context.Context, q string) ([]domain.Album, error) {
			assert.Equal(t, "night", q)
			return []domain.Album{{Title: "Night Drive"}}, nil
		},
	})
	ctx := context.Background()

	_, err := svc.Search(ctx, identitydomain.Identity{Role: identitydomain.RoleAnonymous}, "night")
	require.ErrorIs(t, err, shared.ErrAuthenticationRequired)

	member := identitydomain.Identity{Role: identitydomain.RoleMember}
	albums, err := svc.Search(ctx, member, "night")
	require.NoError(t, err)
	require.Len(t, albums, 1)
}
