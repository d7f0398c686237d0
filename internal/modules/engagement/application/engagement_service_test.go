package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dottify/dottify-backend/internal/modules/engagement/domain"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

type mockRatingRepo struct {
	createFn  func(context.Context, *domain.Rating) error
	getByIDFn func(context.Context, uuid.UUID) (*domain.Rating, error)
	deleteFn  func(context.Context, uuid.UUID) error
	averageFn func(context.Context, domain.Target, *time.Time) (*float64, error)
}

func (m mockRatingRepo) Create(ctx context.Context, r *domain.Rating) error {
	return m.createFn(ctx, r)
}
func (m mockRatingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	return m.getByIDFn(ctx, id)
}
func (m mockRatingRepo) Delete(ctx context.Context, id uuid.UUID) error { return m.deleteFn(ctx, id) }
func (m mockRatingRepo) Average(ctx context.Context, t domain.Target, since *time.Time) (*float64, error) {
	return m.averageFn(ctx, t, since)
}

type mockCommentRepo struct {
	createFn       func(context.Context, *domain.Comment) error
	getByIDFn      func(context.Context, uuid.UUID) (*domain.Comment, error)
	listByTargetFn func(context.Context, domain.Target) ([]domain.CommentWithAuthor, error)
	deleteFn       func(context.Context, uuid.UUID) error
}

func (m mockCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	return m.createFn(ctx, c)
}
func (m mockCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	return m.getByIDFn(ctx, id)
}
func (m mockCommentRepo) ListByTarget(ctx context.Context, t domain.Target) ([]domain.CommentWithAuthor, error) {
	return m.listByTargetFn(ctx, t)
}
func (m mockCommentRepo) Delete(ctx context.Context, id uuid.UUID) error { return m.deleteFn(ctx, id) }

type mockVerifier struct {
	existsFn func(context.Context, domain.Target) (bool, error)
}

func (m mockVerifier) Exists(ctx context.Context, t domain.Target) (bool, error) {
	return m.existsFn(ctx, t)
}

func allTargetsExist() mockVerifier {
	return mockVerifier{existsFn: func(context.Context, domain.Target) (bool, error) { return true, nil }}
}

func anonymous() identitydomain.Identity {
	return identitydomain.Identity{Role: identitydomain.RoleAnonymous}
}

func member() identitydomain.Identity {
	return identitydomain.Identity{
		Role:    identitydomain.RoleMember,
		Profile: &identitydomain.Profile{ID: uuid.New(), DisplayName: "Listener"},
	}
}

func songTarget() domain.Target {
	return domain.Target{Kind: domain.TargetSong, ID: uuid.New()}
}

func TestEngagementService_CreateRatingValueBounds(t *testing.T) {
	svc := NewEngagementService(
		mockRatingRepo{createFn: func(context.Context, *domain.Rating) error { return nil }},
		mockCommentRepo{},
		allTargetsExist(),
	)
	ctx := context.Background()

	for _, value := range []int{0, 6, -1} {
		_, err := svc.CreateRating(ctx, member(), CreateRatingInput{Target: songTarget(), Value: value})
		require.ErrorIs(t, err, shared.ErrValidation, "value %d", value)
	}

	rating, err := svc.CreateRating(ctx, member(), CreateRatingInput{Target: songTarget(), Value: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, rating.Value)
}

func TestEngagementService_CreateRatingTargetKinds(t *testing.T) {
	svc := NewEngagementService(
		mockRatingRepo{createFn: func(context.Context, *domain.Rating) error { return nil }},
		mockCommentRepo{},
		allTargetsExist(),
	)
	ctx := context.Background()

	// Playlists cannot be rated.
	_, err := svc.CreateRating(ctx, member(), CreateRatingInput{
		Target: domain.Target{Kind: domain.TargetPlaylist, ID: uuid.New()}, Value: 3,
	})
	require.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.CreateRating(ctx, member(), CreateRatingInput{
		Target: domain.Target{Kind: domain.TargetAlbum, ID: uuid.New()}, Value: 3,
	})
	require.NoError(t, err)
}

func TestEngagementService_CreateRatingAnonymous(t *testing.T) {
	var stored *domain.Rating
	svc := NewEngagementService(
		mockRatingRepo{createFn: func(_ context.Context, r *domain.Rating) error {
			stored = r
			return nil
		}},
		mockCommentRepo{},
		allTargetsExist(),
	)

	_, err := svc.CreateRating(context.Background(), anonymous(), CreateRatingInput{Target: songTarget(), Value: 4})
	require.NoError(t, err)
	assert.Nil(t, stored.ProfileID)
}

func TestEngagementService_CreateRatingMissingTarget(t *testing.T) {
	svc := NewEngagementService(
		mockRatingRepo{},
		mockCommentRepo{},
		mockVerifier{existsFn: func(context.Context, domain.Target) (bool, error) { return false, nil }},
	)

	_, err := svc.CreateRating(context.Background(), member(), CreateRatingInput{Target: songTarget(), Value: 3})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestEngagementService_DeleteRatingAuthorOrAdmin(t *testing.T) {
	author := member()
	rating := &domain.Rating{ID: uuid.New(), ProfileID: &author.Profile.ID, Target: songTarget(), Value: 3}
	deleted := false
	svc := NewEngagementService(
		mockRatingRepo{
			getByIDFn: func(context.Context, uuid.UUID) (*domain.Rating, error) { return rating, nil },
			deleteFn: func(context.Context, uuid.UUID) error {
				deleted = true
				return nil
			},
		},
		mockCommentRepo{},
		allTargetsExist(),
	)
	ctx := context.Background()

	require.ErrorIs(t, svc.DeleteRating(ctx, anonymous(), rating.ID), shared.ErrAuthenticationRequired)
	require.ErrorIs(t, svc.DeleteRating(ctx, member(), rating.ID), shared.ErrForbidden)
	assert.False(t, deleted)

	require.NoError(t, svc.DeleteRating(ctx, author, rating.ID))
	assert.True(t, deleted)

	deleted = false
	admin := identitydomain.Identity{Role: identitydomain.RoleAdministrator}
	require.NoError(t, svc.DeleteRating(ctx, admin, rating.ID))
	assert.True(t, deleted)
}

func TestEngagementService_DeleteAnonymousRatingNeedsAdmin(t *testing.T) {
	rating := &domain.Rating{ID: uuid.New(), ProfileID: nil, Target: songTarget(), Value: 3}
	svc := NewEngagementService(
		mockRatingRepo{
			getByIDFn: func(context.Context, uuid.UUID) (*domain.Rating, error) { return rating, nil },
			deleteFn:  func(context.Context, uuid.UUID) error { return nil },
		},
		mockCommentRepo{},
		allTargetsExist(),
	)

	// No author on record: nobody below administrator may remove it.
	require.ErrorIs(t, svc.DeleteRating(context.Background(), member(), rating.ID), shared.ErrForbidden)
}

func TestEngagementService_CreateCommentValidation(t *testing.T) {
	svc := NewEngagementService(
		mockRatingRepo{},
		mockCommentRepo{createFn: func(context.Context, *domain.Comment) error { return nil }},
		allTargetsExist(),
	)
	ctx := context.Background()

	_, err := svc.CreateComment(ctx, member(), CreateCommentInput{
		Target: domain.Target{Kind: domain.TargetAlbum, ID: uuid.New()}, Body: "nice",
	})
	require.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.CreateComment(ctx, member(), CreateCommentInput{Target: songTarget(), Body: ""})
	require.ErrorIs(t, err, shared.ErrValidation)

	comment, err := svc.CreateComment(ctx, member(), CreateCommentInput{
		Target: domain.Target{Kind: domain.TargetPlaylist, ID: uuid.New()}, Body: "great mix",
	})
	require.NoError(t, err)
	assert.Equal(t, "great mix", comment.Body)
}

func TestEngagementService_AveragesNilMeansNoData(t *testing.T) {
	all := 4.2
	svc := NewEngagementService(
		mockRatingRepo{averageFn: func(_ context.Context, _ domain.Target, since *time.Time) (*float64, error) {
			if since == nil {
				return &all, nil
			}
			// Nothing inside the recent window.
			return nil, nil
		}},
		mockCommentRepo{},
		allTargetsExist(),
	)

	allTime, recent, err := svc.Averages(context.Background(), songTarget())
	require.NoError(t, err)
	require.NotNil(t, allTime)
	assert.InDelta(t, 4.2, *allTime, 0.0001)
	assert.Nil(t, recent)
}

func TestEngagementService_AlbumAveragesTargetsAlbum(t *testing.T) {
	albumID := uuid.New()
	svc := NewEngagementService(
		mockRatingRepo{averageFn: func(_ context.Context, target domain.Target, _ *time.Time) (*float64, error) {
			assert.Equal(t, domain.TargetAlbum, target.Kind)
			assert.Equal(t, albumID, target.ID)
			return nil, nil
		}},
		mockCommentRepo{},
		allTargetsExist(),
	)

	_, _, err := svc.AlbumAverages(context.Background(), albumID)
	require.NoError(t, err)
}
