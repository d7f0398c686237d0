package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/modules/engagement/domain"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

// TargetVerifier reports whether a rating/comment target actually exists.
// Targets are polymorphic, so the database cannot enforce this with a
// foreign key.
type TargetVerifier interface {
	Exists(ctx context.Context, target domain.Target) (bool, error)
}

type CreateRatingInput struct {
	Target domain.Target
	Value  int
}

type CreateCommentInput struct {
	Target domain.Target
	Body   string
}

type EngagementService struct {
	ratings  domain.RatingRepository
	comments domain.CommentRepository
	verifier TargetVerifier
}

func NewEngagementService(ratings domain.RatingRepository, comments domain.CommentRepository, verifier TargetVerifier) *EngagementService {
	return &EngagementService{ratings: ratings, comments: comments, verifier: verifier}
}

// CreateRating accepts anonymous callers: the author reference is simply
// left empty. Ratings may point at songs and albums only.
func (s *EngagementService) CreateRating(ctx context.Context, ident identitydomain.Identity, in CreateRatingInput) (*domain.Rating, error) {
	if !domain.ValidRatingTarget(in.Target.Kind) {
		return nil, fmt.Errorf("%w: ratings cannot target %q", shared.ErrValidation, in.Target.Kind)
	}
	if in.Value < 1 || in.Value > 5 {
		return nil, fmt.Errorf("%w: rating value must be between 1 and 5", shared.ErrValidation)
	}
	if err := s.verifyTarget(ctx, in.Target); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		ID:        uuid.New(),
		ProfileID: profileID(ident),
		Target:    in.Target,
		Value:     in.Value,
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *EngagementService) GetRating(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	rating, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRatingNotFound) {
			return nil, fmt.Errorf("%w: rating %s", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return rating, nil
}

// DeleteRating is restricted to the rating's author or an administrator.
func (s *EngagementService) DeleteRating(ctx context.Context, ident identitydomain.Identity, id uuid.UUID) error {
	rating, err := s.GetRating(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeRemoval(ident, rating.ProfileID); err != nil {
		return err
	}
	if err := s.ratings.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRatingNotFound) {
			return fmt.Errorf("%w: rating %s", shared.ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *EngagementService) CreateComment(ctx context.Context, ident identitydomain.Identity, in CreateCommentInput) (*domain.Comment, error) {
	if !domain.ValidCommentTarget(in.Target.Kind) {
		return nil, fmt.Errorf("%w: comments cannot target %q", shared.ErrValidation, in.Target.Kind)
	}
	if in.Body == "" {
		return nil, fmt.Errorf("%w: comment body is required", shared.ErrValidation)
	}
	if err := s.verifyTarget(ctx, in.Target); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		ProfileID: profileID(ident),
		Target:    in.Target,
		Body:      in.Body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *EngagementService) ListComments(ctx context.Context, target domain.Target) ([]domain.CommentWithAuthor, error) {
	if !domain.ValidCommentTarget(target.Kind) {
		return nil, fmt.Errorf("%w: comments cannot target %q", shared.ErrValidation, target.Kind)
	}
	return s.comments.ListByTarget(ctx, target)
}

func (s *EngagementService) DeleteComment(ctx context.Context, ident identitydomain.Identity, id uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return fmt.Errorf("%w: comment %s", shared.ErrNotFound, id)
		}
		return err
	}
	if err := authorizeRemoval(ident, comment.ProfileID); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return fmt.Errorf("%w: comment %s", shared.ErrNotFound, id)
		}
		return err
	}
	return nil
}

// Averages returns the all-time and trailing-seven-day means for a target.
// Either value is nil when no rating falls in its window; absence of data is
// not an error.
func (s *EngagementService) Averages(ctx context.Context, target domain.Target) (allTime, recent *float64, err error) {
	allTime, err = s.ratings.Average(ctx, target, nil)
	if err != nil {
		return nil, nil, err
	}
	since := time.Now().Add(-domain.RecentWindow)
	recent, err = s.ratings.Average(ctx, target, &since)
	if err != nil {
		return nil, nil, err
	}
	return allTime, recent, nil
}

// AlbumAverages satisfies the catalog module's rating aggregation interface.
func (s *EngagementService) AlbumAverages(ctx context.Context, albumID uuid.UUID) (allTime, recent *float64, err error) {
	return s.Averages(ctx, domain.Target{Kind: domain.TargetAlbum, ID: albumID})
}

func (s *EngagementService) verifyTarget(ctx context.Context, target domain.Target) error {
	ok, err := s.verifier.Exists(ctx, target)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %s does not exist", shared.ErrValidation, target.Kind, target.ID)
	}
	return nil
}

// authorizeRemoval allows the author and administrators. An anonymous item
// has no author, so only administrators can remove it.
func authorizeRemoval(ident identitydomain.Identity, authorID *uuid.UUID) error {
	if ident.Role == identitydomain.RoleAnonymous {
		return shared.ErrAuthenticationRequired
	}
	if ident.Role == identitydomain.RoleAdministrator {
		return nil
	}
	if ident.Profile == nil || authorID == nil || *authorID != ident.Profile.ID {
		return shared.ErrForbidden
	}
	return nil
}

func profileID(ident identitydomain.Identity) *uuid.UUID {
	if ident.Profile == nil {
		return nil
	}
	id := ident.Profile.ID
	return &id
}
