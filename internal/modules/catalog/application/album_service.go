package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/modules/catalog/domain"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
	"github.com/dottify/dottify-backend/internal/shared/slug"
)

// CreateAlbumInput carries the submitted album fields. ArtistName is accepted
// on create only; edits never touch it or the owning reference.
type CreateAlbumInput struct {
	Title       string
	ArtistName  string
	Format      string
	ReleaseDate *time.Time
	RetailPrice float64
	CoverImage  string
}

// UpdateAlbumInput deliberately omits ArtistName and the owner: a caller must
// not be able to smuggle an ownership change into an edit request.
type UpdateAlbumInput struct {
	Title       string
	Format      string
	ReleaseDate *time.Time
	RetailPrice float64
	CoverImage  string
}

type AlbumService struct {
	repo domain.AlbumRepository
}

func NewAlbumService(repo domain.AlbumRepository) *AlbumService {
	return &AlbumService{repo: repo}
}

// Create authorizes first, then validates, then writes. For Artist callers the
// submitted artist name must match their display name and the album is stamped
// with their profile as owner; administrators may create for any artist name.
func (s *AlbumService) Create(ctx context.Context, ident identitydomain.Identity, in CreateAlbumInput) (*domain.Album, error) {
	if err := identitydomain.Decide(ident.Role, ident.Profile, identitydomain.ActionCreateAlbum, nil); err != nil {
		return nil, err
	}

	var owner *uuid.UUID
	if ident.Role == identitydomain.RoleArtist {
		if ident.Profile == nil {
			return nil, shared.ErrForbidden
		}
		if in.ArtistName != ident.Profile.DisplayName {
			return nil, fmt.Errorf("%w: artist name must match your display name", shared.ErrValidation)
		}
		ownerID := ident.Profile.ID
		owner = &ownerID
	}

	if err := validateAlbumFields(in.Title, in.Format, in.ReleaseDate, in.RetailPrice); err != nil {
		return nil, err
	}
	if in.ArtistName == "" {
		return nil, fmt.Errorf("%w: artist name is required", shared.ErrValidation)
	}

	album := &domain.Album{
		ID:             uuid.New(),
		Title:          in.Title,
		ArtistName:     in.ArtistName,
		OwnerProfileID: owner,
		Format:         domain.Format(in.Format),
		ReleaseDate:    in.ReleaseDate,
		RetailPrice:    in.RetailPrice,
		CoverImage:     in.CoverImage,
		Slug:           slug.Make(in.Title),
	}
	if err := s.repo.Create(ctx, album); err != nil {
		if errors.Is(err, domain.ErrDuplicateAlbum) {
			return nil, fmt.Errorf("%w: %s", shared.ErrConflict, err)
		}
		return nil, err
	}
	return album, nil
}

// Update re-evaluates ownership against the stored album, never the submitted
// payload, before any field is applied.
func (s *AlbumService) Update(ctx context.Context, ident identitydomain.Identity, id uuid.UUID, in UpdateAlbumInput) (*domain.Album, error) {
	album, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identitydomain.Decide(ident.Role, ident.Profile, identitydomain.ActionEditAlbum,
		identitydomain.AlbumTarget{OwnerProfileID: album.OwnerProfileID}); err != nil {
		return nil, err
	}

	if err := validateAlbumFields(in.Title, in.Format, in.ReleaseDate, in.RetailPrice); err != nil {
		return nil, err
	}

	album.Title = in.Title
	album.Format = domain.Format(in.Format)
	album.ReleaseDate = in.ReleaseDate
	album.RetailPrice = in.RetailPrice
	album.CoverImage = in.CoverImage
	album.Slug = slug.Make(in.Title)

	if err := s.repo.Update(ctx, album); err != nil {
		if errors.Is(err, domain.ErrDuplicateAlbum) {
			return nil, fmt.Errorf("%w: %s", shared.ErrConflict, err)
		}
		if errors.Is(err, domain.ErrAlbumNotFound) {
			return nil, fmt.Errorf("%w: album %s", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return album, nil
}

func (s *AlbumService) Delete(ctx context.Context, ident identitydomain.Identity, id uuid.UUID) error {
	album, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}
	if err := identitydomain.Decide(ident.Role, ident.Profile, identitydomain.ActionDeleteAlbum,
		identitydomain.AlbumTarget{OwnerProfileID: album.OwnerProfileID}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			return fmt.Errorf("%w: album %s", shared.ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *AlbumService) Get(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	return s.getExisting(ctx, id)
}

func (s *AlbumService) List(ctx context.Context) ([]domain.Album, error) {
	return s.repo.List(ctx)
}

// Search requires a session; anonymous callers get the 401-style denial, not
// 403.
func (s *AlbumService) Search(ctx context.Context, ident identitydomain.Identity, query string) ([]domain.Album, error) {
	if err := identitydomain.Decide(ident.Role, ident.Profile, identitydomain.ActionSearchAlbums, nil); err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, query)
}

func (s *AlbumService) getExisting(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	album, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			return nil, fmt.Errorf("%w: album %s", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return album, nil
}

func validateAlbumFields(title, format string, releaseDate *time.Time, price float64) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrValidation)
	}
	if !domain.ValidFormat(domain.Format(format)) {
		return fmt.Errorf("%w: unknown format %q", shared.ErrValidation, format)
	}
	if price < 0 {
		return fmt.Errorf("%w: retail price must not be negative", shared.ErrValidation)
	}
	if releaseDate != nil && releaseDate.After(time.Now().Add(domain.MaxReleaseLead)) {
		return fmt.Errorf("%w: release date is too far in the future", shared.ErrValidation)
	}
	return nil
}
