package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/modules/catalog/domain"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

type CreateSongInput struct {
	AlbumID uuid.UUID
	Title   string
	Length  int
}

// UpdateSongInput omits AlbumID and Position: a song never moves between
// albums, and its position is assigned once at creation.
type UpdateSongInput struct {
	Title  string
	Length int
}

type SongService struct {
	repo      domain.SongRepository
	albumRepo domain.AlbumRepository
}

func NewSongService(repo domain.SongRepository, albumRepo domain.AlbumRepository) *SongService {
	return &SongService{repo: repo, albumRepo: albumRepo}
}

// Create checks the caller's rights against the album the song is being
// attached to, then validates and writes. The position is assigned by the
// repository inside the insert transaction.
func (s *SongService) Create(ctx context.Context, ident identitydomain.Identity, in CreateSongInput) (*domain.Song, error) {
	album, err := s.albumRepo.GetByID(ctx, in.AlbumID)
	if err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			return nil, fmt.Errorf("%w: album %s", shared.ErrNotFound, in.AlbumID)
		}
		return nil, err
	}
	if err := identitydomain.Decide(ident.Role, ident.Profile, identitydomain.ActionCreateSong,
		identitydomain.AlbumTarget{OwnerProfileID: album.OwnerProfileID}); err != nil {
		return nil, err
	}

	if err := validateSongFields(in.Title, in.Length); err != nil {
		return nil, err
	}

	song := &domain.Song{
		ID:      uuid.New(),
		AlbumID: in.AlbumID,
		Title:   in.Title,
		Length:  in.Length,
	}
	if err := s.repo.Create(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *SongService) Update(ctx context.Context, ident identitydomain.Identity, id uuid.UUID, in UpdateSongInput) (*domain.Song, error) {
	song, err := s.authorizeMutation(ctx, ident, id, identitydomain.ActionEditSong)
	if err != nil {
		return nil, err
	}

	if err := validateSongFields(in.Title, in.Length); err != nil {
		return nil, err
	}

	song.Title = in.Title
	song.Length = in.Length
	if err := s.repo.Update(ctx, song); err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			return nil, fmt.Errorf("%w: song %s", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return song, nil
}

func (s *SongService) Delete(ctx context.Context, ident identitydomain.Identity, id uuid.UUID) error {
	if _, err := s.authorizeMutation(ctx, ident, id, identitydomain.ActionDeleteSong); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			return fmt.Errorf("%w: song %s", shared.ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *SongService) Get(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	song, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			return nil, fmt.Errorf("%w: song %s", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return song, nil
}

func (s *SongService) List(ctx context.Context) ([]domain.Song, int, error) {
	return s.repo.List(ctx)
}

func (s *SongService) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Song, error) {
	if _, err := s.albumRepo.GetByID(ctx, albumID); err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			return nil, fmt.Errorf("%w: album %s", shared.ErrNotFound, albumID)
		}
		return nil, err
	}
	return s.repo.ListByAlbum(ctx, albumID)
}

// authorizeMutation resolves the song and its album from storage and runs the
// policy against that existing state.
func (s *SongService) authorizeMutation(ctx context.Context, ident identitydomain.Identity, id uuid.UUID, action identitydomain.Action) (*domain.Song, error) {
	song, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			return nil, fmt.Errorf("%w: song %s", shared.ErrNotFound, id)
		}
		return nil, err
	}
	album, err := s.albumRepo.GetByID(ctx, song.AlbumID)
	if err != nil {
		return nil, err
	}
	if err := identitydomain.Decide(ident.Role, ident.Profile, action,
		identitydomain.AlbumTarget{OwnerProfileID: album.OwnerProfileID}); err != nil {
		return nil, err
	}
	return song, nil
}

func validateSongFields(title string, length int) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrValidation)
	}
	if length <= 0 {
		return fmt.Errorf("%w: length must be a positive number of seconds", shared.ErrValidation)
	}
	return nil
}
