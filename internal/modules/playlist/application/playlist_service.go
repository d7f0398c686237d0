package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/modules/playlist/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

type CreatePlaylistInput struct {
	Name       string
	Visibility domain.Visibility
	SongIDs    []uuid.UUID
}

type UpdatePlaylistInput struct {
	Name       string
	Visibility domain.Visibility
}

type PlaylistService struct {
	repo domain.PlaylistRepository
}

func NewPlaylistService(repo domain.PlaylistRepository) *PlaylistService {
	return &PlaylistService{repo: repo}
}

// Create requires an authenticated caller with a profile; the playlist is
// always owned by that profile. Any role past anonymous may create.
func (s *PlaylistService) Create(ctx context.Context, ident identitydomain.Identity, in CreatePlaylistInput) (*domain.Playlist, error) {
	if ident.Role == identitydomain.RoleAnonymous {
		return nil, shared.ErrAuthenticationRequired
	}
	if ident.Profile == nil {
		return nil, shared.ErrForbidden
	}
	if err := validatePlaylistFields(in.Name, in.Visibility); err != nil {
		return nil, err
	}

	playlist := &domain.Playlist{
		ID:             uuid.New(),
		Name:           in.Name,
		OwnerProfileID: ident.Profile.ID,
		Visibility:     in.Visibility,
	}
	if err := s.repo.Create(ctx, playlist); err != nil {
		return nil, err
	}

	if len(in.SongIDs) > 0 {
		if err := s.replaceSongs(ctx, playlist.ID, in.SongIDs); err != nil {
			return nil, err
		}
		playlist.SongIDs = dedupe(in.SongIDs)
	}
	return playlist, nil
}

// Get enforces visibility: hidden playlists are only ever shown to their
// owner, everyone else gets a Forbidden regardless of authentication.
func (s *PlaylistService) Get(ctx context.Context, ident identitydomain.Identity, id uuid.UUID) (*domain.Playlist, error) {
	playlist, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identitydomain.Decide(ident.Role, ident.Profile, identitydomain.ActionViewPlaylist,
		identitydomain.PlaylistTarget{OwnerProfileID: playlist.OwnerProfileID, Visibility: int(playlist.Visibility)}); err != nil {
		return nil, err
	}
	return playlist, nil
}

// List returns public playlists plus the caller's own, whatever their
// visibility. Unlisted playlists never appear in anyone else's listing.
func (s *PlaylistService) List(ctx context.Context, ident identitydomain.Identity) ([]domain.Playlist, error) {
	var viewer *uuid.UUID
	if ident.Profile != nil {
		id := ident.Profile.ID
		viewer = &id
	}
	return s.repo.ListVisible(ctx, viewer)
}

// ListByOwner backs the profile page: the owner sees everything, other
// viewers only the public playlists.
func (s *PlaylistService) ListByOwner(ctx context.Context, ident identitydomain.Identity, ownerProfileID uuid.UUID) ([]domain.Playlist, error) {
	viewerIsOwner := ident.Profile != nil && ident.Profile.ID == ownerProfileID
	return s.repo.ListByOwner(ctx, ownerProfileID, viewerIsOwner)
}

func (s *PlaylistService) Update(ctx context.Context, ident identitydomain.Identity, id uuid.UUID, in UpdatePlaylistInput) (*domain.Playlist, error) {
	playlist, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeMutation(ident, playlist); err != nil {
		return nil, err
	}
	if err := validatePlaylistFields(in.Name, in.Visibility); err != nil {
		return nil, err
	}

	playlist.Name = in.Name
	playlist.Visibility = in.Visibility
	if err := s.repo.Update(ctx, playlist); err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, fmt.Errorf("%w: playlist %s", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, ident identitydomain.Identity, id uuid.UUID) error {
	playlist, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeMutation(ident, playlist); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return fmt.Errorf("%w: playlist %s", shared.ErrNotFound, id)
		}
		return err
	}
	return nil
}

// ReplaceSongs swaps the playlist's whole song set. Duplicate submissions
// collapse to one membership each; an unknown song fails the whole request.
func (s *PlaylistService) ReplaceSongs(ctx context.Context, ident identitydomain.Identity, id uuid.UUID, songIDs []uuid.UUID) (*domain.Playlist, error) {
	playlist, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeMutation(ident, playlist); err != nil {
		return nil, err
	}

	if err := s.replaceSongs(ctx, id, songIDs); err != nil {
		return nil, err
	}
	playlist.SongIDs = dedupe(songIDs)
	return playlist, nil
}

// authorizeMutation allows the owner and administrators; everyone else is
// denied against the stored playlist, never the submitted payload.
func (s *PlaylistService) authorizeMutation(ident identitydomain.Identity, playlist *domain.Playlist) error {
	if ident.Role == identitydomain.RoleAnonymous {
		return shared.ErrAuthenticationRequired
	}
	if ident.Role == identitydomain.RoleAdministrator {
		return nil
	}
	if ident.Profile == nil || ident.Profile.ID != playlist.OwnerProfileID {
		return shared.ErrForbidden
	}
	return nil
}

func (s *PlaylistService) replaceSongs(ctx context.Context, id uuid.UUID, songIDs []uuid.UUID) error {
	if err := s.repo.ReplaceSongs(ctx, id, dedupe(songIDs)); err != nil {
		if errors.Is(err, domain.ErrUnknownSong) {
			return fmt.Errorf("%w: %s", shared.ErrValidation, err)
		}
		return err
	}
	return nil
}

func (s *PlaylistService) getExisting(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	playlist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, fmt.Errorf("%w: playlist %s", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return playlist, nil
}

func validatePlaylistFields(name string, visibility domain.Visibility) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if !domain.ValidVisibility(visibility) {
		return fmt.Errorf("%w: unknown visibility %d", shared.ErrValidation, visibility)
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
