package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	engagementapp "github.com/dottify/dottify-backend/internal/modules/engagement/application"
	engagementdomain "github.com/dottify/dottify-backend/internal/modules/engagement/domain"
	identityhttp "github.com/dottify/dottify-backend/internal/modules/identity/interfaces/http"
	playlistdomain "github.com/dottify/dottify-backend/internal/modules/playlist/domain"
	playlistpersistence "github.com/dottify/dottify-backend/internal/modules/playlist/infrastructure/persistence/postgres"
	playlisthttp "github.com/dottify/dottify-backend/internal/modules/playlist/interfaces/http"
)

// profilePlaylists adapts the playlist repository to the user page's listing
// interface. It holds its own repository so the identity module can be wired
// before the playlist module.
type profilePlaylists struct {
	repo playlistdomain.PlaylistRepository
}

func NewProfilePlaylists(db *sqlx.DB) identityhttp.PlaylistLister {
	return &profilePlaylists{repo: playlistpersistence.NewPlaylistRepository(db)}
}

func (a *profilePlaylists) ProfilePlaylists(ctx context.Context, ownerProfileID uuid.UUID, viewerProfileID *uuid.UUID) ([]identityhttp.PlaylistView, error) {
	viewerIsOwner := viewerProfileID != nil && *viewerProfileID == ownerProfileID
	playlists, err := a.repo.ListByOwner(ctx, ownerProfileID, viewerIsOwner)
	if err != nil {
		return nil, err
	}

	views := make([]identityhttp.PlaylistView, len(playlists))
	for i, p := range playlists {
		views[i] = identityhttp.PlaylistView{
			ID:         p.ID,
			Name:       p.Name,
			Visibility: int(p.Visibility),
			CreatedAt:  p.CreatedAt,
		}
	}
	return views, nil
}

// playlistComments adapts the engagement service to the playlist page's
// comment listing interface.
type playlistComments struct {
	service *engagementapp.EngagementService
}

func NewPlaylistComments(service *engagementapp.EngagementService) playlisthttp.CommentLister {
	return &playlistComments{service: service}
}

func (a *playlistComments) PlaylistComments(ctx context.Context, playlistID uuid.UUID) ([]playlisthttp.CommentView, error) {
	comments, err := a.service.ListComments(ctx, engagementdomain.Target{
		Kind: engagementdomain.TargetPlaylist,
		ID:   playlistID,
	})
	if err != nil {
		return nil, err
	}

	views := make([]playlisthttp.CommentView, len(comments))
	for i, c := range comments {
		views[i] = playlisthttp.CommentView{
			ID:         c.ID,
			ProfileID:  c.ProfileID,
			AuthorName: c.AuthorName,
			Body:       c.Body,
			CreatedAt:  c.CreatedAt,
		}
	}
	return views, nil
}
