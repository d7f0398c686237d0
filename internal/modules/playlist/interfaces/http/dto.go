package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/modules/playlist/domain"
)

type PlaylistRequest struct {
	Name       string      `json:"name"`
	Visibility int         `json:"visibility"`
	SongIDs    []uuid.UUID `json:"song_ids"`
}

type ReplaceSongsRequest struct {
	SongIDs []uuid.UUID `json:"song_ids"`
}

type PlaylistResponse struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	OwnerProfileID uuid.UUID     `json:"owner_profile_id"`
	Visibility     int           `json:"visibility"`
	CreatedAt      time.Time     `json:"created_at"`
	SongIDs        []uuid.UUID   `json:"song_ids,omitempty"`
	Comments       []CommentView `json:"comments,omitempty"`
}

func ToPlaylistResponse(p *domain.Playlist) PlaylistResponse {
	return PlaylistResponse{
		ID:             p.ID,
		Name:           p.Name,
		OwnerProfileID: p.OwnerProfileID,
		Visibility:     int(p.Visibility),
		CreatedAt:      p.CreatedAt,
		SongIDs:        p.SongIDs,
	}
}

func ToPlaylistListResponse(playlists []domain.Playlist) []PlaylistResponse {
	out := make([]PlaylistResponse, len(playlists))
	for i := range playlists {
		out[i] = ToPlaylistResponse(&playlists[i])
	}
	return out
}
