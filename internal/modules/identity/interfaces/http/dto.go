package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/modules/identity/domain"
)

type ProfileRequest struct {
	DisplayName string `json:"display_name"`
}

type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserPageResponse is the public user page: the profile plus the playlists
// the viewer is allowed to see.
type UserPageResponse struct {
	ProfileResponse
	Playlists []PlaylistView `json:"playlists"`
}

func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		CreatedAt:   p.CreatedAt,
	}
}
