package http

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlaylistView is the slice of a playlist the user page shows.
type PlaylistView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Visibility int       `json:"visibility"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlaylistLister supplies the playlists of a profile that a given viewer may
// see; a nil viewer is an anonymous caller.
type PlaylistLister interface {
	ProfilePlaylists(ctx context.Context, ownerProfileID uuid.UUID, viewerProfileID *uuid.UUID) ([]PlaylistView, error)
}
