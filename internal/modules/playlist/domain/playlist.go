package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Visibility is the per-playlist exposure level. The stored integers match
// the policy's playlist constants.
type Visibility int

const (
	VisibilityHidden   Visibility = 0
	VisibilityUnlisted Visibility = 1
	VisibilityPublic   Visibility = 2
)

func ValidVisibility(v Visibility) bool {
	return v == VisibilityHidden || v == VisibilityUnlisted || v == VisibilityPublic
}

// Playlist holds an owner's ordered-by-insertion set of songs. CreatedAt is
// set once and never updated.
type Playlist struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	OwnerProfileID uuid.UUID  `json:"owner_profile_id" db:"owner_profile_id"`
	Visibility     Visibility `json:"visibility" db:"visibility"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`

	// SongIDs is the membership set, populated on single-playlist reads.
	SongIDs []uuid.UUID `json:"song_ids,omitempty" db:"-"`
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Playlist, error)
	// ListVisible returns public playlists plus, when viewer is non-nil, all
	// of the viewer's own. Filtering happens in the query, never after the
	// fetch.
	ListVisible(ctx context.Context, viewerProfileID *uuid.UUID) ([]Playlist, error)
	// ListByOwner returns the owner's playlists, restricted to the ones the
	// viewer may see unless the viewer is the owner.
	ListByOwner(ctx context.Context, ownerProfileID uuid.UUID, viewerIsOwner bool) ([]Playlist, error)
	Update(ctx context.Context, playlist *Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceSongs swaps the full membership set in a single transaction so a
	// concurrent reader never observes a partial set.
	ReplaceSongs(ctx context.Context, playlistID uuid.UUID, songIDs []uuid.UUID) error
}
