package http

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CommentView is the slice of a comment the playlist page needs; it keeps
// this package decoupled from the engagement module's types.
type CommentView struct {
	ID         uuid.UUID  `json:"id"`
	ProfileID  *uuid.UUID `json:"profile_id"`
	AuthorName string     `json:"author_name"`
	Body       string     `json:"body"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CommentLister supplies a playlist's comments for the detail response.
type CommentLister interface {
	PlaylistComments(ctx context.Context, playlistID uuid.UUID) ([]CommentView, error)
}
