package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TargetKind names the kind of resource a rating or comment points at.
type TargetKind string

const (
	TargetSong     TargetKind = "song"
	TargetAlbum    TargetKind = "album"
	TargetPlaylist TargetKind = "playlist"
)

// Target identifies exactly one resource. Ratings accept song and album
// targets; comments accept song and playlist targets.
type Target struct {
	Kind TargetKind
	ID   uuid.UUID
}

func ValidRatingTarget(k TargetKind) bool {
	return k == TargetSong || k == TargetAlbum
}

func ValidCommentTarget(k TargetKind) bool {
	return k == TargetSong || k == TargetPlaylist
}

// Rating is a 1..5 score. ProfileID is nil for anonymous ratings, which are
// permitted; the aggregates never need an author.
type Rating struct {
	ID        uuid.UUID
	ProfileID *uuid.UUID
	Target    Target
	Value     int
	CreatedAt time.Time
}

type Comment struct {
	ID        uuid.UUID
	ProfileID *uuid.UUID
	Target    Target
	Body      string
	CreatedAt time.Time
}

// RecentWindow bounds the "recent average" aggregate.
const RecentWindow = 7 * 24 * time.Hour

type RatingRepository interface {
	Create(ctx context.Context, rating *Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Average returns nil when no rating matches; since == nil means all time.
	Average(ctx context.Context, target Target, since *time.Time) (*float64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	// ListByTarget returns comments oldest first, each with the author's
	// display name when the author still has a profile.
	ListByTarget(ctx context.Context, target Target) ([]CommentWithAuthor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentWithAuthor pairs a comment with its author's current display name.
// AuthorName is empty for anonymous comments and deleted profiles.
type CommentWithAuthor struct {
	Comment
	AuthorName string
}
