package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Format string

const (
	FormatSingle      Format = "single"
	FormatRemaster    Format = "remaster"
	FormatDeluxe      Format = "deluxe"
	FormatCompilation Format = "compilation"
	FormatLive        Format = "live"
)

// ValidFormat reports whether f is one of the known release formats.
func ValidFormat(f Format) bool {
	switch f {
	case FormatSingle, FormatRemaster, FormatDeluxe, FormatCompilation, FormatLive:
		return true
	}
	return false
}

// MaxReleaseLead is how far into the future a release date may be set.
const MaxReleaseLead = 183 * 24 * time.Hour

// Album is a catalogue release. ArtistName stays free text for display, but
// ownership is the explicit owner_profile_id recorded at creation time; a nil
// owner means the album was created by an administrator on behalf of an
// artist with no profile in the system.
type Album struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	ArtistName     string     `json:"artist_name" db:"artist_name"`
	OwnerProfileID *uuid.UUID `json:"owner_profile_id,omitempty" db:"owner_profile_id"`
	Format         Format     `json:"format" db:"format"`
	ReleaseDate    *time.Time `json:"release_date,omitempty" db:"release_date"`
	RetailPrice    float64    `json:"retail_price" db:"retail_price"`
	CoverImage     string     `json:"cover_image" db:"cover_image"`
	Slug           string     `json:"slug" db:"slug"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Song belongs to exactly one album. Position is 1-based, assigned once at
// creation as count-of-existing-songs + 1, and never recomputed; deletions
// leave gaps.
type Song struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AlbumID   uuid.UUID `json:"album_id" db:"album_id"`
	Title     string    `json:"title" db:"title"`
	Length    int       `json:"length" db:"length"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type AlbumRepository interface {
	Create(ctx context.Context, album *Album) error
	GetByID(ctx context.Context, id uuid.UUID) (*Album, error)
	List(ctx context.Context) ([]Album, error)
	// Search matches the query as a case-insensitive substring of the title.
	Search(ctx context.Context, query string) ([]Album, error)
	Update(ctx context.Context, album *Album) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SongRepository interface {
	// Create inserts the song and assigns its position atomically.
	Create(ctx context.Context, song *Song) error
	GetByID(ctx context.Context, id uuid.UUID) (*Song, error)
	List(ctx context.Context) ([]Song, int, error)
	ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]Song, error)
	Update(ctx context.Context, song *Song) error
	Delete(ctx context.Context, id uuid.UUID) error
}
