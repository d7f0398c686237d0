package http

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/modules/catalog/domain"
	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

const dateLayout = "2006-01-02"

type AlbumRequest struct {
	Title       string  `json:"title"`
	ArtistName  string  `json:"artist_name"`
	Format      string  `json:"format"`
	ReleaseDate string  `json:"release_date"`
	RetailPrice float64 `json:"retail_price"`
	CoverImage  string  `json:"cover_image"`
}

// ParseReleaseDate turns the submitted YYYY-MM-DD string into a time, or nil
// when omitted.
func (r AlbumRequest) ParseReleaseDate() (*time.Time, error) {
	if r.ReleaseDate == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, r.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: release_date must be YYYY-MM-DD", shared.ErrValidation)
	}
	return &t, nil
}

type AlbumResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	ArtistName  string         `json:"artist_name"`
	Format      string         `json:"format"`
	ReleaseDate *string        `json:"release_date,omitempty"`
	RetailPrice float64        `json:"retail_price"`
	CoverImage  string         `json:"cover_image,omitempty"`
	Slug        string         `json:"slug"`
	CreatedAt   time.Time      `json:"created_at"`
	Songs       []SongResponse `json:"songs,omitempty"`
	Ratings     *AlbumRatings  `json:"ratings,omitempty"`
}

// AlbumRatings reports averages as nullable numbers: null means no ratings
// exist, which callers must not confuse with an average of zero.
type AlbumRatings struct {
	AverageAllTime *float64 `json:"average_all_time"`
	AverageRecent  *float64 `json:"average_recent"`
}

type SongRequest struct {
	AlbumID uuid.UUID `json:"album_id"`
	Title   string    `json:"title"`
	Length  int       `json:"length"`
}

type SongResponse struct {
	ID       uuid.UUID `json:"id"`
	AlbumID  uuid.UUID `json:"album_id"`
	Title    string    `json:"title"`
	Length   int       `json:"length"`
	Position int       `json:"position"`
}

type SongListResponse struct {
	Songs []SongResponse `json:"songs"`
	Total int            `json:"total"`
}

func ToAlbumResponse(album *domain.Album) AlbumResponse {
	resp := AlbumResponse{
		ID:          album.ID,
		Title:       album.Title,
		ArtistName:  album.ArtistName,
		Format:      string(album.Format),
		RetailPrice: album.RetailPrice,
		CoverImage:  album.CoverImage,
		Slug:        album.Slug,
		CreatedAt:   album.CreatedAt,
	}
	if album.ReleaseDate != nil {
		d := album.ReleaseDate.Format(dateLayout)
		resp.ReleaseDate = &d
	}
	return resp
}

func ToAlbumListResponse(albums []domain.Album) []AlbumResponse {
	out := make([]AlbumResponse, len(albums))
	for i := range albums {
		out[i] = ToAlbumResponse(&albums[i])
	}
	return out
}

func ToSongResponse(song *domain.Song) SongResponse {
	return SongResponse{
		ID:       song.ID,
		AlbumID:  song.AlbumID,
		Title:    song.Title,
		Length:   song.Length,
		Position: song.Position,
	}
}

func ToSongListResponse(songs []domain.Song) []SongResponse {
	out := make([]SongResponse, len(songs))
	for i := range songs {
		out[i] = ToSongResponse(&songs[i])
	}
	return out
}
