package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dottify/dottify-backend/internal/modules/catalog/domain"
)

type PgSongRepository struct {
	db *sqlx.DB
}

func NewSongRepository(db *sqlx.DB) *PgSongRepository {
	return &PgSongRepository{db: db}
}

// Create inserts the song with position = count of existing songs in the same
// album + 1, computed in the same statement so the insert stays atomic. The
// position is never touched again afterwards.
func (r *PgSongRepository) Create(ctx context.Context, song *domain.Song) error {
	if song.ID == uuid.Nil {
		song.ID = uuid.New()
	}
	now := time.Now()
	if song.CreatedAt.IsZero() {
		song.CreatedAt = now
	}
	song.UpdatedAt = now

	query := `
		INSERT INTO songs (id, album_id, title, length, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4,
			(SELECT COUNT(*) + 1 FROM songs WHERE album_id = $2),
			$5, $6)
		RETURNING position`

	err := r.db.QueryRowxContext(ctx, query,
		song.ID, song.AlbumID, song.Title, song.Length, song.CreatedAt, song.UpdatedAt,
	).Scan(&song.Position)
	if err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}
	return nil
}

func (r *PgSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	song := &domain.Song{}
	err := r.db.GetContext(ctx, song, `SELECT * FROM songs WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, err
	}
	return song, nil
}

// List returns all songs plus the total count in one query using a window
// function.
func (r *PgSongRepository) List(ctx context.Context) ([]domain.Song, int, error) {
	var results []struct {
		domain.Song
		TotalCount int `db:"total_count"`
	}

	query := `
		SELECT s.*, COUNT(*) OVER() AS total_count
		FROM songs s
		ORDER BY s.created_at DESC`

	if err := r.db.SelectContext(ctx, &results, query); err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		return []domain.Song{}, 0, nil
	}

	total := results[0].TotalCount
	songs := make([]domain.Song, len(results))
	for i, res := range results {
		songs[i] = res.Song
	}
	return songs, total, nil
}

func (r *PgSongRepository) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Song, error) {
	songs := []domain.Song{}
	err := r.db.SelectContext(ctx, &songs,
		`SELECT * FROM songs WHERE album_id = $1 ORDER BY position ASC`, albumID)
	if err != nil {
		return nil, err
	}
	return songs, nil
}

// Update writes title and length only; album and position are immutable.
func (r *PgSongRepository) Update(ctx context.Context, song *domain.Song) error {
	song.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx,
		`UPDATE songs SET title = $1, length = $2, updated_at = $3 WHERE id = $4`,
		song.Title, song.Length, song.UpdatedAt, song.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

func (r *PgSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}
