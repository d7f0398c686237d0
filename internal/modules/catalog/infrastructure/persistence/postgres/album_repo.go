package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/dottify/dottify-backend/internal/modules/catalog/domain"
)

type PgAlbumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) *PgAlbumRepository {
	return &PgAlbumRepository{db: db}
}

func (r *PgAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	if album.ID == uuid.Nil {
		album.ID = uuid.New()
	}
	now := time.Now()
	if album.CreatedAt.IsZero() {
		album.CreatedAt = now
	}
	album.UpdatedAt = now

	query := `
		INSERT INTO albums (
			id, title, artist_name, owner_profile_id, format,
			release_date, retail_price, cover_image, slug, created_at, updated_at
		) VALUES (
			:id, :title, :artist_name, :owner_profile_id, :format,
			:release_date, :retail_price, :cover_image, :slug, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, album)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateAlbum
		}
		return fmt.Errorf("failed to create album: %w", err)
	}
	return nil
}

func (r *PgAlbumRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	album := &domain.Album{}
	err := r.db.GetContext(ctx, album, `SELECT * FROM albums WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}
	return album, nil
}

func (r *PgAlbumRepository) List(ctx context.Context) ([]domain.Album, error) {
	albums := []domain.Album{}
	err := r.db.SelectContext(ctx, &albums, `SELECT * FROM albums ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *PgAlbumRepository) Search(ctx context.Context, query string) ([]domain.Album, error) {
	albums := []domain.Album{}
	err := r.db.SelectContext(ctx, &albums,
		`SELECT * FROM albums WHERE title ILIKE $1 ORDER BY title ASC`,
		"%"+query+"%")
	if err != nil {
		return nil, err
	}
	return albums, nil
}

// Update writes the editable fields only. The owning reference and artist name
// are fixed at creation and deliberately absent from the SET list.
func (r *PgAlbumRepository) Update(ctx context.Context, album *domain.Album) error {
	album.UpdatedAt = time.Now()

	query := `
		UPDATE albums
		SET title = :title,
		    format = :format,
		    release_date = :release_date,
		    retail_price = :retail_price,
		    cover_image = :cover_image,
		    slug = :slug,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, album)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateAlbum
		}
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

// Delete removes the album; songs go with it via ON DELETE CASCADE.
func (r *PgAlbumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
