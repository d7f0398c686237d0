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

	"github.com/dottify/dottify-backend/internal/modules/playlist/domain"
)

type PgPlaylistRepository struct {
	db *sqlx.DB
}

func NewPlaylistRepository(db *sqlx.DB) *PgPlaylistRepository {
	return &PgPlaylistRepository{db: db}
}

func (r *PgPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	if playlist.ID == uuid.Nil {
		playlist.ID = uuid.New()
	}
	if playlist.CreatedAt.IsZero() {
		playlist.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO playlists (id, name, owner_profile_id, visibility, created_at)
		VALUES (:id, :name, :owner_profile_id, :visibility, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, playlist); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

// GetByID loads the playlist together with its song membership, in insertion
// order.
func (r *PgPlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	playlist := &domain.Playlist{}
	err := r.db.GetContext(ctx, playlist, `SELECT * FROM playlists WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}

	songIDs := []uuid.UUID{}
	err = r.db.SelectContext(ctx, &songIDs,
		`SELECT song_id FROM playlist_songs WHERE playlist_id = $1 ORDER BY added_at ASC`, id)
	if err != nil {
		return nil, err
	}
	playlist.SongIDs = songIDs
	return playlist, nil
}

func (r *PgPlaylistRepository) ListVisible(ctx context.Context, viewerProfileID *uuid.UUID) ([]domain.Playlist, error) {
	playlists := []domain.Playlist{}

	if viewerProfileID == nil {
		err := r.db.SelectContext(ctx, &playlists,
			`SELECT * FROM playlists WHERE visibility = $1 ORDER BY created_at DESC`,
			domain.VisibilityPublic)
		return playlists, err
	}

	err := r.db.SelectContext(ctx, &playlists,
		`SELECT * FROM playlists
		 WHERE visibility = $1 OR owner_profile_id = $2
		 ORDER BY created_at DESC`,
		domain.VisibilityPublic, *viewerProfileID)
	return playlists, err
}

func (r *PgPlaylistRepository) ListByOwner(ctx context.Context, ownerProfileID uuid.UUID, viewerIsOwner bool) ([]domain.Playlist, error) {
	playlists := []domain.Playlist{}

	if viewerIsOwner {
		err := r.db.SelectContext(ctx, &playlists,
			`SELECT * FROM playlists WHERE owner_profile_id = $1 ORDER BY created_at DESC`,
			ownerProfileID)
		return playlists, err
	}

	err := r.db.SelectContext(ctx, &playlists,
		`SELECT * FROM playlists
		 WHERE owner_profile_id = $1 AND visibility = $2
		 ORDER BY created_at DESC`,
		ownerProfileID, domain.VisibilityPublic)
	return playlists, err
}

// Update writes name and visibility only; the owner and creation time never
// change.
func (r *PgPlaylistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE playlists SET name = $1, visibility = $2 WHERE id = $3`,
		playlist.Name, playlist.Visibility, playlist.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}

func (r *PgPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}

// ReplaceSongs clears and rebuilds the membership inside one transaction. A
// song id with no matching row trips the foreign key and rolls the whole
// replacement back.
func (r *PgPlaylistRepository) ReplaceSongs(ctx context.Context, playlistID uuid.UUID, songIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM playlist_songs WHERE playlist_id = $1`, playlistID); err != nil {
		return err
	}

	now := time.Now()
	for _, songID := range songIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO playlist_songs (playlist_id, song_id, added_at) VALUES ($1, $2, $3)`,
			playlistID, songID, now)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %s", domain.ErrUnknownSong, songID)
			}
			return err
		}
	}

	return tx.Commit()
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
