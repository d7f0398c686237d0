package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dottify/dottify-backend/internal/modules/catalog/domain"
	postgres "github.com/dottify/dottify-backend/internal/modules/catalog/infrastructure/persistence/postgres"
)

func songColumns() []string {
	return []string{"id", "album_id", "title", "length", "position", "created_at", "updated_at"}
}

func TestSongRepo_CreateAssignsPositionInInsert(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()
	repo := postgres.NewSongRepository(db)

	albumID := uuid.New()
	// The position subquery runs inside the INSERT itself and the assigned
	// value comes back via RETURNING.
	mock.ExpectQuery(`(?s)INSERT INTO songs.+SELECT COUNT\(\*\) \+ 1 FROM songs WHERE album_id.+RETURNING position`).
		WillReturnRows(sqlmock.NewRows([]string{"position"}).AddRow(4))

	song := &domain.Song{AlbumID: albumID, Title: "Opener", Length: 215}
	require.NoError(t, repo.Create(context.Background(), song))
	assert.Equal(t, 4, song.Position)
	assert.NotEqual(t, uuid.Nil, song.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSongRepo_ListReturnsWindowTotal(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()
	repo := postgres.NewSongRepository(db)

	now := time.Now()
	cols := append(songColumns(), "total_count")
	mock.ExpectQuery(`SELECT s\.\*, COUNT\(\*\) OVER\(\) AS total_count`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuid.New(), uuid.New(), "A", 100, 1, now, now, 2).
			AddRow(uuid.New(), uuid.New(), "B", 200, 2, now, now, 2))

	songs, total, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, songs, 2)
	assert.Equal(t, 2, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSongRepo_ListEmpty(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()
	repo := postgres.NewSongRepository(db)

	mock.ExpectQuery(`SELECT s\.\*, COUNT\(\*\) OVER\(\) AS total_count`).
		WillReturnRows(sqlmock.NewRows(append(songColumns(), "total_count")))

	songs, total, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, songs)
	assert.Zero(t, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSongRepo_ListByAlbumOrdersByPosition(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()
	repo := postgres.NewSongRepository(db)

	albumID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM songs WHERE album_id = \$1 ORDER BY position ASC`).
		WithArgs(albumID).
		WillReturnRows(sqlmock.NewRows(songColumns()).
			AddRow(uuid.New(), albumID, "First", 100, 1, now, now).
			AddRow(uuid.New(), albumID, "Third", 90, 3, now, now))

	songs, err := repo.ListByAlbum(context.Background(), albumID)
	require.NoError(t, err)
	require.Len(t, songs, 2)
	// Gaps stay: positions are never recomputed after deletes.
	assert.Equal(t, 1, songs[0].Position)
	assert.Equal(t, 3, songs[1].Position)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSongRepo_UpdateNotFound(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()
	repo := postgres.NewSongRepository(db)

	mock.ExpectExec(`UPDATE songs SET title`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Song{ID: uuid.New(), Title: "x", Length: 1})
	require.ErrorIs(t, err, domain.ErrSongNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
