package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/dottify/dottify-backend/internal/modules/stats/infrastructure/persistence/postgres"
)

func TestStatsRepo_Summary(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer sqlDB.Close()
	db := sqlx.NewDb(sqlDB, "sqlmock")
	repo := postgres.NewStatsRepository(db)

	mock.ExpectQuery(`(?s)SELECT.+FROM albums.+FROM songs.+FROM playlists.+FROM profiles`).
		WillReturnRows(sqlmock.NewRows([]string{"albums", "songs", "playlists", "profiles"}).
			AddRow(12, 96, 7, 31))

	summary, err := repo.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, summary.Albums)
	assert.Equal(t, 96, summary.Songs)
	assert.Equal(t, 7, summary.Playlists)
	assert.Equal(t, 31, summary.Profiles)
	require.NoError(t, mock.ExpectationsWereMet())
}
