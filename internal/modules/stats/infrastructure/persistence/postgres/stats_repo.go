package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dottify/dottify-backend/internal/modules/stats/domain"
)

type PgStatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *PgStatsRepository {
	return &PgStatsRepository{db: db}
}

// Summary collects all four counts in a single round trip.
func (r *PgStatsRepository) Summary(ctx context.Context) (*domain.Summary, error) {
	summary := &domain.Summary{}

	query := `
		SELECT
			(SELECT COUNT(*) FROM albums)    AS albums,
			(SELECT COUNT(*) FROM songs)     AS songs,
			(SELECT COUNT(*) FROM playlists) AS playlists,
			(SELECT COUNT(*) FROM profiles)  AS profiles`

	if err := r.db.GetContext(ctx, summary, query); err != nil {
		return nil, err
	}
	return summary, nil
}
