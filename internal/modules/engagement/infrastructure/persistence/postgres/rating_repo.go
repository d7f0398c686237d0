package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dottify/dottify-backend/internal/modules/engagement/domain"
)

type PgRatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *PgRatingRepository {
	return &PgRatingRepository{db: db}
}

type ratingRow struct {
	ID         uuid.UUID  `db:"id"`
	ProfileID  *uuid.UUID `db:"profile_id"`
	TargetKind string     `db:"target_kind"`
	TargetID   uuid.UUID  `db:"target_id"`
	Value      int        `db:"value"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (row ratingRow) toDomain() *domain.Rating {
	return &domain.Rating{
		ID:        row.ID,
		ProfileID: row.ProfileID,
		Target:    domain.Target{Kind: domain.TargetKind(row.TargetKind), ID: row.TargetID},
		Value:     row.Value,
		CreatedAt: row.CreatedAt,
	}
}

func (r *PgRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO ratings (id, profile_id, target_kind, target_id, value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		rating.ID, rating.ProfileID, rating.Target.Kind, rating.Target.ID,
		rating.Value, rating.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

func (r *PgRatingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	var row ratingRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM ratings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *PgRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}

// Average lets AVG distinguish "no rows" via NULL rather than counting in a
// second query. A nil since means all time.
func (r *PgRatingRepository) Average(ctx context.Context, target domain.Target, since *time.Time) (*float64, error) {
	var avg sql.NullFloat64

	if since == nil {
		err := r.db.GetContext(ctx, &avg,
			`SELECT AVG(value) FROM ratings WHERE target_kind = $1 AND target_id = $2`,
			target.Kind, target.ID)
		if err != nil {
			return nil, err
		}
	} else {
		err := r.db.GetContext(ctx, &avg,
			`SELECT AVG(value) FROM ratings
			 WHERE target_kind = $1 AND target_id = $2 AND created_at >= $3`,
			target.Kind, target.ID, *since)
		if err != nil {
			return nil, err
		}
	}

	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
