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

	"github.com/dottify/dottify-backend/internal/modules/identity/domain"
)

type PgProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *PgProfileRepository {
	return &PgProfileRepository{db: db}
}

func (r *PgProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	query := `
		INSERT INTO profiles (id, account_id, display_name, created_at, updated_at)
		VALUES (:id, :account_id, :display_name, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrProfileAlreadyExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := r.db.GetContext(ctx, profile, `SELECT * FROM profiles WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *PgProfileRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := r.db.GetContext(ctx, profile, `SELECT * FROM profiles WHERE account_id = $1`, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *PgProfileRepository) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET display_name = $1, updated_at = NOW() WHERE id = $2`,
		displayName, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
