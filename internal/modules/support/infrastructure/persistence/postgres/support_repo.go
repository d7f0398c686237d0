package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dottify/dottify-backend/internal/modules/support/domain"
)

type PgSupportRepository struct {
	db *sqlx.DB
}

func NewSupportRepository(db *sqlx.DB) *PgSupportRepository {
	return &PgSupportRepository{db: db}
}

func (r *PgSupportRepository) Create(ctx context.Context, request *domain.SupportRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO support_requests (id, profile_id, email, subject, message, created_at)
		VALUES (:id, :profile_id, :email, :subject, :message, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("failed to create support request: %w", err)
	}
	return nil
}
