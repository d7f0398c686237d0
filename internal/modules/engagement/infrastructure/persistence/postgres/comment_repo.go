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

type PgCommentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *PgCommentRepository {
	return &PgCommentRepository{db: db}
}

type commentRow struct {
	ID         uuid.UUID  `db:"id"`
	ProfileID  *uuid.UUID `db:"profile_id"`
	TargetKind string     `db:"target_kind"`
	TargetID   uuid.UUID  `db:"target_id"`
	Body       string     `db:"body"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (row commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		ProfileID: row.ProfileID,
		Target:    domain.Target{Kind: domain.TargetKind(row.TargetKind), ID: row.TargetID},
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
	}
}

func (r *PgCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO comments (id, profile_id, target_kind, target_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ProfileID, comment.Target.Kind, comment.Target.ID,
		comment.Body, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *PgCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var row commentRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM comments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	comment := row.toDomain()
	return &comment, nil
}

// ListByTarget joins the author's display name; authors who deleted their
// profile (or never had one) come back with an empty name.
func (r *PgCommentRepository) ListByTarget(ctx context.Context, target domain.Target) ([]domain.CommentWithAuthor, error) {
	var rows []struct {
		commentRow
		AuthorName string `db:"author_name"`
	}

	query := `
		SELECT c.*, COALESCE(p.display_name, '') AS author_name
		FROM comments c
		LEFT JOIN profiles p ON p.id = c.profile_id
		WHERE c.target_kind = $1 AND c.target_id = $2
		ORDER BY c.created_at ASC`

	if err := r.db.SelectContext(ctx, &rows, query, target.Kind, target.ID); err != nil {
		return nil, err
	}

	comments := make([]domain.CommentWithAuthor, len(rows))
	for i, row := range rows {
		comments[i] = domain.CommentWithAuthor{
			Comment:    row.toDomain(),
			AuthorName: row.AuthorName,
		}
	}
	return comments, nil
}

func (r *PgCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
