package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/modules/engagement/domain"
)

type RatingRequest struct {
	TargetKind string    `json:"target_kind"`
	TargetID   uuid.UUID `json:"target_id"`
	Value      int       `json:"value"`
}

type CommentRequest struct {
	TargetKind string    `json:"target_kind"`
	TargetID   uuid.UUID `json:"target_id"`
	Body       string    `json:"body"`
}

type RatingResponse struct {
	ID         uuid.UUID  `json:"id"`
	ProfileID  *uuid.UUID `json:"profile_id"`
	TargetKind string     `json:"target_kind"`
	TargetID   uuid.UUID  `json:"target_id"`
	Value      int        `json:"value"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CommentResponse struct {
	ID         uuid.UUID  `json:"id"`
	ProfileID  *uuid.UUID `json:"profile_id"`
	AuthorName string     `json:"author_name,omitempty"`
	TargetKind string     `json:"target_kind"`
	TargetID   uuid.UUID  `json:"target_id"`
	Body       string     `json:"body"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AveragesResponse struct {
	TargetKind     string    `json:"target_kind"`
	TargetID       uuid.UUID `json:"target_id"`
	AverageAllTime *float64  `json:"average_all_time"`
	AverageRecent  *float64  `json:"average_recent"`
}

func ToRatingResponse(r *domain.Rating) RatingResponse {
	return RatingResponse{
		ID:         r.ID,
		ProfileID:  r.ProfileID,
		TargetKind: string(r.Target.Kind),
		TargetID:   r.Target.ID,
		Value:      r.Value,
		CreatedAt:  r.CreatedAt,
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		ProfileID:  c.ProfileID,
		TargetKind: string(c.Target.Kind),
		TargetID:   c.Target.ID,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}

func ToCommentListResponse(comments []domain.CommentWithAuthor) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		resp := ToCommentResponse(&c.Comment)
		resp.AuthorName = c.AuthorName
		out[i] = resp
	}
	return out
}
