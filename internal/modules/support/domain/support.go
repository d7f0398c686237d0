package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SupportRequest is a persisted help request. ProfileID links the submitter
// when their profile still exists.
type SupportRequest struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	ProfileID *uuid.UUID `json:"profile_id" db:"profile_id"`
	Email     string     `json:"email" db:"email"`
	Subject   string     `json:"subject" db:"subject"`
	Message   string     `json:"message" db:"message"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

type SupportRepository interface {
	Create(ctx context.Context, request *SupportRequest) error
}
