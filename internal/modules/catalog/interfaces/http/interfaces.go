package http

import (
	"context"

	"github.com/google/uuid"
)

// RatingAggregator is the dependency on the engagement module used to decorate
// album detail responses with rating averages.
type RatingAggregator interface {
	// AlbumAverages returns the all-time and trailing-7-day mean rating for an
	// album. A nil pointer means "no data", which is distinct from zero.
	AlbumAverages(ctx context.Context, albumID uuid.UUID) (allTime *float64, recent *float64, err error)
}
