package application

import (
	"context"

	"github.com/dottify/dottify-backend/internal/modules/stats/domain"
)

type StatsService struct {
	repo domain.StatsRepository
}

func NewStatsService(repo domain.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Summary(ctx context.Context) (*domain.Summary, error) {
	return s.repo.Summary(ctx)
}
