package stats

import (
	"github.com/jmoiron/sqlx"

	"github.com/dottify/dottify-backend/internal/modules/stats/application"
	persistence "github.com/dottify/dottify-backend/internal/modules/stats/infrastructure/persistence/postgres"
	statshttp "github.com/dottify/dottify-backend/internal/modules/stats/interfaces/http"
)

type Module struct {
	handler *statshttp.StatsHandler
}

func NewModule(db *sqlx.DB) *Module {
	repo := persistence.NewStatsRepository(db)
	service := application.NewStatsService(repo)
	return &Module{handler: statshttp.NewStatsHandler(service)}
}

func (m *Module) Handler() *statshttp.StatsHandler { return m.handler }
