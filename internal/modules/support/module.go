package support

import (
	"github.com/jmoiron/sqlx"

	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/modules/support/application"
	persistence "github.com/dottify/dottify-backend/internal/modules/support/infrastructure/persistence/postgres"
	supporthttp "github.com/dottify/dottify-backend/internal/modules/support/interfaces/http"
)

type Module struct {
	handler *supporthttp.SupportHandler
}

func NewModule(db *sqlx.DB, resolver identitydomain.Resolver) *Module {
	repo := persistence.NewSupportRepository(db)
	service := application.NewSupportService(repo)
	return &Module{handler: supporthttp.NewSupportHandler(service, resolver)}
}

func (m *Module) Handler() *supporthttp.SupportHandler { return m.handler }
