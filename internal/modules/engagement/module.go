package engagement

import (
	"github.com/jmoiron/sqlx"

	"github.com/dottify/dottify-backend/internal/modules/engagement/application"
	persistence "github.com/dottify/dottify-backend/internal/modules/engagement/infrastructure/persistence/postgres"
	engagementhttp "github.com/dottify/dottify-backend/internal/modules/engagement/interfaces/http"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
)

// Module wires the rating/comment repositories, the service and the handler.
type Module struct {
	service *application.EngagementService
	handler *engagementhttp.EngagementHandler
}

func NewModule(db *sqlx.DB, resolver identitydomain.Resolver) *Module {
	ratingRepo := persistence.NewRatingRepository(db)
	commentRepo := persistence.NewCommentRepository(db)
	verifier := persistence.NewTargetVerifier(db)
	service := application.NewEngagementService(ratingRepo, commentRepo, verifier)

	return &Module{
		service: service,
		handler: engagementhttp.NewEngagementHandler(service, resolver),
	}
}

// Service exposes rating aggregation and comment listing to other modules.
func (m *Module) Service() *application.EngagementService { return m.service }

func (m *Module) Handler() *engagementhttp.EngagementHandler { return m.handler }
