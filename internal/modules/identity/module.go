package identity

import (
	"github.com/jmoiron/sqlx"

	"github.com/dottify/dottify-backend/internal/modules/identity/application"
	"github.com/dottify/dottify-backend/internal/modules/identity/domain"
	persistence "github.com/dottify/dottify-backend/internal/modules/identity/infrastructure/persistence/postgres"
	identityhttp "github.com/dottify/dottify-backend/internal/modules/identity/interfaces/http"
)

// Module wires the profile repository, the identity service and the profile
// handler. The service doubles as the resolver every other module consumes.
type Module struct {
	service *application.IdentityService
	handler *identityhttp.ProfileHandler
}

func NewModule(db *sqlx.DB, playlists identityhttp.PlaylistLister) *Module {
	repo := persistence.NewProfileRepository(db)
	service := application.NewIdentityService(repo)

	return &Module{
		service: service,
		handler: identityhttp.NewProfileHandler(service, playlists),
	}
}

// Resolver is the session-to-identity resolution used across modules.
func (m *Module) Resolver() domain.Resolver { return m.service }

func (m *Module) Handler() *identityhttp.ProfileHandler { return m.handler }
