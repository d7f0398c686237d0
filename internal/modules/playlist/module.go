package playlist

import (
	"github.com/jmoiron/sqlx"

	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/modules/playlist/application"
	"github.com/dottify/dottify-backend/internal/modules/playlist/domain"
	persistence "github.com/dottify/dottify-backend/internal/modules/playlist/infrastructure/persistence/postgres"
	playlisthttp "github.com/dottify/dottify-backend/internal/modules/playlist/interfaces/http"
)

// Module wires the playlist repository, service and handler.
type Module struct {
	repo    *persistence.PgPlaylistRepository
	service *application.PlaylistService
	handler *playlisthttp.PlaylistHandler
}

func NewModule(db *sqlx.DB, comments playlisthttp.CommentLister, resolver identitydomain.Resolver) *Module {
	repo := persistence.NewPlaylistRepository(db)
	service := application.NewPlaylistService(repo)

	return &Module{
		repo:    repo,
		service: service,
		handler: playlisthttp.NewPlaylistHandler(service, comments, resolver),
	}
}

func (m *Module) Repository() domain.PlaylistRepository { return m.repo }
func (m *Module) Service() *application.PlaylistService { return m.service }

func (m *Module) Handler() *playlisthttp.PlaylistHandler { return m.handler }
