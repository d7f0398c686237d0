package catalog

import (
	"github.com/jmoiron/sqlx"

	"github.com/dottify/dottify-backend/internal/modules/catalog/application"
	"github.com/dottify/dottify-backend/internal/modules/catalog/domain"
	persistence "github.com/dottify/dottify-backend/internal/modules/catalog/infrastructure/persistence/postgres"
	cataloghttp "github.com/dottify/dottify-backend/internal/modules/catalog/interfaces/http"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
)

// Module wires the catalog's repositories, services and handlers.
type Module struct {
	albumRepo    *persistence.PgAlbumRepository
	songRepo     *persistence.PgSongRepository
	albumService *application.AlbumService
	songService  *application.SongService
	albumHandler *cataloghttp.AlbumHandler
	songHandler  *cataloghttp.SongHandler
}

func NewModule(db *sqlx.DB, ratings cataloghttp.RatingAggregator, resolver identitydomain.Resolver) *Module {
	albumRepo := persistence.NewAlbumRepository(db)
	songRepo := persistence.NewSongRepository(db)
	albumService := application.NewAlbumService(albumRepo)
	songService := application.NewSongService(songRepo, albumRepo)

	return &Module{
		albumRepo:    albumRepo,
		songRepo:     songRepo,
		albumService: albumService,
		songService:  songService,
		albumHandler: cataloghttp.NewAlbumHandler(albumService, songService, ratings, resolver),
		songHandler:  cataloghttp.NewSongHandler(songService, resolver),
	}
}

func (m *Module) AlbumRepository() domain.AlbumRepository { return m.albumRepo }
func (m *Module) SongRepository() domain.SongRepository   { return m.songRepo }

func (m *Module) AlbumHandler() *cataloghttp.AlbumHandler { return m.albumHandler }
func (m *Module) SongHandler() *cataloghttp.SongHandler   { return m.songHandler }
