package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/dottify/dottify-backend/internal/gateway"
	"github.com/dottify/dottify-backend/internal/gateway/middleware"
	"github.com/dottify/dottify-backend/internal/modules/catalog"
	"github.com/dottify/dottify-backend/internal/modules/engagement"
	"github.com/dottify/dottify-backend/internal/modules/identity"
	"github.com/dottify/dottify-backend/internal/modules/playlist"
	"github.com/dottify/dottify-backend/internal/modules/stats"
	"github.com/dottify/dottify-backend/internal/modules/support"
	"github.com/dottify/dottify-backend/internal/shared/infrastructure/config"
	"github.com/dottify/dottify-backend/internal/shared/infrastructure/database"
	"github.com/dottify/dottify-backend/pkg/migration"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := migration.AutoMigrate(cfg.Database.URL(), cfg.Server.MigrationsPath, logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Module wiring. The identity resolver feeds every other module; the
	// user-page playlist listing is adapted separately so identity can come
	// up first.
	identityModule := identity.NewModule(db, gateway.NewProfilePlaylists(db))
	resolver := identityModule.Resolver()

	engagementModule := engagement.NewModule(db, resolver)
	catalogModule := catalog.NewModule(db, engagementModule.Service(), resolver)
	playlistModule := playlist.NewModule(db, gateway.NewPlaylistComments(engagementModule.Service()), resolver)
	statsModule := stats.NewModule(db)
	supportModule := support.NewModule(db, resolver)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		AuthMiddleware:    authMiddleware,
		ProfileHandler:    identityModule.Handler(),
		AlbumHandler:      catalogModule.AlbumHandler(),
		SongHandler:       catalogModule.SongHandler(),
		PlaylistHandler:   playlistModule.Handler(),
		EngagementHandler: engagementModule.Handler(),
		StatsHandler:      statsModule.Handler(),
		SupportHandler:    supportModule.Handler(),
	})

	var handler http.Handler = mux
	handler = middleware.PrometheusMiddleware(handler)
	handler = middleware.CORSMiddleware(handler, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
