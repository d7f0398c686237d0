package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dottify/dottify-backend/internal/gateway/middleware"
	cataloghttp "github.com/dottify/dottify-backend/internal/modules/catalog/interfaces/http"
	engagementhttp "github.com/dottify/dottify-backend/internal/modules/engagement/interfaces/http"
	identityhttp "github.com/dottify/dottify-backend/internal/modules/identity/interfaces/http"
	playlisthttp "github.com/dottify/dottify-backend/internal/modules/playlist/interfaces/http"
	statshttp "github.com/dottify/dottify-backend/internal/modules/stats/interfaces/http"
	supporthttp "github.com/dottify/dottify-backend/internal/modules/support/interfaces/http"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthMiddleware    *middleware.AuthMiddleware
	ProfileHandler    *identityhttp.ProfileHandler
	AlbumHandler      *cataloghttp.AlbumHandler
	SongHandler       *cataloghttp.SongHandler
	PlaylistHandler   *playlisthttp.PlaylistHandler
	EngagementHandler *engagementhttp.EngagementHandler
	StatsHandler      *statshttp.StatsHandler
	SupportHandler    *supporthttp.SupportHandler
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()
	auth := config.AuthMiddleware

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Profile Routes
	mux.Handle("POST /profiles", auth.RequireAuth(http.HandlerFunc(config.ProfileHandler.Create)))
	mux.Handle("PATCH /profiles/me", auth.RequireAuth(http.HandlerFunc(config.ProfileHandler.UpdateMe)))
	mux.HandleFunc("GET /users/{id}", config.ProfileHandler.Get)
	mux.Handle("GET /users/{id}/{slug}", auth.FlexibleAuth(http.HandlerFunc(config.ProfileHandler.GetBySlug)))

	// Album Routes
	mux.HandleFunc("GET /albums", config.AlbumHandler.List)
	mux.Handle("GET /albums/search", auth.FlexibleAuth(http.HandlerFunc(config.AlbumHandler.Search)))
	mux.HandleFunc("GET /albums/{id}", config.AlbumHandler.Get)
	mux.HandleFunc("GET /albums/{id}/{slug}", config.AlbumHandler.GetBySlug)
	mux.HandleFunc("GET /albums/{id}/songs", config.SongHandler.ListByAlbum)
	mux.Handle("POST /albums", auth.RequireAuth(http.HandlerFunc(config.AlbumHandler.Create)))
	mux.Handle("PATCH /albums/{id}", auth.RequireAuth(http.HandlerFunc(config.AlbumHandler.Update)))
	mux.Handle("DELETE /albums/{id}", auth.RequireAuth(http.HandlerFunc(config.AlbumHandler.Delete)))

	// Song Routes
	mux.HandleFunc("GET /songs", config.SongHandler.List)
	mux.HandleFunc("GET /songs/{id}", config.SongHandler.Get)
	mux.Handle("POST /songs", auth.RequireAuth(http.HandlerFunc(config.SongHandler.Create)))
	mux.Handle("PATCH /songs/{id}", auth.RequireAuth(http.HandlerFunc(config.SongHandler.Update)))
	mux.Handle("DELETE /songs/{id}", auth.RequireAuth(http.HandlerFunc(config.SongHandler.Delete)))

	// Playlist Routes
	mux.Handle("GET /playlists", auth.FlexibleAuth(http.HandlerFunc(config.PlaylistHandler.List)))
	mux.Handle("GET /playlists/{id}", auth.FlexibleAuth(http.HandlerFunc(config.PlaylistHandler.Get)))
	mux.Handle("POST /playlists", auth.RequireAuth(http.HandlerFunc(config.PlaylistHandler.Create)))
	mux.Handle("PATCH /playlists/{id}", auth.RequireAuth(http.HandlerFunc(config.PlaylistHandler.Update)))
	mux.Handle("DELETE /playlists/{id}", auth.RequireAuth(http.HandlerFunc(config.PlaylistHandler.Delete)))
	mux.Handle("PUT /playlists/{id}/songs", auth.RequireAuth(http.HandlerFunc(config.PlaylistHandler.ReplaceSongs)))

	// Rating Routes (creation is open to anonymous callers)
	mux.Handle("POST /ratings", auth.FlexibleAuth(http.HandlerFunc(config.EngagementHandler.CreateRating)))
	mux.HandleFunc("GET /ratings/averages", config.EngagementHandler.Averages)
	mux.HandleFunc("GET /ratings/{id}", config.EngagementHandler.GetRating)
	mux.Handle("DELETE /ratings/{id}", auth.RequireAuth(http.HandlerFunc(config.EngagementHandler.DeleteRating)))

	// Comment Routes
	mux.Handle("POST /comments", auth.FlexibleAuth(http.HandlerFunc(config.EngagementHandler.CreateComment)))
	mux.HandleFunc("GET /comments", config.EngagementHandler.ListComments)
	mux.Handle("DELETE /comments/{id}", auth.RequireAuth(http.HandlerFunc(config.EngagementHandler.DeleteComment)))

	// Stats + Support Routes
	mux.HandleFunc("GET /stats", config.StatsHandler.Summary)
	mux.Handle("POST /support", auth.RequireAuth(http.HandlerFunc(config.SupportHandler.Submit)))

	return mux
}
