package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/gateway/middleware"
	"github.com/dottify/dottify-backend/internal/modules/catalog/application"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/shared/utils"
)

type AlbumHandler struct {
	service  *application.AlbumService
	songs    *application.SongService
	ratings  RatingAggregator
	resolver identitydomain.Resolver
}

func NewAlbumHandler(service *application.AlbumService, songs *application.SongService, ratings RatingAggregator, resolver identitydomain.Resolver) *AlbumHandler {
	return &AlbumHandler{service: service, songs: songs, ratings: ratings, resolver: resolver}
}

func (h *AlbumHandler) identity(r *http.Request) (identitydomain.Identity, error) {
	return h.resolver.Resolve(r.Context(), middleware.SessionFromContext(r.Context()))
}

func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	albums, err := h.service.List(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToAlbumListResponse(albums))
}

// Get serves the id-only detail route. This is the permissive variant: no slug
// is involved, content is always shown. The response carries the album's songs
// in position order plus rating averages.
func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	album, err := h.service.Get(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	resp := ToAlbumResponse(album)

	songs, err := h.songs.ListByAlbum(r.Context(), album.ID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	resp.Songs = ToSongListResponse(songs)

	allTime, recent, err := h.ratings.AlbumAverages(r.Context(), album.ID)
	if err != nil {
		// Averages are decoration; the detail page still renders without them.
		log.Printf("[AlbumHandler.Get] rating averages failed for %s: %v", album.ID, err)
	} else {
		resp.Ratings = &AlbumRatings{AverageAllTime: allTime, AverageRecent: recent}
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// GetBySlug serves the canonicalizing detail route: a mismatched slug is a
// signal to redirect to the canonical URL, not an error.
func (h *AlbumHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	album, err := h.service.Get(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if r.PathValue("slug") != album.Slug {
		http.Redirect(w, r, "/albums/"+album.ID.String()+"/"+album.Slug, http.StatusFound)
		return
	}

	h.Get(w, r)
}

// Search requires a session: anonymous callers get 401, not 403.
func (h *AlbumHandler) Search(w http.ResponseWriter, r *http.Request) {
	ident, err := h.identity(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	albums, err := h.service.Search(r.Context(), ident, r.URL.Query().Get("q"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToAlbumListResponse(albums))
}

func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := h.identity(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req AlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	releaseDate, err := req.ParseReleaseDate()
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	album, err := h.service.Create(r.Context(), ident, application.CreateAlbumInput{
		Title:       req.Title,
		ArtistName:  req.ArtistName,
		Format:      req.Format,
		ReleaseDate: releaseDate,
		RetailPrice: req.RetailPrice,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ToAlbumResponse(album))
}

func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	ident, err := h.identity(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req AlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	releaseDate, err := req.ParseReleaseDate()
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	album, err := h.service.Update(r.Context(), ident, id, application.UpdateAlbumInput{
		Title:       req.Title,
		Format:      req.Format,
		ReleaseDate: releaseDate,
		RetailPrice: req.RetailPrice,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToAlbumResponse(album))
}

func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	ident, err := h.identity(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), ident, id); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
