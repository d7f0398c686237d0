package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/gateway/middleware"
	"github.com/dottify/dottify-backend/internal/modules/catalog/application"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/shared/utils"
)

type SongHandler struct {
	service  *application.SongService
	resolver identitydomain.Resolver
}

func NewSongHandler(service *application.SongService, resolver identitydomain.Resolver) *SongHandler {
	return &SongHandler{service: service, resolver: resolver}
}

func (h *SongHandler) identity(r *http.Request) (identitydomain.Identity, error) {
	return h.resolver.Resolve(r.Context(), middleware.SessionFromContext(r.Context()))
}

// List returns every song plus the total result count.
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	songs, total, err := h.service.List(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, SongListResponse{Songs: ToSongListResponse(songs), Total: total})
}

func (h *SongHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	song, err := h.service.Get(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToSongResponse(song))
}

// ListByAlbum serves the nested songs-under-album resource.
func (h *SongHandler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	albumID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	songs, err := h.service.ListByAlbum(r.Context(), albumID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToSongListResponse(songs))
}

func (h *SongHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := h.identity(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req SongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	song, err := h.service.Create(r.Context(), ident, application.CreateSongInput{
		AlbumID: req.AlbumID,
		Title:   req.Title,
		Length:  req.Length,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ToSongResponse(song))
}

func (h *SongHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req SongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	song, err := h.service.Update(r.Context(), ident, id, application.UpdateSongInput{
		Title:  req.Title,
		Length: req.Length,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToSongResponse(song))
}

func (h *SongHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
