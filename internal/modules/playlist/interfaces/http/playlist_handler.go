package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/gateway/middleware"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/modules/playlist/application"
	"github.com/dottify/dottify-backend/internal/modules/playlist/domain"
	"github.com/dottify/dottify-backend/internal/shared/utils"
)

type PlaylistHandler struct {
	service  *application.PlaylistService
	comments CommentLister
	resolver identitydomain.Resolver
}

func NewPlaylistHandler(service *application.PlaylistService, comments CommentLister, resolver identitydomain.Resolver) *PlaylistHandler {
	return &PlaylistHandler{service: service, comments: comments, resolver: resolver}
}

func (h *PlaylistHandler) identity(r *http.Request) (identitydomain.Identity, error) {
	return h.resolver.Resolve(r.Context(), middleware.SessionFromContext(r.Context()))
}

// List shows public playlists, plus the caller's own when authenticated.
func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, err := h.identity(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	playlists, err := h.service.List(r.Context(), ident)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToPlaylistListResponse(playlists))
}

// Get returns the playlist with its song set and comments. Hidden playlists
// answer 403 to everyone but the owner.
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	playlist, err := h.service.Get(r.Context(), ident, id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	resp := ToPlaylistResponse(playlist)

	comments, err := h.comments.PlaylistComments(r.Context(), playlist.ID)
	if err != nil {
		// The playlist still renders without its comment thread.
		log.Printf("[PlaylistHandler.Get] comments failed for %s: %v", playlist.ID, err)
	} else {
		resp.Comments = comments
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := h.identity(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req PlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	playlist, err := h.service.Create(r.Context(), ident, application.CreatePlaylistInput{
		Name:       req.Name,
		Visibility: domain.Visibility(req.Visibility),
		SongIDs:    req.SongIDs,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ToPlaylistResponse(playlist))
}

func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req PlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	playlist, err := h.service.Update(r.Context(), ident, id, application.UpdatePlaylistInput{
		Name:       req.Name,
		Visibility: domain.Visibility(req.Visibility),
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToPlaylistResponse(playlist))
}

// ReplaceSongs swaps the playlist's entire song set in one request.
func (h *PlaylistHandler) ReplaceSongs(w http.ResponseWriter, r *http.Request) {
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

	var req ReplaceSongsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	playlist, err := h.service.ReplaceSongs(r.Context(), ident, id, req.SongIDs)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToPlaylistResponse(playlist))
}

func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
