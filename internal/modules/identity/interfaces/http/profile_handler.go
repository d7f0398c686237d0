package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/gateway/middleware"
	"github.com/dottify/dottify-backend/internal/modules/identity/application"
	"github.com/dottify/dottify-backend/internal/shared/slug"
	"github.com/dottify/dottify-backend/internal/shared/utils"
)

type ProfileHandler struct {
	service   *application.IdentityService
	playlists PlaylistLister
}

func NewProfileHandler(service *application.IdentityService, playlists PlaylistLister) *ProfileHandler {
	return &ProfileHandler{service: service, playlists: playlists}
}

// Create provisions the caller's profile. One per account: a second attempt
// answers 409.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.CreateProfile(r.Context(), middleware.SessionFromContext(r.Context()), req.DisplayName)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ToProfileResponse(profile))
}

// UpdateMe renames the caller's own profile; the account link never changes.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.UpdateDisplayName(r.Context(), middleware.SessionFromContext(r.Context()), req.DisplayName)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToProfileResponse(profile))
}

// Get redirects the bare id route to the canonical slugged URL.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	http.Redirect(w, r, "/users/"+profile.ID.String()+"/"+slug.Make(profile.DisplayName), http.StatusFound)
}

// GetBySlug serves the user page once the slug is canonical; any mismatch
// redirects rather than erroring.
func (h *ProfileHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	canonical := slug.Make(profile.DisplayName)
	if r.PathValue("slug") != canonical {
		http.Redirect(w, r, "/users/"+profile.ID.String()+"/"+canonical, http.StatusFound)
		return
	}

	var viewer *uuid.UUID
	ident, err := h.service.Resolve(r.Context(), middleware.SessionFromContext(r.Context()))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if ident.Profile != nil {
		viewerID := ident.Profile.ID
		viewer = &viewerID
	}

	resp := UserPageResponse{ProfileResponse: ToProfileResponse(profile), Playlists: []PlaylistView{}}

	playlists, err := h.playlists.ProfilePlaylists(r.Context(), profile.ID, viewer)
	if err != nil {
		// The profile still renders without its playlists.
		log.Printf("[ProfileHandler.GetBySlug] playlists failed for %s: %v", profile.ID, err)
	} else {
		resp.Playlists = playlists
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
