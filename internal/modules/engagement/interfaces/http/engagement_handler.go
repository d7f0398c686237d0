package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dottify/dottify-backend/internal/gateway/middleware"
	"github.com/dottify/dottify-backend/internal/modules/engagement/application"
	"github.com/dottify/dottify-backend/internal/modules/engagement/domain"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/shared/utils"
)

type EngagementHandler struct {
	service  *application.EngagementService
	resolver identitydomain.Resolver
}

func NewEngagementHandler(service *application.EngagementService, resolver identitydomain.Resolver) *EngagementHandler {
	return &EngagementHandler{service: service, resolver: resolver}
}

func (h *EngagementHandler) identity(r *http.Request) (identitydomain.Identity, error) {
	return h.resolver.Resolve(r.Context(), middleware.SessionFromContext(r.Context()))
}

// CreateRating accepts anonymous callers; the rating is simply authorless.
func (h *EngagementHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	ident, err := h.identity(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	rating, err := h.service.CreateRating(r.Context(), ident, application.CreateRatingInput{
		Target: domain.Target{Kind: domain.TargetKind(req.TargetKind), ID: req.TargetID},
		Value:  req.Value,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ToRatingResponse(rating))
}

func (h *EngagementHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rating, err := h.service.GetRating(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToRatingResponse(rating))
}

func (h *EngagementHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteRating(r.Context(), ident, id); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Averages serves the aggregate pair for a target given as query parameters.
func (h *EngagementHandler) Averages(w http.ResponseWriter, r *http.Request) {
	target, ok := targetFromQuery(w, r)
	if !ok {
		return
	}

	allTime, recent, err := h.service.Averages(r.Context(), target)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, AveragesResponse{
		TargetKind:     string(target.Kind),
		TargetID:       target.ID,
		AverageAllTime: allTime,
		AverageRecent:  recent,
	})
}

func (h *EngagementHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	ident, err := h.identity(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), ident, application.CreateCommentInput{
		Target: domain.Target{Kind: domain.TargetKind(req.TargetKind), ID: req.TargetID},
		Body:   req.Body,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ToCommentResponse(comment))
}

// ListComments serves a target's comment thread, oldest first.
func (h *EngagementHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	target, ok := targetFromQuery(w, r)
	if !ok {
		return
	}

	comments, err := h.service.ListComments(r.Context(), target)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToCommentListResponse(comments))
}

func (h *EngagementHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteComment(r.Context(), ident, id); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func targetFromQuery(w http.ResponseWriter, r *http.Request) (domain.Target, bool) {
	kind := r.URL.Query().Get("target_kind")
	id, err := uuid.Parse(r.URL.Query().Get("target_id"))
	if kind == "" || err != nil {
		http.Error(w, "target_kind and target_id are required", http.StatusBadRequest)
		return domain.Target{}, false
	}
	return domain.Target{Kind: domain.TargetKind(kind), ID: id}, true
}
