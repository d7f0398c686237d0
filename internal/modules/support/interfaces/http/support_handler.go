package http

import (
	"encoding/json"
	"net/http"

	"github.com/dottify/dottify-backend/internal/gateway/middleware"
	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/modules/support/application"
	"github.com/dottify/dottify-backend/internal/shared/utils"
)

type SupportRequestBody struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type SupportHandler struct {
	service  *application.SupportService
	resolver identitydomain.Resolver
}

func NewSupportHandler(service *application.SupportService, resolver identitydomain.Resolver) *SupportHandler {
	return &SupportHandler{service: service, resolver: resolver}
}

func (h *SupportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ident, err := h.resolver.Resolve(r.Context(), middleware.SessionFromContext(r.Context()))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req SupportRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	request, err := h.service.Submit(r.Context(), ident, application.SubmitSupportInput{
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, request)
}
