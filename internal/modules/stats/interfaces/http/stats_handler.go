package http

import (
	"net/http"

	"github.com/dottify/dottify-backend/internal/modules/stats/application"
	"github.com/dottify/dottify-backend/internal/shared/utils"
)

type StatsHandler struct {
	service *application.StatsService
}

func NewStatsHandler(service *application.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}
