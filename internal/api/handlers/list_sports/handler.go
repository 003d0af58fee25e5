package list_sports

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

// Handler обработчик справочника видов спорта
type Handler struct {
	service SportsService
	logger  Logger
}

func NewHandler(service SportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sports, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("Handle: internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(sports))
}
