package list_venues

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

// Handler обработчик списка площадок
type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("Handle: internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(venues))
}
