package create_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/venues"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "некорректные данные площадки"
)

// Handler обработчик создания площадки
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

// Handle обрабатывает POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Handle: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	h.logger.Info("Handle: creating venue name=%q, city=%q", req.Name, req.City)

	created, err := h.service.Create(r.Context(), toServiceRequest(&req))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, venues.ErrInvalidInput):
		h.logger.Warn("Handle: invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("Handle: internal error: %v", err)
		handlers.RespondInternalError(w)
	}
}
