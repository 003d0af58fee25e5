package create_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
)

const (
	msgInvalidBody   = "некорректное тело запроса"
	msgVenueNotFound = "площадка не найдена"
	msgSportNotFound = "вид спорта не найден"
	msgInvalidInput  = "некорректные данные корта"
)

// Handler обработчик создания корта
type Handler struct {
	service CourtsService
	logger  Logger
}

func NewHandler(service CourtsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Handle: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	h.logger.Info("Handle: creating court venue=%s, sport=%s", req.VenueID, req.SportID)

	created, err := h.service.Create(r.Context(), toServiceRequest(&req))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, courts.ErrVenueNotFound):
		h.logger.Warn("Handle: venue not found: %v", err)
		handlers.RespondNotFound(w, msgVenueNotFound)
	case errors.Is(err, courts.ErrSportNotFound):
		h.logger.Warn("Handle: sport not found: %v", err)
		handlers.RespondNotFound(w, msgSportNotFound)
	case errors.Is(err, courts.ErrInvalidInput):
		h.logger.Warn("Handle: invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("Handle: internal error: %v", err)
		handlers.RespondInternalError(w)
	}
}
