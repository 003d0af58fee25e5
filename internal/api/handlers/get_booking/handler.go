package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
)

const (
	msgBookingIDRequired = "идентификатор бронирования обязателен"
	msgBookingNotFound   = "бронирование не найдено"
)

// Handler обработчик получения бронирования
type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgBookingIDRequired)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, bookingID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(booking))
}

func (h *Handler) handleServiceError(w http.ResponseWriter, bookingID string, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("Handle: booking id=%s not found", bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)
	default:
		h.logger.Error("Handle: internal error for booking id=%s: %v", bookingID, err)
		handlers.RespondInternalError(w)
	}
}
