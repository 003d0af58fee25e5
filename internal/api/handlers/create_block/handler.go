package create_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/blocks"
)

const (
	msgCourtIDRequired   = "идентификатор корта обязателен"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается RFC3339"
	msgCourtNotFound     = "корт не найден"
	msgInvalidInterval   = "время начала должно быть раньше времени окончания"
	msgInvalidInput      = "некорректные данные блокировки"
)

// Handler обработчик создания блокировки корта
type Handler struct {
	service BlocksService
	logger  Logger
}

func NewHandler(service BlocksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/v1/courts/{courtId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID := mux.Vars(r)["courtId"]
	if courtID == "" {
		handlers.RespondBadRequest(w, msgCourtIDRequired)
		return
	}

	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Handle: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq, err := toServiceRequest(courtID, &req)
	if err != nil {
		h.logger.Warn("Handle: invalid timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	h.logger.Info("Handle: creating block court=%s", courtID)

	created, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, blocks.ErrCourtNotFound):
		h.logger.Warn("Handle: court not found: %v", err)
		handlers.RespondNotFound(w, msgCourtNotFound)
	case errors.Is(err, blocks.ErrInvalidInterval):
		h.logger.Warn("Handle: invalid interval: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
	case errors.Is(err, blocks.ErrInvalidInput):
		h.logger.Warn("Handle: invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("Handle: internal error: %v", err)
		handlers.RespondInternalError(w)
	}
}
