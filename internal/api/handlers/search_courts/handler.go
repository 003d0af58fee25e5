package search_courts

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
)

const (
	msgCityRequired  = "параметр city обязателен"
	msgInvalidBBox   = "некорректный параметр bbox"
	msgInvalidDate   = "некорректный параметр date, ожидается формат YYYY-MM-DD"
	msgInvalidParams = "некорректные параметры поиска"
)

// Handler обработчик поиска кортов
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

// Handle обрабатывает GET /api/v1/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	params, err := parseSearchParams(r)
	if err != nil {
		h.logger.Warn("Handle: invalid search params: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	h.logger.Info("Handle: searching courts city=%q", params.City)

	results, err := h.service.Search(r.Context(), toServiceRequest(params))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(results))
}

func parseSearchParams(r *http.Request) (*SearchParams, error) {
	query := r.URL.Query()

	city := query.Get("city")
	if city == "" {
		return nil, errors.New(msgCityRequired)
	}

	params := &SearchParams{City: city}

	if sport := query.Get("sport"); sport != "" {
		params.SportSlug = &sport
	}

	if raw := query.Get("bbox"); raw != "" {
		bbox, err := parseBBox(raw)
		if err != nil {
			return nil, errors.New(msgInvalidBBox)
		}
		params.BBox = bbox
	}

	// Дата принимается и валидируется, но на выборку не влияет:
	// занятость кортов на дату клиент получает отдельным запросом
	if raw := query.Get("date"); raw != "" {
		date, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
		if err != nil {
			return nil, errors.New(msgInvalidDate)
		}
		params.Date = &date
	}

	return params, nil
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, courts.ErrInvalidInput):
		h.logger.Warn("Handle: invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
	default:
		h.logger.Error("Handle: internal error: %v", err)
		handlers.RespondInternalError(w)
	}
}
