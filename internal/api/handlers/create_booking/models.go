package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID string `json:"courtId"`
	StartTs string `json:"startTs"` // ISO-8601 с таймзоной
	EndTs   string `json:"endTs"`   // ISO-8601 с таймзоной
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string `json:"id"`
	CourtID   string `json:"courtId"`
	UserID    string `json:"userId"`
	StartTs   string `json:"startTs"`
	EndTs     string `json:"endTs"`
	Status    string `json:"status"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Временные метки парсятся как RFC 3339 и приводятся к локальной
// таймзоне сервера для вычисления границ слотов
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTs, err := time.Parse(time.RFC3339, r.StartTs)
	if err != nil {
		return nil, fmt.Errorf("parse startTs: %w", err)
	}

	endTs, err := time.Parse(time.RFC3339, r.EndTs)
	if err != nil {
		return nil, fmt.Errorf("parse endTs: %w", err)
	}

	return &createBooking.Request{
		UserID:  domain.PlaceholderUserID,
		CourtID: r.CourtID,
		StartTs: startTs.Local(),
		EndTs:   endTs.Local(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		CourtID:   resp.CourtID,
		UserID:    resp.UserID,
		StartTs:   resp.StartTs.Format(time.RFC3339),
		EndTs:     resp.EndTs.Format(time.RFC3339),
		Status:    resp.Status,
		Price:     resp.Price,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
