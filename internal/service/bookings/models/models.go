package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BookingResponse модель бронирования, возвращаемая сервисом
type BookingResponse struct {
	ID        string
	CourtID   string
	UserID    string
	StartTs   time.Time
	EndTs     time.Time
	Status    string
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		CourtID:   b.CourtID,
		UserID:    b.UserID,
		StartTs:   b.StartTs,
		EndTs:     b.EndTs,
		Status:    string(b.Status),
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
