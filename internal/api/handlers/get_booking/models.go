package get_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// BookingResponse тело ответа с бронированием
type BookingResponse struct {
	ID        string    `json:"id"`
	CourtID   string    `json:"courtId"`
	UserID    string    `json:"userId"`
	StartTs   time.Time `json:"startTs"`
	EndTs     time.Time `json:"endTs"`
	Status    string    `json:"status"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(b *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		CourtID:   b.CourtID,
		UserID:    b.UserID,
		StartTs:   b.StartTs,
		EndTs:     b.EndTs,
		Status:    b.Status,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
