package create_court

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// CreateCourtRequest тело запроса на создание корта
type CreateCourtRequest struct {
	VenueID   string  `json:"venueId"`
	SportID   string  `json:"sportId"`
	Indoor    bool    `json:"indoor"`
	Surface   *string `json:"surface,omitempty"`
	Lights    bool    `json:"lights"`
	PriceHour int64   `json:"priceHour"`
	OpenTime  int     `json:"openTime"`
	CloseTime int     `json:"closeTime"`
}

// CourtResponse тело ответа с созданным кортом
type CourtResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venueId"`
	SportID   string    `json:"sportId"`
	Indoor    bool      `json:"indoor"`
	Surface   *string   `json:"surface,omitempty"`
	Lights    bool      `json:"lights"`
	PriceHour int64     `json:"priceHour"`
	OpenTime  int       `json:"openTime"`
	CloseTime int       `json:"closeTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toServiceRequest(req *CreateCourtRequest) *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		VenueID:   req.VenueID,
		SportID:   req.SportID,
		Indoor:    req.Indoor,
		Surface:   req.Surface,
		Lights:    req.Lights,
		PriceHour: req.PriceHour,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}
}

func toResponse(c *models.CourtResponse) *CourtResponse {
	return &CourtResponse{
		ID:        c.ID,
		VenueID:   c.VenueID,
		SportID:   c.SportID,
		Indoor:    c.Indoor,
		Surface:   c.Surface,
		Lights:    c.Lights,
		PriceHour: c.PriceHour,
		OpenTime:  c.OpenTime,
		CloseTime: c.CloseTime,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
