package list_venues

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/venues/models"
)

// CourtResponse корт во вложенном списке площадки
type CourtResponse struct {
	ID        string  `json:"id"`
	SportSlug string  `json:"sportSlug"`
	SportName string  `json:"sportName"`
	Indoor    bool    `json:"indoor"`
	Surface   *string `json:"surface,omitempty"`
	Lights    bool    `json:"lights"`
	PriceHour int64   `json:"priceHour"`
	OpenTime  int     `json:"openTime"`
	CloseTime int     `json:"closeTime"`
}

// VenueResponse площадка со списком кортов
type VenueResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Neighborhood *string         `json:"neighborhood,omitempty"`
	Lat          *float64        `json:"lat,omitempty"`
	Lng          *float64        `json:"lng,omitempty"`
	Courts       []CourtResponse `json:"courts"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ListVenuesResponse ответ со списком площадок
type ListVenuesResponse struct {
	Venues []VenueResponse `json:"venues"`
}

func toResponse(items []*models.VenueResponse) *ListVenuesResponse {
	result := make([]VenueResponse, 0, len(items))
	for _, v := range items {
		courts := make([]CourtResponse, 0, len(v.Courts))
		for _, c := range v.Courts {
			courts = append(courts, CourtResponse{
				ID:        c.ID,
				SportSlug: c.SportSlug,
				SportName: c.SportName,
				Indoor:    c.Indoor,
				Surface:   c.Surface,
				Lights:    c.Lights,
				PriceHour: c.PriceHour,
				OpenTime:  c.OpenTime,
				CloseTime: c.CloseTime,
			})
		}

		result = append(result, VenueResponse{
			ID:           v.ID,
			Name:         v.Name,
			Description:  v.Description,
			Address:      v.Address,
			City:         v.City,
			Neighborhood: v.Neighborhood,
			Lat:          v.Lat,
			Lng:          v.Lng,
			Courts:       courts,
			CreatedAt:    v.CreatedAt,
			UpdatedAt:    v.UpdatedAt,
		})
	}

	return &ListVenuesResponse{Venues: result}
}
