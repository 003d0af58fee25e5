package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CreateVenueRequest типизированный запрос на создание площадки
type CreateVenueRequest struct {
	Name         string
	Description  *string
	Address      string
	City         string
	Neighborhood *string
	Lat          *float64
	Lng          *float64
}

// CourtSummary корт с видом спорта во вложенном списке площадки
type CourtSummary struct {
	ID        string
	SportSlug string
	SportName string
	Indoor    bool
	Surface   *string
	Lights    bool
	PriceHour int64
	OpenTime  int
	CloseTime int
}

// VenueResponse модель площадки, возвращаемая сервисом
type VenueResponse struct {
	ID           string
	Name         string
	Description  *string
	Address      string
	City         string
	Neighborhood *string
	Lat          *float64
	Lng          *float64
	Courts       []CourtSummary
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FromDomainVenue конвертирует domain.Venue в VenueResponse
func FromDomainVenue(v *domain.Venue, courts []domain.CourtWithSport) *VenueResponse {
	summaries := make([]CourtSummary, 0, len(courts))
	for _, cs := range courts {
		summaries = append(summaries, CourtSummary{
			ID:        cs.Court.ID,
			SportSlug: cs.Sport.Slug,
			SportName: cs.Sport.Name,
			Indoor:    cs.Court.Indoor,
			Surface:   cs.Court.Surface,
			Lights:    cs.Court.Lights,
			PriceHour: cs.Court.PriceHour,
			OpenTime:  cs.Court.OpenTime,
			CloseTime: cs.Court.CloseTime,
		})
	}

	return &VenueResponse{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		Address:      v.Address,
		City:         v.City,
		Neighborhood: v.Neighborhood,
		Lat:          v.Lat,
		Lng:          v.Lng,
		Courts:       summaries,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
