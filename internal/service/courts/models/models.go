package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CreateCourtRequest типизированный запрос на создание корта
type CreateCourtRequest struct {
	VenueID   string
	SportID   string
	Indoor    bool
	Surface   *string
	Lights    bool
	PriceHour int64 // в минимальных единицах валюты, > 0
	OpenTime  int   // минуты от полуночи
	CloseTime int   // минуты от полуночи, строго позже OpenTime
}

// CourtResponse модель корта, возвращаемая сервисом
type CourtResponse struct {
	ID        string
	VenueID   string
	SportID   string
	Indoor    bool
	Surface   *string
	Lights    bool
	PriceHour int64
	OpenTime  int
	CloseTime int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SearchRequest типизированный запрос поиска кортов
type SearchRequest struct {
	City      string
	SportSlug *string
	BBox      *domain.BBox
}

// SportSummary краткие данные вида спорта в результатах поиска
type SportSummary struct {
	Slug string
	Name string
}

// VenueSummary краткие данные площадки в результатах поиска
type VenueSummary struct {
	ID           string
	Name         string
	Address      string
	City         string
	Neighborhood *string
	Lat          *float64
	Lng          *float64
}

// SearchResultItem корт в результатах поиска с вложенными данными
type SearchResultItem struct {
	ID        string
	Sport     SportSummary
	Venue     VenueSummary
	Indoor    bool
	Surface   *string
	Lights    bool
	PriceHour int64
}

// FromDomainCourt конвертирует domain.Court в CourtResponse
func FromDomainCourt(c *domain.Court) *CourtResponse {
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

// FromDomainDetails конвертирует результат поиска в SearchResultItem
func FromDomainDetails(d *domain.CourtDetails) *SearchResultItem {
	return &SearchResultItem{
		ID: d.Court.ID,
		Sport: SportSummary{
			Slug: d.Sport.Slug,
			Name: d.Sport.Name,
		},
		Venue: VenueSummary{
			ID:           d.Venue.ID,
			Name:         d.Venue.Name,
			Address:      d.Venue.Address,
			City:         d.Venue.City,
			Neighborhood: d.Venue.Neighborhood,
			Lat:          d.Venue.Lat,
			Lng:          d.Venue.Lng,
		},
		Indoor:    d.Court.Indoor,
		Surface:   d.Court.Surface,
		Lights:    d.Court.Lights,
		PriceHour: d.Court.PriceHour,
	}
}
