package search_courts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// SearchParams разобранные параметры поиска из query string
type SearchParams struct {
	City      string
	SportSlug *string
	BBox      *domain.BBox
	Date      *time.Time
}

// SportResponse вид спорта в ответе поиска
type SportResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// VenueResponse площадка в ответе поиска
type VenueResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Neighborhood *string  `json:"neighborhood,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// CourtResponse корт в ответе поиска
type CourtResponse struct {
	ID        string        `json:"id"`
	Sport     SportResponse `json:"sport"`
	Venue     VenueResponse `json:"venue"`
	Indoor    bool          `json:"indoor"`
	Surface   *string       `json:"surface,omitempty"`
	Lights    bool          `json:"lights"`
	PriceHour int64         `json:"priceHour"`
}

// SearchResponse ответ на запрос поиска кортов
type SearchResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// parseBBox разбирает строку вида "minLng,minLat,maxLng,maxLat"
func parseBBox(raw string) (*domain.BBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("ожидается 4 координаты, получено %d", len(parts))
	}

	coords := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("некорректная координата %q", p)
		}
		coords[i] = v
	}

	bbox := &domain.BBox{
		MinLng: coords[0],
		MinLat: coords[1],
		MaxLng: coords[2],
		MaxLat: coords[3],
	}
	if !bbox.IsValid() {
		return nil, fmt.Errorf("некорректные границы области")
	}

	return bbox, nil
}

func toServiceRequest(p *SearchParams) *models.SearchRequest {
	return &models.SearchRequest{
		City:      p.City,
		SportSlug: p.SportSlug,
		BBox:      p.BBox,
	}
}

func toResponse(items []*models.SearchResultItem) *SearchResponse {
	courts := make([]CourtResponse, 0, len(items))
	for _, item := range items {
		courts = append(courts, CourtResponse{
			ID: item.ID,
			Sport: SportResponse{
				Slug: item.Sport.Slug,
				Name: item.Sport.Name,
			},
			Venue: VenueResponse{
				ID:           item.Venue.ID,
				Name:         item.Venue.Name,
				Address:      item.Venue.Address,
				City:         item.Venue.City,
				Neighborhood: item.Venue.Neighborhood,
				Lat:          item.Venue.Lat,
				Lng:          item.Venue.Lng,
			},
			Indoor:    item.Indoor,
			Surface:   item.Surface,
			Lights:    item.Lights,
			PriceHour: item.PriceHour,
		})
	}

	return &SearchResponse{Courts: courts}
}
