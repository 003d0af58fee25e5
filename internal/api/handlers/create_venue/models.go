package create_venue

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/venues/models"
)

// CreateVenueRequest тело запроса на создание площадки
type CreateVenueRequest struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Neighborhood *string  `json:"neighborhood,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// VenueResponse тело ответа с созданной площадкой
type VenueResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Neighborhood *string   `json:"neighborhood,omitempty"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toServiceRequest(req *CreateVenueRequest) *models.CreateVenueRequest {
	return &models.CreateVenueRequest{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Lat:          req.Lat,
		Lng:          req.Lng,
	}
}

func toResponse(v *models.VenueResponse) *VenueResponse {
	return &VenueResponse{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		Address:      v.Address,
		City:         v.City,
		Neighborhood: v.Neighborhood,
		Lat:          v.Lat,
		Lng:          v.Lng,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
