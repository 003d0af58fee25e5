package list_sports

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// SportResponse вид спорта в справочнике
type SportResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// ListSportsResponse ответ со справочником видов спорта
type ListSportsResponse struct {
	Sports []SportResponse `json:"sports"`
}

func toResponse(sports []*domain.Sport) *ListSportsResponse {
	result := make([]SportResponse, 0, len(sports))
	for _, s := range sports {
		result = append(result, SportResponse{
			ID:   s.ID,
			Slug: s.Slug,
			Name: s.Name,
		})
	}

	return &ListSportsResponse{Sports: result}
}
