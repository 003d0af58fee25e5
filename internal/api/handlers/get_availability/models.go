package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_availability"
)

// SlotResponse HTTP-модель слота
type SlotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP-модель доступности корта на день
type AvailabilityResponse struct {
	CourtID string         `json:"courtId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start:     s.Start.Format(time.RFC3339),
			End:       s.End.Format(time.RFC3339),
			Available: s.Available,
		})
	}

	return &AvailabilityResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
