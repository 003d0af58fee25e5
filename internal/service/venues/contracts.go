package venues

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByVenueIDs(ctx context.Context, venueIDs []string) (map[string][]domain.CourtWithSport, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
