package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Court, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetForCourtDay получает бронирования корта, пересекающиеся с интервалом дня
	GetForCourtDay(ctx context.Context, filter domain.CourtDayFilter) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория блокировок кортов
type BlockRepository interface {
	GetForCourtDay(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]*domain.CourtBlock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
