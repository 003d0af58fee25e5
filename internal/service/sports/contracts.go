package sports

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// SportRepository интерфейс репозитория видов спорта
type SportRepository interface {
	List(ctx context.Context) ([]*domain.Sport, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
