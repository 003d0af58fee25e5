package list_sports

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type SportsService interface {
	List(ctx context.Context) ([]*domain.Sport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
