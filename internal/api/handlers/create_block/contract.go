package create_block

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/blocks"
)

type BlocksService interface {
	Create(ctx context.Context, req *blocks.CreateBlockRequest) (*domain.CourtBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
