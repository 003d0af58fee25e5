package sports

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("sports.service: internal error")

// Service сервис справочника видов спорта
type Service struct {
	sportRepo SportRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса видов спорта
func NewService(sportRepo SportRepository, logger Logger) *Service {
	return &Service{
		sportRepo: sportRepo,
		logger:    logger,
	}
}

// List получает справочник видов спорта, отсортированный по названию
func (s *Service) List(ctx context.Context) ([]*domain.Sport, error) {
	sports, err := s.sportRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return sports, nil
}
