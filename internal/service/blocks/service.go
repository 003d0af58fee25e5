package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// CreateBlockRequest типизированный запрос на создание блокировки корта
type CreateBlockRequest struct {
	CourtID string
	StartTs time.Time
	EndTs   time.Time
	Reason  *string
}

// Service сервис блокировок кортов
type Service struct {
	blockRepo BlockRepository
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo BlockRepository, courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Create создает блокировку корта
// Заблокированный интервал делает слоты недоступными независимо от бронирований
func (s *Service) Create(ctx context.Context, req *CreateBlockRequest) (*domain.CourtBlock, error) {
	s.logger.Info("Create: court=%s, start=%s, end=%s",
		req.CourtID, req.StartTs.Format(time.RFC3339), req.EndTs.Format(time.RFC3339))

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Create: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Create: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	blk := &domain.CourtBlock{
		CourtID: req.CourtID,
		StartTs: req.StartTs,
		EndTs:   req.EndTs,
		Reason:  req.Reason,
	}

	created, err := s.blockRepo.Create(ctx, blk)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created block id=%s for court=%s", created.ID, created.CourtID)
	return created, nil
}

func validateCreateRequest(req *CreateBlockRequest) error {
	if req.CourtID == "" {
		return fmt.Errorf("%w: courtId is required", ErrInvalidInput)
	}
	if req.StartTs.IsZero() || req.EndTs.IsZero() {
		return fmt.Errorf("%w: startTs and endTs are required", ErrInvalidInput)
	}
	if !req.StartTs.Before(req.EndTs) {
		return ErrInvalidInterval
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}
	return nil
}
