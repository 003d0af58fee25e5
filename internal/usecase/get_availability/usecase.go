package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// UseCase use case получения доступности корта на день
type UseCase struct {
	courtRepo   CourtRepository
	bookingRepo BookingRepository
	blockRepo   BlockRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: court=%s, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailability: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailability: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Генерируем сетку слотов на день
	slots := generateSlots(court, req.Date)

	// 4. Получаем бронирования и блокировки, пересекающиеся с днем
	dayStart, dayEnd := dayWindow(req.Date)

	bookings, err := uc.bookingRepo.GetForCourtDay(ctx, domain.CourtDayFilter{
		CourtID:  req.CourtID,
		DayStart: dayStart,
		DayEnd:   dayEnd,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetForCourtDay(ctx, req.CourtID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 5. Проставляем доступность каждого слота
	slots = markAvailability(slots, bookings, blocks)

	uc.logger.Info("GetAvailability: %d slots for court=%s, date=%s (%d bookings, %d blocks)",
		len(slots), req.CourtID, req.Date.Format(domain.DateFormat), len(bookings), len(blocks))

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req.CourtID == "" {
		return fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
