package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// UseCase use case создания бронирования
type UseCase struct {
	courtRepo   CourtRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка пересечений и вставка выполняются в ОДНОЙ сериализуемой
// транзакции с блокировкой прочитанных строк (FOR UPDATE): два
// конкурентных запроса на один интервал не могут оба пройти проверку.
// Exclusion constraint в БД - последний рубеж на случай обхода транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, court=%s, start=%s, end=%s",
		req.UserID, req.CourtID, req.StartTs.Format(time.RFC3339), req.EndTs.Format(time.RFC3339))

	// 1. Валидация входных данных (до обращений к БД)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Вычисляем стоимость по тарифу корта
	price := calculatePrice(court.PriceHour, req.StartTs, req.EndTs)

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Проверка пересечений + вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Читаем пересекающиеся активные бронирования с блокировкой (FOR UPDATE)
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.CourtID, req.StartTs, req.EndTs)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		// 4.2. Любое пересечение - конфликт
		// Граничащие интервалы (newStart == existingEnd) пересечением не считаются,
		// их интервальный предикат репозитория не возвращает
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: slot not available, court=%s overlaps %d booking(s)",
				req.CourtID, len(overlapping))
			return ErrSlotNotAvailable
		}

		// 4.3. Создаем бронирование
		booking := &domain.Booking{
			CourtID: req.CourtID,
			UserID:  req.UserID,
			StartTs: req.StartTs,
			EndTs:   req.EndTs,
			Status:  domain.StatusPending,
			Price:   price,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурирующее бронирование успело закоммититься - конфликт, не 500
			if errors.Is(err, bookingRepo.ErrOverlapConstraint) {
				uc.logger.Warn("CreateBooking: overlap constraint violated, court=%s", req.CourtID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, price=%d", result.ID, result.Price)

	return &Response{
		ID:        result.ID,
		CourtID:   result.CourtID,
		UserID:    result.UserID,
		StartTs:   result.StartTs,
		EndTs:     result.EndTs,
		Status:    string(result.Status),
		Price:     result.Price,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
