package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubCourtRepo struct {
	court *domain.Court
	err   error
	calls int
}

func (s *stubCourtRepo) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	s.calls++
	return s.court, s.err
}

type stubBookingRepo struct {
	overlapping []*domain.Booking
	createErr   error
	created     *domain.Booking
	calls       int
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.calls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *booking
	created.ID = "booking-1"
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

func (s *stubBookingRepo) GetOverlapping(ctx context.Context, courtID string, start, end time.Time) ([]*domain.Booking, error) {
	s.calls++
	return s.overlapping, nil
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testCourt() *domain.Court {
	return &domain.Court{
		ID:        "court-1",
		PriceHour: 25000,
		OpenTime:  360,
		CloseTime: 1380,
	}
}

func validRequest() *Request {
	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	return &Request{
		UserID:  domain.PlaceholderUserID,
		CourtID: "court-1",
		StartTs: start,
		EndTs:   start.Add(time.Hour),
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &stubBookingRepo{}
	uc := NewUseCase(&stubCourtRepo{court: testCourt()}, bookings, inlineTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(25000), resp.Price)
	assert.Equal(t, domain.PlaceholderUserID, resp.UserID)
}

func TestExecute_HalfHourPrice(t *testing.T) {
	bookings := &stubBookingRepo{}
	uc := NewUseCase(&stubCourtRepo{court: testCourt()}, bookings, inlineTxManager{}, nopLogger{})

	req := validRequest()
	req.EndTs = req.StartTs.Add(30 * time.Minute)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(12500), resp.Price)
}

func TestExecute_InvalidIntervalRejectedBeforeStoreAccess(t *testing.T) {
	courts := &stubCourtRepo{court: testCourt()}
	bookings := &stubBookingRepo{}
	uc := NewUseCase(courts, bookings, inlineTxManager{}, nopLogger{})

	req := validRequest()
	req.EndTs = req.StartTs // начало не раньше конца

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Zero(t, courts.calls, "валидация отклоняет запрос до обращений к хранилищу")
	assert.Zero(t, bookings.calls)
}

func TestExecute_StartAfterEnd(t *testing.T) {
	uc := NewUseCase(&stubCourtRepo{court: testCourt()}, &stubBookingRepo{}, inlineTxManager{}, nopLogger{})

	req := validRequest()
	req.StartTs, req.EndTs = req.EndTs, req.StartTs

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := NewUseCase(&stubCourtRepo{err: courtRepo.ErrCourtNotFound}, &stubBookingRepo{}, inlineTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_OverlappingBookingConflict(t *testing.T) {
	req := validRequest()

	// Существующее бронирование [10:30, 11:30) пересекается с запросом [10:00, 11:00)
	existing := &domain.Booking{
		CourtID: "court-1",
		StartTs: req.StartTs.Add(30 * time.Minute),
		EndTs:   req.EndTs.Add(30 * time.Minute),
		Status:  domain.StatusConfirmed,
	}

	bookings := &stubBookingRepo{overlapping: []*domain.Booking{existing}}
	uc := NewUseCase(&stubCourtRepo{court: testCourt()}, bookings, inlineTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, bookings.created, "при конфликте вставка не выполняется")
}

func TestExecute_ExclusionConstraintMapsToConflict(t *testing.T) {
	// Конкурирующая транзакция успела закоммититься: нарушение
	// exclusion constraint - это конфликт бронирования, а не 500
	bookings := &stubBookingRepo{createErr: bookingRepo.ErrOverlapConstraint}
	uc := NewUseCase(&stubCourtRepo{court: testCourt()}, bookings, inlineTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_BackToBackBookingAccepted(t *testing.T) {
	// Интервальный предикат репозитория не возвращает граничащие
	// бронирования, поэтому стаб с пустым результатом корректен
	bookings := &stubBookingRepo{}
	uc := NewUseCase(&stubCourtRepo{court: testCourt()}, bookings, inlineTxManager{}, nopLogger{})

	req := validRequest()
	req.StartTs = req.StartTs.Add(time.Hour)
	req.EndTs = req.EndTs.Add(time.Hour)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestExecute_MissingUserID(t *testing.T) {
	uc := NewUseCase(&stubCourtRepo{court: testCourt()}, &stubBookingRepo{}, inlineTxManager{}, nopLogger{})

	req := validRequest()
	req.UserID = ""

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
