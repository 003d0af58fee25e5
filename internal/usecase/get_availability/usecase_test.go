package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubCourtRepo struct {
	court *domain.Court
	err   error
}

func (s *stubCourtRepo) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	return s.court, s.err
}

type stubBookingRepo struct {
	bookings   []*domain.Booking
	err        error
	lastFilter domain.CourtDayFilter
}

func (s *stubBookingRepo) GetForCourtDay(ctx context.Context, filter domain.CourtDayFilter) ([]*domain.Booking, error) {
	s.lastFilter = filter
	return s.bookings, s.err
}

type stubBlockRepo struct {
	blocks []*domain.CourtBlock
	err    error
}

func (s *stubBlockRepo) GetForCourtDay(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]*domain.CourtBlock, error) {
	return s.blocks, s.err
}

func TestExecute_Success(t *testing.T) {
	court := &domain.Court{ID: "court-1", OpenTime: 360, CloseTime: 1380, PriceHour: 25000}
	date := testDate()

	bookingRepository := &stubBookingRepo{
		bookings: []*domain.Booking{
			{
				CourtID: "court-1",
				StartTs: at(date, 10, 0),
				EndTs:   at(date, 11, 0),
				Status:  domain.StatusConfirmed,
			},
		},
	}

	uc := NewUseCase(
		&stubCourtRepo{court: court},
		bookingRepository,
		&stubBlockRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: "court-1", Date: date})

	require.NoError(t, err)
	assert.Equal(t, "court-1", resp.CourtID)
	require.Len(t, resp.Slots, 17)

	available := 0
	for _, s := range resp.Slots {
		if s.Available {
			available++
		}
	}
	assert.Equal(t, 16, available)
}

func TestExecute_RequestsFullDayWindow(t *testing.T) {
	// Выборка бронирований должна охватывать весь день [полночь, полночь+1),
	// а не только записи с началом в ту же дату
	court := &domain.Court{ID: "court-1", OpenTime: 0, CloseTime: 1439}
	date := testDate()

	bookingRepository := &stubBookingRepo{}

	uc := NewUseCase(
		&stubCourtRepo{court: court},
		bookingRepository,
		&stubBlockRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{CourtID: "court-1", Date: at(date, 15, 30)})
	require.NoError(t, err)

	assert.Equal(t, at(date, 0, 0), bookingRepository.lastFilter.DayStart)
	assert.Equal(t, at(date, 0, 0).AddDate(0, 0, 1), bookingRepository.lastFilter.DayEnd)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubCourtRepo{err: courtRepo.ErrCourtNotFound},
		&stubBookingRepo{},
		&stubBlockRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{CourtID: "missing", Date: testDate()})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_EmptyCourtID(t *testing.T) {
	uc := NewUseCase(
		&stubCourtRepo{},
		&stubBookingRepo{},
		&stubBlockRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{CourtID: "", Date: testDate()})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
