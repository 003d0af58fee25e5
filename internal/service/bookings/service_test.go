package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubBookingRepo struct {
	booking     *domain.Booking
	getErr      error
	cancelErr   error
	cancelCalls int
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.booking, nil
}

func (s *stubBookingRepo) Cancel(ctx context.Context, id string) error {
	s.cancelCalls++
	return s.cancelErr
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	return &domain.Booking{
		ID:      "booking-1",
		CourtID: "court-1",
		UserID:  domain.PlaceholderUserID,
		StartTs: start,
		EndTs:   start.Add(time.Hour),
		Status:  status,
		Price:   25000,
	}
}

func TestGetByID_Success(t *testing.T) {
	svc := NewService(&stubBookingRepo{booking: testBooking(domain.StatusPending)}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "booking-1")

	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(25000), resp.Price)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_PendingBooking(t *testing.T) {
	repo := &stubBookingRepo{booking: testBooking(domain.StatusPending)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "booking-1")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancelCalls)
}

func TestCancel_ConfirmedBooking(t *testing.T) {
	repo := &stubBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "booking-1")

	require.NoError(t, err)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &stubBookingRepo{booking: testBooking(domain.StatusCancelled)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "booking-1")

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Zero(t, repo.cancelCalls, "повторная отмена не доходит до репозитория")
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

	err := svc.Cancel(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
