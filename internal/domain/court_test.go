package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOperatingHours(t *testing.T) {
	tests := []struct {
		name      string
		openTime  int
		closeTime int
		wantErr   error
	}{
		{"typical hours", 360, 1380, nil},
		{"full day", 0, 1439, nil},
		{"open below range", -1, 720, ErrOpenTimeOutOfRange},
		{"open above range", 1440, 720, ErrOpenTimeOutOfRange},
		{"close above range", 360, 1440, ErrCloseTimeOutOfRange},
		{"close equals open", 720, 720, ErrCloseBeforeOpen},
		{"close before open", 720, 360, ErrCloseBeforeOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOperatingHours(tt.openTime, tt.closeTime)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCourt_OpenAt_CloseAt(t *testing.T) {
	court := &Court{OpenTime: 360, CloseTime: 1350} // 06:00 - 22:30

	date := time.Date(2025, 6, 15, 14, 23, 11, 0, time.Local)

	open := court.OpenAt(date)
	close := court.CloseAt(date)

	require.Equal(t, 6, open.Hour())
	require.Equal(t, 0, open.Minute())
	require.Equal(t, 22, close.Hour())
	require.Equal(t, 30, close.Minute())

	// Время часов в переданной дате игнорируется, дата сохраняется
	assert.Equal(t, date.Year(), open.Year())
	assert.Equal(t, date.Month(), open.Month())
	assert.Equal(t, date.Day(), open.Day())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}
