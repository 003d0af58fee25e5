package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

func testDate() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
}

func at(date time.Time, hour, min int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, min, 0, 0, date.Location())
}

func TestGenerateSlots_FullDay(t *testing.T) {
	court := &domain.Court{OpenTime: 360, CloseTime: 1380} // 06:00 - 23:00
	date := testDate()

	slots := generateSlots(court, date)

	// (1380 - 360) / 60 = 17 слотов
	require.Len(t, slots, 17)
	assert.Equal(t, at(date, 6, 0), slots[0].Start)
	assert.Equal(t, at(date, 7, 0), slots[0].End)
	assert.Equal(t, at(date, 22, 0), slots[16].Start)
	assert.Equal(t, at(date, 23, 0), slots[16].End)
}

func TestGenerateSlots_LastSlotExtendsPastClose(t *testing.T) {
	// Окно 06:00 - 22:30: остаток короче часа, последний слот
	// [22:00, 23:00) выходит за время закрытия
	court := &domain.Court{OpenTime: 360, CloseTime: 1350}
	date := testDate()

	slots := generateSlots(court, date)

	require.Len(t, slots, 17)
	last := slots[len(slots)-1]
	assert.Equal(t, at(date, 22, 0), last.Start)
	assert.Equal(t, at(date, 23, 0), last.End)
	assert.True(t, last.End.After(court.CloseAt(date)))
}

func TestGenerateSlots_SlotsAreChronological(t *testing.T) {
	court := &domain.Court{OpenTime: 540, CloseTime: 780}
	slots := generateSlots(court, testDate())

	require.Len(t, slots, 4)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].End.Equal(slots[i].Start), "слоты идут непрерывно без зазоров")
	}
}

func TestMarkAvailability_BookingBlocksExactlyOneSlot(t *testing.T) {
	court := &domain.Court{OpenTime: 360, CloseTime: 1380}
	date := testDate()
	slots := generateSlots(court, date)

	bookings := []*domain.Booking{
		{
			StartTs: at(date, 10, 0),
			EndTs:   at(date, 11, 0),
			Status:  domain.StatusConfirmed,
		},
	}

	slots = markAvailability(slots, bookings, nil)

	unavailable := 0
	for _, s := range slots {
		if !s.Available {
			unavailable++
			assert.Equal(t, at(date, 10, 0), s.Start)
		}
	}
	assert.Equal(t, 1, unavailable, "бронирование [10:00, 11:00) занимает ровно один слот")
}

func TestMarkAvailability_PartialOverlapBlocksTwoSlots(t *testing.T) {
	court := &domain.Court{OpenTime: 360, CloseTime: 1380}
	date := testDate()
	slots := generateSlots(court, date)

	bookings := []*domain.Booking{
		{
			StartTs: at(date, 10, 30),
			EndTs:   at(date, 11, 30),
			Status:  domain.StatusPending,
		},
	}

	slots = markAvailability(slots, bookings, nil)

	var blocked []time.Time
	for _, s := range slots {
		if !s.Available {
			blocked = append(blocked, s.Start)
		}
	}
	require.Len(t, blocked, 2)
	assert.Equal(t, at(date, 10, 0), blocked[0])
	assert.Equal(t, at(date, 11, 0), blocked[1])
}

func TestMarkAvailability_CancelledBookingIgnored(t *testing.T) {
	court := &domain.Court{OpenTime: 360, CloseTime: 1380}
	date := testDate()
	slots := generateSlots(court, date)

	bookings := []*domain.Booking{
		{
			StartTs: at(date, 10, 0),
			EndTs:   at(date, 11, 0),
			Status:  domain.StatusCancelled,
		},
	}

	slots = markAvailability(slots, bookings, nil)

	for _, s := range slots {
		assert.True(t, s.Available, "отмененное бронирование не занимает интервал")
	}
}

func TestMarkAvailability_BlockMakesSlotsUnavailable(t *testing.T) {
	court := &domain.Court{OpenTime: 360, CloseTime: 1380}
	date := testDate()
	slots := generateSlots(court, date)

	blocks := []*domain.CourtBlock{
		{
			StartTs: at(date, 8, 0),
			EndTs:   at(date, 10, 0),
		},
	}

	slots = markAvailability(slots, nil, blocks)

	unavailable := 0
	for _, s := range slots {
		if !s.Available {
			unavailable++
		}
	}
	assert.Equal(t, 2, unavailable)
}

func TestMarkAvailability_NoThirdState(t *testing.T) {
	// Каждый слот либо доступен, либо нет - независимо от числа
	// пересекающихся бронирований и блокировок
	court := &domain.Court{OpenTime: 540, CloseTime: 720}
	date := testDate()
	slots := generateSlots(court, date)

	bookings := []*domain.Booking{
		{StartTs: at(date, 9, 0), EndTs: at(date, 10, 0), Status: domain.StatusConfirmed},
	}
	blocks := []*domain.CourtBlock{
		{StartTs: at(date, 9, 0), EndTs: at(date, 10, 0)},
	}

	slots = markAvailability(slots, bookings, blocks)

	require.Len(t, slots, 3)
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestDayWindow(t *testing.T) {
	date := time.Date(2025, 6, 15, 14, 45, 30, 0, time.Local)

	dayStart, dayEnd := dayWindow(date)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), dayStart)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local), dayEnd)
}
