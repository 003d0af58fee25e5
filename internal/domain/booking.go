package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a court reservation in the system
type Booking struct {
	ID      string
	CourtID string
	UserID  string
	StartTs time.Time
	EndTs   time.Time
	Status  BookingStatus
	Price   int64 // в минимальных единицах валюты (центы)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range возвращает интервал бронирования [StartTs, EndTs)
func (b *Booking) Range() TimeRange {
	return NewTimeRange(b.StartTs, b.EndTs)
}

// IsActive returns true if the booking still occupies its time range
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CourtDayFilter фильтр бронирований и блокировок корта на день
// Выбираются записи, интервал которых ПЕРЕСЕКАЕТСЯ с [DayStart, DayEnd)
// Интервальный фильтр (а не фильтр по start_ts) нужен, чтобы видеть
// бронирования, начавшиеся до полуночи и продолжающиеся в запрошенный день
type CourtDayFilter struct {
	CourtID         string
	DayStart        time.Time
	DayEnd          time.Time
	IncludeInactive bool // включать ли отмененные бронирования
}
