package domain

import "time"

// CourtBlock интервал недоступности корта, заданный владельцем
// (техническое обслуживание, закрытое мероприятие и т.п.)
// Блокировка делает слоты недоступными независимо от бронирований
type CourtBlock struct {
	ID      string
	CourtID string
	StartTs time.Time
	EndTs   time.Time
	Reason  *string

	CreatedAt time.Time
}

// Range возвращает интервал блокировки [StartTs, EndTs)
func (b *CourtBlock) Range() TimeRange {
	return NewTimeRange(b.StartTs, b.EndTs)
}
