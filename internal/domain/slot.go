package domain

import "time"

// Slot represents a fixed-length candidate booking window within operating hours
// Слот не персистится - это транзиентное значение, вычисляемое на каждый запрос
type Slot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// Range возвращает интервал слота [Start, End)
func (s *Slot) Range() TimeRange {
	return NewTimeRange(s.Start, s.End)
}
