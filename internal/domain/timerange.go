package domain

import "time"

// TimeRange полуинтервал времени [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange создает временной интервал
func NewTimeRange(start, end time.Time) TimeRange {
	return TimeRange{Start: start, End: end}
}

// IsValid проверяет, что интервал корректен (начало строго раньше конца)
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Duration возвращает длительность интервала
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Overlaps проверяет пересечение двух полуинтервалов
// Интервалы пересекаются, только если:
// - начало одного СТРОГО раньше конца другого И
// - конец одного СТРОГО позже начала другого
//
// Граничащие интервалы (конец одного совпадает с началом другого) НЕ пересекаются:
// - [10:00, 11:00) и [11:00, 12:00) → НЕТ пересечения
// - [10:00, 11:00) и [10:30, 11:30) → ЕСТЬ пересечение (10:30-11:00)
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains проверяет, что момент времени попадает в интервал
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
