package domain

import "time"

// Court represents a bookable court that belongs to a venue
type Court struct {
	ID      string
	VenueID string
	SportID string
	Indoor  bool
	Surface *string
	Lights  bool

	// PriceHour цена за 60 минут в минимальных единицах валюты
	PriceHour int64

	// OpenTime/CloseTime время работы в минутах от полуночи
	// Инвариант: 0 <= OpenTime < CloseTime <= 1439
	OpenTime  int
	CloseTime int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateOperatingHours проверяет инвариант времени работы корта
// Вызывается при создании корта, а не при бронировании
func ValidateOperatingHours(openTime, closeTime int) error {
	if openTime < MinDayMinute || openTime > MaxDayMinute {
		return ErrOpenTimeOutOfRange
	}
	if closeTime < MinDayMinute || closeTime > MaxDayMinute {
		return ErrCloseTimeOutOfRange
	}
	if openTime >= closeTime {
		return ErrCloseBeforeOpen
	}
	return nil
}

// OpenAt возвращает момент открытия корта в указанную дату (локальное время сервера)
func (c *Court) OpenAt(date time.Time) time.Time {
	return atMinuteOfDay(date, c.OpenTime)
}

// CloseAt возвращает момент закрытия корта в указанную дату
func (c *Court) CloseAt(date time.Time) time.Time {
	return atMinuteOfDay(date, c.CloseTime)
}

func atMinuteOfDay(date time.Time, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minute/60, minute%60, 0, 0, date.Location())
}

// CourtSearchFilter фильтр поиска кортов
type CourtSearchFilter struct {
	City      string   // обязательный, сравнение без учета регистра
	SportSlug *string  // опциональный фильтр по виду спорта
	BBox      *BBox    // опциональный фильтр по координатам площадки
	Limit     uint64   // максимальное число результатов
}

// BBox прямоугольник координат (minLng, minLat, maxLng, maxLat)
type BBox struct {
	MinLng float64
	MinLat float64
	MaxLng float64
	MaxLat float64
}

// IsValid проверяет, что границы прямоугольника согласованы
func (b BBox) IsValid() bool {
	return b.MinLng <= b.MaxLng && b.MinLat <= b.MaxLat
}
