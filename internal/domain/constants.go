package domain

// SlotDurationMinutes фиксированная длительность слота бронирования
// Поддерживаются только 60-минутные слоты; бронирование произвольной
// длительности сеткой слотов не ограничивается (ответственность клиента)
const SlotDurationMinutes = 60

// Границы времени работы корта (минуты от полуночи)
const (
	MinDayMinute = 0
	MaxDayMinute = 1439 // 23:59
)

// Business validation constants
const (
	MaxSearchResults     = 100
	MaxVenueNameLength   = 200
	MaxAddressLength     = 300
	MaxDescriptionLength = 1000
	MaxBlockReasonLength = 500
)

// Placeholder identifiers
// Аутентификация вне скоупа сервиса: все бронирования создаются от имени
// плейсхолдер-пользователя, все площадки - от имени плейсхолдер-владельца
const (
	PlaceholderUserID  = "user-placeholder"
	PlaceholderOwnerID = "owner-placeholder"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
