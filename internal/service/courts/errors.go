package courts

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("courts.service: venue not found")

	// ErrSportNotFound возвращается, когда вид спорта не найден
	ErrSportNotFound = errors.New("courts.service: sport not found")

	// ErrInvalidInput возвращается при нарушении ограничений полей
	ErrInvalidInput = errors.New("courts.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("courts.service: internal error")
)
