package venues

import "errors"

var (
	// ErrInvalidInput возвращается при нарушении ограничений полей
	ErrInvalidInput = errors.New("venues.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("venues.service: internal error")
)
