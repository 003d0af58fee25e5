package blocks

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("blocks.service: court not found")

	// ErrInvalidInterval возвращается, когда начало интервала не раньше конца
	ErrInvalidInterval = errors.New("blocks.service: start must be before end")

	// ErrInvalidInput возвращается при нарушении ограничений полей
	ErrInvalidInput = errors.New("blocks.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blocks.service: internal error")
)
