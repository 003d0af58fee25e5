package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
// Выполняется ДО любых обращений к хранилищу: запрос с startTs >= endTs
// отклоняется без единого запроса к БД
func validateRequest(req *Request) error {
	if req.CourtID == "" {
		return fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.StartTs.IsZero() || req.EndTs.IsZero() {
		return fmt.Errorf("%w: startTs and endTs are required", ErrInvalidInput)
	}
	if !req.StartTs.Before(req.EndTs) {
		return ErrInvalidInterval
	}
	return nil
}
