package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID  string    // ID пользователя (плейсхолдер, аутентификация вне скоупа)
	CourtID string    // ID корта
	StartTs time.Time // Начало интервала
	EndTs   time.Time // Конец интервала (строго позже начала)
}

// Response модель созданного бронирования
type Response struct {
	ID        string
	CourtID   string
	UserID    string
	StartTs   time.Time
	EndTs     time.Time
	Status    string
	Price     int64 // в минимальных единицах валюты
	CreatedAt time.Time
	UpdatedAt time.Time
}
