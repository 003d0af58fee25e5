package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса доступности корта на день
type Request struct {
	CourtID string    // ID корта
	Date    time.Time // Дата запроса (без времени, локальная для сервера)
}

// Response модель ответа со слотами корта на день
type Response struct {
	CourtID string        // ID корта
	Date    time.Time     // Дата, на которую запрашивались слоты
	Slots   []domain.Slot // Хронологический список слотов с флагом доступности
}
