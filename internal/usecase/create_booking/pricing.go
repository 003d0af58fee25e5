package create_booking

import (
	"math"
	"time"
)

// calculatePrice вычисляет стоимость бронирования
// priceHour - цена за 60 минут в минимальных единицах валюты
// Длительность может быть дробной: price = round(priceHour * часы)
// Округление до ближайшего целого, половина - от нуля (math.Round)
func calculatePrice(priceHour int64, start, end time.Time) int64 {
	durationHours := end.Sub(start).Hours()
	return int64(math.Round(float64(priceHour) * durationHours))
}
