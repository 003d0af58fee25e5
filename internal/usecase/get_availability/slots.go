package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// generateSlots генерирует 60-минутную сетку слотов корта на указанную дату
// Слоты идут с шагом domain.SlotDurationMinutes от времени открытия,
// пока НАЧАЛО слота раньше времени закрытия.
//
// Если остаток рабочего окна короче часа, последний слот выходит за время
// закрытия - это осознанное поведение: окно 06:00-22:30 дает слот
// [22:00, 23:00). Слоты не обрезаются по времени закрытия.
//
// Количество слотов: ceil((closeTime - openTime) / 60)
func generateSlots(court *domain.Court, date time.Time) []domain.Slot {
	open := court.OpenAt(date)
	close := court.CloseAt(date)

	slots := make([]domain.Slot, 0)
	for cur := open; cur.Before(close); cur = cur.Add(domain.SlotDurationMinutes * time.Minute) {
		slots = append(slots, domain.Slot{
			Start: cur,
			End:   cur.Add(domain.SlotDurationMinutes * time.Minute),
		})
	}

	return slots
}

// markAvailability проставляет доступность каждого слота
// Слот доступен, только если он не пересекается НИ с одним активным
// бронированием И НИ с одной блокировкой. Третьего состояния нет.
//
// Сложность O(слоты × (бронирования + блокировки)) - на масштабе
// корто-дня (десятки записей) индекс интервалов не нужен
func markAvailability(slots []domain.Slot, bookings []*domain.Booking, blocks []*domain.CourtBlock) []domain.Slot {
	for i := range slots {
		slots[i].Available = !overlapsAnyBooking(slots[i], bookings) && !overlapsAnyBlock(slots[i], blocks)
	}
	return slots
}

func overlapsAnyBooking(slot domain.Slot, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		// Отмененные бронирования не занимают интервал
		if !b.IsActive() {
			continue
		}
		if slot.Range().Overlaps(b.Range()) {
			return true
		}
	}
	return false
}

func overlapsAnyBlock(slot domain.Slot, blocks []*domain.CourtBlock) bool {
	for _, blk := range blocks {
		if slot.Range().Overlaps(blk.Range()) {
			return true
		}
	}
	return false
}

// dayWindow возвращает границы дня [локальная полночь, следующая полночь)
func dayWindow(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}
