package domain

import "github.com/m04kA/SMC-RestaurantService/pkg/types"

// GenerateTimeSlots возвращает полную сетку слотов на день: обеденные слоты,
// затем вечерние, с шагом SlotStepMinutes. Границы включаются.
// Единственный источник сетки: используется и валидацией брони,
// и расчётом доступности, и админским списком.
func GenerateTimeSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, 16)
	slots = append(slots, generateRange(LunchOpenTime, LunchCloseTime)...)
	slots = append(slots, generateRange(DinnerOpenTime, DinnerCloseTime)...)
	return slots
}

// generateRange генерирует слоты от from до to включительно
// Границы заданы константами, ошибки парсинга здесь невозможны
func generateRange(from, to string) []types.TimeString {
	start := types.TimeString(from)
	end := types.TimeString(to)

	slots := make([]types.TimeString, 0, 8)
	current := start

	for {
		slots = append(slots, current)
		if !current.IsBefore(end) {
			break
		}
		next, err := current.AddMinutes(SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// IsSlotTime проверяет, что время принадлежит фиксированной сетке слотов
// Время вне сетки - невалидный ввод, округление не выполняется
func IsSlotTime(t types.TimeString) bool {
	for _, slot := range GenerateTimeSlots() {
		if slot == t {
			return true
		}
	}
	return false
}

// SlotAvailability доступность одного слота на конкретную дату
type SlotAvailability struct {
	Time           types.TimeString
	RemainingSeats int
	Allowed        bool
}
