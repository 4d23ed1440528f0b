package generate_slots

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// generateTimeSlots генерирует последовательность слотов фиксированной
// длительности внутри рабочего окна [startTime, endTime).
// Начиная с startTime выдаётся слот [current, current+duration), пока
// current+duration помещается в окно. Неполный хвост окна (если остаток
// меньше длительности) отбрасывается, а не выдаётся укороченным слотом.
// Все слоты создаются свободными.
//
// Функция чистая: ни персистентности, ни обращения к часам.
func generateTimeSlots(
	masterID int64,
	procedureID int64,
	date time.Time,
	startTime types.TimeString,
	endTime types.TimeString,
	slotDuration int,
) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)
	current := startTime

	for current.IsBefore(endTime) {
		slotEnd, err := current.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
		// Слот не должен выходить за конец окна
		if slotEnd.IsAfter(endTime) {
			break
		}

		slots = append(slots, &domain.TimeSlot{
			MasterID:            masterID,
			ProcedureID:         procedureID,
			Date:                date,
			StartTime:           current,
			EndTime:             slotEnd,
			SlotDurationMinutes: slotDuration,
			IsAvailable:         true,
		})

		current = slotEnd
	}

	return slots, nil
}
