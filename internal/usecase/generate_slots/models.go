package generate_slots

import (
	"time"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Request модель запроса на генерацию слотов
type Request struct {
	MasterID            int64            // ID мастера
	ProcedureID         int64            // ID процедуры
	Date                time.Time        // Дата (без времени)
	StartTime           types.TimeString // Начало рабочего окна (например, "09:00")
	EndTime             types.TimeString // Конец рабочего окна (например, "18:00")
	SlotDurationMinutes int              // Длительность слота в минутах
}

// Response модель ответа со вставленными слотами
type Response struct {
	MasterID    int64
	ProcedureID int64
	Date        time.Time
	Slots       []Slot // Только реально вставленные слоты (дубликаты пропущены)
}

// Slot модель созданного слота
type Slot struct {
	ID                  int64
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	IsAvailable         bool
}
