package domain

import (
	"time"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

// TimeSlot represents a fixed-duration bookable interval published by a master
// for a specific procedure
type TimeSlot struct {
	ID                  int64
	MasterID            int64
	ProcedureID         int64
	Date                time.Time // Календарная дата, время внутри значения игнорируется
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	IsAvailable         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartsAt returns the absolute start instant of the slot (slot date + start time)
func (s *TimeSlot) StartsAt() (time.Time, error) {
	return s.StartTime.At(s.Date)
}

// SlotsFilter фильтр для выборки слотов.
// Nil-поля не ограничивают выборку: пустой фильтр вернёт все слоты.
type SlotsFilter struct {
	MasterID      *int64
	ProcedureID   *int64
	Date          *time.Time
	OnlyAvailable bool
}
