package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func TestGenerateTimeSlots_ExactFit(t *testing.T) {
	// Окно [09:00, 10:00) при 30 минутах даёт ровно два слота
	slots, err := generateTimeSlots(1, 2, testDate, "09:00", "10:00", 30)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("09:30"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[1].EndTime)

	for _, s := range slots {
		assert.Equal(t, int64(1), s.MasterID)
		assert.Equal(t, int64(2), s.ProcedureID)
		assert.Equal(t, testDate, s.Date)
		assert.Equal(t, 30, s.SlotDurationMinutes)
		assert.True(t, s.IsAvailable)
	}
}

func TestGenerateTimeSlots_RemainderDiscarded(t *testing.T) {
	// Окно 45 минут при 30-минутных слотах: хвост 15 минут отбрасывается
	slots, err := generateTimeSlots(1, 2, testDate, "09:00", "09:45", 30)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[0].EndTime)
}

func TestGenerateTimeSlots_WindowTooShort(t *testing.T) {
	// Окно короче длительности слота - ни одного слота
	slots, err := generateTimeSlots(1, 2, testDate, "09:00", "09:20", 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_FullDay(t *testing.T) {
	slots, err := generateTimeSlots(1, 2, testDate, "09:00", "18:00", 60)
	require.NoError(t, err)
	require.Len(t, slots, 9)

	// Слоты стыкуются без зазоров
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime)
	}
}

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			MasterID:            1,
			ProcedureID:         2,
			Date:                testDate,
			StartTime:           "09:00",
			EndTime:             "18:00",
			SlotDurationMinutes: 30,
		}
	}

	require.NoError(t, validateRequest(valid()))

	req := valid()
	req.MasterID = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = valid()
	req.SlotDurationMinutes = 3
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = valid()
	req.SlotDurationMinutes = 600
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = valid()
	req.StartTime = "18:00"
	req.EndTime = "09:00"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidScheduleWindow)

	// start == end тоже не даёт ни одного слота
	req = valid()
	req.StartTime = "09:00"
	req.EndTime = "09:00"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidScheduleWindow)
}
