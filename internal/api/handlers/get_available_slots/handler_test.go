package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/service/slots/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotService struct {
	resp *models.SlotListResponse
	err  error
}

func (f *fakeSlotService) ListAvailable(_ context.Context, _ *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestHandle_ReturnsSlots(t *testing.T) {
	service := &fakeSlotService{resp: &models.SlotListResponse{
		Slots: []models.SlotResponse{
			{ID: 1, MasterID: 2, ProcedureID: 3, Date: "2025-10-15", StartTime: "10:00", EndTime: "10:30", IsAvailable: true},
		},
	}}
	h := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/time-slots/available?masterId=2&procedureId=3&date=2025-10-15", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.SlotListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "10:00", body.Slots[0].StartTime)
}

func TestHandle_NoSlotsIs404(t *testing.T) {
	service := &fakeSlotService{resp: &models.SlotListResponse{Slots: []models.SlotResponse{}}}
	h := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/time-slots/available?masterId=2&procedureId=3&date=2025-10-15", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BadParamsIs400(t *testing.T) {
	h := NewHandler(&fakeSlotService{}, nopLogger{})

	cases := []string{
		"/api/v1/time-slots/available?procedureId=3&date=2025-10-15",          // нет masterId
		"/api/v1/time-slots/available?masterId=abc&procedureId=3&date=2025-10-15",
		"/api/v1/time-slots/available?masterId=2&procedureId=3&date=15.10.2025", // неверный формат даты
	}

	for _, target := range cases {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "target=%s", target)
	}
}
