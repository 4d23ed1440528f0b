package get_time_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/service/slots/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotService struct {
	resp    *models.SlotListResponse
	err     error
	lastReq *models.ListSlotsRequest
}

func (f *fakeSlotService) List(_ context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestHandle_NoFiltersReturnsAllSlots(t *testing.T) {
	// Без параметров отдаётся полное расписание, а не 400
	service := &fakeSlotService{resp: &models.SlotListResponse{
		Slots: []models.SlotResponse{
			{ID: 1, MasterID: 2, ProcedureID: 3, Date: "2025-10-15", StartTime: "10:00", EndTime: "10:30", IsAvailable: true},
			{ID: 2, MasterID: 4, ProcedureID: 5, Date: "2025-10-16", StartTime: "11:00", EndTime: "11:30", IsAvailable: false},
		},
	}}
	h := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/time-slots", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.lastReq)
	assert.Nil(t, service.lastReq.MasterID)
	assert.Nil(t, service.lastReq.ProcedureID)
	assert.Nil(t, service.lastReq.Date)

	var body models.SlotListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Slots, 2)
}

func TestHandle_FiltersPassedThrough(t *testing.T) {
	service := &fakeSlotService{resp: &models.SlotListResponse{Slots: []models.SlotResponse{}}}
	h := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/time-slots?masterId=2&procedureId=3&date=2025-10-15", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.lastReq)
	require.NotNil(t, service.lastReq.MasterID)
	require.NotNil(t, service.lastReq.ProcedureID)
	require.NotNil(t, service.lastReq.Date)
	assert.Equal(t, int64(2), *service.lastReq.MasterID)
	assert.Equal(t, int64(3), *service.lastReq.ProcedureID)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), *service.lastReq.Date)
}

func TestHandle_MalformedParamIs400(t *testing.T) {
	service := &fakeSlotService{resp: &models.SlotListResponse{Slots: []models.SlotResponse{}}}
	h := NewHandler(service, nopLogger{})

	cases := []string{
		"/api/v1/time-slots?masterId=abc",
		"/api/v1/time-slots?procedureId=-x",
		"/api/v1/time-slots?date=15.10.2025",
	}

	for _, target := range cases {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "target=%s", target)
		assert.Nil(t, service.lastReq, "target=%s", target)
	}
}
