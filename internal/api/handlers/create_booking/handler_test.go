package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SalonBookingService/internal/domain"
	createBooking "github.com/m04kA/SalonBookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

// serve прогоняет запрос через auth middleware, как в реальном роутере
func serve(h *Handler, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_SuccessIs200(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:           77,
		UserID:       1,
		TimeSlotID:   10,
		EnrollmentID: 5,
		MasterID:     2,
		ProcedureID:  3,
		Date:         time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "10:30",
		Status:       string(domain.StatusConfirmed),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "1", `{"timeSlotId": 10}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(77), body.ID)
	assert.Equal(t, "2025-10-15", body.Date)
	assert.Equal(t, "10:00", body.StartTime)
}

func TestHandle_SlotUnavailableIs409(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: createBooking.ErrSlotUnavailable}, nopLogger{})

	rec := serve(h, "1", `{"timeSlotId": 10}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_MissingUserIs401(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := serve(h, "", `{"timeSlotId": 10}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
