package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/service/bookings/models"
	"github.com/m04kA/SalonBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking
	getErr   error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeSlotRepo struct {
	slot *domain.TimeSlot
	err  error
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slot, nil
}

func testSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:          10,
		MasterID:    2,
		ProcedureID: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "10:30",
	}
}

func TestGetByID_Success(t *testing.T) {
	bookings := &fakeBookingRepo{booking: &domain.Booking{
		ID:           7,
		UserID:       1,
		TimeSlotID:   10,
		EnrollmentID: ptr.Ptr(int64(5)),
		Status:       domain.StatusConfirmed,
	}}
	s := NewService(bookings, &fakeSlotRepo{slot: testSlot()}, nopLogger{})

	resp, err := s.GetByID(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	require.NotNil(t, resp.EnrollmentID)
	assert.Equal(t, int64(5), *resp.EnrollmentID)

	// Данные слота денормализованы в ответ
	assert.Equal(t, int64(2), resp.MasterID)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "10:00", *resp.StartTime)
}

func TestGetByID_SurvivesDeletedEnrollment(t *testing.T) {
	// Запись из журнала удалена после бронирования - ссылка обнулена,
	// история бронирований по-прежнему читается
	bookings := &fakeBookingRepo{booking: &domain.Booking{
		ID:           7,
		UserID:       1,
		TimeSlotID:   10,
		EnrollmentID: nil,
		Status:       domain.StatusCanceled,
	}}
	s := NewService(bookings, &fakeSlotRepo{slot: testSlot()}, nopLogger{})

	resp, err := s.GetByID(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Nil(t, resp.EnrollmentID)
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)
}

func TestGetByID_AccessDenied(t *testing.T) {
	bookings := &fakeBookingRepo{booking: &domain.Booking{
		ID:         7,
		UserID:     1,
		TimeSlotID: 10,
		Status:     domain.StatusConfirmed,
	}}
	s := NewService(bookings, &fakeSlotRepo{slot: testSlot()}, nopLogger{})

	_, err := s.GetByID(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_DeletedEnrollmentInHistory(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 7, UserID: 1, TimeSlotID: 10, EnrollmentID: nil, Status: domain.StatusCanceled},
		{ID: 8, UserID: 1, TimeSlotID: 11, EnrollmentID: ptr.Ptr(int64(5)), Status: domain.StatusConfirmed},
	}}
	s := NewService(bookings, &fakeSlotRepo{}, nopLogger{})

	resp, err := s.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID:          1,
		IncludeCanceled: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	assert.Nil(t, resp.Bookings[0].EnrollmentID)
	require.NotNil(t, resp.Bookings[1].EnrollmentID)
	assert.Equal(t, int64(5), *resp.Bookings[1].EnrollmentID)
}
