package cancel_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/SalonBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	cancelErr error
	canceled  bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.canceled = true
	return nil
}

type fakeSlotRepo struct {
	markErr  error
	reopened bool
}

func (f *fakeSlotRepo) MarkAvailable(_ context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.reopened = true
	return nil
}

func liveBooking() *domain.Booking {
	return &domain.Booking{
		ID:           7,
		UserID:       1,
		TimeSlotID:   10,
		EnrollmentID: ptr.Ptr(int64(5)),
		Status:       domain.StatusConfirmed,
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{booking: liveBooking()}
	slots := &fakeSlotRepo{}

	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7, TimeSlotID: 10})
	require.NoError(t, err)

	// Статус переведён в canceled, слот снова открыт
	assert.True(t, bookings.canceled)
	assert.True(t, slots.reopened)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(bookings, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_SlotMismatch(t *testing.T) {
	bookings := &fakeBookingRepo{booking: liveBooking()}
	slots := &fakeSlotRepo{}

	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	// Слот в запросе не совпадает со слотом бронирования
	err := uc.Execute(context.Background(), &Request{BookingID: 7, TimeSlotID: 99})
	assert.ErrorIs(t, err, ErrSlotMismatch)

	// Ничего не отменено и не открыто
	assert.False(t, bookings.canceled)
	assert.False(t, slots.reopened)
}

func TestExecute_AlreadyCanceled(t *testing.T) {
	booking := liveBooking()
	booking.Status = domain.StatusCanceled
	bookings := &fakeBookingRepo{booking: booking}

	uc := NewUseCase(bookings, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_SlotAlreadyAvailable(t *testing.T) {
	// Слот уже открыт - отмена всё равно успешна
	bookings := &fakeBookingRepo{booking: liveBooking()}
	slots := &fakeSlotRepo{markErr: slotRepo.ErrSlotAlreadyAvailable}

	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7, TimeSlotID: 10})
	require.NoError(t, err)
	assert.True(t, bookings.canceled)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{booking: liveBooking()}, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 0, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = uc.Execute(context.Background(), &Request{BookingID: 7, TimeSlotID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
