package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/SalonBookingService/internal/integrations/profileservice"
	"github.com/m04kA/SalonBookingService/pkg/pgerrors"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// retryingTxManager повторяет транзакцию при конфликте сериализации,
// как настоящий менеджер транзакций
type retryingTxManager struct {
	attempts int
}

func (m *retryingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for i := 0; i < 3; i++ {
		m.attempts++
		err = fn(ctx)
		if !pgerrors.IsSerializationFailure(err) {
			return err
		}
	}
	return err
}

// fixedClock фиксированное время для проверки "слот в будущем"
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeSlotRepo struct {
	slot              *domain.TimeSlot
	getErr            error
	markErr           error
	markedUnavailable bool
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) MarkUnavailable(_ context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.markedUnavailable = true
	return nil
}

type fakeBookingRepo struct {
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = 77
	created.CreatedAt = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

type fakeEnrollmentRepo struct {
	enrollment *domain.Enrollment
	calls      int
}

func (f *fakeEnrollmentRepo) FindOrCreate(_ context.Context, userID, masterID, procedureID int64) (*domain.Enrollment, error) {
	f.calls++
	if f.enrollment != nil {
		return f.enrollment, nil
	}
	return &domain.Enrollment{ID: 5, UserID: userID, MasterID: masterID, ProcedureID: procedureID}, nil
}

type fakeProfileClient struct {
	err error
}

func (f *fakeProfileClient) GetProfile(_ context.Context, userID int64) (*profileservice.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &profileservice.Profile{ID: userID, Role: "user"}, nil
}

func futureSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:                  10,
		MasterID:            2,
		ProcedureID:         3,
		Date:                time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:           "10:00",
		EndTime:             "10:30",
		SlotDurationMinutes: 30,
		IsAvailable:         true,
	}
}

// Часы выставлены за день до слота
var clockBeforeSlot = fixedClock{now: time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)}

func newUseCase(slots *fakeSlotRepo, bookings *fakeBookingRepo, enrollments *fakeEnrollmentRepo, clock TimeProvider) *UseCase {
	return NewUseCase(slots, bookings, enrollments, &fakeProfileClient{}, fakeTxManager{}, clock, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	slots := &fakeSlotRepo{slot: futureSlot()}
	bookings := &fakeBookingRepo{}
	enrollments := &fakeEnrollmentRepo{}

	uc := newUseCase(slots, bookings, enrollments, clockBeforeSlot)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, TimeSlotID: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, int64(10), resp.TimeSlotID)
	assert.Equal(t, int64(5), resp.EnrollmentID)
	assert.Equal(t, int64(2), resp.MasterID)
	assert.Equal(t, int64(3), resp.ProcedureID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Слот закрыт, запись создана, бронирование привязано к записи
	assert.True(t, slots.markedUnavailable)
	assert.Equal(t, 1, enrollments.calls)
	require.NotNil(t, bookings.created.EnrollmentID)
	assert.Equal(t, int64(5), *bookings.created.EnrollmentID)
}

func TestExecute_EnrollmentReused(t *testing.T) {
	// Повторное бронирование той же пары (мастер, процедура) переиспользует запись
	slots := &fakeSlotRepo{slot: futureSlot()}
	bookings := &fakeBookingRepo{}
	enrollments := &fakeEnrollmentRepo{enrollment: &domain.Enrollment{ID: 42, UserID: 1, MasterID: 2, ProcedureID: 3}}

	uc := newUseCase(slots, bookings, enrollments, clockBeforeSlot)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, TimeSlotID: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.EnrollmentID)
}

func TestExecute_SlotNotFound(t *testing.T) {
	slots := &fakeSlotRepo{getErr: slotRepo.ErrSlotNotFound}
	uc := newUseCase(slots, &fakeBookingRepo{}, &fakeEnrollmentRepo{}, clockBeforeSlot)

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	slot := futureSlot()
	slot.IsAvailable = false
	slots := &fakeSlotRepo{slot: slot}

	uc := newUseCase(slots, &fakeBookingRepo{}, &fakeEnrollmentRepo{}, clockBeforeSlot)

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.False(t, slots.markedUnavailable)
}

func TestExecute_PastSlot(t *testing.T) {
	slots := &fakeSlotRepo{slot: futureSlot()}
	// Часы выставлены ровно на начало слота - бронировать уже нельзя
	clock := fixedClock{now: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)}

	uc := newUseCase(slots, &fakeBookingRepo{}, &fakeEnrollmentRepo{}, clock)

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrPastSlot)
}

func TestExecute_ConcurrentInsertLosesRace(t *testing.T) {
	// Конкурент успел вставить живое бронирование - нарушение
	// частичного уникального индекса мапится в ErrSlotUnavailable
	slots := &fakeSlotRepo{slot: futureSlot()}
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}

	uc := newUseCase(slots, bookings, &fakeEnrollmentRepo{}, clockBeforeSlot)

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

// conflictSlotRepo первый вызов GetByID проигрывает конкуренту (40001),
// повторный видит уже занятый слот
type conflictSlotRepo struct {
	slot  *domain.TimeSlot
	calls int
}

func (f *conflictSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	f.calls++
	if f.calls == 1 {
		return nil, fmt.Errorf("GetByID - serialization conflict: %w", &pq.Error{Code: "40001"})
	}
	return f.slot, nil
}

func (f *conflictSlotRepo) MarkUnavailable(context.Context, int64) error { return nil }

func TestExecute_SerializationConflictRetriedToSlotUnavailable(t *testing.T) {
	// Проигравший конкурентную сериализуемую транзакцию получает 40001;
	// после повтора он видит занятый слот и получает ErrSlotUnavailable,
	// а не внутреннюю ошибку
	slot := futureSlot()
	slot.IsAvailable = false
	slots := &conflictSlotRepo{slot: slot}
	txm := &retryingTxManager{}

	uc := NewUseCase(slots, &fakeBookingRepo{}, &fakeEnrollmentRepo{}, &fakeProfileClient{}, txm, clockBeforeSlot, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 2, txm.attempts)
	assert.Equal(t, 2, slots.calls)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeSlotRepo{slot: futureSlot()},
		&fakeBookingRepo{},
		&fakeEnrollmentRepo{},
		&fakeProfileClient{err: profileservice.ErrProfileNotFound},
		fakeTxManager{},
		clockBeforeSlot,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeSlotRepo{slot: futureSlot()}, &fakeBookingRepo{}, &fakeEnrollmentRepo{}, clockBeforeSlot)

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, TimeSlotID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, TimeSlotID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
