package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	listingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/listing"
	"github.com/m04kA/SalonBookingService/internal/integrations/profileservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	// Идентичности уже существующих слотов: "date|start"
	existing map[string]bool
	created  []*domain.TimeSlot
}

func (f *fakeSlotRepo) BulkCreate(_ context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error) {
	inserted := make([]*domain.TimeSlot, 0, len(slots))
	var nextID int64 = 1
	for _, s := range slots {
		key := s.Date.Format(domain.DateFormat) + "|" + s.StartTime.String()
		if f.existing[key] {
			continue
		}
		s.ID = nextID
		nextID++
		inserted = append(inserted, s)
	}
	f.created = append(f.created, inserted...)
	return inserted, nil
}

type fakeListingRepo struct {
	err error
}

func (f *fakeListingRepo) GetByMasterAndProcedure(_ context.Context, masterID, procedureID int64) (*domain.MasterListing, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.MasterListing{MasterID: masterID, ProcedureID: procedureID, Price: 1500}, nil
}

type fakeProfileClient struct {
	role string
	err  error
}

func (f *fakeProfileClient) GetProfile(_ context.Context, userID int64) (*profileservice.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &profileservice.Profile{ID: userID, Role: f.role}, nil
}

func validRequest() *Request {
	return &Request{
		MasterID:            1,
		ProcedureID:         2,
		Date:                time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:           "09:00",
		EndTime:             "11:00",
		SlotDurationMinutes: 30,
	}
}

func TestExecute_Success(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	uc := NewUseCase(slotRepo, &fakeListingRepo{}, &fakeProfileClient{role: "master"}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, int64(1), resp.MasterID)
	assert.Equal(t, int64(2), resp.ProcedureID)
	for _, s := range resp.Slots {
		assert.True(t, s.IsAvailable)
	}
}

func TestExecute_DuplicatesSkipped(t *testing.T) {
	// Слоты 09:00 и 09:30 уже существуют - повторная генерация
	// возвращает только новые
	slotRepo := &fakeSlotRepo{existing: map[string]bool{
		"2025-10-15|09:00": true,
		"2025-10-15|09:30": true,
	}}
	uc := NewUseCase(slotRepo, &fakeListingRepo{}, &fakeProfileClient{role: "master"}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "10:30", resp.Slots[1].StartTime.String())
}

func TestExecute_MasterNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeListingRepo{},
		&fakeProfileClient{err: profileservice.ErrProfileNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrMasterNotFound)
}

func TestExecute_NotAMaster(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeListingRepo{},
		&fakeProfileClient{role: "user"}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotAMaster)
}

func TestExecute_ListingNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeListingRepo{err: listingRepo.ErrListingNotFound},
		&fakeProfileClient{role: "master"}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestExecute_WindowTooShort(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeListingRepo{},
		&fakeProfileClient{role: "master"}, nopLogger{})

	req := validRequest()
	req.StartTime = "09:00"
	req.EndTime = "09:20"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidScheduleWindow)
}
