package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/service/slots/models"
	"github.com/m04kA/SalonBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	slots      []*domain.TimeSlot
	lastFilter *domain.SlotsFilter
}

func (f *fakeSlotRepo) List(_ context.Context, filter domain.SlotsFilter) ([]*domain.TimeSlot, error) {
	f.lastFilter = &filter
	return f.slots, nil
}

func TestList_EmptyFilterReturnsEverything(t *testing.T) {
	repo := &fakeSlotRepo{slots: []*domain.TimeSlot{
		{ID: 1, MasterID: 2, ProcedureID: 3, Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "10:30"},
	}}
	s := NewService(repo, nopLogger{})

	resp, err := s.List(context.Background(), &models.ListSlotsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 1)

	// Пустой запрос уходит в репозиторий пустым фильтром
	require.NotNil(t, repo.lastFilter)
	assert.Nil(t, repo.lastFilter.MasterID)
	assert.Nil(t, repo.lastFilter.ProcedureID)
	assert.Nil(t, repo.lastFilter.Date)
	assert.False(t, repo.lastFilter.OnlyAvailable)
}

func TestList_InvalidFilterValues(t *testing.T) {
	s := NewService(&fakeSlotRepo{}, nopLogger{})

	_, err := s.List(context.Background(), &models.ListSlotsRequest{MasterID: ptr.Ptr(int64(0))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.List(context.Background(), &models.ListSlotsRequest{ProcedureID: ptr.Ptr(int64(-1))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAvailable_RequiresAllFilters(t *testing.T) {
	s := NewService(&fakeSlotRepo{}, nopLogger{})

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	cases := []*models.ListSlotsRequest{
		{ProcedureID: ptr.Ptr(int64(3)), Date: &date},                 // нет masterId
		{MasterID: ptr.Ptr(int64(2)), Date: &date},                    // нет procedureId
		{MasterID: ptr.Ptr(int64(2)), ProcedureID: ptr.Ptr(int64(3))}, // нет даты
	}

	for i, req := range cases {
		_, err := s.ListAvailable(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "case=%d", i)
	}
}

func TestListAvailable_SetsOnlyAvailable(t *testing.T) {
	repo := &fakeSlotRepo{slots: []*domain.TimeSlot{}}
	s := NewService(repo, nopLogger{})

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	_, err := s.ListAvailable(context.Background(), &models.ListSlotsRequest{
		MasterID:    ptr.Ptr(int64(2)),
		ProcedureID: ptr.Ptr(int64(3)),
		Date:        &date,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter)
	assert.True(t, repo.lastFilter.OnlyAvailable)
}
