package get_alternative_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// Mock collaborators

type MockTimeSlotRepository struct {
	mock.Mock
}

func (m *MockTimeSlotRepository) GetActive(ctx context.Context, locationID *int64) ([]*domain.TimeSlot, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeSlot), args.Error(1)
}

type MockCapacityService struct {
	mock.Mock
}

func (m *MockCapacityService) CurrentOccupancy(ctx context.Context, at time.Time, locationID *int64, excludeInvitationID *int64) (int, error) {
	args := m.Called(ctx, at, locationID, excludeInvitationID)
	return args.Int(0), args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(slots *MockTimeSlotRepository, capacity *MockCapacityService, now time.Time) *UseCase {
	uc := NewUseCase(slots, capacity, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func morningSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:          1,
		Name:        "Утренний приём",
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("12:00"),
		MaxVisitors: 30,
		IsActive:    true,
	}
}

func eveningSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:          2,
		Name:        "Вечерний приём",
		StartTime:   types.TimeString("17:00"),
		EndTime:     types.TimeString("20:00"),
		MaxVisitors: 15,
		IsActive:    true,
	}
}

func TestExecute_FindsAlternativesSortedByTime(t *testing.T) {
	mockSlots := new(MockTimeSlotRepository)
	mockCapacity := new(MockCapacityService)

	now := time.Date(2026, 9, 3, 8, 0, 0, 0, time.UTC)
	// Исходный запрос на утренний слот первого дня
	original := time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC)

	mockSlots.On("GetActive", mock.Anything, (*int64)(nil)).
		Return([]*domain.TimeSlot{morningSlot(), eveningSlot()}, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(5, nil)

	uc := newTestUseCase(mockSlots, mockCapacity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		OriginalDateTime: original,
		ExpectedVisitors: 3,
		DaysToCheck:      2,
	})

	assert.NoError(t, err)
	// Исходный момент (утро первого дня) исключается: вечер дня 1, утро и вечер дня 2
	assert.Len(t, resp.Slots, 3)
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].DateTime.Before(resp.Slots[i].DateTime))
	}
	assert.Equal(t, int64(2), resp.Slots[0].TimeSlotID)
	assert.Equal(t, 10, resp.Slots[0].AvailableCapacity)
}

func TestExecute_SkipsPastInstants(t *testing.T) {
	mockSlots := new(MockTimeSlotRepository)
	mockCapacity := new(MockCapacityService)

	// Сейчас вечер: утренний слот сегодняшнего дня уже в прошлом
	now := time.Date(2026, 9, 3, 18, 0, 0, 0, time.UTC)
	original := time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)

	mockSlots.On("GetActive", mock.Anything, (*int64)(nil)).
		Return([]*domain.TimeSlot{morningSlot()}, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(0, nil)

	uc := newTestUseCase(mockSlots, mockCapacity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		OriginalDateTime: original,
		ExpectedVisitors: 1,
		DaysToCheck:      2,
	})

	assert.NoError(t, err)
	// Остаётся только утро следующего дня
	assert.Len(t, resp.Slots, 1)
	assert.Equal(t, time.Date(2026, 9, 4, 9, 0, 0, 0, time.UTC), resp.Slots[0].DateTime)
}

func TestExecute_LimitsResults(t *testing.T) {
	mockSlots := new(MockTimeSlotRepository)
	mockCapacity := new(MockCapacityService)

	now := time.Date(2026, 9, 3, 8, 0, 0, 0, time.UTC)
	original := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)

	mockSlots.On("GetActive", mock.Anything, (*int64)(nil)).
		Return([]*domain.TimeSlot{morningSlot(), eveningSlot()}, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(0, nil)

	uc := newTestUseCase(mockSlots, mockCapacity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		OriginalDateTime: original,
		ExpectedVisitors: 1,
		DaysToCheck:      7,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Slots, domain.MaxAlternativeSlots)
}

func TestExecute_SkipsSlotsWithoutCapacity(t *testing.T) {
	mockSlots := new(MockTimeSlotRepository)
	mockCapacity := new(MockCapacityService)

	now := time.Date(2026, 9, 3, 8, 0, 0, 0, time.UTC)
	original := time.Date(2026, 9, 3, 7, 0, 0, 0, time.UTC)

	mockSlots.On("GetActive", mock.Anything, (*int64)(nil)).
		Return([]*domain.TimeSlot{eveningSlot()}, nil)
	// Свободно 15-13=2 места, а нужно 3
	mockCapacity.On("CurrentOccupancy", mock.Anything, mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(13, nil)

	uc := newTestUseCase(mockSlots, mockCapacity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		OriginalDateTime: original,
		ExpectedVisitors: 3,
		DaysToCheck:      1,
	})

	assert.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_OccupancyErrorSkipsSlot(t *testing.T) {
	mockSlots := new(MockTimeSlotRepository)
	mockCapacity := new(MockCapacityService)

	now := time.Date(2026, 9, 3, 8, 0, 0, 0, time.UTC)
	original := time.Date(2026, 9, 3, 7, 0, 0, 0, time.UTC)

	mockSlots.On("GetActive", mock.Anything, (*int64)(nil)).
		Return([]*domain.TimeSlot{morningSlot()}, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(0, errors.New("provider unavailable"))

	uc := newTestUseCase(mockSlots, mockCapacity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		OriginalDateTime: original,
		ExpectedVisitors: 1,
		DaysToCheck:      1,
	})

	// Ошибка провайдера не роняет поиск, слот просто не предлагается
	assert.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_RespectsActiveDays(t *testing.T) {
	mockSlots := new(MockTimeSlotRepository)
	mockCapacity := new(MockCapacityService)

	now := time.Date(2026, 9, 3, 8, 0, 0, 0, time.UTC)
	// 2026-09-03 - четверг, слот работает только по пятницам
	original := time.Date(2026, 9, 3, 7, 0, 0, 0, time.UTC)

	slot := morningSlot()
	slot.ActiveDays = domain.NewWeekdays(domain.Friday)

	mockSlots.On("GetActive", mock.Anything, (*int64)(nil)).
		Return([]*domain.TimeSlot{slot}, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(0, nil)

	uc := newTestUseCase(mockSlots, mockCapacity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		OriginalDateTime: original,
		ExpectedVisitors: 1,
		DaysToCheck:      2,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Slots, 1)
	assert.Equal(t, time.Date(2026, 9, 4, 9, 0, 0, 0, time.UTC), resp.Slots[0].DateTime)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(new(MockTimeSlotRepository), new(MockCapacityService), time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		OriginalDateTime: time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC),
		ExpectedVisitors: 0,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
