package validate_capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	capacityService "github.com/m04kA/SMC-VisitService/internal/service/capacity"
	getAlternativeSlots "github.com/m04kA/SMC-VisitService/internal/usecase/get_alternative_slots"
	"github.com/m04kA/SMC-VisitService/pkg/ptr"
)

// Mock collaborators

type MockCapacityService struct {
	mock.Mock
}

func (m *MockCapacityService) CurrentOccupancy(ctx context.Context, at time.Time, locationID *int64, excludeInvitationID *int64) (int, error) {
	args := m.Called(ctx, at, locationID, excludeInvitationID)
	return args.Int(0), args.Error(1)
}

func (m *MockCapacityService) MaxCapacity(ctx context.Context, at time.Time, locationID *int64, timeSlotID *int64) (int, error) {
	args := m.Called(ctx, at, locationID, timeSlotID)
	return args.Int(0), args.Error(1)
}

type MockAlternativeSlotsFinder struct {
	mock.Mock
}

func (m *MockAlternativeSlotsFinder) Execute(ctx context.Context, req *getAlternativeSlots.Request) (*getAlternativeSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAlternativeSlots.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testMoment = time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)

func TestExecute_Available(t *testing.T) {
	mockCapacity := new(MockCapacityService)
	mockFinder := new(MockAlternativeSlotsFinder)

	mockCapacity.On("MaxCapacity", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(100, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(40, nil)

	uc := NewUseCase(mockCapacity, mockFinder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateTime:         testMoment,
		ExpectedVisitors: 10,
	})

	assert.NoError(t, err)
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 100, resp.MaxCapacity)
	assert.Equal(t, 40, resp.CurrentOccupancy)
	assert.Equal(t, 60, resp.AvailableSlots)
	assert.Equal(t, 40.0, resp.OccupancyPercentage)
	assert.False(t, resp.IsWarningLevel)
	assert.Empty(t, resp.Messages)
	assert.Empty(t, resp.AlternativeSlots)
	mockFinder.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestExecute_ShortfallWithAlternatives(t *testing.T) {
	mockCapacity := new(MockCapacityService)
	mockFinder := new(MockAlternativeSlotsFinder)

	mockCapacity.On("MaxCapacity", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(50, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(45, nil)

	altDateTime := testMoment.AddDate(0, 0, 1)
	mockFinder.On("Execute", mock.Anything, mock.Anything).Return(&getAlternativeSlots.Response{
		Slots: []getAlternativeSlots.AlternativeSlot{
			{TimeSlotID: 3, Name: "Дневной приём", DateTime: altDateTime, AvailableCapacity: 30, OccupancyPercentage: 25.0},
		},
	}, nil)

	uc := NewUseCase(mockCapacity, mockFinder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateTime:         testMoment,
		ExpectedVisitors: 10,
	})

	assert.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	assert.Equal(t, 5, resp.AvailableSlots)
	assert.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "недостаточно мест")
	assert.Len(t, resp.AlternativeSlots, 1)
	assert.Equal(t, int64(3), resp.AlternativeSlots[0].TimeSlotID)
	assert.Equal(t, altDateTime, resp.AlternativeSlots[0].DateTime)
}

func TestExecute_VipOverrideSkipsAlternatives(t *testing.T) {
	mockCapacity := new(MockCapacityService)
	mockFinder := new(MockAlternativeSlotsFinder)

	mockCapacity.On("MaxCapacity", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(50, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(50, nil)

	uc := NewUseCase(mockCapacity, mockFinder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateTime:         testMoment,
		ExpectedVisitors: 10,
		IsVipRequest:     true,
	})

	assert.NoError(t, err)
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, -10, resp.AvailableSlots)
	assert.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "VIP")
	assert.Empty(t, resp.AlternativeSlots)
	mockFinder.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestExecute_WarningLevel(t *testing.T) {
	mockCapacity := new(MockCapacityService)
	mockFinder := new(MockAlternativeSlotsFinder)

	// 85 из 100 - выше порога предупреждения, но мест на 10 хватает
	mockCapacity.On("MaxCapacity", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(100, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(85, nil)

	uc := NewUseCase(mockCapacity, mockFinder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateTime:         testMoment,
		ExpectedVisitors: 10,
	})

	assert.NoError(t, err)
	assert.True(t, resp.IsAvailable)
	assert.True(t, resp.IsWarningLevel)
	assert.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "высокая загруженность")
}

func TestExecute_PercentageRounding(t *testing.T) {
	mockCapacity := new(MockCapacityService)
	mockFinder := new(MockAlternativeSlotsFinder)

	// 1 из 3 = 33.333...% -> 33.33
	mockCapacity.On("MaxCapacity", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(3, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(1, nil)

	uc := NewUseCase(mockCapacity, mockFinder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateTime:         testMoment,
		ExpectedVisitors: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, 33.33, resp.OccupancyPercentage)
}

func TestExecute_ExcludeInvitationPassedThrough(t *testing.T) {
	mockCapacity := new(MockCapacityService)
	mockFinder := new(MockAlternativeSlotsFinder)

	excludeID := ptr.Ptr(int64(77))
	mockCapacity.On("MaxCapacity", mock.Anything, testMoment, (*int64)(nil), (*int64)(nil)).Return(100, nil)
	mockCapacity.On("CurrentOccupancy", mock.Anything, testMoment, (*int64)(nil), excludeID).Return(10, nil)

	uc := NewUseCase(mockCapacity, mockFinder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateTime:            testMoment,
		ExpectedVisitors:    5,
		ExcludeInvitationID: excludeID,
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, resp.CurrentOccupancy)
	mockCapacity.AssertExpectations(t)
}

func TestExecute_SlotNotFound(t *testing.T) {
	mockCapacity := new(MockCapacityService)
	mockFinder := new(MockAlternativeSlotsFinder)

	slotID := ptr.Ptr(int64(99))
	mockCapacity.On("MaxCapacity", mock.Anything, testMoment, (*int64)(nil), slotID).
		Return(0, capacityService.ErrSlotNotFound)

	uc := NewUseCase(mockCapacity, mockFinder, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		DateTime:         testMoment,
		TimeSlotID:       slotID,
		ExpectedVisitors: 5,
	})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(new(MockCapacityService), new(MockAlternativeSlotsFinder), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		DateTime:         testMoment,
		ExpectedVisitors: 0,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
