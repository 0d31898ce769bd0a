package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBooking() *Booking {
	return &Booking{
		TimeSlotID:   10,
		BookingDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		VisitorCount: 3,
		Status:       StatusConfirmed,
		BookedBy:     "user-7",
	}
}

func TestBooking_Validate(t *testing.T) {
	assert.NoError(t, validBooking().Validate())
}

func TestBooking_Validate_CollectsAllProblems(t *testing.T) {
	b := &Booking{}

	err := b.Validate()

	assert.ErrorIs(t, err, ErrBookingInvalid)
	assert.Contains(t, err.Error(), "timeSlotID")
	assert.Contains(t, err.Error(), "bookingDate")
	assert.Contains(t, err.Error(), "visitorCount")
	assert.Contains(t, err.Error(), "bookedBy")
}

func TestBooking_Validate_VisitorCountBounds(t *testing.T) {
	b := validBooking()
	b.VisitorCount = MaxVisitorCount + 1

	assert.ErrorIs(t, b.Validate(), ErrBookingInvalid)
}

func TestBooking_StatusTransitions(t *testing.T) {
	b := validBooking()
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.False(t, b.IsCancelled())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())
	assert.True(t, b.IsCancelled())
}
