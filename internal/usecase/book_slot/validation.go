package book_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotID must be positive", ErrInvalidInput)
	}

	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}

	if req.VisitorCount < domain.MinVisitorCount {
		return fmt.Errorf("%w: visitorCount must be at least %d", ErrInvalidInput, domain.MinVisitorCount)
	}

	if strings.TrimSpace(req.BookedBy) == "" {
		return fmt.Errorf("%w: bookedBy is required", ErrInvalidInput)
	}

	if req.InvitationID != nil && *req.InvitationID <= 0 {
		return fmt.Errorf("%w: invitationID must be positive", ErrInvalidInput)
	}

	return nil
}

// sumConfirmedVisitors суммирует места по подтверждённым бронированиям
func sumConfirmedVisitors(bookings []*domain.Booking) int {
	sum := 0
	for _, b := range bookings {
		if b.IsActive() {
			sum += b.VisitorCount
		}
	}
	return sum
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
