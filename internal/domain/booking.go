package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BookingStatus represents the status of a slot booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ErrBookingInvalid возвращается при нарушении бизнес-правил бронирования
var ErrBookingInvalid = errors.New("domain: booking validation failed")

// Booking бронирование мест в слоте на конкретную дату
// Единственная сущность, которой владеет этот сервис
type Booking struct {
	ID           int64
	TimeSlotID   int64
	BookingDate  time.Time // дата без времени
	InvitationID *int64    // nil для бронирований без приглашения
	VisitorCount int
	Status       BookingStatus
	Notes        *string

	BookedBy string
	BookedOn time.Time

	CancelledBy        *string
	CancelledOn        *time.Time
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование удерживает места в слоте
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled возвращает true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled возвращает true, если бронирование ещё можно отменить
// Отменённое бронирование терминально и повторно не отменяется
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// Validate проверяет бизнес-правила бронирования
// Возвращает одну ошибку со списком всех нарушений
func (b *Booking) Validate() error {
	var problems []string

	if b.TimeSlotID <= 0 {
		problems = append(problems, "timeSlotID must be positive")
	}
	if b.BookingDate.IsZero() {
		problems = append(problems, "bookingDate is required")
	}
	if b.VisitorCount < MinVisitorCount {
		problems = append(problems, fmt.Sprintf("visitorCount must be at least %d", MinVisitorCount))
	}
	if b.VisitorCount > MaxVisitorCount {
		problems = append(problems, fmt.Sprintf("visitorCount must not exceed %d", MaxVisitorCount))
	}
	if strings.TrimSpace(b.BookedBy) == "" {
		problems = append(problems, "bookedBy is required")
	}
	if b.InvitationID != nil && *b.InvitationID <= 0 {
		problems = append(problems, "invitationID must be positive")
	}
	if b.Notes != nil && len(*b.Notes) > MaxNotesLength {
		problems = append(problems, fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength))
	}
	if b.Status != StatusConfirmed && b.Status != StatusCancelled {
		problems = append(problems, fmt.Sprintf("unknown status %q", b.Status))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrBookingInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// SlotBookingsFilter фильтр для выборки бронирований слота
type SlotBookingsFilter struct {
	TimeSlotID      int64     // Обязательный параметр
	BookingDate     time.Time // Обязательный параметр (дата без времени)
	IncludeInactive bool      // Включать ли отменённые бронирования
}
