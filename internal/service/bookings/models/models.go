package models

import (
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancelledBy        string `json:"cancelledBy"`
	CancellationReason string `json:"cancellationReason"`
}

// GetSlotBookingsRequest запрос на получение бронирований слота на дату
type GetSlotBookingsRequest struct {
	TimeSlotID      int64     `json:"timeSlotId"`
	Date            time.Time `json:"date"`
	IncludeInactive bool      `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetSlotBookingsRequest) ToDomainFilter() domain.SlotBookingsFilter {
	return domain.SlotBookingsFilter{
		TimeSlotID:      r.TimeSlotID,
		BookingDate:     r.Date,
		IncludeInactive: r.IncludeInactive,
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64   `json:"id"`
	TimeSlotID   int64   `json:"timeSlotId"`
	BookingDate  string  `json:"bookingDate"` // "2025-10-15"
	InvitationID *int64  `json:"invitationId,omitempty"`
	VisitorCount int     `json:"visitorCount"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`

	BookedBy string    `json:"bookedBy"`
	BookedOn time.Time `json:"bookedOn"`

	CancelledBy        *string `json:"cancelledBy,omitempty"`
	CancelledOn        *string `json:"cancelledOn,omitempty"` // ISO 8601 format
	CancellationReason *string `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований слота
type BookingListResponse struct {
	Bookings      []BookingResponse `json:"bookings"`
	TotalVisitors int               `json:"totalVisitors"` // Сумма мест по подтверждённым бронированиям
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		TimeSlotID:         b.TimeSlotID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		InvitationID:       b.InvitationID,
		VisitorCount:       b.VisitorCount,
		Status:             string(b.Status),
		Notes:              b.Notes,
		BookedBy:           b.BookedBy,
		BookedOn:           b.BookedOn,
		CancelledBy:        b.CancelledBy,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledOn в строку ISO 8601
	if b.CancelledOn != nil {
		cancelledStr := b.CancelledOn.Format(time.RFC3339)
		resp.CancelledOn = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		bookingResp := FromDomainBooking(booking)
		if bookingResp == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, *bookingResp)
		if booking.IsActive() {
			resp.TotalVisitors += booking.VisitorCount
		}
	}

	return resp
}
