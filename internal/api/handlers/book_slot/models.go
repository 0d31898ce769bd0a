package book_slot

import (
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	bookSlot "github.com/m04kA/SMC-VisitService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	TimeSlotID   int64   `json:"timeSlotId"`
	BookingDate  string  `json:"bookingDate"` // "2025-10-15"
	InvitationID *int64  `json:"invitationId,omitempty"`
	VisitorCount int     `json:"visitorCount"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	TimeSlotID   int64   `json:"timeSlotId"`
	BookingDate  string  `json:"bookingDate"`
	InvitationID *int64  `json:"invitationId,omitempty"`
	VisitorCount int     `json:"visitorCount"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
	BookedBy     string  `json:"bookedBy"`
	BookedOn     string  `json:"bookedOn"` // ISO 8601
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// CapacityConflictResponse тело ответа 409 при нехватке мест в слоте
type CapacityConflictResponse struct {
	Error     string `json:"error"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
	Current   int    `json:"current"`
	Max       int    `json:"max"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest(bookedBy string) (*bookSlot.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &bookSlot.Request{
		TimeSlotID:   r.TimeSlotID,
		BookingDate:  bookingDate,
		InvitationID: r.InvitationID,
		VisitorCount: r.VisitorCount,
		Notes:        r.Notes,
		BookedBy:     bookedBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		TimeSlotID:   resp.TimeSlotID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		InvitationID: resp.InvitationID,
		VisitorCount: resp.VisitorCount,
		Status:       resp.Status,
		Notes:        resp.Notes,
		BookedBy:     resp.BookedBy,
		BookedOn:     resp.BookedOn.Format(time.RFC3339),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
