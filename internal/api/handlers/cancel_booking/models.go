package cancel_booking

import (
	"github.com/m04kA/SMC-VisitService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(cancelledBy string) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CancelledBy:        cancelledBy,
		CancellationReason: r.CancellationReason,
	}
}
