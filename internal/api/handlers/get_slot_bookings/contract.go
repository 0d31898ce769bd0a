package get_slot_bookings

import (
	"context"

	"github.com/m04kA/SMC-VisitService/internal/service/bookings/models"
)

type BookingService interface {
	GetSlotBookings(ctx context.Context, req *models.GetSlotBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
