package get_slot_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/internal/service/bookings"
	"github.com/m04kA/SMC-VisitService/internal/service/bookings/models"
)

const (
	msgInvalidTimeSlotID = "некорректный ID слота"
	msgInvalidDate       = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeslots/{timeSlotId}/bookings
// Query: date (обязательный), includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем timeSlotId из URL
	vars := mux.Vars(r)
	timeSlotIDStr := vars["timeSlotId"]

	timeSlotID, err := strconv.ParseInt(timeSlotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /timeslots/{id}/bookings - Invalid time slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /timeslots/{id}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeInactive := query.Get("includeInactive") == "true"

	// Получаем бронирования слота на дату
	result, err := h.service.GetSlotBookings(r.Context(), &models.GetSlotBookingsRequest{
		TimeSlotID:      timeSlotID,
		Date:            date,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /timeslots/{id}/bookings - Invalid input: slot_id=%d, error=%v", timeSlotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /timeslots/{id}/bookings - Failed to get bookings: slot_id=%d, error=%v",
				timeSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timeslots/{id}/bookings - Retrieved %d bookings for slot_id=%d",
		len(result.Bookings), timeSlotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
