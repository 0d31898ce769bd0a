package book_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
	"github.com/m04kA/SMC-VisitService/internal/api/middleware"
	bookSlot "github.com/m04kA/SMC-VisitService/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotFound       = "временной слот не найден"
	msgSlotInactive       = "временной слот отключен"
	msgSlotNotActive      = "временной слот не действует в выбранный день"
	msgDateInPast         = "дата бронирования уже прошла"
	msgCapacityExceeded   = "в слоте недостаточно свободных мест"
	msgDuplicateBooking   = "у приглашения уже есть действующее бронирование"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse booking date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capErr *bookSlot.CapacityError

		switch {
		case errors.As(err, &capErr):
			h.logger.Warn("POST /bookings - Capacity exceeded: slot_id=%d, requested=%d, available=%d",
				req.TimeSlotID, capErr.Requested, capErr.Available)
			handlers.RespondJSON(w, http.StatusConflict, CapacityConflictResponse{
				Error:     msgCapacityExceeded,
				Requested: capErr.Requested,
				Available: capErr.Available,
				Current:   capErr.Current,
				Max:       capErr.Max,
			})

		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotInactive):
			h.logger.Warn("POST /bookings - Slot inactive: slot_id=%d", req.TimeSlotID)
			handlers.RespondBadRequest(w, msgSlotInactive)

		case errors.Is(err, bookSlot.ErrSlotNotActiveOnDay):
			h.logger.Warn("POST /bookings - Slot not active on day: slot_id=%d, date=%s",
				req.TimeSlotID, req.BookingDate)
			handlers.RespondBadRequest(w, msgSlotNotActive)

		case errors.Is(err, bookSlot.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: slot_id=%d, date=%s", req.TimeSlotID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, bookSlot.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: invitation_id=%v", req.InvitationID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateBooking)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to book slot: slot_id=%d, error=%v", req.TimeSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, slot_id=%d, user=%s",
		result.ID, req.TimeSlotID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
