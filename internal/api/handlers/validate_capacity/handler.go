package validate_capacity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
	validateCapacity "github.com/m04kA/SMC-VisitService/internal/usecase/validate_capacity"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты и времени, ожидается ISO 8601"
	msgSlotNotFound       = "временной слот не найден"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase ValidateCapacityUseCase
	logger  Logger
}

func NewHandler(useCase ValidateCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/capacity/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /capacity/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /capacity/validate - Failed to parse dateTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateCapacity.ErrSlotNotFound):
			h.logger.Warn("POST /capacity/validate - Slot not found: slot_id=%v", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, validateCapacity.ErrInvalidInput):
			h.logger.Warn("POST /capacity/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /capacity/validate - Failed to validate capacity: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /capacity/validate - Capacity validated: available=%v, occupancy=%.2f%%",
		result.IsAvailable, result.OccupancyPercentage)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
