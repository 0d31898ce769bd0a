package get_alternative_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
	getAlternativeSlots "github.com/m04kA/SMC-VisitService/internal/usecase/get_alternative_slots"
)

const (
	msgInvalidDateTime    = "некорректный параметр dateTime, ожидается ISO 8601"
	msgInvalidVisitors    = "некорректный параметр expectedVisitors"
	msgInvalidLocationID  = "некорректный параметр locationId"
	msgInvalidDaysToCheck = "некорректный параметр daysToCheck"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAlternativeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAlternativeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/capacity/alternative-slots
// Query: dateTime (обязательный), expectedVisitors (обязательный),
// locationId (опционально), daysToCheck (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateTime, err := time.Parse(time.RFC3339, query.Get("dateTime"))
	if err != nil {
		h.logger.Warn("GET /capacity/alternative-slots - Invalid dateTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	expectedVisitors, err := strconv.Atoi(query.Get("expectedVisitors"))
	if err != nil {
		h.logger.Warn("GET /capacity/alternative-slots - Invalid expectedVisitors: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitors)
		return
	}

	req := &getAlternativeSlots.Request{
		OriginalDateTime: dateTime,
		ExpectedVisitors: expectedVisitors,
	}

	if raw := query.Get("locationId"); raw != "" {
		locationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /capacity/alternative-slots - Invalid locationId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocationID)
			return
		}
		req.LocationID = &locationID
	}

	if raw := query.Get("daysToCheck"); raw != "" {
		daysToCheck, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /capacity/alternative-slots - Invalid daysToCheck: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDaysToCheck)
			return
		}
		req.DaysToCheck = daysToCheck
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAlternativeSlots.ErrInvalidInput):
			h.logger.Warn("GET /capacity/alternative-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /capacity/alternative-slots - Failed to find slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /capacity/alternative-slots - Found %d alternative slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
