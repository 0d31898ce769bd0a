package get_alternative_slots

import (
	"time"

	getAlternativeSlots "github.com/m04kA/SMC-VisitService/internal/usecase/get_alternative_slots"
)

// AlternativeSlotResponse альтернативный слот в HTTP ответе
type AlternativeSlotResponse struct {
	TimeSlotID          int64   `json:"timeSlotId"`
	Name                string  `json:"name"`
	DateTime            string  `json:"dateTime"` // ISO 8601
	AvailableCapacity   int     `json:"availableCapacity"`
	OccupancyPercentage float64 `json:"occupancyPercentage"`
}

// AlternativeSlotsResponse HTTP response model
type AlternativeSlotsResponse struct {
	Slots []AlternativeSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAlternativeSlots.Response) *AlternativeSlotsResponse {
	out := &AlternativeSlotsResponse{
		Slots: make([]AlternativeSlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, AlternativeSlotResponse{
			TimeSlotID:          slot.TimeSlotID,
			Name:                slot.Name,
			DateTime:            slot.DateTime.Format(time.RFC3339),
			AvailableCapacity:   slot.AvailableCapacity,
			OccupancyPercentage: slot.OccupancyPercentage,
		})
	}

	return out
}
