package validate_capacity

import (
	"time"

	validateCapacity "github.com/m04kA/SMC-VisitService/internal/usecase/validate_capacity"
)

// ValidateCapacityRequest HTTP request model
type ValidateCapacityRequest struct {
	LocationID          *int64 `json:"locationId,omitempty"`
	TimeSlotID          *int64 `json:"timeSlotId,omitempty"`
	DateTime            string `json:"dateTime"` // ISO 8601, "2025-10-15T10:00:00Z"
	ExpectedVisitors    int    `json:"expectedVisitors"`
	IsVipRequest        bool   `json:"isVipRequest,omitempty"`
	ExcludeInvitationID *int64 `json:"excludeInvitationId,omitempty"`
}

// ValidateCapacityResponse HTTP response model
type ValidateCapacityResponse struct {
	IsAvailable         bool                      `json:"isAvailable"`
	MaxCapacity         int                       `json:"maxCapacity"`
	CurrentOccupancy    int                       `json:"currentOccupancy"`
	AvailableSlots      int                       `json:"availableSlots"`
	OccupancyPercentage float64                   `json:"occupancyPercentage"`
	IsWarningLevel      bool                      `json:"isWarningLevel"`
	Messages            []string                  `json:"messages,omitempty"`
	AlternativeSlots    []AlternativeSlotResponse `json:"alternativeSlots,omitempty"`
}

// AlternativeSlotResponse альтернативный слот в HTTP ответе
type AlternativeSlotResponse struct {
	TimeSlotID          int64   `json:"timeSlotId"`
	Name                string  `json:"name"`
	DateTime            string  `json:"dateTime"` // ISO 8601
	AvailableCapacity   int     `json:"availableCapacity"`
	OccupancyPercentage float64 `json:"occupancyPercentage"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateCapacityRequest) ToUseCaseRequest() (*validateCapacity.Request, error) {
	dateTime, err := time.Parse(time.RFC3339, r.DateTime)
	if err != nil {
		return nil, err
	}

	return &validateCapacity.Request{
		LocationID:          r.LocationID,
		TimeSlotID:          r.TimeSlotID,
		DateTime:            dateTime,
		ExpectedVisitors:    r.ExpectedVisitors,
		IsVipRequest:        r.IsVipRequest,
		ExcludeInvitationID: r.ExcludeInvitationID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateCapacity.Response) *ValidateCapacityResponse {
	out := &ValidateCapacityResponse{
		IsAvailable:         resp.IsAvailable,
		MaxCapacity:         resp.MaxCapacity,
		CurrentOccupancy:    resp.CurrentOccupancy,
		AvailableSlots:      resp.AvailableSlots,
		OccupancyPercentage: resp.OccupancyPercentage,
		IsWarningLevel:      resp.IsWarningLevel,
		Messages:            resp.Messages,
	}

	for _, slot := range resp.AlternativeSlots {
		out.AlternativeSlots = append(out.AlternativeSlots, AlternativeSlotResponse{
			TimeSlotID:          slot.TimeSlotID,
			Name:                slot.Name,
			DateTime:            slot.DateTime.Format(time.RFC3339),
			AvailableCapacity:   slot.AvailableCapacity,
			OccupancyPercentage: slot.OccupancyPercentage,
		})
	}

	return out
}
