package validate_capacity

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DateTime.IsZero() {
		return fmt.Errorf("%w: dateTime is required", ErrInvalidInput)
	}

	if req.ExpectedVisitors <= 0 {
		return fmt.Errorf("%w: expectedVisitors must be positive", ErrInvalidInput)
	}

	if req.LocationID != nil && *req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if req.TimeSlotID != nil && *req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotID must be positive", ErrInvalidInput)
	}

	if req.ExcludeInvitationID != nil && *req.ExcludeInvitationID <= 0 {
		return fmt.Errorf("%w: excludeInvitationID must be positive", ErrInvalidInput)
	}

	return nil
}
