package get_alternative_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OriginalDateTime.IsZero() {
		return fmt.Errorf("%w: originalDateTime is required", ErrInvalidInput)
	}

	if req.ExpectedVisitors <= 0 {
		return fmt.Errorf("%w: expectedVisitors must be positive", ErrInvalidInput)
	}

	if req.LocationID != nil && *req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if req.DaysToCheck < 0 {
		return fmt.Errorf("%w: daysToCheck must not be negative", ErrInvalidInput)
	}

	return nil
}
