package validate_capacity

import "errors"

var (
	// ErrSlotNotFound возвращается, когда явно указанный слот не найден
	ErrSlotNotFound = errors.New("validate_capacity: time slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_capacity: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_capacity: internal error")
)
