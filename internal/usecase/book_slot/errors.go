package book_slot

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: time slot not found")

	// ErrSlotInactive возвращается при попытке бронирования в выключенный слот
	ErrSlotInactive = errors.New("book_slot: time slot is inactive")

	// ErrSlotNotActiveOnDay возвращается, когда слот не действует в день бронирования
	ErrSlotNotActiveOnDay = errors.New("book_slot: time slot is not active on this day")

	// ErrDateInPast возвращается при попытке бронирования на прошедшую дату
	ErrDateInPast = errors.New("book_slot: booking date is in the past")

	// ErrCapacityExceeded возвращается, когда в слоте не хватает мест
	ErrCapacityExceeded = errors.New("book_slot: slot capacity exceeded")

	// ErrDuplicateBooking возвращается, когда у приглашения уже есть действующее бронирование
	ErrDuplicateBooking = errors.New("book_slot: invitation already has an active booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)

// CapacityError ошибка нехватки мест с деталями для вызывающей стороны
// Совместима с errors.Is(err, ErrCapacityExceeded)
type CapacityError struct {
	Requested int // Запрошено мест
	Available int // Свободно мест
	Current   int // Уже занято подтверждёнными бронированиями
	Max       int // Предел слота
}

// Error возвращает текстовое описание ошибки
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: requested=%d, available=%d, current=%d, max=%d",
		ErrCapacityExceeded, e.Requested, e.Available, e.Current, e.Max)
}

// Unwrap связывает ошибку с сентинелом ErrCapacityExceeded
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
