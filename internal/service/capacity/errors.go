package capacity

import "errors"

var (
	// ErrSlotNotFound возвращается, когда явно указанный слот не найден
	ErrSlotNotFound = errors.New("capacity: time slot not found")

	// ErrInternal возвращается при ошибках коллабораторов
	// Ошибки не гасятся и не повторяются — расчёт вместимости падает сразу
	ErrInternal = errors.New("capacity: internal error")
)
