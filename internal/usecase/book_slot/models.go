package book_slot

import "time"

// Request модель запроса на бронирование мест в слоте
type Request struct {
	TimeSlotID   int64     // ID слота
	BookingDate  time.Time // Дата бронирования (без времени)
	InvitationID *int64    // Приглашение (опционально)
	VisitorCount int       // Количество посетителей
	Notes        *string   // Дополнительные заметки (опционально)
	BookedBy     string    // Кто бронирует
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64     // ID созданного бронирования
	TimeSlotID   int64     // ID слота
	BookingDate  time.Time // Дата бронирования
	InvitationID *int64    // Приглашение
	VisitorCount int       // Количество посетителей
	Status       string    // Статус бронирования
	Notes        *string   // Заметки
	BookedBy     string    // Кто забронировал
	BookedOn     time.Time // Когда забронировано

	CreatedAt time.Time // Время создания записи
	UpdatedAt time.Time // Время обновления записи
}
