package validate_capacity

import "time"

// Request модель запроса на проверку вместимости
type Request struct {
	LocationID          *int64    // Локация (опционально)
	TimeSlotID          *int64    // Явно выбранный слот (опционально)
	DateTime            time.Time // Момент запрашиваемого посещения
	ExpectedVisitors    int       // Ожидаемое количество посетителей
	IsVipRequest        bool      // VIP-запрос получает допуск даже при нехватке мест
	ExcludeInvitationID *int64    // Приглашение, исключаемое из суммы занятости (при перепроверке)
}

// Response результат проверки вместимости
type Response struct {
	IsAvailable         bool              // Достаточно ли свободных мест (с учётом VIP-исключения)
	MaxCapacity         int               // Предел вместимости на запрошенный момент
	CurrentOccupancy    int               // Текущая занятость по приглашениям
	AvailableSlots      int               // Свободные места (может быть отрицательным при перегрузке)
	OccupancyPercentage float64           // Загруженность в процентах, два знака
	IsWarningLevel      bool              // Загруженность достигла порога предупреждения
	Messages            []string          // Пояснения для пользователя
	AlternativeSlots    []AlternativeSlot // Предложения при нехватке мест
}

// AlternativeSlot альтернативный слот с достаточным запасом мест
type AlternativeSlot struct {
	TimeSlotID          int64
	Name                string
	DateTime            time.Time
	AvailableCapacity   int
	OccupancyPercentage float64
}
