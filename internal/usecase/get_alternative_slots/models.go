package get_alternative_slots

import "time"

// Request модель запроса на поиск альтернативных слотов
type Request struct {
	OriginalDateTime time.Time // Исходно запрошенный момент посещения
	ExpectedVisitors int       // Сколько мест должно быть свободно
	LocationID       *int64    // Локация (опционально, nil - без привязки)
	DaysToCheck      int       // Горизонт поиска в днях (0 - значение по умолчанию)
}

// Response модель ответа со списком альтернатив
type Response struct {
	Slots []AlternativeSlot // По возрастанию времени, не больше лимита
}

// AlternativeSlot будущий экземпляр слота с достаточным запасом мест
type AlternativeSlot struct {
	TimeSlotID          int64     // ID слота
	Name                string    // Название слота
	DateTime            time.Time // Момент начала слота в конкретную дату
	AvailableCapacity   int       // Свободные места на этот момент
	OccupancyPercentage float64   // Загруженность слота в процентах
}
