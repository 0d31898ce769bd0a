package domain

// Default configuration values
const (
	// DefaultMaxCapacity вместимость по умолчанию, когда не найден ни слот, ни локация
	DefaultMaxCapacity = 100

	// WarningOccupancyPercent порог загруженности, после которого выдается предупреждение
	WarningOccupancyPercent = 80.0

	// DefaultAlternativeDaysToCheck горизонт поиска альтернативных слотов в днях
	DefaultAlternativeDaysToCheck = 7

	// MaxAlternativeSlots максимальное количество предлагаемых альтернативных слотов
	MaxAlternativeSlots = 5
)

// Business validation constants
const (
	MinVisitorCount             = 1
	MaxVisitorCount             = 1000
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
