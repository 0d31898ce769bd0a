package domain

import (
	"strconv"
	"strings"
	"time"
)

// Weekday день недели в нумерации ISO 8601: понедельник = 1 ... воскресенье = 7
type Weekday int

const (
	Monday    Weekday = 1
	Tuesday   Weekday = 2
	Wednesday Weekday = 3
	Thursday  Weekday = 4
	Friday    Weekday = 5
	Saturday  Weekday = 6
	Sunday    Weekday = 7
)

// ISOWeekday конвертирует time.Weekday (воскресенье = 0) в ISO-нумерацию
func ISOWeekday(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// Weekdays битовая маска дней недели
// Бит (day-1) взведён, если день входит в набор; нулевая маска означает "все дни"
type Weekdays uint8

// NewWeekdays собирает маску из перечисленных дней
func NewWeekdays(days ...Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w = w.Add(d)
	}
	return w
}

// Add возвращает маску с добавленным днём
func (w Weekdays) Add(day Weekday) Weekdays {
	if day < Monday || day > Sunday {
		return w
	}
	return w | 1<<(uint(day)-1)
}

// Contains возвращает true, если день явно входит в набор
func (w Weekdays) Contains(day Weekday) bool {
	if day < Monday || day > Sunday {
		return false
	}
	return w&(1<<(uint(day)-1)) != 0
}

// IsEmpty возвращает true для пустого набора ("все дни")
func (w Weekdays) IsEmpty() bool {
	return w == 0
}

// Allows возвращает true, если слот действует в указанный день
// Пустой набор трактуется как "действует каждый день"
func (w Weekdays) Allows(day Weekday) bool {
	return w.IsEmpty() || w.Contains(day)
}

// Days возвращает дни набора по возрастанию
func (w Weekdays) Days() []Weekday {
	days := make([]Weekday, 0, 7)
	for d := Monday; d <= Sunday; d++ {
		if w.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// String возвращает дни через запятую ("1,2,3"), пустую строку для пустого набора
func (w Weekdays) String() string {
	days := w.Days()
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}
