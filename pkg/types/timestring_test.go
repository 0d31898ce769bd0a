package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	assert.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:30").Minutes()
	assert.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:30").AddMinutes(45)
	assert.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), ts)

	// Через полночь не переходим
	_, err = TimeString("23:50").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("12:00")))
	assert.False(t, TimeString("12:00").IsBefore(TimeString("09:00")))
	assert.True(t, TimeString("12:00").IsAfter(TimeString("09:00")))
	assert.False(t, TimeString("09:00").IsBefore(TimeString("09:00")))
	// Некорректные значения несравнимы
	assert.False(t, TimeString("мусор").IsBefore(TimeString("09:00")))
	assert.False(t, TimeString("09:00").IsBefore(TimeString("мусор")))
}

func TestTimeString_At(t *testing.T) {
	at, err := TimeString("14:15").At(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 3, 14, 15, 0, 0, time.UTC), at)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	assert.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	assert.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, TimeString("09:15"), ts)

	assert.NoError(t, ts.Scan(time.Date(2026, 9, 3, 17, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("17:45"), ts)

	assert.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
