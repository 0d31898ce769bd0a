package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupancyPercent(t *testing.T) {
	assert.Equal(t, 40.0, OccupancyPercent(40, 100))
	assert.Equal(t, 33.33, OccupancyPercent(1, 3))
	assert.Equal(t, 66.67, OccupancyPercent(2, 3))
	assert.Equal(t, 0.0, OccupancyPercent(0, 100))
	// Перегрузка отражается процентом выше ста
	assert.Equal(t, 120.0, OccupancyPercent(60, 50))
}

func TestOccupancyPercent_NonPositiveCapacity(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyPercent(10, 0))
	assert.Equal(t, 0.0, OccupancyPercent(10, -5))
}

func TestIsWarningOccupancy(t *testing.T) {
	assert.False(t, IsWarningOccupancy(79.99))
	assert.True(t, IsWarningOccupancy(WarningOccupancyPercent))
	assert.True(t, IsWarningOccupancy(100.0))
}
