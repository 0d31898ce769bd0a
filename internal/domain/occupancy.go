package domain

import "math"

// OccupancyPercent возвращает загруженность в процентах от предела вместимости,
// округлённую до двух знаков. Для нулевого или отрицательного предела возвращает 0
func OccupancyPercent(occupancy, maxCapacity int) float64 {
	if maxCapacity <= 0 {
		return 0
	}
	return math.Round(float64(occupancy)/float64(maxCapacity)*100*100) / 100
}

// IsWarningOccupancy возвращает true, когда загруженность достигла порога предупреждения
func IsWarningOccupancy(percent float64) bool {
	return percent >= WarningOccupancyPercent
}
