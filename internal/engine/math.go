package engine

import (
	"math"
	"time"
)

// Round2 округляет значение до двух знаков после запятой.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// sanitizeAmount приводит отсутствующие и некорректные числовые поля к нулю.
func sanitizeAmount(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

// clampFinite обнуляет NaN, бесконечности и отрицательные результаты вычислений.
func clampFinite(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

// AddMonths прибавляет месяцы с календарной семантикой:
// 31 января + 1 месяц = последний день февраля, а не 2-3 марта.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	anchor := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, t.Location())
}

// MonthsBetween возвращает число календарных месяцев от from до to; может быть отрицательным.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

func daysInMonth(year int, month time.Month) int {
	// День 0 следующего месяца — последний день текущего.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func ceilDiv(value, divisor int) int {
	if divisor <= 0 {
		return value
	}
	return (value + divisor - 1) / divisor
}
