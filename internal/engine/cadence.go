package engine

import "strings"

type Cadence string

const (
	CadenceDaily     Cadence = "daily"
	CadenceMonthly   Cadence = "monthly"
	CadenceQuarterly Cadence = "quarterly"
	CadenceAnnually  Cadence = "annually"
	CadenceNone      Cadence = "none"
)

// Среднее число дней в месяце для пересчета дневных сумм.
const daysPerMonth = 30.44

// ParseCadence нормализует строковое значение каденции; неизвестные значения считаются месячными.
func ParseCadence(value string) Cadence {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "daily":
		return CadenceDaily
	case "quarterly":
		return CadenceQuarterly
	case "annually", "annual", "yearly":
		return CadenceAnnually
	case "none":
		return CadenceNone
	default:
		return CadenceMonthly
	}
}

// KnownCadence сообщает, является ли строка распознаваемой каденцией.
func KnownCadence(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "daily", "monthly", "quarterly", "annually", "annual", "yearly", "none":
		return true
	default:
		return false
	}
}

// ToMonthly приводит сумму с заданной каденцией к эквивалентной месячной.
func ToMonthly(amount float64, cadence Cadence) float64 {
	switch cadence {
	case CadenceDaily:
		return amount * daysPerMonth
	case CadenceQuarterly:
		return amount / 3
	case CadenceAnnually:
		return amount / 12
	default:
		return amount
	}
}

// FromMonthly выполняет обратное к ToMonthly преобразование для той же каденции.
func FromMonthly(monthly float64, cadence Cadence) float64 {
	switch cadence {
	case CadenceDaily:
		return monthly / daysPerMonth
	case CadenceQuarterly:
		return monthly * 3
	case CadenceAnnually:
		return monthly * 12
	default:
		return monthly
	}
}

// PeriodsPerYear возвращает число периодов начисления в году для каденции.
func (c Cadence) PeriodsPerYear() int {
	switch c {
	case CadenceDaily:
		return 365
	case CadenceQuarterly:
		return 4
	case CadenceAnnually:
		return 1
	default:
		return 12
	}
}
