package engine

import (
	"math"
	"testing"
)

// TestCadenceRoundTrip проверяет обратимость ToMonthly/FromMonthly для всех каденций.
func TestCadenceRoundTrip(t *testing.T) {
	cadences := []Cadence{CadenceDaily, CadenceMonthly, CadenceQuarterly, CadenceAnnually}
	amounts := []float64{0, 1, 99.99, 1234.5678, 1e6}

	for _, cadence := range cadences {
		for _, amount := range amounts {
			got := FromMonthly(ToMonthly(amount, cadence), cadence)
			if math.Abs(got-amount) > 1e-9*math.Max(1, amount) {
				t.Fatalf("round-trip failed for %s amount %f: got %f", cadence, amount, got)
			}
		}
	}
}

// TestToMonthlyFactors проверяет коэффициенты приведения к месячной сумме.
func TestToMonthlyFactors(t *testing.T) {
	if got := ToMonthly(10, CadenceDaily); math.Abs(got-304.4) > 1e-9 {
		t.Fatalf("daily: expected 304.4, got %f", got)
	}
	if got := ToMonthly(300, CadenceQuarterly); math.Abs(got-100) > 1e-9 {
		t.Fatalf("quarterly: expected 100, got %f", got)
	}
	if got := ToMonthly(1200, CadenceAnnually); math.Abs(got-100) > 1e-9 {
		t.Fatalf("annually: expected 100, got %f", got)
	}
	if got := ToMonthly(42, CadenceMonthly); got != 42 {
		t.Fatalf("monthly: expected identity, got %f", got)
	}
}

// TestParseCadenceFallback проверяет, что неизвестные значения считаются месячными.
func TestParseCadenceFallback(t *testing.T) {
	if got := ParseCadence("fortnightly"); got != CadenceMonthly {
		t.Fatalf("expected monthly fallback, got %s", got)
	}
	if got := ParseCadence(" Annually "); got != CadenceAnnually {
		t.Fatalf("expected annually, got %s", got)
	}
	if got := ParseCadence("none"); got != CadenceNone {
		t.Fatalf("expected none, got %s", got)
	}
}

// TestPeriodsPerYear проверяет число периодов начисления в году.
func TestPeriodsPerYear(t *testing.T) {
	if got := CadenceDaily.PeriodsPerYear(); got != 365 {
		t.Fatalf("daily: expected 365, got %d", got)
	}
	if got := CadenceQuarterly.PeriodsPerYear(); got != 4 {
		t.Fatalf("quarterly: expected 4, got %d", got)
	}
	if got := CadenceAnnually.PeriodsPerYear(); got != 1 {
		t.Fatalf("annually: expected 1, got %d", got)
	}
	if got := CadenceMonthly.PeriodsPerYear(); got != 12 {
		t.Fatalf("monthly: expected 12, got %d", got)
	}
}

// TestKnownCadence проверяет распознавание строковых каденций.
func TestKnownCadence(t *testing.T) {
	for _, value := range []string{"daily", "Monthly", " quarterly ", "annual", "yearly", "none"} {
		if !KnownCadence(value) {
			t.Fatalf("expected %q to be known", value)
		}
	}

	for _, value := range []string{"", "weekly", "biweekly", "bogus"} {
		if KnownCadence(value) {
			t.Fatalf("expected %q to be unknown", value)
		}
	}
}
