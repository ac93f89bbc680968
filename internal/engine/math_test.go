package engine

import (
	"math"
	"testing"
	"time"
)

// TestAddMonthsClamping проверяет усечение дня до конца короткого месяца.
func TestAddMonthsClamping(t *testing.T) {
	jan31 := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	feb := AddMonths(jan31, 1)
	if feb.Month() != time.February || feb.Day() != 28 {
		t.Fatalf("expected 2025-02-28, got %s", feb.Format("2006-01-02"))
	}

	mar := AddMonths(jan31, 2)
	if mar.Month() != time.March || mar.Day() != 31 {
		t.Fatalf("expected 2025-03-31, got %s", mar.Format("2006-01-02"))
	}

	// Перенос через границу года.
	nov30 := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	feb26 := AddMonths(nov30, 3)
	if feb26.Year() != 2026 || feb26.Month() != time.February || feb26.Day() != 28 {
		t.Fatalf("expected 2026-02-28, got %s", feb26.Format("2006-01-02"))
	}
}

// TestMonthsBetween проверяет календарную разницу в месяцах.
func TestMonthsBetween(t *testing.T) {
	from := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	if got := MonthsBetween(from, time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := MonthsBetween(from, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)); got != -2 {
		t.Fatalf("expected -2, got %d", got)
	}
	if got := MonthsBetween(from, from); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

// TestSanitizeAmount проверяет обнуление мусорных значений.
func TestSanitizeAmount(t *testing.T) {
	if got := sanitizeAmount(math.NaN()); got != 0 {
		t.Fatalf("NaN: expected 0, got %f", got)
	}
	if got := sanitizeAmount(math.Inf(1)); got != 0 {
		t.Fatalf("+Inf: expected 0, got %f", got)
	}
	if got := sanitizeAmount(-5); got != 0 {
		t.Fatalf("negative: expected 0, got %f", got)
	}
	if got := sanitizeAmount(42.5); got != 42.5 {
		t.Fatalf("valid: expected 42.5, got %f", got)
	}
}

// TestRound2 проверяет округление до центов.
func TestRound2(t *testing.T) {
	if got := Round2(1.005); got != 1.0 && got != 1.01 {
		t.Fatalf("unexpected rounding: %f", got)
	}
	if got := Round2(583.3333333); got != 583.33 {
		t.Fatalf("expected 583.33, got %f", got)
	}
}
