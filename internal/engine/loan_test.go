package engine

import (
	"math"
	"testing"
	"time"
)

// TestCalculateLoanZeroRate проверяет линейный платеж при нулевой ставке.
func TestCalculateLoanZeroRate(t *testing.T) {
	result := CalculateLoan(LoanParameters{Principal: 12000, AnnualRatePercent: 0, TermMonths: 24})

	if math.Abs(result.MonthlyPayment-500) > 1e-9 {
		t.Fatalf("expected payment 500, got %f", result.MonthlyPayment)
	}

	last := result.Schedule[len(result.Schedule)-1]
	if last.RemainingBalance > 1e-6 {
		t.Fatalf("expected final balance 0, got %f", last.RemainingBalance)
	}
	if result.TotalInterest > 1e-6 {
		t.Fatalf("expected zero interest, got %f", result.TotalInterest)
	}
}

// TestCalculateLoanThirtyYearMortgage проверяет платеж по стандартной 30-летней ипотеке.
func TestCalculateLoanThirtyYearMortgage(t *testing.T) {
	result := CalculateLoan(LoanParameters{Principal: 240000, AnnualRatePercent: 6, TermMonths: 360})

	if math.Abs(result.MonthlyPayment-1438.92) > 0.01 {
		t.Fatalf("unexpected monthly payment: %f", result.MonthlyPayment)
	}

	if len(result.Schedule) != 360 {
		t.Fatalf("expected 360 entries, got %d", len(result.Schedule))
	}
}

// TestCalculateLoanConservation проверяет, что график сохраняет тело и проценты.
func TestCalculateLoanConservation(t *testing.T) {
	params := LoanParameters{Principal: 50000, AnnualRatePercent: 8.5, TermMonths: 120}
	result := CalculateLoan(params)

	var totalPrincipal, totalInterest float64
	for _, entry := range result.Schedule {
		totalPrincipal += entry.Principal
		totalInterest += entry.Interest
	}

	if math.Abs(totalPrincipal-params.Principal)/params.Principal > 1e-6 {
		t.Fatalf("principal not conserved: %f", totalPrincipal)
	}

	expectedTotal := result.MonthlyPayment * float64(params.TermMonths)
	if math.Abs(totalPrincipal+totalInterest-expectedTotal)/expectedTotal > 1e-6 {
		t.Fatalf("payments not conserved: %f vs %f", totalPrincipal+totalInterest, expectedTotal)
	}

	if math.Abs(result.TotalInterest-totalInterest)/totalInterest > 1e-6 {
		t.Fatalf("total interest mismatch: %f vs %f", result.TotalInterest, totalInterest)
	}
}

// TestCalculateLoanBalanceMonotonic проверяет невозрастание остатка долга.
func TestCalculateLoanBalanceMonotonic(t *testing.T) {
	result := CalculateLoan(LoanParameters{Principal: 10000, AnnualRatePercent: 12, TermMonths: 36})

	previous := math.Inf(1)
	for _, entry := range result.Schedule {
		if entry.RemainingBalance > previous+1e-9 {
			t.Fatalf("balance increased at period %d: %f > %f", entry.Period, entry.RemainingBalance, previous)
		}
		previous = entry.RemainingBalance
	}

	if result.Schedule[len(result.Schedule)-1].RemainingBalance > 1e-6 {
		t.Fatalf("final balance not zero: %f", result.Schedule[len(result.Schedule)-1].RemainingBalance)
	}
}

// TestCalculateLoanDateStamping проверяет календарные даты платежей с усечением дня.
func TestCalculateLoanDateStamping(t *testing.T) {
	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	result := CalculateLoan(LoanParameters{Principal: 1200, AnnualRatePercent: 0, TermMonths: 3, StartDate: start})

	first := result.Schedule[0].DueDate
	if first.Month() != time.February || first.Day() != 29 {
		t.Fatalf("expected 2024-02-29, got %s", first.Format("2006-01-02"))
	}

	second := result.Schedule[1].DueDate
	if second.Month() != time.March || second.Day() != 31 {
		t.Fatalf("expected 2024-03-31, got %s", second.Format("2006-01-02"))
	}
}

// TestCalculateLoanDegenerateInputs проверяет защиту от нулевого срока и мусорных значений.
func TestCalculateLoanDegenerateInputs(t *testing.T) {
	result := CalculateLoan(LoanParameters{Principal: 1000, AnnualRatePercent: 5, TermMonths: 0})
	if len(result.Schedule) != 1 {
		t.Fatalf("expected clamped single-period schedule, got %d entries", len(result.Schedule))
	}

	result = CalculateLoan(LoanParameters{Principal: math.NaN(), AnnualRatePercent: math.Inf(1), TermMonths: 12})
	if result.MonthlyPayment != 0 || result.TotalInterest != 0 {
		t.Fatalf("expected zeroed result for malformed input, got %+v", result)
	}
	for _, entry := range result.Schedule {
		if math.IsNaN(entry.RemainingBalance) || math.IsInf(entry.RemainingBalance, 0) {
			t.Fatalf("non-finite balance leaked into schedule: %+v", entry)
		}
	}
}
