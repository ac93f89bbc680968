package engine

import (
	"math"
	"testing"
)

// TestCalculateMortgagePMIThreshold проверяет жесткий порог PMI на 20% взноса.
func TestCalculateMortgagePMIThreshold(t *testing.T) {
	base := MortgageParameters{
		HomePrice:         300000,
		AnnualRatePercent: 6,
		TermMonths:        360,
		PMIPercent:        0.5,
	}

	atThreshold := base
	atThreshold.DownPaymentPercent = 20
	atThreshold.DownPaymentAmount = 60000
	if result := CalculateMortgage(atThreshold); result.MonthlyPMI != 0 {
		t.Fatalf("expected zero PMI at 20%% down, got %f", result.MonthlyPMI)
	}

	belowThreshold := base
	belowThreshold.DownPaymentPercent = 19.999
	belowThreshold.DownPaymentAmount = 59997
	if result := CalculateMortgage(belowThreshold); result.MonthlyPMI <= 0 {
		t.Fatalf("expected positive PMI below 20%% down, got %f", result.MonthlyPMI)
	}
}

// TestCalculateMortgageAddOns проверяет месячные надбавки и итоговый платеж.
func TestCalculateMortgageAddOns(t *testing.T) {
	result := CalculateMortgage(MortgageParameters{
		HomePrice:           250000,
		DownPaymentAmount:   50000,
		DownPaymentPercent:  20,
		AnnualRatePercent:   0,
		TermMonths:          120,
		PropertyTaxAnnual:   2400,
		HomeInsuranceAnnual: 1200,
		PMIPercent:          0.5,
	})

	if math.Abs(result.MonthlyPropertyTax-200) > 1e-9 {
		t.Fatalf("expected tax 200, got %f", result.MonthlyPropertyTax)
	}
	if math.Abs(result.MonthlyInsurance-100) > 1e-9 {
		t.Fatalf("expected insurance 100, got %f", result.MonthlyInsurance)
	}

	// 200000 / 120 + 200 + 100, PMI отсутствует на пороге.
	expected := 200000.0/120 + 300
	if math.Abs(result.TotalMonthlyPayment-expected) > 1e-9 {
		t.Fatalf("expected total %f, got %f", expected, result.TotalMonthlyPayment)
	}
}

// TestCalculateMortgageYearlySchedule проверяет годовые корзины графика.
func TestCalculateMortgageYearlySchedule(t *testing.T) {
	result := CalculateMortgage(MortgageParameters{
		HomePrice:          120000,
		DownPaymentAmount:  20000,
		DownPaymentPercent: 16.67,
		AnnualRatePercent:  5,
		TermMonths:         60,
	})

	if len(result.YearlySchedule) != 5 {
		t.Fatalf("expected 5 yearly rows, got %d", len(result.YearlySchedule))
	}

	var totalPrincipal float64
	for _, row := range result.YearlySchedule {
		totalPrincipal += row.PrincipalPaid
	}
	if math.Abs(totalPrincipal-100000)/100000 > 1e-6 {
		t.Fatalf("principal not conserved across years: %f", totalPrincipal)
	}

	last := result.YearlySchedule[len(result.YearlySchedule)-1]
	if last.RemainingBalance > 1e-6 {
		t.Fatalf("expected zero final balance, got %f", last.RemainingBalance)
	}
}

// TestNormalizeDownPayment проверяет пересчет зависимого поля взноса.
func TestNormalizeDownPayment(t *testing.T) {
	params := MortgageParameters{HomePrice: 200000, DownPaymentPercent: 15}

	normalized := NormalizeDownPayment(params, DownPaymentFieldPercent)
	if math.Abs(normalized.DownPaymentAmount-30000) > 1e-9 {
		t.Fatalf("expected amount 30000, got %f", normalized.DownPaymentAmount)
	}

	params = MortgageParameters{HomePrice: 200000, DownPaymentAmount: 50000}
	normalized = NormalizeDownPayment(params, DownPaymentFieldAmount)
	if math.Abs(normalized.DownPaymentPercent-25) > 1e-9 {
		t.Fatalf("expected percent 25, got %f", normalized.DownPaymentPercent)
	}

	// Нулевая цена не должна приводить к делению на ноль.
	params = MortgageParameters{HomePrice: 0, DownPaymentAmount: 1000}
	normalized = NormalizeDownPayment(params, DownPaymentFieldAmount)
	if normalized.DownPaymentPercent != 0 {
		t.Fatalf("expected zero percent for zero price, got %f", normalized.DownPaymentPercent)
	}
}
