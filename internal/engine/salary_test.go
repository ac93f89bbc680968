package engine

import (
	"math"
	"testing"
)

// TestCalculateSalaryAnnual проверяет раскладку годовой зарплаты.
func TestCalculateSalaryAnnual(t *testing.T) {
	result := CalculateSalary(SalaryParameters{
		GrossPay:       75000,
		TaxRatePercent: 25,
		Deductions:     5000,
		Bonuses:        2000,
		Period:         CadenceAnnually,
	})

	if math.Abs(result.NetAnnual-53250) > 1e-9 {
		t.Fatalf("expected net 53250, got %f", result.NetAnnual)
	}
	if math.Abs(result.NetMonthly-4437.50) > 1e-9 {
		t.Fatalf("expected monthly 4437.50, got %f", result.NetMonthly)
	}
	if math.Abs(result.NetBiweekly-Round2(53250.0/26)) > 1e-9 {
		t.Fatalf("unexpected biweekly: %f", result.NetBiweekly)
	}
	if math.Abs(result.NetWeekly-Round2(53250.0/52)) > 1e-9 {
		t.Fatalf("unexpected weekly: %f", result.NetWeekly)
	}
}

// TestCalculateSalaryMonthlyPeriod проверяет аннуализацию месячной зарплаты.
func TestCalculateSalaryMonthlyPeriod(t *testing.T) {
	result := CalculateSalary(SalaryParameters{
		GrossPay:       5000,
		TaxRatePercent: 10,
		Period:         CadenceMonthly,
	})

	if math.Abs(result.AnnualGross-60000) > 1e-9 {
		t.Fatalf("expected gross 60000, got %f", result.AnnualGross)
	}
	if math.Abs(result.NetAnnual-54000) > 1e-9 {
		t.Fatalf("expected net 54000, got %f", result.NetAnnual)
	}
}

// TestCalculateSalaryNegativeNet проверяет, что отрицательный чистый доход не обнуляется.
func TestCalculateSalaryNegativeNet(t *testing.T) {
	result := CalculateSalary(SalaryParameters{
		GrossPay:       10000,
		TaxRatePercent: 50,
		Deductions:     8000,
		Period:         CadenceAnnually,
	})

	if result.NetAnnual != -3000 {
		t.Fatalf("expected net -3000, got %f", result.NetAnnual)
	}
}
