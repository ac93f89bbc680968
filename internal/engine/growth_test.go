package engine

import (
	"math"
	"testing"
)

// TestCalculateGrowthAnnualCompounding проверяет рост без взносов при годовом начислении.
func TestCalculateGrowthAnnualCompounding(t *testing.T) {
	result := CalculateGrowth(GrowthParameters{
		InitialPrincipal:    10000,
		ContributionCadence: CadenceNone,
		AnnualRatePercent:   7,
		CompoundingCadence:  CadenceAnnually,
		TermYears:           10,
	})

	if math.Abs(result.FinalBalance-19671.51) > 0.01 {
		t.Fatalf("expected ~19671.51, got %f", result.FinalBalance)
	}

	if len(result.Snapshots) != 11 {
		t.Fatalf("expected 11 snapshots, got %d", len(result.Snapshots))
	}
	if result.Snapshots[0].Year != 0 || result.Snapshots[0].Balance != 10000 {
		t.Fatalf("unexpected year-0 snapshot: %+v", result.Snapshots[0])
	}
}

// TestCalculateGrowthZeroRate проверяет линейное накопление при нулевой ставке.
func TestCalculateGrowthZeroRate(t *testing.T) {
	result := CalculateGrowth(GrowthParameters{
		InitialPrincipal:      1000,
		RecurringContribution: 100,
		ContributionCadence:   CadenceMonthly,
		AnnualRatePercent:     0,
		CompoundingCadence:    CadenceMonthly,
		TermYears:             2,
	})

	expected := 1000 + 100*24.0
	if math.Abs(result.FinalBalance-expected) > 1e-6 {
		t.Fatalf("expected %f, got %f", expected, result.FinalBalance)
	}
	if result.ROIPercent != 0 {
		t.Fatalf("expected zero ROI, got %f", result.ROIPercent)
	}
}

// TestCalculateGrowthContributionRenormalization проверяет приведение взноса к каденции начисления.
func TestCalculateGrowthContributionRenormalization(t *testing.T) {
	// Годовой взнос 1200 при квартальном начислении без ставки: 300 за квартал.
	result := CalculateGrowth(GrowthParameters{
		InitialPrincipal:      0,
		RecurringContribution: 1200,
		ContributionCadence:   CadenceAnnually,
		AnnualRatePercent:     0,
		CompoundingCadence:    CadenceQuarterly,
		TermYears:             1,
	})

	if math.Abs(result.FinalBalance-1200) > 1e-6 {
		t.Fatalf("expected 1200, got %f", result.FinalBalance)
	}
}

// TestCalculateGrowthROI проверяет расчет ROI относительно вложенных средств.
func TestCalculateGrowthROI(t *testing.T) {
	result := CalculateGrowth(GrowthParameters{
		InitialPrincipal:    5000,
		ContributionCadence: CadenceNone,
		AnnualRatePercent:   10,
		CompoundingCadence:  CadenceAnnually,
		TermYears:           2,
	})

	// 5000 * 1.1^2 = 6050, ROI = 21%.
	if math.Abs(result.ROIPercent-21) > 0.01 {
		t.Fatalf("expected ROI 21%%, got %f", result.ROIPercent)
	}
	if math.Abs(result.TotalInterest-1050) > 0.01 {
		t.Fatalf("expected interest 1050, got %f", result.TotalInterest)
	}
}
