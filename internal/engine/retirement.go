package engine

import "math"

// Эвристика устойчивого годового снятия накоплений ("правило 4%").
const annualWithdrawalRate = 0.04

type RetirementParameters struct {
	CurrentAge           int
	RetirementAge        int
	CurrentSavings       float64
	MonthlyContribution  float64
	AnnualReturnPercent  float64
	InflationRatePercent float64
	DesiredMonthlyIncome float64
}

type RetirementResult struct {
	YearsUntilRetirement           int              `json:"years_until_retirement"`
	ProjectedBalance               float64          `json:"projected_balance"`
	TotalContributions             float64          `json:"total_contributions"`
	InflationAdjustedDesiredIncome float64          `json:"inflation_adjusted_desired_income"`
	ProjectedMonthlyIncome         float64          `json:"projected_monthly_income"`
	IsGoalMet                      bool             `json:"is_goal_met"`
	AdditionalMonthlyContribution  float64          `json:"additional_monthly_contribution"`
	Snapshots                      []GrowthSnapshot `json:"snapshots"`
}

// CalculateRetirement оценивает накопления к выходу на пенсию и достаточность
// ежемесячного дохода по правилу 4% с поправкой цели на инфляцию.
func CalculateRetirement(params RetirementParameters) RetirementResult {
	years := params.RetirementAge - params.CurrentAge
	if years < 1 {
		years = 1
	}
	months := years * 12

	savings := sanitizeAmount(params.CurrentSavings)
	contribution := sanitizeAmount(params.MonthlyContribution)
	monthlyRate := sanitizeAmount(params.AnnualReturnPercent) / 100 / 12

	projected := futureValue(savings, contribution, monthlyRate, months)

	// Снимки баланса по годам для графика; Year содержит возраст.
	snapshots := make([]GrowthSnapshot, 0, years+1)
	for year := 0; year <= years; year++ {
		snapshots = append(snapshots, GrowthSnapshot{
			Year:    params.CurrentAge + year,
			Balance: Round2(futureValue(savings, contribution, monthlyRate, year*12)),
		})
	}

	inflationFactor := math.Pow(1+sanitizeAmount(params.InflationRatePercent)/100, float64(years))
	adjustedIncome := sanitizeAmount(params.DesiredMonthlyIncome) * inflationFactor
	projectedIncome := projected * annualWithdrawalRate / 12
	goalMet := projectedIncome >= adjustedIncome

	var additional float64
	if !goalMet {
		requiredBalance := adjustedIncome * 12 / annualWithdrawalRate
		additional = requiredContribution(requiredBalance-projected, monthlyRate, months)
	}

	return RetirementResult{
		YearsUntilRetirement:           years,
		ProjectedBalance:               Round2(projected),
		TotalContributions:             Round2(savings + contribution*float64(months)),
		InflationAdjustedDesiredIncome: Round2(adjustedIncome),
		ProjectedMonthlyIncome:         Round2(projectedIncome),
		IsGoalMet:                      goalMet,
		AdditionalMonthlyContribution:  Round2(additional),
		Snapshots:                      snapshots,
	}
}

// futureValue считает будущую стоимость по закрытой формуле аннуитета;
// при нулевой ставке используется линейное накопление.
func futureValue(principal, monthlyContribution, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return principal
	}
	if monthlyRate == 0 {
		return principal + monthlyContribution*float64(months)
	}

	factor := math.Pow(1+monthlyRate, float64(months))
	return clampFinite(principal*factor + monthlyContribution*(factor-1)/monthlyRate)
}

// requiredContribution решает формулу аннуитета относительно взноса,
// дающего заданную будущую стоимость.
func requiredContribution(targetValue, monthlyRate float64, months int) float64 {
	if targetValue <= 0 {
		return 0
	}
	if months < 1 {
		months = 1
	}
	if monthlyRate == 0 {
		return targetValue / float64(months)
	}

	factor := math.Pow(1+monthlyRate, float64(months))
	return clampFinite(targetValue * monthlyRate / (factor - 1))
}
