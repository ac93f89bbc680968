package engine

type GrowthParameters struct {
	InitialPrincipal      float64
	RecurringContribution float64
	ContributionCadence   Cadence
	AnnualRatePercent     float64
	CompoundingCadence    Cadence
	TermYears             int
}

type GrowthSnapshot struct {
	Year    int     `json:"year"`
	Balance float64 `json:"balance"`
}

type GrowthResult struct {
	FinalBalance       float64          `json:"final_balance"`
	TotalContributions float64          `json:"total_contributions"`
	TotalInterest      float64          `json:"total_interest"`
	ROIPercent         float64          `json:"roi_percent"`
	Snapshots          []GrowthSnapshot `json:"snapshots"`
}

// CalculateGrowth проецирует рост вложений по периодам начисления.
// Регулярный взнос приводится к каденции начисления и добавляется в каждом периоде;
// снимок баланса формируется на каждый завершенный год, включая нулевой.
func CalculateGrowth(params GrowthParameters) GrowthResult {
	principal := sanitizeAmount(params.InitialPrincipal)
	contribution := sanitizeAmount(params.RecurringContribution)
	termYears := params.TermYears
	if termYears < 1 {
		termYears = 1
	}

	periodsPerYear := params.CompoundingCadence.PeriodsPerYear()
	ratePerPeriod := sanitizeAmount(params.AnnualRatePercent) / 100 / float64(periodsPerYear)

	var contributionPerPeriod float64
	if params.ContributionCadence != CadenceNone && contribution > 0 {
		contributionPerPeriod = FromMonthly(ToMonthly(contribution, params.ContributionCadence), params.CompoundingCadence)
	}

	balance := principal
	totalInvested := principal
	snapshots := make([]GrowthSnapshot, 0, termYears+1)
	snapshots = append(snapshots, GrowthSnapshot{Year: 0, Balance: Round2(balance)})

	totalPeriods := periodsPerYear * termYears
	for period := 1; period <= totalPeriods; period++ {
		balance += balance * ratePerPeriod
		balance += contributionPerPeriod
		totalInvested += contributionPerPeriod

		if period%periodsPerYear == 0 {
			snapshots = append(snapshots, GrowthSnapshot{
				Year:    period / periodsPerYear,
				Balance: Round2(clampFinite(balance)),
			})
		}
	}

	final := clampFinite(balance)
	var roi float64
	if totalInvested > 0 {
		roi = (final - totalInvested) / totalInvested * 100
	}

	return GrowthResult{
		FinalBalance:       Round2(final),
		TotalContributions: Round2(totalInvested),
		TotalInterest:      Round2(final - totalInvested),
		ROIPercent:         Round2(roi),
		Snapshots:          snapshots,
	}
}
