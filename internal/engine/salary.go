package engine

type SalaryParameters struct {
	GrossPay       float64
	TaxRatePercent float64
	Deductions     float64
	Bonuses        float64
	Period         Cadence
}

type SalaryResult struct {
	AnnualGross float64 `json:"annual_gross"`
	Tax         float64 `json:"tax"`
	NetAnnual   float64 `json:"net_annual"`
	NetMonthly  float64 `json:"net_monthly"`
	NetBiweekly float64 `json:"net_biweekly"`
	NetWeekly   float64 `json:"net_weekly"`
}

// CalculateSalary раскладывает зарплату на чистые выплаты по частотам.
// Отрицательный чистый доход допустим и не обнуляется.
func CalculateSalary(params SalaryParameters) SalaryResult {
	gross := sanitizeAmount(params.GrossPay)
	annualGross := gross
	if params.Period == CadenceMonthly {
		annualGross = gross * 12
	}

	tax := annualGross * sanitizeAmount(params.TaxRatePercent) / 100
	netAnnual := annualGross - tax - sanitizeAmount(params.Deductions) + sanitizeAmount(params.Bonuses)

	return SalaryResult{
		AnnualGross: Round2(annualGross),
		Tax:         Round2(tax),
		NetAnnual:   Round2(netAnnual),
		NetMonthly:  Round2(netAnnual / 12),
		NetBiweekly: Round2(netAnnual / 26),
		NetWeekly:   Round2(netAnnual / 52),
	}
}
