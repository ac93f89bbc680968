package engine

type MortgageParameters struct {
	HomePrice           float64
	DownPaymentAmount   float64
	DownPaymentPercent  float64
	AnnualRatePercent   float64
	TermMonths          int
	PropertyTaxAnnual   float64
	HomeInsuranceAnnual float64
	PMIPercent          float64
}

type DownPaymentField string

const (
	DownPaymentFieldAmount  DownPaymentField = "amount"
	DownPaymentFieldPercent DownPaymentField = "percent"
)

// Порог первоначального взноса, ниже которого начисляется PMI.
const pmiDownPaymentThreshold = 20.0

type YearlyAmortizationEntry struct {
	Year             int     `json:"year"`
	PrincipalPaid    float64 `json:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type MortgageResult struct {
	LoanAmount                  float64                   `json:"loan_amount"`
	MonthlyPrincipalAndInterest float64                   `json:"monthly_principal_and_interest"`
	MonthlyPropertyTax          float64                   `json:"monthly_property_tax"`
	MonthlyInsurance            float64                   `json:"monthly_insurance"`
	MonthlyPMI                  float64                   `json:"monthly_pmi"`
	TotalMonthlyPayment         float64                   `json:"total_monthly_payment"`
	TotalInterest               float64                   `json:"total_interest"`
	YearlySchedule              []YearlyAmortizationEntry `json:"yearly_schedule"`
}

// NormalizeDownPayment пересчитывает зависимое поле первоначального взноса
// от того, которое пользователь изменил последним.
func NormalizeDownPayment(params MortgageParameters, changed DownPaymentField) MortgageParameters {
	price := sanitizeAmount(params.HomePrice)
	params.HomePrice = price

	switch changed {
	case DownPaymentFieldPercent:
		percent := sanitizeAmount(params.DownPaymentPercent)
		params.DownPaymentPercent = percent
		params.DownPaymentAmount = price * percent / 100
	default:
		amount := sanitizeAmount(params.DownPaymentAmount)
		params.DownPaymentAmount = amount
		if price > 0 {
			params.DownPaymentPercent = amount / price * 100
		} else {
			params.DownPaymentPercent = 0
		}
	}

	return params
}

// CalculateMortgage рассчитывает ипотечный платеж с налогом, страховкой и PMI
// и годовой график погашения основного долга.
func CalculateMortgage(params MortgageParameters) MortgageResult {
	price := sanitizeAmount(params.HomePrice)
	down := sanitizeAmount(params.DownPaymentAmount)
	if down > price {
		down = price
	}
	loanAmount := price - down

	termMonths := params.TermMonths
	if termMonths < 1 {
		termMonths = 1
	}
	monthlyRate := sanitizeAmount(params.AnnualRatePercent) / 100 / 12

	payment := annuityPayment(loanAmount, monthlyRate, termMonths)

	schedule := make([]YearlyAmortizationEntry, 0, (termMonths+11)/12)
	remaining := loanAmount
	var yearPrincipal, yearInterest float64
	for period := 1; period <= termMonths; period++ {
		interest := remaining * monthlyRate
		principalPart := payment - interest
		remaining -= principalPart
		if remaining < 0 {
			remaining = 0
		}

		yearPrincipal += principalPart
		yearInterest += interest
		if period%12 == 0 || period == termMonths {
			schedule = append(schedule, YearlyAmortizationEntry{
				Year:             (period + 11) / 12,
				PrincipalPaid:    clampFinite(yearPrincipal),
				InterestPaid:     clampFinite(yearInterest),
				RemainingBalance: clampFinite(remaining),
			})
			yearPrincipal, yearInterest = 0, 0
		}
	}

	monthlyTax := sanitizeAmount(params.PropertyTaxAnnual) / 12
	monthlyInsurance := sanitizeAmount(params.HomeInsuranceAnnual) / 12

	// PMI — жесткий порог на ровно 20% взноса, без плавного снижения.
	var monthlyPMI float64
	if params.DownPaymentPercent < pmiDownPaymentThreshold {
		monthlyPMI = loanAmount * sanitizeAmount(params.PMIPercent) / 100 / 12
	}

	total := payment * float64(termMonths)
	return MortgageResult{
		LoanAmount:                  clampFinite(loanAmount),
		MonthlyPrincipalAndInterest: clampFinite(payment),
		MonthlyPropertyTax:          clampFinite(monthlyTax),
		MonthlyInsurance:            clampFinite(monthlyInsurance),
		MonthlyPMI:                  clampFinite(monthlyPMI),
		TotalMonthlyPayment:         clampFinite(payment + monthlyTax + monthlyInsurance + monthlyPMI),
		TotalInterest:               clampFinite(total - loanAmount),
		YearlySchedule:              schedule,
	}
}
