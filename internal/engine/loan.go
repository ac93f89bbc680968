package engine

import (
	"math"
	"time"
)

type LoanParameters struct {
	Principal         float64
	AnnualRatePercent float64
	TermMonths        int
	StartDate         time.Time
}

type AmortizationEntry struct {
	Period           int       `json:"period"`
	DueDate          time.Time `json:"due_date,omitempty"`
	Payment          float64   `json:"payment"`
	Principal        float64   `json:"principal"`
	Interest         float64   `json:"interest"`
	RemainingBalance float64   `json:"remaining_balance"`
}

type LoanResult struct {
	MonthlyPayment float64             `json:"monthly_payment"`
	TotalPayment   float64             `json:"total_payment"`
	TotalInterest  float64             `json:"total_interest"`
	Schedule       []AmortizationEntry `json:"schedule"`
}

// CalculateLoan строит аннуитетный график платежей по кредиту.
// Если задана StartDate, каждая запись графика получает календарную дату платежа.
func CalculateLoan(params LoanParameters) LoanResult {
	principal := sanitizeAmount(params.Principal)
	termMonths := params.TermMonths
	if termMonths < 1 {
		termMonths = 1
	}
	monthlyRate := sanitizeAmount(params.AnnualRatePercent) / 100 / 12

	payment := annuityPayment(principal, monthlyRate, termMonths)

	schedule := make([]AmortizationEntry, 0, termMonths)
	remaining := principal
	for period := 1; period <= termMonths; period++ {
		interest := remaining * monthlyRate
		principalPart := payment - interest
		remaining -= principalPart
		if remaining < 0 {
			remaining = 0
		}

		entry := AmortizationEntry{
			Period:           period,
			Payment:          clampFinite(payment),
			Principal:        clampFinite(principalPart),
			Interest:         clampFinite(interest),
			RemainingBalance: clampFinite(remaining),
		}
		if !params.StartDate.IsZero() {
			entry.DueDate = AddMonths(params.StartDate, period)
		}
		schedule = append(schedule, entry)
	}

	total := payment * float64(termMonths)
	return LoanResult{
		MonthlyPayment: clampFinite(payment),
		TotalPayment:   clampFinite(total),
		TotalInterest:  clampFinite(total - principal),
		Schedule:       schedule,
	}
}

// annuityPayment возвращает платеж по формуле аннуитета;
// при нулевой ставке тело кредита делится поровну.
func annuityPayment(principal, periodRate float64, periods int) float64 {
	if periods < 1 {
		periods = 1
	}
	if periodRate == 0 {
		return principal / float64(periods)
	}

	factor := math.Pow(1+periodRate, float64(periods))
	return clampFinite(principal * periodRate * factor / (factor - 1))
}
