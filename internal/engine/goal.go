package engine

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type SavingsGoal struct {
	ID                  uuid.UUID
	Name                string
	TargetAmount        float64
	CurrentAmount       float64
	TargetDate          time.Time
	ContributionCadence Cadence
}

type GoalClassification string

const (
	GoalCompleted GoalClassification = "completed"
	GoalOnTrack   GoalClassification = "onTrack"
	GoalOffTrack  GoalClassification = "offTrack"
	GoalOverdue   GoalClassification = "overdue"
)

// Горизонт многоцелевой проекции в месяцах.
const projectionMonths = 24

// Дата-страж для недостижимых целей без взносов.
var farFutureDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

type GoalStatus struct {
	GoalID             uuid.UUID          `json:"goal_id"`
	MonthsRemaining    int                `json:"months_remaining"`
	PeriodsRemaining   int                `json:"periods_remaining"`
	RemainingAmount    float64            `json:"remaining_amount"`
	NeededContribution float64            `json:"needed_contribution"`
	NeededMonthly      float64            `json:"needed_monthly"`
	IsAchievable       bool               `json:"is_achievable"`
	ProgressPercent    float64            `json:"progress_percent"`
	ExpectedCompletion time.Time          `json:"expected_completion"`
	Classification     GoalClassification `json:"classification"`
}

type GoalProjection struct {
	GoalID uuid.UUID `json:"goal_id"`
	Name   string    `json:"name"`
	// Индекс соответствует месяцу от 0 до projectionMonths включительно.
	Amounts []float64 `json:"amounts"`
}

type GoalsSummary struct {
	TotalSaved         float64 `json:"total_saved"`
	TotalTarget        float64 `json:"total_target"`
	TotalMonthlyNeeded float64 `json:"total_monthly_needed"`
}

// EvaluateGoal вычисляет статус цели накопления на момент now при заданном
// месячном взносе пользователя.
func EvaluateGoal(goal SavingsGoal, monthlyContribution float64, now time.Time) GoalStatus {
	target := sanitizeAmount(goal.TargetAmount)
	current := sanitizeAmount(goal.CurrentAmount)
	contribution := sanitizeAmount(monthlyContribution)

	monthsRemaining := MonthsBetween(now, goal.TargetDate)
	displayMonths := monthsRemaining
	if displayMonths < 0 {
		displayMonths = 0
	}

	periods := periodsRemaining(goal.ContributionCadence, goal.TargetDate, monthsRemaining, now)

	remaining := target - current
	if remaining < 0 {
		remaining = 0
	}

	needed := remaining / float64(periods)
	neededMonthly := ToMonthly(needed, goal.ContributionCadence)

	var progress float64
	if target > 0 {
		progress = current / target * 100
		if progress > 100 {
			progress = 100
		}
	}

	// Завершенность всегда имеет приоритет над просрочкой.
	var classification GoalClassification
	datePassed := goal.TargetDate.Before(now)
	switch {
	case remaining <= 0:
		classification = GoalCompleted
	case datePassed:
		classification = GoalOverdue
	case contribution >= neededMonthly:
		classification = GoalOnTrack
	default:
		classification = GoalOffTrack
	}

	var completion time.Time
	switch {
	case remaining <= 0:
		completion = now
	case contribution > 0:
		completion = AddMonths(now, int(math.Ceil(remaining/contribution)))
	default:
		completion = farFutureDate
	}

	return GoalStatus{
		GoalID:             goal.ID,
		MonthsRemaining:    displayMonths,
		PeriodsRemaining:   periods,
		RemainingAmount:    remaining,
		NeededContribution: needed,
		NeededMonthly:      neededMonthly,
		IsAchievable:       remaining <= 0 || contribution >= neededMonthly,
		ProgressPercent:    Round2(progress),
		ExpectedCompletion: completion,
		Classification:     classification,
	}
}

// ProjectGoals строит проекцию по всем целям на 24 месяца вперед при едином
// месячном взносе; нулевой месяц всегда равен текущей сумме цели.
func ProjectGoals(goals []SavingsGoal, monthlyContribution float64) []GoalProjection {
	contribution := sanitizeAmount(monthlyContribution)

	projections := make([]GoalProjection, 0, len(goals))
	for _, goal := range goals {
		target := sanitizeAmount(goal.TargetAmount)
		current := sanitizeAmount(goal.CurrentAmount)

		amounts := make([]float64, 0, projectionMonths+1)
		amounts = append(amounts, current)
		for month := 1; month <= projectionMonths; month++ {
			projected := current + contribution*float64(month)
			if projected > target {
				projected = target
			}
			amounts = append(amounts, projected)
		}

		projections = append(projections, GoalProjection{
			GoalID:  goal.ID,
			Name:    goal.Name,
			Amounts: amounts,
		})
	}

	return projections
}

// SummarizeGoals агрегирует сбережения, цели и требуемый месячный взнос
// по всем незавершенным целям.
func SummarizeGoals(goals []SavingsGoal, monthlyContribution float64, now time.Time) GoalsSummary {
	var summary GoalsSummary
	for _, goal := range goals {
		status := EvaluateGoal(goal, monthlyContribution, now)
		summary.TotalSaved += sanitizeAmount(goal.CurrentAmount)
		summary.TotalTarget += sanitizeAmount(goal.TargetAmount)
		if status.Classification != GoalCompleted {
			summary.TotalMonthlyNeeded += status.NeededMonthly
		}
	}

	summary.TotalSaved = Round2(summary.TotalSaved)
	summary.TotalTarget = Round2(summary.TotalTarget)
	summary.TotalMonthlyNeeded = Round2(summary.TotalMonthlyNeeded)
	return summary
}

// periodsRemaining переводит остаток срока в периоды каденции цели; не меньше одного,
// чтобы деление на число периодов всегда было определено.
func periodsRemaining(cadence Cadence, targetDate time.Time, monthsRemaining int, now time.Time) int {
	var periods int
	switch cadence {
	case CadenceDaily:
		periods = int(math.Ceil(targetDate.Sub(now).Hours() / 24))
	case CadenceQuarterly:
		periods = ceilDiv(monthsRemaining, 3)
	case CadenceAnnually:
		periods = ceilDiv(monthsRemaining, 12)
	default:
		periods = monthsRemaining
	}

	if periods < 1 {
		periods = 1
	}
	return periods
}
