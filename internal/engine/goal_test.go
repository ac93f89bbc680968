package engine

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func testGoal(target, current float64, monthsAhead int, cadence Cadence) SavingsGoal {
	return SavingsGoal{
		ID:                  uuid.New(),
		Name:                "test goal",
		TargetAmount:        target,
		CurrentAmount:       current,
		TargetDate:          AddMonths(testNow, monthsAhead),
		ContributionCadence: cadence,
	}
}

// TestEvaluateGoalOffTrack проверяет сценарий недостаточного взноса.
func TestEvaluateGoalOffTrack(t *testing.T) {
	goal := testGoal(10000, 3000, 12, CadenceMonthly)
	status := EvaluateGoal(goal, 500, testNow)

	if status.PeriodsRemaining != 12 {
		t.Fatalf("expected 12 periods, got %d", status.PeriodsRemaining)
	}
	if math.Abs(status.NeededContribution-583.33) > 0.01 {
		t.Fatalf("expected needed ~583.33, got %f", status.NeededContribution)
	}
	if status.IsAchievable {
		t.Fatal("expected goal to be unachievable at 500/month")
	}
	if status.Classification != GoalOffTrack {
		t.Fatalf("expected offTrack, got %s", status.Classification)
	}
}

// TestEvaluateGoalOnTrack проверяет достаточный взнос.
func TestEvaluateGoalOnTrack(t *testing.T) {
	goal := testGoal(10000, 3000, 12, CadenceMonthly)
	status := EvaluateGoal(goal, 600, testNow)

	if status.Classification != GoalOnTrack {
		t.Fatalf("expected onTrack, got %s", status.Classification)
	}
	if !status.IsAchievable {
		t.Fatal("expected achievable goal")
	}
}

// TestEvaluateGoalCompletedPrecedence проверяет приоритет завершенности над просрочкой.
func TestEvaluateGoalCompletedPrecedence(t *testing.T) {
	goal := testGoal(5000, 6000, -3, CadenceMonthly)
	status := EvaluateGoal(goal, 0, testNow)

	if status.Classification != GoalCompleted {
		t.Fatalf("expected completed despite past date, got %s", status.Classification)
	}
	if status.RemainingAmount != 0 {
		t.Fatalf("expected zero remaining, got %f", status.RemainingAmount)
	}
	if status.ProgressPercent != 100 {
		t.Fatalf("expected 100%% progress, got %f", status.ProgressPercent)
	}
	if !status.ExpectedCompletion.Equal(testNow) {
		t.Fatalf("expected immediate completion, got %s", status.ExpectedCompletion)
	}
}

// TestEvaluateGoalOverdue проверяет просроченную незавершенную цель.
func TestEvaluateGoalOverdue(t *testing.T) {
	goal := testGoal(5000, 1000, -2, CadenceMonthly)
	status := EvaluateGoal(goal, 100, testNow)

	if status.Classification != GoalOverdue {
		t.Fatalf("expected overdue, got %s", status.Classification)
	}
	if status.MonthsRemaining != 0 {
		t.Fatalf("expected clamped months remaining, got %d", status.MonthsRemaining)
	}
	if status.PeriodsRemaining != 1 {
		t.Fatalf("expected floor of 1 period, got %d", status.PeriodsRemaining)
	}
}

// TestEvaluateGoalClassificationExclusive проверяет, что классификация всегда одна из четырех.
func TestEvaluateGoalClassificationExclusive(t *testing.T) {
	goals := []SavingsGoal{
		testGoal(1000, 2000, 6, CadenceMonthly),
		testGoal(1000, 0, -1, CadenceMonthly),
		testGoal(1000, 0, 10, CadenceMonthly),
		testGoal(1000, 999, 1, CadenceQuarterly),
		testGoal(0, 0, 5, CadenceAnnually),
	}

	valid := map[GoalClassification]bool{
		GoalCompleted: true,
		GoalOverdue:   true,
		GoalOnTrack:   true,
		GoalOffTrack:  true,
	}

	for i, goal := range goals {
		status := EvaluateGoal(goal, 50, testNow)
		if !valid[status.Classification] {
			t.Fatalf("goal %d: unexpected classification %q", i, status.Classification)
		}
	}
}

// TestEvaluateGoalZeroContributionSentinel проверяет дату-страж при нулевом взносе.
func TestEvaluateGoalZeroContributionSentinel(t *testing.T) {
	goal := testGoal(10000, 1000, 12, CadenceMonthly)
	status := EvaluateGoal(goal, 0, testNow)

	if !status.ExpectedCompletion.Equal(farFutureDate) {
		t.Fatalf("expected sentinel date, got %s", status.ExpectedCompletion)
	}
}

// TestEvaluateGoalCompletionEstimate проверяет оценку даты завершения.
func TestEvaluateGoalCompletionEstimate(t *testing.T) {
	goal := testGoal(10000, 4000, 24, CadenceMonthly)
	status := EvaluateGoal(goal, 1000, testNow)

	// 6000 / 1000 = 6 месяцев.
	expected := AddMonths(testNow, 6)
	if !status.ExpectedCompletion.Equal(expected) {
		t.Fatalf("expected %s, got %s", expected, status.ExpectedCompletion)
	}
}

// TestEvaluateGoalCadencePeriods проверяет перевод срока в периоды каденции.
func TestEvaluateGoalCadencePeriods(t *testing.T) {
	quarterly := testGoal(9000, 0, 7, CadenceQuarterly)
	status := EvaluateGoal(quarterly, 0, testNow)
	if status.PeriodsRemaining != 3 {
		t.Fatalf("quarterly: expected ceil(7/3)=3, got %d", status.PeriodsRemaining)
	}

	annual := testGoal(9000, 0, 13, CadenceAnnually)
	status = EvaluateGoal(annual, 0, testNow)
	if status.PeriodsRemaining != 2 {
		t.Fatalf("annual: expected ceil(13/12)=2, got %d", status.PeriodsRemaining)
	}

	daily := testGoal(9000, 0, 1, CadenceDaily)
	status = EvaluateGoal(daily, 0, testNow)
	if status.PeriodsRemaining != 31 {
		t.Fatalf("daily: expected 31 days to mid-April, got %d", status.PeriodsRemaining)
	}
}

// TestProjectGoals проверяет 24-месячную проекцию и якорь нулевого месяца.
func TestProjectGoals(t *testing.T) {
	goals := []SavingsGoal{
		testGoal(5000, 1234.567, 24, CadenceMonthly),
		testGoal(1000, 900, 24, CadenceMonthly),
	}

	projections := ProjectGoals(goals, 200)
	if len(projections) != 2 {
		t.Fatalf("expected 2 projections, got %d", len(projections))
	}

	for i, projection := range projections {
		if len(projection.Amounts) != 25 {
			t.Fatalf("projection %d: expected 25 points, got %d", i, len(projection.Amounts))
		}
		if projection.Amounts[0] != goals[i].CurrentAmount {
			t.Fatalf("projection %d: month 0 must equal current amount, got %f", i, projection.Amounts[0])
		}
	}

	// Вторая цель выходит на потолок 1000 и не растет дальше.
	second := projections[1].Amounts
	if second[1] != 1000 || second[24] != 1000 {
		t.Fatalf("expected capped projection, got %f and %f", second[1], second[24])
	}
}

// TestSummarizeGoals проверяет агрегаты по списку целей.
func TestSummarizeGoals(t *testing.T) {
	goals := []SavingsGoal{
		testGoal(10000, 3000, 12, CadenceMonthly),
		testGoal(5000, 6000, 12, CadenceMonthly),
	}

	summary := SummarizeGoals(goals, 500, testNow)

	if summary.TotalSaved != 9000 {
		t.Fatalf("expected saved 9000, got %f", summary.TotalSaved)
	}
	if summary.TotalTarget != 15000 {
		t.Fatalf("expected target 15000, got %f", summary.TotalTarget)
	}

	// Завершенная цель не участвует в требуемом взносе.
	if math.Abs(summary.TotalMonthlyNeeded-583.33) > 0.01 {
		t.Fatalf("expected needed ~583.33, got %f", summary.TotalMonthlyNeeded)
	}
}
