package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-planner/internal/models"
)

type GoalRepository struct {
	db *pgxpool.Pool
}

// NewGoalRepository создает репозиторий целей накопления.
func NewGoalRepository(db *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{db: db}
}

const goalColumns = `id, user_id, name, target_amount, current_amount, target_date, contribution_cadence, created_at, updated_at`

// Create создает цель накопления.
func (r *GoalRepository) Create(ctx context.Context, userID uuid.UUID, name string, targetAmount, currentAmount float64, targetDate time.Time, cadence string) (models.SavingsGoal, error) {
	var goal models.SavingsGoal

	err := r.db.QueryRow(ctx,
		`INSERT INTO savings_goals (user_id, name, target_amount, current_amount, target_date, contribution_cadence)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+goalColumns,
		userID, name, targetAmount, currentAmount, targetDate, cadence,
	).Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount, &goal.TargetDate, &goal.ContributionCadence, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return goal, err
	}

	return goal, nil
}

// ListByUser возвращает цели пользователя в порядке целевой даты.
func (r *GoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+goalColumns+`
		 FROM savings_goals
		 WHERE user_id = $1
		 ORDER BY target_date, created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]models.SavingsGoal, 0)
	for rows.Next() {
		var goal models.SavingsGoal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount, &goal.TargetDate, &goal.ContributionCadence, &goal.CreatedAt, &goal.UpdatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// GetByID возвращает цель пользователя по идентификатору.
func (r *GoalRepository) GetByID(ctx context.Context, userID, goalID uuid.UUID) (models.SavingsGoal, error) {
	var goal models.SavingsGoal

	err := r.db.QueryRow(ctx,
		`SELECT `+goalColumns+`
		 FROM savings_goals
		 WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	).Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount, &goal.TargetDate, &goal.ContributionCadence, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal, ErrNotFound
		}
		return goal, err
	}

	return goal, nil
}

// Update обновляет параметры цели.
func (r *GoalRepository) Update(ctx context.Context, userID, goalID uuid.UUID, name string, targetAmount, currentAmount float64, targetDate time.Time, cadence string) (models.SavingsGoal, error) {
	var goal models.SavingsGoal

	err := r.db.QueryRow(ctx,
		`UPDATE savings_goals
		 SET name = $3, target_amount = $4, current_amount = $5, target_date = $6, contribution_cadence = $7, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+goalColumns,
		goalID, userID, name, targetAmount, currentAmount, targetDate, cadence,
	).Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount, &goal.TargetDate, &goal.ContributionCadence, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal, ErrNotFound
		}
		return goal, err
	}

	return goal, nil
}

// Contribute увеличивает накопленную сумму цели.
func (r *GoalRepository) Contribute(ctx context.Context, userID, goalID uuid.UUID, amount float64) (models.SavingsGoal, error) {
	var goal models.SavingsGoal

	if amount <= 0 {
		return goal, ErrInvalid
	}

	err := r.db.QueryRow(ctx,
		`UPDATE savings_goals
		 SET current_amount = current_amount + $3, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+goalColumns,
		goalID, userID, amount,
	).Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount, &goal.TargetDate, &goal.ContributionCadence, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal, ErrNotFound
		}
		return goal, err
	}

	return goal, nil
}

// Count возвращает общее число целей в системе.
func (r *GoalRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM savings_goals`).Scan(&count)
	return count, err
}

// Delete удаляет цель пользователя.
func (r *GoalRepository) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM savings_goals WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
