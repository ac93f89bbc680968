package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-planner/internal/models"
)

type CalculationRepository struct {
	db *pgxpool.Pool
}

// NewCalculationRepository создает репозиторий сохраненных параметров калькуляторов.
func NewCalculationRepository(db *pgxpool.Pool) *CalculationRepository {
	return &CalculationRepository{db: db}
}

// Save сохраняет параметры калькулятора, перезаписывая предыдущие для той же пары
// пользователь/калькулятор. Результаты расчетов никогда не сохраняются.
func (r *CalculationRepository) Save(ctx context.Context, userID uuid.UUID, kind models.CalculatorKind, parameters json.RawMessage) (models.CalculationInput, error) {
	var input models.CalculationInput

	if !models.KnownCalculator(kind) {
		return input, ErrInvalid
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO calculation_inputs (user_id, kind, parameters)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, kind)
		 DO UPDATE SET parameters = EXCLUDED.parameters, updated_at = NOW()
		 RETURNING id, user_id, kind, parameters, created_at, updated_at`,
		userID, kind, parameters,
	).Scan(&input.ID, &input.UserID, &input.Kind, &input.Parameters, &input.CreatedAt, &input.UpdatedAt)
	if err != nil {
		return input, err
	}

	return input, nil
}

// Get возвращает последние сохраненные параметры калькулятора пользователя.
func (r *CalculationRepository) Get(ctx context.Context, userID uuid.UUID, kind models.CalculatorKind) (models.CalculationInput, error) {
	var input models.CalculationInput

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, kind, parameters, created_at, updated_at
		 FROM calculation_inputs
		 WHERE user_id = $1 AND kind = $2`,
		userID, kind,
	).Scan(&input.ID, &input.UserID, &input.Kind, &input.Parameters, &input.CreatedAt, &input.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return input, ErrNotFound
		}
		return input, err
	}

	return input, nil
}

// ListByUser возвращает все сохраненные параметры пользователя.
func (r *CalculationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CalculationInput, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, kind, parameters, created_at, updated_at
		 FROM calculation_inputs
		 WHERE user_id = $1
		 ORDER BY kind`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inputs := make([]models.CalculationInput, 0)
	for rows.Next() {
		var input models.CalculationInput
		if err := rows.Scan(&input.ID, &input.UserID, &input.Kind, &input.Parameters, &input.CreatedAt, &input.UpdatedAt); err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}

	return inputs, rows.Err()
}

// CountByKind возвращает количество сохраненных записей по видам калькуляторов.
func (r *CalculationRepository) CountByKind(ctx context.Context) (map[models.CalculatorKind]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT kind, COUNT(*)
		 FROM calculation_inputs
		 GROUP BY kind`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.CalculatorKind]int)
	for rows.Next() {
		var kind models.CalculatorKind
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		counts[kind] = count
	}

	return counts, rows.Err()
}
