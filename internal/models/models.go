package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CalculatorKind string

const (
	CalculatorMortgage   CalculatorKind = "mortgage"
	CalculatorLoan       CalculatorKind = "loan"
	CalculatorInvestment CalculatorKind = "investment"
	CalculatorRetirement CalculatorKind = "retirement"
	CalculatorSalary     CalculatorKind = "salary"
)

// KnownCalculator сообщает, входит ли вид калькулятора в поддерживаемый набор.
func KnownCalculator(kind CalculatorKind) bool {
	switch kind {
	case CalculatorMortgage, CalculatorLoan, CalculatorInvestment, CalculatorRetirement, CalculatorSalary:
		return true
	default:
		return false
	}
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}

type SavingsGoal struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	Name                string    `json:"name"`
	TargetAmount        float64   `json:"target_amount"`
	CurrentAmount       float64   `json:"current_amount"`
	TargetDate          time.Time `json:"target_date"`
	ContributionCadence string    `json:"contribution_cadence"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CalculationInput — последние сохраненные параметры калькулятора пользователя.
// Хранятся только входные данные; результаты всегда пересчитываются заново.
type CalculationInput struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Kind       CalculatorKind  `json:"kind"`
	Parameters json.RawMessage `json:"parameters"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
