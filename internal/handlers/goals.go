package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-planner/internal/auth"
	"example.com/finance-planner/internal/engine"
	"example.com/finance-planner/internal/metrics"
	"example.com/finance-planner/internal/models"
	"example.com/finance-planner/internal/notifications"
	"example.com/finance-planner/internal/repository"
)

type GoalHandler struct {
	Goals *repository.GoalRepository
	Hub   *notifications.Hub
}

// NewGoalHandler создает обработчик целей накопления.
func NewGoalHandler(goals *repository.GoalRepository, hub *notifications.Hub) *GoalHandler {
	return &GoalHandler{
		Goals: goals,
		Hub:   hub,
	}
}

type GoalRequest struct {
	Name                string  `json:"name" validate:"required,max=200"`
	TargetAmount        float64 `json:"target_amount" validate:"required,gt=0"`
	CurrentAmount       float64 `json:"current_amount" validate:"gte=0"`
	TargetDate          string  `json:"target_date" validate:"required"`
	ContributionCadence string  `json:"contribution_cadence" validate:"omitempty,cadence"`
}

type ContributeRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type GoalResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	TargetAmount        float64   `json:"target_amount"`
	CurrentAmount       float64   `json:"current_amount"`
	TargetDate          string    `json:"target_date"`
	ContributionCadence string    `json:"contribution_cadence"`
	ProgressPercent     float64   `json:"progress_percent"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type GoalsOverviewResponse struct {
	Summary engine.GoalsSummary `json:"summary"`
	Goals   []GoalWithStatus    `json:"goals"`
}

type GoalWithStatus struct {
	Goal   GoalResponse      `json:"goal"`
	Status engine.GoalStatus `json:"status"`
}

// Create создает цель накопления.
func (h *GoalHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	targetDate, err := time.Parse(dateLayout, req.TargetDate)
	if err != nil {
		return badRequest(c, "invalid target_date, expected YYYY-MM-DD")
	}

	cadence := string(engine.ParseCadence(req.ContributionCadence))

	goal, err := h.Goals.Create(c.Request().Context(), userID, req.Name, req.TargetAmount, req.CurrentAmount, targetDate, cadence)
	if err != nil {
		return serverError(c)
	}

	h.publish(userID, notifications.EventGoalCreated, goal)

	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// List возвращает цели пользователя.
func (h *GoalHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goals, err := h.Goals.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	responses := make([]GoalResponse, 0, len(goals))
	for _, goal := range goals {
		responses = append(responses, toGoalResponse(goal))
	}

	return c.JSON(http.StatusOK, responses)
}

// Get возвращает цель по идентификатору.
func (h *GoalHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid goal id")
	}

	goal, err := h.Goals.GetByID(c.Request().Context(), userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "goal not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// Update обновляет цель.
func (h *GoalHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid goal id")
	}

	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	targetDate, err := time.Parse(dateLayout, req.TargetDate)
	if err != nil {
		return badRequest(c, "invalid target_date, expected YYYY-MM-DD")
	}

	cadence := string(engine.ParseCadence(req.ContributionCadence))

	goal, err := h.Goals.Update(c.Request().Context(), userID, goalID, req.Name, req.TargetAmount, req.CurrentAmount, targetDate, cadence)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "goal not found")
		}
		return serverError(c)
	}

	h.publish(userID, notifications.EventGoalUpdated, goal)

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// Contribute увеличивает накопленную сумму цели.
func (h *GoalHandler) Contribute(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid goal id")
	}

	var req ContributeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	goal, err := h.Goals.Contribute(c.Request().Context(), userID, goalID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return notFound(c, "goal not found")
		case errors.Is(err, repository.ErrInvalid):
			return badRequest(c, "amount must be positive")
		default:
			return serverError(c)
		}
	}

	h.publish(userID, notifications.EventGoalContributed, goal)

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// Delete удаляет цель.
func (h *GoalHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid goal id")
	}

	goal, err := h.Goals.GetByID(c.Request().Context(), userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "goal not found")
		}
		return serverError(c)
	}

	if err := h.Goals.Delete(c.Request().Context(), userID, goalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "goal not found")
		}
		return serverError(c)
	}

	h.publish(userID, notifications.EventGoalDeleted, goal)

	return c.NoContent(http.StatusNoContent)
}

// Status возвращает рассчитанный статус цели при заданном месячном взносе.
func (h *GoalHandler) Status(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid goal id")
	}

	goal, err := h.Goals.GetByID(c.Request().Context(), userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "goal not found")
		}
		return serverError(c)
	}

	contribution := amountQuery(c, "monthly_contribution")
	status := engine.EvaluateGoal(toEngineGoal(goal), contribution, time.Now().UTC())
	metrics.GoalEvaluationsTotal.Inc()

	return c.JSON(http.StatusOK, status)
}

// Projection возвращает помесячную проекцию всех целей пользователя.
func (h *GoalHandler) Projection(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goals, err := h.Goals.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	engineGoals := make([]engine.SavingsGoal, 0, len(goals))
	for _, goal := range goals {
		engineGoals = append(engineGoals, toEngineGoal(goal))
	}

	contribution := amountQuery(c, "monthly_contribution")
	projections := engine.ProjectGoals(engineGoals, contribution)

	return c.JSON(http.StatusOK, projections)
}

// Overview возвращает сводку по целям и статус каждой из них.
func (h *GoalHandler) Overview(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	goals, err := h.Goals.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	contribution := amountQuery(c, "monthly_contribution")
	now := time.Now().UTC()

	engineGoals := make([]engine.SavingsGoal, 0, len(goals))
	withStatus := make([]GoalWithStatus, 0, len(goals))
	for _, goal := range goals {
		engineGoal := toEngineGoal(goal)
		engineGoals = append(engineGoals, engineGoal)
		withStatus = append(withStatus, GoalWithStatus{
			Goal:   toGoalResponse(goal),
			Status: engine.EvaluateGoal(engineGoal, contribution, now),
		})
		metrics.GoalEvaluationsTotal.Inc()
	}

	return c.JSON(http.StatusOK, GoalsOverviewResponse{
		Summary: engine.SummarizeGoals(engineGoals, contribution, now),
		Goals:   withStatus,
	})
}

func (h *GoalHandler) publish(userID uuid.UUID, eventType string, goal models.SavingsGoal) {
	h.Hub.Publish(userID, notifications.Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data: notifications.GoalEventData{
			GoalID:          goal.ID,
			Name:            goal.Name,
			CurrentAmount:   goal.CurrentAmount,
			TargetAmount:    goal.TargetAmount,
			ProgressPercent: goalProgress(goal),
		},
	})
}

func toGoalResponse(goal models.SavingsGoal) GoalResponse {
	return GoalResponse{
		ID:                  goal.ID,
		Name:                goal.Name,
		TargetAmount:        goal.TargetAmount,
		CurrentAmount:       goal.CurrentAmount,
		TargetDate:          goal.TargetDate.Format(dateLayout),
		ContributionCadence: goal.ContributionCadence,
		ProgressPercent:     goalProgress(goal),
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}

func toEngineGoal(goal models.SavingsGoal) engine.SavingsGoal {
	return engine.SavingsGoal{
		ID:                  goal.ID,
		Name:                goal.Name,
		TargetAmount:        goal.TargetAmount,
		CurrentAmount:       goal.CurrentAmount,
		TargetDate:          goal.TargetDate,
		ContributionCadence: engine.ParseCadence(goal.ContributionCadence),
	}
}

func goalProgress(goal models.SavingsGoal) float64 {
	if goal.TargetAmount <= 0 {
		return 0
	}
	return engine.Round2(goal.CurrentAmount / goal.TargetAmount * 100)
}

func amountQuery(c echo.Context, name string) float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0
	}

	return value
}
