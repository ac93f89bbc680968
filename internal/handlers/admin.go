package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-planner/internal/auth"
	"example.com/finance-planner/internal/repository"
)

// Формат меток времени в ответах админки.
const timeLayout = time.RFC3339

type AdminHandler struct {
	Users        *repository.UserRepository
	Goals        *repository.GoalRepository
	Calculations *repository.CalculationRepository
}

// NewAdminHandler создает обработчик админских эндпоинтов.
func NewAdminHandler(users *repository.UserRepository, goals *repository.GoalRepository, calculations *repository.CalculationRepository) *AdminHandler {
	return &AdminHandler{
		Users:        users,
		Goals:        goals,
		Calculations: calculations,
	}
}

type AdminUserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

type AdminUsersResponse struct {
	Total int                 `json:"total"`
	Users []AdminUserResponse `json:"users"`
}

type AdminUsageResponse struct {
	Users             int            `json:"users"`
	Goals             int            `json:"goals"`
	CalculatorsByKind map[string]int `json:"calculators_by_kind"`
	SavedInputsTotal  int            `json:"saved_inputs_total"`
}

// ListUsers возвращает список пользователей для админки.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	limit, offset, err := parsePagination(c, 50, 200)
	if err != nil {
		return badRequest(c, err.Error())
	}

	users, err := h.Users.List(c.Request().Context(), limit, offset)
	if err != nil {
		return serverError(c)
	}

	total, err := h.Users.Count(c.Request().Context())
	if err != nil {
		return serverError(c)
	}

	response := make([]AdminUserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, AdminUserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: user.CreatedAt.Format(timeLayout),
			UpdatedAt: user.UpdatedAt.Format(timeLayout),
		})
	}

	return c.JSON(http.StatusOK, AdminUsersResponse{
		Total: total,
		Users: response,
	})
}

// Usage возвращает агрегированную статистику использования.
func (h *AdminHandler) Usage(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.Users.Count(ctx)
	if err != nil {
		return serverError(c)
	}

	goals, err := h.Goals.Count(ctx)
	if err != nil {
		return serverError(c)
	}

	byKind, err := h.Calculations.CountByKind(ctx)
	if err != nil {
		return serverError(c)
	}

	calculators := make(map[string]int, len(byKind))
	savedTotal := 0
	for kind, count := range byKind {
		calculators[string(kind)] = count
		savedTotal += count
	}

	return c.JSON(http.StatusOK, AdminUsageResponse{
		Users:             users,
		Goals:             goals,
		CalculatorsByKind: calculators,
		SavedInputsTotal:  savedTotal,
	})
}

// AdminMiddleware ограничивает доступ к админским роутам по email.
func AdminMiddleware(users *repository.UserRepository, emails []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		trimmed := strings.ToLower(strings.TrimSpace(email))
		if trimmed == "" {
			continue
		}
		allowed[trimmed] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := auth.UserIDFromContext(c)
			if !ok {
				return unauthorized(c)
			}

			if len(allowed) == 0 {
				return forbidden(c)
			}

			user, err := users.GetByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return forbidden(c)
				}
				return serverError(c)
			}

			email := strings.ToLower(strings.TrimSpace(user.Email))
			if _, ok := allowed[email]; !ok {
				return forbidden(c)
			}

			return next(c)
		}
	}
}

func parsePagination(c echo.Context, defaultLimit, maxLimit int) (int, int, error) {
	limit := defaultLimit
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return 0, 0, errors.New("invalid limit")
		}
		if parsed > maxLimit {
			parsed = maxLimit
		}
		limit = parsed
	}

	offset := 0
	if raw := strings.TrimSpace(c.QueryParam("offset")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return 0, 0, errors.New("invalid offset")
		}
		offset = parsed
	}

	return limit, offset, nil
}
