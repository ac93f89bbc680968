package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-planner/internal/auth"
	"example.com/finance-planner/internal/cache"
	"example.com/finance-planner/internal/engine"
	"example.com/finance-planner/internal/metrics"
	"example.com/finance-planner/internal/models"
	"example.com/finance-planner/internal/repository"
)

// Формат дат в телах запросов калькуляторов.
const dateLayout = "2006-01-02"

type CalculatorHandler struct {
	Calculations *repository.CalculationRepository
	Cache        *cache.InputCache
}

// NewCalculatorHandler создает обработчик финансовых калькуляторов.
func NewCalculatorHandler(calculations *repository.CalculationRepository, inputCache *cache.InputCache) *CalculatorHandler {
	return &CalculatorHandler{
		Calculations: calculations,
		Cache:        inputCache,
	}
}

type MortgageRequest struct {
	HomePrice           float64 `json:"home_price" validate:"required,gte=0"`
	DownPaymentAmount   float64 `json:"down_payment_amount" validate:"gte=0"`
	DownPaymentPercent  float64 `json:"down_payment_percent" validate:"gte=0,lte=100"`
	DownPaymentChanged  string  `json:"down_payment_changed" validate:"omitempty,oneof=amount percent"`
	AnnualRatePercent   float64 `json:"annual_rate_percent" validate:"gte=0,lte=100"`
	TermMonths          int     `json:"term_months" validate:"required,gte=1,lte=600"`
	PropertyTaxAnnual   float64 `json:"property_tax_annual" validate:"gte=0"`
	HomeInsuranceAnnual float64 `json:"home_insurance_annual" validate:"gte=0"`
	PMIPercent          float64 `json:"pmi_percent" validate:"gte=0,lte=100"`
}

type MortgageResponse struct {
	DownPaymentAmount  float64               `json:"down_payment_amount"`
	DownPaymentPercent float64               `json:"down_payment_percent"`
	Result             engine.MortgageResult `json:"result"`
}

type LoanRequest struct {
	Principal         float64 `json:"principal" validate:"required,gte=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"gte=0,lte=100"`
	TermMonths        int     `json:"term_months" validate:"required,gte=1,lte=600"`
	StartDate         string  `json:"start_date" validate:"omitempty"`
}

type InvestmentRequest struct {
	InitialPrincipal      float64 `json:"initial_principal" validate:"gte=0"`
	RecurringContribution float64 `json:"recurring_contribution" validate:"gte=0"`
	ContributionCadence   string  `json:"contribution_cadence" validate:"omitempty,cadence"`
	AnnualRatePercent     float64 `json:"annual_rate_percent" validate:"gte=0,lte=100"`
	CompoundingCadence    string  `json:"compounding_cadence" validate:"omitempty,cadence"`
	TermYears             int     `json:"term_years" validate:"required,gte=1,lte=100"`
}

type RetirementRequest struct {
	CurrentAge           int     `json:"current_age" validate:"required,gte=1,lte=120"`
	RetirementAge        int     `json:"retirement_age" validate:"required,gte=1,lte=120,gtfield=CurrentAge"`
	CurrentSavings       float64 `json:"current_savings" validate:"gte=0"`
	MonthlyContribution  float64 `json:"monthly_contribution" validate:"gte=0"`
	AnnualReturnPercent  float64 `json:"annual_return_percent" validate:"gte=0,lte=100"`
	InflationRatePercent float64 `json:"inflation_rate_percent" validate:"gte=0,lte=100"`
	DesiredMonthlyIncome float64 `json:"desired_monthly_income" validate:"gte=0"`
}

type SalaryRequest struct {
	GrossPay       float64 `json:"gross_pay" validate:"required,gte=0"`
	Period         string  `json:"period" validate:"omitempty,oneof=monthly annually"`
	TaxRatePercent float64 `json:"tax_rate_percent" validate:"gte=0,lte=100"`
	Deductions     float64 `json:"deductions" validate:"gte=0"`
	Bonuses        float64 `json:"bonuses" validate:"gte=0"`
}

type CalculationInputResponse struct {
	Calculator string          `json:"calculator"`
	Parameters json.RawMessage `json:"parameters"`
}

type StoredInputResponse struct {
	Calculator string          `json:"calculator"`
	Parameters json.RawMessage `json:"parameters"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Mortgage рассчитывает ипотечный платеж и годовой график погашения.
func (h *CalculatorHandler) Mortgage(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req MortgageRequest
	if err := bindCalculatorRequest(c, models.CalculatorMortgage, &req); err != nil {
		return err
	}

	params := engine.NormalizeDownPayment(engine.MortgageParameters{
		HomePrice:           req.HomePrice,
		DownPaymentAmount:   req.DownPaymentAmount,
		DownPaymentPercent:  req.DownPaymentPercent,
		AnnualRatePercent:   req.AnnualRatePercent,
		TermMonths:          req.TermMonths,
		PropertyTaxAnnual:   req.PropertyTaxAnnual,
		HomeInsuranceAnnual: req.HomeInsuranceAnnual,
		PMIPercent:          req.PMIPercent,
	}, engine.DownPaymentField(req.DownPaymentChanged))

	result := engine.CalculateMortgage(params)

	// Сохраняем нормализованные значения взноса, чтобы при загрузке
	// оба поля были согласованы.
	req.DownPaymentAmount = params.DownPaymentAmount
	req.DownPaymentPercent = params.DownPaymentPercent

	if err := h.storeInput(c.Request().Context(), userID, models.CalculatorMortgage, req); err != nil {
		metrics.ObserveCalculation(string(models.CalculatorMortgage), "error")
		return serverError(c)
	}

	metrics.ObserveCalculation(string(models.CalculatorMortgage), "ok")
	return c.JSON(http.StatusOK, MortgageResponse{
		DownPaymentAmount:  params.DownPaymentAmount,
		DownPaymentPercent: params.DownPaymentPercent,
		Result:             result,
	})
}

// Loan строит аннуитетный график платежей по кредиту.
func (h *CalculatorHandler) Loan(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req LoanRequest
	if err := bindCalculatorRequest(c, models.CalculatorLoan, &req); err != nil {
		return err
	}

	var startDate time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			metrics.ObserveCalculation(string(models.CalculatorLoan), "error")
			return badRequest(c, "invalid start_date, expected YYYY-MM-DD")
		}
		startDate = parsed
	}

	result := engine.CalculateLoan(engine.LoanParameters{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TermMonths:        req.TermMonths,
		StartDate:         startDate,
	})

	if err := h.storeInput(c.Request().Context(), userID, models.CalculatorLoan, req); err != nil {
		metrics.ObserveCalculation(string(models.CalculatorLoan), "error")
		return serverError(c)
	}

	metrics.ObserveCalculation(string(models.CalculatorLoan), "ok")
	return c.JSON(http.StatusOK, result)
}

// Investment проецирует рост вложений со сложным процентом.
func (h *CalculatorHandler) Investment(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req InvestmentRequest
	if err := bindCalculatorRequest(c, models.CalculatorInvestment, &req); err != nil {
		return err
	}

	result := engine.CalculateGrowth(engine.GrowthParameters{
		InitialPrincipal:      req.InitialPrincipal,
		RecurringContribution: req.RecurringContribution,
		ContributionCadence:   engine.ParseCadence(req.ContributionCadence),
		AnnualRatePercent:     req.AnnualRatePercent,
		CompoundingCadence:    engine.ParseCadence(req.CompoundingCadence),
		TermYears:             req.TermYears,
	})

	if err := h.storeInput(c.Request().Context(), userID, models.CalculatorInvestment, req); err != nil {
		metrics.ObserveCalculation(string(models.CalculatorInvestment), "error")
		return serverError(c)
	}

	metrics.ObserveCalculation(string(models.CalculatorInvestment), "ok")
	return c.JSON(http.StatusOK, result)
}

// Retirement оценивает накопления к пенсии и достаточность дохода.
func (h *CalculatorHandler) Retirement(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req RetirementRequest
	if err := bindCalculatorRequest(c, models.CalculatorRetirement, &req); err != nil {
		return err
	}

	result := engine.CalculateRetirement(engine.RetirementParameters{
		CurrentAge:           req.CurrentAge,
		RetirementAge:        req.RetirementAge,
		CurrentSavings:       req.CurrentSavings,
		MonthlyContribution:  req.MonthlyContribution,
		AnnualReturnPercent:  req.AnnualReturnPercent,
		InflationRatePercent: req.InflationRatePercent,
		DesiredMonthlyIncome: req.DesiredMonthlyIncome,
	})

	if err := h.storeInput(c.Request().Context(), userID, models.CalculatorRetirement, req); err != nil {
		metrics.ObserveCalculation(string(models.CalculatorRetirement), "error")
		return serverError(c)
	}

	metrics.ObserveCalculation(string(models.CalculatorRetirement), "ok")
	return c.JSON(http.StatusOK, result)
}

// Salary раскладывает зарплату на чистые выплаты по частотам.
func (h *CalculatorHandler) Salary(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req SalaryRequest
	if err := bindCalculatorRequest(c, models.CalculatorSalary, &req); err != nil {
		return err
	}

	period := engine.CadenceAnnually
	if req.Period == "monthly" {
		period = engine.CadenceMonthly
	}

	result := engine.CalculateSalary(engine.SalaryParameters{
		GrossPay:       req.GrossPay,
		TaxRatePercent: req.TaxRatePercent,
		Deductions:     req.Deductions,
		Bonuses:        req.Bonuses,
		Period:         period,
	})

	if err := h.storeInput(c.Request().Context(), userID, models.CalculatorSalary, req); err != nil {
		metrics.ObserveCalculation(string(models.CalculatorSalary), "error")
		return serverError(c)
	}

	metrics.ObserveCalculation(string(models.CalculatorSalary), "ok")
	return c.JSON(http.StatusOK, result)
}

// LastInput возвращает последние сохраненные параметры калькулятора.
// Сначала проверяется кэш, при промахе параметры читаются из базы и
// прогреваются обратно в кэш.
func (h *CalculatorHandler) LastInput(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	kind := models.CalculatorKind(c.Param("calculator"))
	if !models.KnownCalculator(kind) {
		return badRequest(c, "unknown calculator")
	}

	ctx := c.Request().Context()

	if cached, hit := h.Cache.Get(ctx, userID, kind); hit {
		metrics.ObserveCacheLookup(true)
		return c.JSON(http.StatusOK, CalculationInputResponse{
			Calculator: string(kind),
			Parameters: cached,
		})
	}
	metrics.ObserveCacheLookup(false)

	input, err := h.Calculations.Get(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "no saved input")
		}
		return serverError(c)
	}

	_ = h.Cache.Set(ctx, userID, kind, input.Parameters)

	return c.JSON(http.StatusOK, CalculationInputResponse{
		Calculator: string(kind),
		Parameters: input.Parameters,
	})
}

// ListInputs возвращает сохраненные параметры всех калькуляторов пользователя.
func (h *CalculatorHandler) ListInputs(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	inputs, err := h.Calculations.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	responses := make([]StoredInputResponse, 0, len(inputs))
	for _, input := range inputs {
		responses = append(responses, StoredInputResponse{
			Calculator: string(input.Kind),
			Parameters: input.Parameters,
			UpdatedAt:  input.UpdatedAt,
		})
	}

	return c.JSON(http.StatusOK, responses)
}

func (h *CalculatorHandler) storeInput(ctx context.Context, userID uuid.UUID, kind models.CalculatorKind, request any) error {
	raw, err := json.Marshal(request)
	if err != nil {
		return err
	}

	if _, err := h.Calculations.Save(ctx, userID, kind, raw); err != nil {
		return err
	}

	_ = h.Cache.Set(ctx, userID, kind, raw)
	return nil
}

func bindCalculatorRequest(c echo.Context, kind models.CalculatorKind, req any) error {
	if err := c.Bind(req); err != nil {
		metrics.ObserveCalculation(string(kind), "error")
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		metrics.ObserveCalculation(string(kind), "error")
		return badRequest(c, "validation failed")
	}
	return nil
}
