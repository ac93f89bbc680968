package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/finance-planner/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	calculatorHandler *handlers.CalculatorHandler,
	goalHandler *handlers.GoalHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
	authMiddleware echo.MiddlewareFunc,
	adminMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	calcRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	calculators := api.Group("/calculators", authMiddleware, calcRateLimiter)
	calculators.POST("/mortgage", calculatorHandler.Mortgage)
	calculators.POST("/loan", calculatorHandler.Loan)
	calculators.POST("/investment", calculatorHandler.Investment)
	calculators.POST("/retirement", calculatorHandler.Retirement)
	calculators.POST("/salary", calculatorHandler.Salary)
	calculators.GET("/inputs", calculatorHandler.ListInputs)
	calculators.GET("/:calculator/input", calculatorHandler.LastInput)

	goals := api.Group("/goals", authMiddleware)
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.GET("/projection", goalHandler.Projection)
	goals.GET("/overview", goalHandler.Overview)
	goals.GET("/:id", goalHandler.Get)
	goals.PUT("/:id", goalHandler.Update)
	goals.DELETE("/:id", goalHandler.Delete)
	goals.POST("/:id/contribute", goalHandler.Contribute)
	goals.GET("/:id/status", goalHandler.Status)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)

	admin := api.Group("/admin", authMiddleware, adminMiddleware)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/usage", adminHandler.Usage)
}
