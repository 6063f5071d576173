// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/financeflow/backend/internal/integration/entrypoint/controller"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	transactionController *controller.TransactionController
	payrollController     *controller.PayrollController
	reportController      *controller.ReportController
	exportController      *controller.ExportController
	advisoryController    *controller.AdvisoryController
	settingsController    *controller.SettingsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	transactionController *controller.TransactionController,
	payrollController *controller.PayrollController,
	reportController *controller.ReportController,
	exportController *controller.ExportController,
	advisoryController *controller.AdvisoryController,
	settingsController *controller.SettingsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		transactionController: transactionController,
		payrollController:     payrollController,
		reportController:      reportController,
		exportController:      exportController,
		advisoryController:    advisoryController,
		settingsController:    settingsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route except login is
// behind authentication; reads are open to all three roles, and the use cases
// enforce the Editor/Admin gates on mutations.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
		}

		users := v1.Group("/users")
		users.Use(r.authMiddleware.Authenticate())
		{
			users.GET("", r.userController.List)
			users.PUT("/:id", r.userController.UpdateProfile)
		}

		transactions := v1.Group("/transactions")
		transactions.Use(r.authMiddleware.Authenticate())
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.POST("/recurrence/run", r.transactionController.RunRecurrence)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
			transactions.POST("/:id/comments", r.transactionController.AddComment)
		}

		payroll := v1.Group("/payroll")
		payroll.Use(r.authMiddleware.Authenticate())
		{
			payroll.GET("", r.payrollController.List)
			payroll.POST("", r.payrollController.Create)
			payroll.GET("/summary", r.payrollController.Summary)
			payroll.PUT("/:id", r.payrollController.Update)
			payroll.DELETE("/:id", r.payrollController.Delete)
			payroll.POST("/:id/payslip/email", r.payrollController.EmailPayslip)
		}

		reports := v1.Group("/reports")
		reports.Use(r.authMiddleware.Authenticate())
		{
			reports.GET("/summary", r.reportController.Summary)
			reports.GET("/profit-loss", r.reportController.ProfitLoss)
		}

		exports := v1.Group("/exports")
		exports.Use(r.authMiddleware.Authenticate())
		{
			exports.GET("/cashflow.csv", r.exportController.Cashflow)
			exports.GET("/payroll.csv", r.exportController.Payroll)
			exports.GET("/profit-loss.csv", r.exportController.ProfitLoss)
		}

		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.settingsController.ListCategories)
		}

		settings := v1.Group("/settings")
		settings.Use(r.authMiddleware.Authenticate())
		{
			settings.GET("/foundation", r.settingsController.GetFoundationProfile)
			settings.PUT("/foundation", r.settingsController.UpdateFoundationProfile)
		}

		advisory := v1.Group("/advisory")
		advisory.Use(r.authMiddleware.Authenticate())
		{
			advisory.POST("", r.advisoryController.GetAdvice)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
