// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/financeflow/backend/config"
	"github.com/financeflow/backend/internal/application/usecase/advisory"
	"github.com/financeflow/backend/internal/application/usecase/auth"
	"github.com/financeflow/backend/internal/application/usecase/category"
	"github.com/financeflow/backend/internal/application/usecase/export"
	"github.com/financeflow/backend/internal/application/usecase/payroll"
	"github.com/financeflow/backend/internal/application/usecase/recurrence"
	"github.com/financeflow/backend/internal/application/usecase/report"
	"github.com/financeflow/backend/internal/application/usecase/settings"
	"github.com/financeflow/backend/internal/application/usecase/transaction"
	"github.com/financeflow/backend/internal/application/usecase/user"
	"github.com/financeflow/backend/internal/infra/server/router"
	"github.com/financeflow/backend/internal/integration/adapters"
	"github.com/financeflow/backend/internal/integration/cache"
	"github.com/financeflow/backend/internal/integration/email"
	"github.com/financeflow/backend/internal/integration/entrypoint/controller"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
	"github.com/financeflow/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	Materialize *recurrence.MaterializeUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *slog.Logger) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	payrollRepo := persistence.NewPayrollRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Adapters/services
	revocationStore := cache.NewRevocationStore(redisClient)
	advisoryCache := cache.NewAdvisoryCache(redisClient)
	credentialVerifier := adapters.NewSharedPasswordVerifier(userRepo, cfg.Auth.DemoPassword)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry, revocationStore)
	advisorService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	emailSender := email.NewResendSender(
		cfg.Email.ResendAPIKey,
		fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromEmail),
	)

	// Auth use cases
	loginUseCase := auth.NewLoginUserUseCase(credentialVerifier, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// User use cases
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	addCommentUseCase := transaction.NewAddCommentUseCase(transactionRepo)
	materializeUseCase := recurrence.NewMaterializeUseCase(transactionRepo, logger)

	// Payroll use cases
	listPayrollUseCase := payroll.NewListPayrollEntriesUseCase(payrollRepo)
	createPayrollUseCase := payroll.NewCreatePayrollEntryUseCase(payrollRepo)
	updatePayrollUseCase := payroll.NewUpdatePayrollEntryUseCase(payrollRepo)
	deletePayrollUseCase := payroll.NewDeletePayrollEntryUseCase(payrollRepo)
	payrollSummaryUseCase := payroll.NewGetPayrollSummaryUseCase(payrollRepo)
	emailPayslipUseCase := payroll.NewEmailPayslipUseCase(payrollRepo, settingsRepo, emailSender)

	// Report and export use cases
	summaryUseCase := report.NewGetSummaryUseCase(transactionRepo)
	profitLossUseCase := report.NewGetProfitLossUseCase(transactionRepo)
	exportCashflowUseCase := export.NewExportCashflowUseCase(transactionRepo, settingsRepo)
	exportPayrollUseCase := export.NewExportPayrollUseCase(payrollRepo, settingsRepo)
	exportProfitLossUseCase := export.NewExportProfitLossUseCase(transactionRepo, settingsRepo)

	// Settings, categories and advisory
	getFoundationProfileUseCase := settings.NewGetFoundationProfileUseCase(settingsRepo)
	updateFoundationProfileUseCase := settings.NewUpdateFoundationProfileUseCase(settingsRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase()
	getAdviceUseCase := advisory.NewGetAdviceUseCase(transactionRepo, advisorService, advisoryCache, logger)

	// Controllers
	healthController := controller.NewHealthController()
	authController := controller.NewAuthController(loginUseCase, logoutUseCase)
	userController := controller.NewUserController(listUsersUseCase, updateProfileUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		addCommentUseCase,
		materializeUseCase,
	)
	payrollController := controller.NewPayrollController(
		listPayrollUseCase,
		createPayrollUseCase,
		updatePayrollUseCase,
		deletePayrollUseCase,
		payrollSummaryUseCase,
		emailPayslipUseCase,
	)
	reportController := controller.NewReportController(summaryUseCase, profitLossUseCase)
	exportController := controller.NewExportController(
		exportCashflowUseCase,
		exportPayrollUseCase,
		exportProfitLossUseCase,
	)
	advisoryController := controller.NewAdvisoryController(getAdviceUseCase)
	settingsController := controller.NewSettingsController(
		getFoundationProfileUseCase,
		updateFoundationProfileUseCase,
		listCategoriesUseCase,
	)

	// Middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

	// Router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		transactionController,
		payrollController,
		reportController,
		exportController,
		advisoryController,
		settingsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		Materialize: materializeUseCase,
	}
}
