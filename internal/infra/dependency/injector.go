// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pyme-finance/backend/config"
	"github.com/pyme-finance/backend/internal/application/usecase/check"
	"github.com/pyme-finance/backend/internal/application/usecase/company"
	"github.com/pyme-finance/backend/internal/application/usecase/credit"
	"github.com/pyme-finance/backend/internal/application/usecase/dashboard"
	"github.com/pyme-finance/backend/internal/application/usecase/reminder"
	"github.com/pyme-finance/backend/internal/application/usecase/supplier"
	"github.com/pyme-finance/backend/internal/application/usecase/transaction"
	"github.com/pyme-finance/backend/internal/infra/server/router"
	"github.com/pyme-finance/backend/internal/integration/email"
	"github.com/pyme-finance/backend/internal/integration/email/templates"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/controller"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/pyme-finance/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
	ReminderUC  *reminder.EnqueueCheckRemindersUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	companyRepo := persistence.NewCompanyRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	checkRepo := persistence.NewCheckRepository(db)
	creditRepo := persistence.NewCreditRepository(db)
	supplierRepo := persistence.NewSupplierRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Email pipeline
	emailService := email.NewService(emailQueueRepo)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Company use cases
	createCompanyUseCase := company.NewCreateCompanyUseCase(companyRepo)
	updateCompanyUseCase := company.NewUpdateCompanyUseCase(companyRepo)
	getCompaniesUseCase := company.NewGetCompaniesUseCase(companyRepo)
	getCompanyUseCase := company.NewGetCompanyUseCase(companyRepo)
	deleteCompanyUseCase := company.NewDeleteCompanyUseCase(companyRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	recentTransactionsUseCase := transaction.NewGetRecentTransactionsUseCase(transactionRepo)

	// Check use cases
	createCheckUseCase := check.NewCreateCheckUseCase(checkRepo)
	listChecksUseCase := check.NewListChecksUseCase(checkRepo)
	updateCheckStatusUseCase := check.NewUpdateCheckStatusUseCase(checkRepo)
	checkAlertsUseCase := check.NewGetCheckAlertsUseCase(checkRepo)

	// Credit use cases
	createCreditUseCase := credit.NewCreateCreditUseCase(creditRepo)
	listCreditsUseCase := credit.NewListCreditsUseCase(creditRepo)
	updateCreditStatusUseCase := credit.NewUpdateCreditStatusUseCase(creditRepo)
	upcomingPaymentsUseCase := credit.NewGetUpcomingPaymentsUseCase(creditRepo)
	creditStatsUseCase := credit.NewGetCreditStatsUseCase(creditRepo)

	// Supplier use cases
	createSupplierUseCase := supplier.NewCreateSupplierUseCase(supplierRepo)
	listSuppliersUseCase := supplier.NewListSuppliersUseCase(supplierRepo)
	updateSupplierUseCase := supplier.NewUpdateSupplierUseCase(supplierRepo)
	deleteSupplierUseCase := supplier.NewDeleteSupplierUseCase(supplierRepo)

	// Dashboard use cases
	metricsUseCase := dashboard.NewGetMetricsUseCase(transactionRepo)
	monthlyDataUseCase := dashboard.NewGetMonthlyDataUseCase(transactionRepo)

	// Reminder sweep
	reminderUseCase := reminder.NewEnqueueCheckRemindersUseCase(companyRepo, checkRepo, emailService)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	companyController := controller.NewCompanyController(
		createCompanyUseCase,
		updateCompanyUseCase,
		getCompaniesUseCase,
		getCompanyUseCase,
		deleteCompanyUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
		recentTransactionsUseCase,
		getCompanyUseCase,
	)

	checkController := controller.NewCheckController(
		createCheckUseCase,
		listChecksUseCase,
		updateCheckStatusUseCase,
		checkAlertsUseCase,
		getCompanyUseCase,
	)

	creditController := controller.NewCreditController(
		createCreditUseCase,
		listCreditsUseCase,
		updateCreditStatusUseCase,
		upcomingPaymentsUseCase,
		creditStatsUseCase,
		getCompanyUseCase,
	)

	supplierController := controller.NewSupplierController(
		createSupplierUseCase,
		listSuppliersUseCase,
		updateSupplierUseCase,
		deleteSupplierUseCase,
	)

	dashboardController := controller.NewDashboardController(
		metricsUseCase,
		monthlyDataUseCase,
		getCompanyUseCase,
	)

	// Middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(
		redisClient,
		cfg.Server.RateLimitMax,
		cfg.Server.RateLimitWindow,
	)

	r := router.NewRouter(
		healthController,
		companyController,
		transactionController,
		checkController,
		creditController,
		supplierController,
		dashboardController,
		rateLimiter,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,
		ReminderUC:  reminderUseCase,
	}, nil
}
