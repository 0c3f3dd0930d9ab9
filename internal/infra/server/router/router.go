// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pyme-finance/backend/internal/integration/entrypoint/controller"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	companyController     *controller.CompanyController
	transactionController *controller.TransactionController
	checkController       *controller.CheckController
	creditController      *controller.CreditController
	supplierController    *controller.SupplierController
	dashboardController   *controller.DashboardController
	rateLimiter           *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	companyController *controller.CompanyController,
	transactionController *controller.TransactionController,
	checkController *controller.CheckController,
	creditController *controller.CreditController,
	supplierController *controller.SupplierController,
	dashboardController *controller.DashboardController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		companyController:     companyController,
		transactionController: transactionController,
		checkController:       checkController,
		creditController:      creditController,
		supplierController:    supplierController,
		dashboardController:   dashboardController,
		rateLimiter:           rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Company routes manage the tenants themselves, so they sit outside
		// the company scope.
		if r.companyController != nil {
			companies := v1.Group("/companies")
			{
				companies.POST("", r.companyController.Create)
				companies.GET("", r.companyController.List)
				companies.GET("/:id", r.companyController.Get)
				companies.PATCH("/:id", r.companyController.Update)
				companies.DELETE("/:id", r.companyController.Delete)
			}
		}

		// Everything below requires an X-Company-ID header.
		scoped := v1.Group("")
		scoped.Use(middleware.CompanyScope())

		if r.transactionController != nil {
			transactions := scoped.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/recent", r.transactionController.Recent)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.checkController != nil {
			checks := scoped.Group("/checks")
			{
				checks.GET("", r.checkController.List)
				checks.POST("", r.checkController.Create)
				checks.GET("/alerts", r.checkController.Alerts)
				checks.PATCH("/:id/status", r.checkController.UpdateStatus)
			}
		}

		if r.creditController != nil {
			credits := scoped.Group("/credits")
			{
				credits.GET("", r.creditController.List)
				credits.POST("", r.creditController.Create)
				credits.GET("/upcoming", r.creditController.UpcomingPayments)
				credits.GET("/stats", r.creditController.Stats)
				credits.PATCH("/:id/status", r.creditController.UpdateStatus)
			}
		}

		if r.supplierController != nil {
			suppliers := scoped.Group("/suppliers")
			{
				suppliers.GET("", r.supplierController.List)
				suppliers.POST("", r.supplierController.Create)
				suppliers.PATCH("/:id", r.supplierController.Update)
				suppliers.DELETE("/:id", r.supplierController.Delete)
			}
		}

		if r.dashboardController != nil {
			dashboard := scoped.Group("/dashboard")
			{
				dashboard.GET("/metrics", r.dashboardController.Metrics)
				dashboard.GET("/monthly", r.dashboardController.MonthlyData)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
