// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pyme-finance/backend/internal/application/usecase/check"
	"github.com/pyme-finance/backend/internal/application/usecase/company"
	"github.com/pyme-finance/backend/internal/application/usecase/credit"
	"github.com/pyme-finance/backend/internal/application/usecase/dashboard"
	"github.com/pyme-finance/backend/internal/application/usecase/supplier"
	"github.com/pyme-finance/backend/internal/application/usecase/transaction"
	"github.com/pyme-finance/backend/internal/infra/server/router"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/controller"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/pyme-finance/backend/internal/integration/persistence"
	"github.com/pyme-finance/backend/internal/integration/persistence/model"
	"github.com/pyme-finance/backend/test/integration/mock"
)

// testContext holds per-scenario state: the pending request headers, the
// last response, and the IDs of seeded rows so feature files can reference
// them through placeholders.
type testContext struct {
	uri     string
	client  *http.Client
	headers map[string]string

	response *apiResponse

	companyIDs        map[string]uuid.UUID
	currentCompanyID  uuid.UUID
	lastTransactionID uuid.UUID
	lastCheckID       uuid.UUID
	lastCreditID      uuid.UUID
	lastSupplierID    uuid.UUID
	lastResponseID    uuid.UUID
}

type apiResponse struct {
	status int
	body   any
	raw    []byte
}

var serverOnce sync.Once
var testServer *httptest.Server
var testDB *mock.Db
var testRedis *redis.Client

// startServer wires the full stack once per test run: SQLite-backed
// repositories, use cases, controllers, the Redis rate limiter, and the
// real router, served over httptest.
func startServer() {
	serverOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		testDB = mock.NewDb(map[string]any{
			"companies":    &model.CompanyModel{},
			"transactions": &model.TransactionModel{},
			"checks":       &model.CheckModel{},
			"credits":      &model.CreditModel{},
			"suppliers":    &model.SupplierModel{},
			"email_queue":  &model.EmailQueueModel{},
		})
		testRedis = mock.NewRedis()

		companyRepo := persistence.NewCompanyRepository(testDB.DbConn)
		transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
		checkRepo := persistence.NewCheckRepository(testDB.DbConn)
		creditRepo := persistence.NewCreditRepository(testDB.DbConn)
		supplierRepo := persistence.NewSupplierRepository(testDB.DbConn)

		getCompanyUseCase := company.NewGetCompanyUseCase(companyRepo)

		healthController := controller.NewHealthController(
			func() bool { return testDB != nil },
			func() bool { return testRedis.Ping(context.Background()).Err() == nil },
		)

		companyController := controller.NewCompanyController(
			company.NewCreateCompanyUseCase(companyRepo),
			company.NewUpdateCompanyUseCase(companyRepo),
			company.NewGetCompaniesUseCase(companyRepo),
			getCompanyUseCase,
			company.NewDeleteCompanyUseCase(companyRepo),
		)

		transactionController := controller.NewTransactionController(
			transaction.NewCreateTransactionUseCase(transactionRepo),
			transaction.NewListTransactionsUseCase(transactionRepo),
			transaction.NewDeleteTransactionUseCase(transactionRepo),
			transaction.NewGetRecentTransactionsUseCase(transactionRepo),
			getCompanyUseCase,
		)

		checkController := controller.NewCheckController(
			check.NewCreateCheckUseCase(checkRepo),
			check.NewListChecksUseCase(checkRepo),
			check.NewUpdateCheckStatusUseCase(checkRepo),
			check.NewGetCheckAlertsUseCase(checkRepo),
			getCompanyUseCase,
		)

		creditController := controller.NewCreditController(
			credit.NewCreateCreditUseCase(creditRepo),
			credit.NewListCreditsUseCase(creditRepo),
			credit.NewUpdateCreditStatusUseCase(creditRepo),
			credit.NewGetUpcomingPaymentsUseCase(creditRepo),
			credit.NewGetCreditStatsUseCase(creditRepo),
			getCompanyUseCase,
		)

		supplierController := controller.NewSupplierController(
			supplier.NewCreateSupplierUseCase(supplierRepo),
			supplier.NewListSuppliersUseCase(supplierRepo),
			supplier.NewUpdateSupplierUseCase(supplierRepo),
			supplier.NewDeleteSupplierUseCase(supplierRepo),
		)

		dashboardController := controller.NewDashboardController(
			dashboard.NewGetMetricsUseCase(transactionRepo),
			dashboard.NewGetMonthlyDataUseCase(transactionRepo),
			getCompanyUseCase,
		)

		// Generous limit so scenarios never trip it while still exercising
		// the redis-backed middleware.
		rateLimiter := middleware.NewRateLimiterWithConfig(testRedis, 1000, time.Minute)

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
		engine := r.Setup("test")

		testServer = httptest.NewServer(engine)
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startServer()

	test := &testContext{
		uri:    testServer.URL,
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Company setup steps
	ctx.Given(`^a company exists named "([^"]*)" with currency "([^"]*)"$`, test.aCompanyExistsNamedWithCurrency)
	ctx.Given(`^the request is scoped to company "([^"]*)"$`, test.theRequestIsScopedToCompany)
	ctx.Given(`^no company scope is set$`, test.noCompanyScopeIsSet)

	// Data setup steps
	ctx.Given(`^an? "([^"]*)" transaction of "([^"]*)" described "([^"]*)" exists$`, test.aTransactionExists)
	ctx.Given(`^an? "([^"]*)" transaction of "([^"]*)" described "([^"]*)" exists dated (\d+) days ago$`, test.aTransactionExistsDatedDaysAgo)
	ctx.Given(`^a pending check "([^"]*)" from "([^"]*)" for "([^"]*)" due in (-?\d+) days exists$`, test.aPendingCheckExists)
	ctx.Given(`^an active credit "([^"]*)" of "([^"]*)" at ([0-9.]+)% over (\d+) months exists$`, test.anActiveCreditExists)
	ctx.Given(`^a supplier named "([^"]*)" with RUT "([^"]*)" exists$`, test.aSupplierExists)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.companyIDs = make(map[string]uuid.UUID)
	t.currentCompanyID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.lastCheckID = uuid.Nil
	t.lastCreditID = uuid.Nil
	t.lastSupplierID = uuid.Nil
	t.lastResponseID = uuid.Nil

	if err := testDB.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(testRedis)
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
