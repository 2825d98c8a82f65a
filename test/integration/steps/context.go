package steps

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finova/backend/config"
	"github.com/finova/backend/internal/infra/db"
	"github.com/finova/backend/internal/infra/dependency"
	"github.com/finova/backend/internal/integration/email"
	"github.com/finova/backend/internal/integration/persistence"
	"github.com/finova/backend/internal/integration/persistence/model"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Session token issued by the session scenarios
	sessionToken string

	// Wired stack
	cfg      *config.Config
	injector *dependency.Injector
	database *db.Database
	mini     *miniredis.Miniredis
	redis    *redis.Client
	sender   *email.MockEmailSender
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			tc.teardown()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerAdvisorSteps(ctx)
}

// newTestContext wires a fresh API stack for one scenario: an embedded
// SQLite database, a miniredis session store, the fake inference service
// and a mock email sender.
func newTestContext() (*TestContext, error) {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Database.SQLitePath = ":memory:"
	cfg.Database.MaxOpenConns = 1

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(
		&model.InteractionModel{},
		&model.ReportJobModel{},
	); err != nil {
		return nil, err
	}

	mini, err := miniredis.Run()
	if err != nil {
		return nil, err
	}
	redisClient := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	sessionRepo := persistence.NewRedisSessionRepository(redisClient, cfg.Session.TTL)

	sender := email.NewMockEmailSender()

	injector, err := dependency.NewInjectorWithAdapters(
		cfg,
		database,
		sessionRepo,
		newFakeInference(),
		sender,
		func() bool { return true },
	)
	if err != nil {
		return nil, err
	}

	tc := &TestContext{
		requestHeaders: make(map[string]string),
		cfg:            cfg,
		injector:       injector,
		database:       database,
		mini:           mini,
		redis:          redisClient,
		sender:         sender,
	}
	tc.engine = injector.Router.Setup("test")
	tc.server = httptest.NewServer(tc.engine)

	return tc, nil
}

// teardown releases the scenario's resources.
func (tc *TestContext) teardown() {
	if tc.server != nil {
		tc.server.Close()
	}
	if tc.redis != nil {
		_ = tc.redis.Close()
	}
	if tc.mini != nil {
		tc.mini.Close()
	}
	if tc.database != nil {
		_ = tc.database.Close()
	}
}
