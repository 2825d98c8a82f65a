// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finova/backend/config"
	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/application/usecase/advice"
	"github.com/finova/backend/internal/application/usecase/analytics"
	"github.com/finova/backend/internal/application/usecase/chat"
	"github.com/finova/backend/internal/application/usecase/dashboard"
	"github.com/finova/backend/internal/application/usecase/expense"
	"github.com/finova/backend/internal/application/usecase/health"
	"github.com/finova/backend/internal/application/usecase/profile"
	"github.com/finova/backend/internal/application/usecase/report"
	"github.com/finova/backend/internal/application/usecase/session"
	"github.com/finova/backend/internal/domain/valueobject"
	"github.com/finova/backend/internal/infra/db"
	"github.com/finova/backend/internal/infra/server/router"
	"github.com/finova/backend/internal/integration/adapters"
	"github.com/finova/backend/internal/integration/charts"
	"github.com/finova/backend/internal/integration/email"
	"github.com/finova/backend/internal/integration/email/templates"
	"github.com/finova/backend/internal/integration/entrypoint/controller"
	"github.com/finova/backend/internal/integration/entrypoint/middleware"
	"github.com/finova/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *db.Database
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with production adapters:
// the Redis session store when a client is given (in-memory otherwise),
// the configured inference provider and the Resend email sender.
func NewInjector(cfg *config.Config, database *db.Database, redisClient *redis.Client) (*Injector, error) {
	var sessionRepo adapter.SessionRepository
	storeHealthChecker := func() bool { return true }
	if redisClient != nil {
		sessionRepo = persistence.NewRedisSessionRepository(redisClient, cfg.Session.TTL)
		storeHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	} else {
		sessionRepo = persistence.NewMemorySessionRepository(cfg.Session.TTL)
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	return NewInjectorWithAdapters(cfg, database, sessionRepo, buildInferenceService(&cfg.Inference), sender, storeHealthChecker)
}

// NewInjectorWithAdapters wires the application around the given adapters.
// The integration test suite uses it to substitute the fake inference
// service, an in-memory session store and a mock email sender.
func NewInjectorWithAdapters(
	cfg *config.Config,
	database *db.Database,
	sessionRepo adapter.SessionRepository,
	inference adapter.InferenceService,
	sender adapter.EmailSender,
	storeHealthChecker func() bool,
) (*Injector, error) {
	rules := advisorRules(&cfg.Advisor)
	logger := slog.Default()

	// Repositories backed by the relational database
	interactionRepo := persistence.NewInteractionRepository(database.DB())
	queueRepo := persistence.NewReportQueueRepository(database.DB())

	// Adapters/services
	tokenService := adapters.NewSessionTokenService(cfg.Session.TokenSecret, cfg.Session.TTL)
	chartRenderer := charts.NewRenderer()
	calculator := health.NewCalculator(rules)
	generator := advice.NewGenerator(rules)

	// Session use cases
	startSessionUseCase := session.NewStartSessionUseCase(sessionRepo, tokenService)
	getSessionUseCase := session.NewGetSessionUseCase(sessionRepo)
	endSessionUseCase := session.NewEndSessionUseCase(sessionRepo)

	// Profile use cases
	saveProfileUseCase := profile.NewSaveProfileUseCase(sessionRepo)
	getProfileUseCase := profile.NewGetProfileUseCase(sessionRepo)

	// Expense use cases
	addExpenseUseCase := expense.NewAddExpenseUseCase(sessionRepo, rules)
	listExpensesUseCase := expense.NewListExpensesUseCase(sessionRepo)
	clearExpensesUseCase := expense.NewClearExpensesUseCase(sessionRepo)
	analyzeSpendingUseCase := expense.NewAnalyzeSpendingUseCase(sessionRepo, rules)

	// Score, chat, dashboard and report use cases
	computeScoreUseCase := health.NewComputeScoreUseCase(sessionRepo, calculator)
	sendMessageUseCase := chat.NewSendMessageUseCase(sessionRepo, inference, interactionRepo, generator, cfg.Session.MaxTranscriptTurns, logger)
	summarizeUseCase := chat.NewSummarizeConversationUseCase(sessionRepo, inference, logger)
	answerQuestionUseCase := chat.NewAnswerQuestionUseCase(sessionRepo, inference)
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(sessionRepo, calculator)
	generateReportUseCase := report.NewGenerateReportUseCase(sessionRepo, calculator)
	queueReportEmailUseCase := report.NewQueueReportEmailUseCase(generateReportUseCase, sessionRepo, queueRepo)
	intentStatsUseCase := analytics.NewIntentStatsUseCase(interactionRepo)

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck, storeHealthChecker)
	sessionController := controller.NewSessionController(startSessionUseCase, getSessionUseCase, endSessionUseCase)
	profileController := controller.NewProfileController(saveProfileUseCase, getProfileUseCase)
	expenseController := controller.NewExpenseController(addExpenseUseCase, listExpensesUseCase, clearExpensesUseCase, analyzeSpendingUseCase)
	scoreController := controller.NewScoreController(computeScoreUseCase)
	chatController := controller.NewChatController(sendMessageUseCase, summarizeUseCase, answerQuestionUseCase)
	dashboardController := controller.NewDashboardController(getDashboardUseCase, chartRenderer)
	reportController := controller.NewReportController(generateReportUseCase, queueReportEmailUseCase)
	calculatorController := controller.NewCalculatorController()
	analyticsController := controller.NewAnalyticsController(intentStatsUseCase)

	// Middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var chatRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		chatRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		chatRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewSessionAuthMiddleware(tokenService)

	// Report email worker
	var worker *email.Worker
	if sender != nil && cfg.Email.WorkerEnabled {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		worker = email.NewWorker(queueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
			MaxAttempts:  cfg.Email.MaxAttempts,
		})
	}

	r := router.NewRouter(
		healthController,
		sessionController,
		profileController,
		expenseController,
		scoreController,
		chatController,
		dashboardController,
		reportController,
		calculatorController,
		analyticsController,
		chatRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          database,
		Router:      r,
		EmailWorker: worker,
	}, nil
}

// buildInferenceService selects the hosted inference provider from
// configuration.
func buildInferenceService(cfg *config.InferenceConfig) adapter.InferenceService {
	if cfg.Provider == config.ProviderGemini {
		return adapters.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	return adapters.NewHuggingFaceService(cfg.HuggingFaceAPIKey, cfg.HuggingFaceBaseURL, adapters.HuggingFaceModels{
		Sentiment:     cfg.SentimentModel,
		Generation:    cfg.GenerationModel,
		Summarization: cfg.SummarizationModel,
		QA:            cfg.QAModel,
	}, cfg.RequestTimeout)
}

// advisorRules copies the configured rule constants into the domain value
// object consumed by the calculator and generators.
func advisorRules(cfg *config.AdvisorConfig) valueobject.AdvisorRules {
	return valueobject.AdvisorRules{
		EmergencyFundMonths:    cfg.EmergencyFundMonths,
		TargetSavingsRate:      cfg.TargetSavingsRate,
		MaxDebtToIncomeRatio:   cfg.MaxDebtToIncomeRatio,
		HighExpenseThreshold:   cfg.HighExpenseThreshold,
		GoalCountForFullMarks:  cfg.GoalCountForFullMarks,
		ExpenseCategories:      cfg.ExpenseCategories,
		BudgetThresholds:       cfg.BudgetThresholds,
		DefaultBudgetThreshold: cfg.DefaultBudgetThreshold,
	}
}
