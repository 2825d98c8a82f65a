// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finova/backend/internal/integration/entrypoint/controller"
	"github.com/finova/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	sessionController    *controller.SessionController
	profileController    *controller.ProfileController
	expenseController    *controller.ExpenseController
	scoreController      *controller.ScoreController
	chatController       *controller.ChatController
	dashboardController  *controller.DashboardController
	reportController     *controller.ReportController
	calculatorController *controller.CalculatorController
	analyticsController  *controller.AnalyticsController
	chatRateLimiter      *middleware.RateLimiter
	authMiddleware       *middleware.SessionAuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	sessionController *controller.SessionController,
	profileController *controller.ProfileController,
	expenseController *controller.ExpenseController,
	scoreController *controller.ScoreController,
	chatController *controller.ChatController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	calculatorController *controller.CalculatorController,
	analyticsController *controller.AnalyticsController,
	chatRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.SessionAuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		sessionController:    sessionController,
		profileController:    profileController,
		expenseController:    expenseController,
		scoreController:      scoreController,
		chatController:       chatController,
		dashboardController:  dashboardController,
		reportController:     reportController,
		calculatorController: calculatorController,
		analyticsController:  analyticsController,
		chatRateLimiter:      chatRateLimiter,
		authMiddleware:       authMiddleware,
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

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Session creation is the only unauthenticated session route
		if r.sessionController != nil {
			v1.POST("/sessions", r.sessionController.Start)

			if r.authMiddleware != nil {
				sessions := v1.Group("/sessions")
				sessions.Use(r.authMiddleware.Authenticate())
				{
					sessions.GET("/me", r.sessionController.Get)
					sessions.DELETE("/me", r.sessionController.End)
				}
			}
		}

		// Profile routes (require a session token)
		if r.profileController != nil && r.authMiddleware != nil {
			profile := v1.Group("/profile")
			profile.Use(r.authMiddleware.Authenticate())
			{
				profile.PUT("", r.profileController.Save)
				profile.GET("", r.profileController.Get)
			}
		}

		// Expense routes (require a session token)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.POST("", r.expenseController.Add)
				expenses.GET("", r.expenseController.List)
				expenses.DELETE("", r.expenseController.Clear)
				expenses.GET("/analysis", r.expenseController.Analyze)
			}
		}

		// Health score route (require a session token)
		if r.scoreController != nil && r.authMiddleware != nil {
			score := v1.Group("/score")
			score.Use(r.authMiddleware.Authenticate())
			{
				score.GET("", r.scoreController.Get)
			}
		}

		// Chat routes (require a session token; messages are rate limited)
		if r.chatController != nil && r.authMiddleware != nil {
			chat := v1.Group("/chat")
			chat.Use(r.authMiddleware.Authenticate())
			{
				if r.chatRateLimiter != nil {
					chat.POST("/messages", r.chatRateLimiter.Middleware(), r.chatController.SendMessage)
				} else {
					chat.POST("/messages", r.chatController.SendMessage)
				}
				chat.GET("/summary", r.chatController.Summarize)
				chat.POST("/answers", r.chatController.AnswerQuestion)
			}
		}

		// Dashboard routes (require a session token)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Get)
				dashboard.GET("/charts/breakdown", r.dashboardController.BreakdownChart)
				dashboard.GET("/charts/projection", r.dashboardController.ProjectionChart)
			}
		}

		// Report routes (require a session token)
		if r.reportController != nil && r.authMiddleware != nil {
			report := v1.Group("/report")
			report.Use(r.authMiddleware.Authenticate())
			{
				report.GET("", r.reportController.Generate)
				report.POST("/email", r.reportController.Email)
			}
		}

		// Analytics routes (require a session token)
		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/intents", r.analyticsController.IntentStats)
			}
		}

		// Calculator routes (stateless, no session required)
		if r.calculatorController != nil {
			calculators := v1.Group("/calculators")
			{
				calculators.POST("/compound-interest", r.calculatorController.CompoundInterest)
				calculators.POST("/loan-payment", r.calculatorController.LoanPayment)
				calculators.POST("/retirement-needs", r.calculatorController.RetirementNeeds)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
