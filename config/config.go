// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	Inference InferenceConfig
	Advisor   AdvisorConfig
	Email     EmailConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds configuration for the interaction log and
// report queue database. An empty PostgresURL selects the embedded
// SQLite database.
type DatabaseConfig struct {
	PostgresURL     string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration for the session store.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// SessionConfig holds session lifecycle configuration.
type SessionConfig struct {
	TokenSecret        string
	TTL                time.Duration
	MaxTranscriptTurns int
}

// InferenceProvider selects the hosted generation backend.
type InferenceProvider string

const (
	ProviderHuggingFace InferenceProvider = "huggingface"
	ProviderGemini      InferenceProvider = "gemini"
)

// InferenceConfig holds hosted inference endpoint configuration.
type InferenceConfig struct {
	Provider           InferenceProvider
	HuggingFaceAPIKey  string
	HuggingFaceBaseURL string
	GeminiAPIKey       string
	GeminiModel        string
	SentimentModel     string
	GenerationModel    string
	SummarizationModel string
	QAModel            string
	RequestTimeout     time.Duration
}

// AdvisorConfig holds the financial rule constants used by the scoring
// calculator and the advice generators. All of these are configuration
// defaults, not hard-coded invariants.
type AdvisorConfig struct {
	EmergencyFundMonths   int
	TargetSavingsRate     float64
	MaxDebtToIncomeRatio  float64
	HighExpenseThreshold  float64
	GoalCountForFullMarks int
	ExpenseCategories     []string
	// BudgetThresholds maps an expense category to its recommended maximum
	// share of monthly income. Categories not listed fall back to
	// DefaultBudgetThreshold.
	BudgetThresholds       map[string]float64
	DefaultBudgetThreshold float64
	UserTypes              map[string]UserTypeConfig
}

// UserTypeConfig describes the defaults attached to a user type.
type UserTypeConfig struct {
	SavingsRate   float64
	RiskTolerance string
	Priorities    []string
}

// EmailConfig holds report email delivery configuration.
type EmailConfig struct {
	ResendAPIKey  string
	FromName      string
	FromEmail     string
	WorkerEnabled bool
	PollInterval  time.Duration
	BatchSize     int
	MaxAttempts   int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			PostgresURL:     getEnv("DATABASE_URL", ""),
			SQLitePath:      getEnv("SQLITE_PATH", "finova.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			TokenSecret:        getEnv("SESSION_TOKEN_SECRET", "change-me-in-production"),
			TTL:                getEnvAsDuration("SESSION_TTL", 2*time.Hour),
			MaxTranscriptTurns: getEnvAsInt("SESSION_MAX_TRANSCRIPT_TURNS", 50),
		},
		Inference: InferenceConfig{
			Provider:           InferenceProvider(getEnv("INFERENCE_PROVIDER", string(ProviderHuggingFace))),
			HuggingFaceAPIKey:  getEnv("HUGGINGFACE_API_KEY", ""),
			HuggingFaceBaseURL: getEnv("HUGGINGFACE_API_URL", "https://api-inference.huggingface.co"),
			GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
			GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
			SentimentModel:     getEnv("SENTIMENT_MODEL", "cardiffnlp/twitter-roberta-base-sentiment-latest"),
			GenerationModel:    getEnv("GENERATION_MODEL", "microsoft/DialoGPT-medium"),
			SummarizationModel: getEnv("SUMMARIZATION_MODEL", "facebook/bart-large-cnn"),
			QAModel:            getEnv("QA_MODEL", "deepset/roberta-base-squad2"),
			RequestTimeout:     getEnvAsDuration("INFERENCE_TIMEOUT", 30*time.Second),
		},
		Advisor: AdvisorConfig{
			EmergencyFundMonths:    getEnvAsInt("ADVISOR_EMERGENCY_FUND_MONTHS", 6),
			TargetSavingsRate:      getEnvAsFloat("ADVISOR_TARGET_SAVINGS_RATE", 0.20),
			MaxDebtToIncomeRatio:   getEnvAsFloat("ADVISOR_MAX_DEBT_TO_INCOME", 0.36),
			HighExpenseThreshold:   getEnvAsFloat("ADVISOR_HIGH_EXPENSE_THRESHOLD", 0.15),
			GoalCountForFullMarks:  getEnvAsInt("ADVISOR_GOAL_CAP", 5),
			ExpenseCategories:      getEnvAsSlice("ADVISOR_EXPENSE_CATEGORIES", defaultExpenseCategories),
			BudgetThresholds:       defaultBudgetThresholds,
			DefaultBudgetThreshold: getEnvAsFloat("ADVISOR_DEFAULT_BUDGET_THRESHOLD", 0.10),
			UserTypes:              defaultUserTypes,
		},
		Email: EmailConfig{
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			FromName:      getEnv("RESEND_FROM_NAME", "FINOVA Advisor"),
			FromEmail:     getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			WorkerEnabled: getEnvAsBool("REPORT_WORKER_ENABLED", true),
			PollInterval:  getEnvAsDuration("REPORT_WORKER_POLL_INTERVAL", 5*time.Second),
			BatchSize:     getEnvAsInt("REPORT_WORKER_BATCH_SIZE", 10),
			MaxAttempts:   getEnvAsInt("REPORT_WORKER_MAX_ATTEMPTS", 3),
		},
	}
}

var defaultExpenseCategories = []string{
	"Housing", "Food", "Transportation", "Healthcare",
	"Insurance", "Entertainment", "Shopping", "Education",
	"Debt Payments", "Savings", "Other",
}

var defaultBudgetThresholds = map[string]float64{
	"Housing":        0.30,
	"Food":           0.15,
	"Transportation": 0.15,
	"Debt Payments":  0.20,
}

var defaultUserTypes = map[string]UserTypeConfig{
	"student": {
		SavingsRate:   0.10,
		RiskTolerance: "moderate",
		Priorities:    []string{"emergency_fund", "education", "debt_management"},
	},
	"professional": {
		SavingsRate:   0.25,
		RiskTolerance: "moderate",
		Priorities:    []string{"retirement", "investment", "house_purchase"},
	},
	"retiree": {
		SavingsRate:   0.05,
		RiskTolerance: "conservative",
		Priorities:    []string{"income_preservation", "healthcare", "estate_planning"},
	},
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
