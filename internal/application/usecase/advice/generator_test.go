package advice

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/domain/entity"
	"github.com/finova/backend/internal/domain/valueobject"
)

func testRules() valueobject.AdvisorRules {
	return valueobject.AdvisorRules{
		EmergencyFundMonths:    6,
		TargetSavingsRate:      0.20,
		MaxDebtToIncomeRatio:   0.36,
		HighExpenseThreshold:   0.15,
		GoalCountForFullMarks:  5,
		ExpenseCategories:      []string{"Housing", "Food", "Entertainment", "Other"},
		BudgetThresholds:       map[string]float64{"Housing": 0.30},
		DefaultBudgetThreshold: 0.10,
	}
}

func testProfile() *entity.Profile {
	return &entity.Profile{
		Name:            "Alex",
		Age:             30,
		AnnualIncome:    decimal.NewFromInt(60000),
		SavingsBalance:  decimal.NewFromInt(6000),
		DebtBalance:     decimal.NewFromInt(30000),
		MonthlyExpenses: decimal.NewFromInt(3000),
		RiskTolerance:   entity.RiskModerate,
		UserType:        entity.UserTypeProfessional,
	}
}

func TestGeneratorCoversEveryIntent(t *testing.T) {
	gen := NewGenerator(testRules())
	for _, intent := range entity.AllIntents() {
		t.Run(string(intent), func(t *testing.T) {
			advice := gen.Generate(intent, entity.SentimentNeutral, testProfile(), nil)
			if advice.Text == "" {
				t.Errorf("no advice text for intent %v", intent)
			}
		})
	}
}

func TestGeneratorWorksWithoutProfile(t *testing.T) {
	gen := NewGenerator(testRules())
	for _, intent := range entity.AllIntents() {
		advice := gen.Generate(intent, entity.SentimentNeutral, nil, nil)
		if advice.Text == "" {
			t.Errorf("no advice text for intent %v without a profile", intent)
		}
	}
}

func TestGeneratorSentimentOpener(t *testing.T) {
	gen := NewGenerator(testRules())

	negative := gen.Generate(entity.IntentSavings, entity.SentimentNegative, nil, nil)
	if !strings.Contains(negative.Text, "stressful") {
		t.Errorf("negative sentiment should add a reassuring opener, got %q", negative.Text)
	}

	positive := gen.Generate(entity.IntentSavings, entity.SentimentPositive, nil, nil)
	if !strings.Contains(positive.Text, "Great to hear") {
		t.Errorf("positive sentiment should add an encouraging opener, got %q", positive.Text)
	}

	neutral := gen.Generate(entity.IntentSavings, entity.SentimentNeutral, nil, nil)
	if strings.Contains(neutral.Text, "stressful") || strings.Contains(neutral.Text, "Great to hear") {
		t.Errorf("neutral sentiment should not add an opener, got %q", neutral.Text)
	}
}

func TestGeneratorInvestmentFollowsRiskTolerance(t *testing.T) {
	gen := NewGenerator(testRules())

	conservative := testProfile()
	conservative.RiskTolerance = entity.RiskConservative
	if text := gen.Generate(entity.IntentInvestment, entity.SentimentNeutral, conservative, nil).Text; !strings.Contains(text, "conservative") {
		t.Errorf("expected conservative guidance, got %q", text)
	}

	aggressive := testProfile()
	aggressive.RiskTolerance = entity.RiskAggressive
	if text := gen.Generate(entity.IntentInvestment, entity.SentimentNeutral, aggressive, nil).Text; !strings.Contains(text, "aggressive") {
		t.Errorf("expected aggressive guidance, got %q", text)
	}
}

func TestGeneratorDebtFlagsHighRatio(t *testing.T) {
	gen := NewGenerator(testRules())

	// 30000 debt on 60000 income is a 50% ratio, above the 36% ceiling.
	over := gen.Generate(entity.IntentDebt, entity.SentimentNeutral, testProfile(), nil)
	if !strings.Contains(over.Text, "above the recommended") {
		t.Errorf("expected high-ratio warning, got %q", over.Text)
	}

	light := testProfile()
	light.DebtBalance = decimal.NewFromInt(5000)
	under := gen.Generate(entity.IntentDebt, entity.SentimentNeutral, light, nil)
	if !strings.Contains(under.Text, "manageable") {
		t.Errorf("expected manageable verdict, got %q", under.Text)
	}
}

func TestGeneratorRetirementByLifeStage(t *testing.T) {
	gen := NewGenerator(testRules())

	student := testProfile()
	student.UserType = entity.UserTypeStudent
	if text := gen.Generate(entity.IntentRetirement, entity.SentimentNeutral, student, nil).Text; !strings.Contains(text, "Starting early") {
		t.Errorf("expected early-start guidance for students, got %q", text)
	}

	retiree := testProfile()
	retiree.UserType = entity.UserTypeRetiree
	if text := gen.Generate(entity.IntentRetirement, entity.SentimentNeutral, retiree, nil).Text; !strings.Contains(text, "withdrawal rate") {
		t.Errorf("expected withdrawal guidance for retirees, got %q", text)
	}

	older := testProfile()
	older.Age = 55
	if text := gen.Generate(entity.IntentRetirement, entity.SentimentNeutral, older, nil).Text; !strings.Contains(text, "catch-up") {
		t.Errorf("expected catch-up contribution note at 55, got %q", text)
	}
}

func TestGeneratorContextualTips(t *testing.T) {
	gen := NewGenerator(testRules())
	profile := testProfile() // 5000/month income, 15% threshold = 750

	expenses := []*entity.Expense{
		entity.NewExpense("Entertainment", decimal.NewFromInt(900), ""),
		entity.NewExpense("Food", decimal.NewFromInt(400), ""),
		entity.NewExpense("Housing", decimal.NewFromInt(2000), ""),
	}

	advice := gen.Generate(entity.IntentBudgeting, entity.SentimentNeutral, profile, expenses)
	if len(advice.Tips) != 1 {
		t.Fatalf("Tips = %v, want exactly one", advice.Tips)
	}
	if !strings.Contains(advice.Tips[0], "Entertainment") {
		t.Errorf("tip should name the Entertainment category, got %q", advice.Tips[0])
	}

	noExpenses := gen.Generate(entity.IntentBudgeting, entity.SentimentNeutral, profile, nil)
	if len(noExpenses.Tips) != 0 {
		t.Errorf("Tips without expenses = %v, want none", noExpenses.Tips)
	}
}
