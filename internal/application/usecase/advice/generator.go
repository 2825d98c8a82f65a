package advice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/domain/entity"
	"github.com/finova/backend/internal/domain/valueobject"
)

// Advice is a generated response: the main guidance text plus optional
// follow-up tips derived from the profile and recorded spending.
type Advice struct {
	Text string
	Tips []string
}

// Generator produces rule-based financial guidance for a classified intent.
// Responses are assembled from templates and personalized with the
// session's profile and expense figures; the hosted generation model only
// ever augments, never replaces, this output.
type Generator struct {
	rules valueobject.AdvisorRules
}

// NewGenerator creates a generator bound to the configured rules.
func NewGenerator(rules valueobject.AdvisorRules) *Generator {
	return &Generator{rules: rules}
}

// Generate builds the advice for an intent. The profile and expenses may be
// nil or empty; guidance degrades to generic templates.
func (g *Generator) Generate(intent entity.Intent, sentiment entity.Sentiment, profile *entity.Profile, expenses []*entity.Expense) Advice {
	var sb strings.Builder

	if opener := openerFor(sentiment); opener != "" {
		sb.WriteString(opener)
		sb.WriteString(" ")
	}

	switch intent {
	case entity.IntentBudgeting:
		sb.WriteString(g.budgetingAdvice(profile, expenses))
	case entity.IntentInvestment:
		sb.WriteString(g.investmentAdvice(profile))
	case entity.IntentSavings:
		sb.WriteString(g.savingsAdvice(profile))
	case entity.IntentDebt:
		sb.WriteString(g.debtAdvice(profile))
	case entity.IntentTax:
		sb.WriteString(g.taxAdvice(profile))
	case entity.IntentInsurance:
		sb.WriteString(g.insuranceAdvice(profile))
	case entity.IntentRetirement:
		sb.WriteString(g.retirementAdvice(profile))
	default:
		sb.WriteString(g.generalAdvice(profile))
	}

	return Advice{
		Text: sb.String(),
		Tips: g.contextualTips(profile, expenses),
	}
}

// openerFor softens or reinforces the response based on message polarity.
func openerFor(sentiment entity.Sentiment) string {
	switch sentiment {
	case entity.SentimentNegative:
		return "I understand money worries can be stressful. Let's work through this together."
	case entity.SentimentPositive:
		return "Great to hear you're taking charge of your finances!"
	default:
		return ""
	}
}

func (g *Generator) budgetingAdvice(profile *entity.Profile, expenses []*entity.Expense) string {
	base := "A simple starting point is the 50/30/20 rule: 50% of income on needs, 30% on wants, and 20% toward savings and debt."

	if profile == nil {
		return base + " Share your income and expenses and I can make this concrete."
	}

	income := profile.MonthlyIncome()
	if !income.IsPositive() {
		return base
	}

	spend := profile.MonthlyExpenses
	if len(expenses) > 0 {
		spend = entity.TotalExpenses(expenses)
	}
	share := spend.Div(income)

	if share.GreaterThan(decimal.NewFromInt(1)) {
		return base + fmt.Sprintf(" Right now you're spending %s per month against %s of income, so the first step is closing that gap.",
			spend.StringFixed(2), income.StringFixed(2))
	}
	return base + fmt.Sprintf(" You're currently spending about %s%% of your monthly income.",
		share.Mul(decimal.NewFromInt(100)).StringFixed(0))
}

func (g *Generator) investmentAdvice(profile *entity.Profile) string {
	base := "Before investing, make sure your emergency fund is in place and high-interest debt is under control."

	if profile == nil {
		return base + " Low-cost diversified index funds are a common starting point."
	}

	switch profile.RiskTolerance {
	case entity.RiskConservative:
		return base + " With a conservative risk tolerance, look at bonds, CDs, and broad index funds with a higher fixed-income allocation."
	case entity.RiskAggressive:
		return base + " With an aggressive risk tolerance you can weight toward equities, but keep the portfolio diversified and the horizon long."
	default:
		return base + " A moderate mix of stock and bond index funds rebalanced yearly suits most people."
	}
}

func (g *Generator) savingsAdvice(profile *entity.Profile) string {
	target := fmt.Sprintf("Aim for an emergency fund covering %d months of expenses, then put at least %.0f%% of income toward savings.",
		g.rules.EmergencyFundMonths, g.rules.TargetSavingsRate*100)

	if profile == nil || !profile.MonthlyExpenses.IsPositive() {
		return target
	}

	targetFund := profile.MonthlyExpenses.Mul(decimal.NewFromInt(int64(g.rules.EmergencyFundMonths)))
	if profile.SavingsBalance.GreaterThanOrEqual(targetFund) {
		return fmt.Sprintf("Your emergency fund already covers %d months of expenses. Consider directing new savings toward your goals or investments.",
			g.rules.EmergencyFundMonths)
	}
	gap := targetFund.Sub(profile.SavingsBalance)
	return target + fmt.Sprintf(" You're %s away from that target.", gap.StringFixed(2))
}

func (g *Generator) debtAdvice(profile *entity.Profile) string {
	base := "List your debts by interest rate and pay the highest rate first while making minimums on the rest (the avalanche method)."

	if profile == nil || !profile.MonthlyIncome().IsPositive() || !profile.DebtBalance.IsPositive() {
		return base
	}

	ratio, _ := profile.DebtBalance.Div(profile.AnnualIncome).Float64()
	if ratio > g.rules.MaxDebtToIncomeRatio {
		return base + fmt.Sprintf(" Your debt is %.0f%% of your annual income, above the recommended %.0f%% ceiling, so prioritize paydown before new spending.",
			ratio*100, g.rules.MaxDebtToIncomeRatio*100)
	}
	return base + " Your overall debt load looks manageable relative to your income."
}

func (g *Generator) taxAdvice(profile *entity.Profile) string {
	base := "Max out tax-advantaged accounts first: employer 401(k) match, then IRA or HSA contributions."
	if profile != nil && profile.UserType == entity.UserTypeStudent {
		return base + " As a student, check whether education credits like the American Opportunity Credit apply to you."
	}
	return base + " Keep records of deductible expenses through the year rather than reconstructing them in April."
}

func (g *Generator) insuranceAdvice(profile *entity.Profile) string {
	base := "Cover the catastrophic risks first: health, auto liability, and renters or homeowners insurance."
	if profile != nil && profile.UserType == entity.UserTypeRetiree {
		return base + " In retirement, review Medicare supplement options and consider long-term care coverage."
	}
	return base + " Term life insurance matters once someone depends on your income."
}

func (g *Generator) retirementAdvice(profile *entity.Profile) string {
	base := "Contribute enough to get any employer match, then build toward saving 15% of income for retirement."

	if profile == nil {
		return base
	}

	switch profile.UserType {
	case entity.UserTypeStudent:
		return base + " Starting early is your biggest advantage: even small contributions now compound for decades."
	case entity.UserTypeRetiree:
		return "Focus on a sustainable withdrawal rate (around 4% of your portfolio per year) and keep a cash buffer so you never sell in a downturn."
	default:
		if profile.Age >= 50 {
			return base + " At 50 or older you can also make catch-up contributions to your 401(k) and IRA."
		}
		return base
	}
}

func (g *Generator) generalAdvice(profile *entity.Profile) string {
	base := "I can help with budgeting, saving, debt, investing, taxes, insurance, and retirement planning. Ask me about any of these."
	if profile == nil {
		return base + " Setting up your profile lets me personalize the numbers."
	}
	if profile.Name != "" {
		return fmt.Sprintf("%s, %s", profile.Name, base)
	}
	return base
}

// contextualTips adds follow-ups drawn from the recorded spending: any
// category above the high-expense share of income is flagged.
func (g *Generator) contextualTips(profile *entity.Profile, expenses []*entity.Expense) []string {
	if profile == nil || len(expenses) == 0 {
		return nil
	}
	income := profile.MonthlyIncome()
	if !income.IsPositive() {
		return nil
	}

	threshold := income.Mul(decimal.NewFromFloat(g.rules.HighExpenseThreshold))

	byCategory := entity.ExpensesByCategory(expenses)
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var tips []string
	for _, category := range categories {
		if category == "Housing" {
			// Housing has its own, higher budget threshold.
			continue
		}
		if amount := byCategory[category]; amount.GreaterThan(threshold) {
			tips = append(tips, fmt.Sprintf("Your %s spending (%s/month) is above %.0f%% of your income. Worth a look.",
				category, amount.StringFixed(2), g.rules.HighExpenseThreshold*100))
		}
	}
	return tips
}
