package expense

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/domain/valueobject"
)

// AnalyzeSpendingInput represents the input for spending analysis.
type AnalyzeSpendingInput struct {
	SessionID uuid.UUID
}

// CategoryShare is one category's slice of the spending analysis.
type CategoryShare struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64
}

// AnalyzeSpendingOutput represents the output of spending analysis.
type AnalyzeSpendingOutput struct {
	Total           decimal.Decimal
	Shares          []CategoryShare // sorted by amount, descending
	HighestCategory string
	LowestCategory  string
	Recommendations []string
}

// AnalyzeSpendingUseCase summarizes spending patterns and produces
// category-level recommendations.
type AnalyzeSpendingUseCase struct {
	sessionRepo adapter.SessionRepository
	rules       valueobject.AdvisorRules
}

// NewAnalyzeSpendingUseCase creates a new AnalyzeSpendingUseCase instance.
func NewAnalyzeSpendingUseCase(sessionRepo adapter.SessionRepository, rules valueobject.AdvisorRules) *AnalyzeSpendingUseCase {
	return &AnalyzeSpendingUseCase{
		sessionRepo: sessionRepo,
		rules:       rules,
	}
}

// Execute computes per-category shares, extremes and recommendations.
func (uc *AnalyzeSpendingUseCase) Execute(ctx context.Context, input AnalyzeSpendingInput) (*AnalyzeSpendingOutput, error) {
	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if len(sess.Expenses) == 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNoExpenses,
			"no expenses recorded for this session",
			domainerror.ErrNoExpenses,
		)
	}

	byCategory := entity.ExpensesByCategory(sess.Expenses)
	total := entity.TotalExpenses(sess.Expenses)

	shares := make([]CategoryShare, 0, len(byCategory))
	for category, amount := range byCategory {
		pct := 0.0
		if total.IsPositive() {
			pct, _ = amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		shares = append(shares, CategoryShare{
			Category:   category,
			Amount:     amount,
			Percentage: pct,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Category < shares[j].Category
		}
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})

	output := &AnalyzeSpendingOutput{
		Total:           total,
		Shares:          shares,
		HighestCategory: shares[0].Category,
		LowestCategory:  shares[len(shares)-1].Category,
	}
	output.Recommendations = uc.recommendations(shares)

	return output, nil
}

// recommendations flags discretionary categories above 20% of spending and
// housing above 30%.
func (uc *AnalyzeSpendingUseCase) recommendations(shares []CategoryShare) []string {
	var recs []string
	for _, share := range shares {
		lower := strings.ToLower(share.Category)
		switch {
		case (lower == "entertainment" || lower == "shopping") && share.Percentage > 20:
			recs = append(recs, fmt.Sprintf(
				"Consider reducing %s spending (currently %.1f%% of expenses)",
				share.Category, share.Percentage))
		case lower == "housing" && share.Percentage > 30:
			recs = append(recs, fmt.Sprintf(
				"Housing costs are high (%.1f%% of expenses). Consider options to reduce.",
				share.Percentage))
		}
	}
	return recs
}
