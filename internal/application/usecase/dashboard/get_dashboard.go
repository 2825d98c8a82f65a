// Package dashboard assembles the chart-ready views of a session's data.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/application/usecase/health"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// projectionMonths is the horizon of the savings projection chart.
const projectionMonths = 12

// assumedAnnualReturn is the growth rate applied to the projected balance.
const assumedAnnualReturn = 0.05

// GetDashboardInput represents the input for assembling the dashboard.
type GetDashboardInput struct {
	SessionID uuid.UUID
}

// GetDashboardOutput represents the output of assembling the dashboard.
type GetDashboardOutput struct {
	Score      *entity.HealthScore
	Breakdown  []adapter.BreakdownSlice
	Projection []adapter.ProjectionPoint
}

// GetDashboardUseCase builds the health score, the expense breakdown and
// the twelve-month savings projection in one pass.
type GetDashboardUseCase struct {
	sessionRepo adapter.SessionRepository
	calculator  *health.Calculator
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(sessionRepo adapter.SessionRepository, calculator *health.Calculator) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		sessionRepo: sessionRepo,
		calculator:  calculator,
	}
}

// Execute assembles the dashboard. A profile must have been saved first.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Profile == nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileNotFound,
			"save a profile before requesting the dashboard",
			domainerror.ErrProfileNotFound,
		)
	}

	return &GetDashboardOutput{
		Score:      uc.calculator.Compute(sess.Profile, sess.Expenses),
		Breakdown:  BuildBreakdown(sess.Expenses),
		Projection: BuildProjection(sess.Profile, sess.Expenses, time.Now().UTC()),
	}, nil
}

// BuildBreakdown converts expense records into chart slices sorted by
// amount descending, ties broken by label.
func BuildBreakdown(expenses []*entity.Expense) []adapter.BreakdownSlice {
	byCategory := entity.ExpensesByCategory(expenses)
	if len(byCategory) == 0 {
		return nil
	}

	total, _ := entity.TotalExpenses(expenses).Float64()

	slices := make([]adapter.BreakdownSlice, 0, len(byCategory))
	for category, amount := range byCategory {
		amt, _ := amount.Float64()
		pct := 0.0
		if total > 0 {
			pct = amt / total * 100
		}
		slices = append(slices, adapter.BreakdownSlice{
			Label:      category,
			Amount:     amt,
			Percentage: pct,
		})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Amount == slices[j].Amount {
			return slices[i].Label < slices[j].Label
		}
		return slices[i].Amount > slices[j].Amount
	})
	return slices
}

// BuildProjection projects the savings balance forward month by month: the
// balance grows at the assumed return and the monthly surplus is added.
// Recorded expenses replace the declared monthly figure when present. A
// negative surplus draws the balance down; the projection never goes below
// zero.
func BuildProjection(profile *entity.Profile, expenses []*entity.Expense, from time.Time) []adapter.ProjectionPoint {
	balance, _ := profile.SavingsBalance.Float64()
	income, _ := profile.MonthlyIncome().Float64()

	spend, _ := profile.MonthlyExpenses.Float64()
	if len(expenses) > 0 {
		spend, _ = entity.TotalExpenses(expenses).Float64()
	}
	surplus := income - spend
	monthlyRate := assumedAnnualReturn / 12

	points := make([]adapter.ProjectionPoint, 0, projectionMonths+1)
	points = append(points, adapter.ProjectionPoint{Date: from, Balance: balance})

	for i := 1; i <= projectionMonths; i++ {
		balance = balance*(1+monthlyRate) + surplus
		if balance < 0 {
			balance = 0
		}
		points = append(points, adapter.ProjectionPoint{
			Date:    from.AddDate(0, i, 0),
			Balance: balance,
		})
	}
	return points
}
