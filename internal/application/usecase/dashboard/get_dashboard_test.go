package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/domain/entity"
)

func TestBuildBreakdown(t *testing.T) {
	expenses := []*entity.Expense{
		entity.NewExpense("Food", decimal.NewFromInt(500), ""),
		entity.NewExpense("Housing", decimal.NewFromInt(1500), ""),
		entity.NewExpense("Food", decimal.NewFromInt(500), ""),
	}

	slices := BuildBreakdown(expenses)
	if len(slices) != 2 {
		t.Fatalf("slices = %d, want 2", len(slices))
	}

	if slices[0].Label != "Housing" || slices[0].Amount != 1500 {
		t.Errorf("slices[0] = %+v, want Housing 1500", slices[0])
	}
	if slices[1].Label != "Food" || slices[1].Amount != 1000 {
		t.Errorf("slices[1] = %+v, want Food 1000", slices[1])
	}
	if slices[0].Percentage != 60 || slices[1].Percentage != 40 {
		t.Errorf("percentages = %v, %v, want 60, 40", slices[0].Percentage, slices[1].Percentage)
	}
}

func TestBuildBreakdownEmpty(t *testing.T) {
	if slices := BuildBreakdown(nil); slices != nil {
		t.Errorf("slices = %v, want nil", slices)
	}
}

func TestBuildProjection(t *testing.T) {
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	profile := &entity.Profile{
		AnnualIncome:    decimal.NewFromInt(60000), // 5000/month
		SavingsBalance:  decimal.NewFromInt(10000),
		MonthlyExpenses: decimal.NewFromInt(4000),
	}

	points := BuildProjection(profile, nil, from)
	if len(points) != 13 {
		t.Fatalf("points = %d, want 13 (now plus twelve months)", len(points))
	}
	if points[0].Balance != 10000 {
		t.Errorf("starting balance = %v, want 10000", points[0].Balance)
	}
	if !points[12].Date.Equal(from.AddDate(0, 12, 0)) {
		t.Errorf("final date = %v, want one year out", points[12].Date)
	}

	// Positive surplus plus growth: strictly increasing.
	for i := 1; i < len(points); i++ {
		if points[i].Balance <= points[i-1].Balance {
			t.Fatalf("balance should increase month over month, got %v then %v",
				points[i-1].Balance, points[i].Balance)
		}
	}
	// One month in: 10000 grown one month plus the 1000 surplus.
	if points[1].Balance < 11000 || points[1].Balance > 11100 {
		t.Errorf("month one balance = %v, want just above 11000", points[1].Balance)
	}
}

func TestBuildProjectionDeficitFloorsAtZero(t *testing.T) {
	profile := &entity.Profile{
		AnnualIncome:    decimal.NewFromInt(12000), // 1000/month
		SavingsBalance:  decimal.NewFromInt(5000),
		MonthlyExpenses: decimal.NewFromInt(3000),
	}

	points := BuildProjection(profile, nil, time.Now().UTC())
	for _, p := range points {
		if p.Balance < 0 {
			t.Fatalf("balance went negative: %v", p.Balance)
		}
	}
	if final := points[len(points)-1].Balance; final != 0 {
		t.Errorf("final balance = %v, want 0 after sustained deficit", final)
	}
}

func TestBuildProjectionUsesRecordedExpenses(t *testing.T) {
	profile := &entity.Profile{
		AnnualIncome:    decimal.NewFromInt(60000),
		SavingsBalance:  decimal.NewFromInt(10000),
		MonthlyExpenses: decimal.NewFromInt(100), // stale declared figure
	}
	expenses := []*entity.Expense{
		entity.NewExpense("Housing", decimal.NewFromInt(6000), ""),
	}

	points := BuildProjection(profile, expenses, time.Now().UTC())
	// Recorded spending of 6000 against 5000 income is a deficit.
	if points[1].Balance >= points[0].Balance {
		t.Errorf("recorded expenses should drive the projection down, got %v then %v",
			points[0].Balance, points[1].Balance)
	}
}
