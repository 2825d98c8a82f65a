package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/finova/backend/internal/domain/entity"
)

type fakeInteractionLog struct {
	counts map[entity.Intent]int64
	err    error
}

func (l *fakeInteractionLog) Record(context.Context, *entity.Interaction) error {
	return nil
}

func (l *fakeInteractionLog) CountByIntent(context.Context) (map[entity.Intent]int64, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.counts, nil
}

func TestIntentStatsAggregates(t *testing.T) {
	uc := NewIntentStatsUseCase(&fakeInteractionLog{counts: map[entity.Intent]int64{
		entity.IntentBudgeting: 3,
		entity.IntentDebt:      2,
	}})

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Total != 5 {
		t.Errorf("Total = %d, want 5", out.Total)
	}
	if out.Counts[entity.IntentBudgeting] != 3 {
		t.Errorf("budgeting count = %d, want 3", out.Counts[entity.IntentBudgeting])
	}
}

func TestIntentStatsEmptyLog(t *testing.T) {
	uc := NewIntentStatsUseCase(&fakeInteractionLog{counts: map[entity.Intent]int64{}})

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 0 {
		t.Errorf("Total = %d, want 0", out.Total)
	}
}

func TestIntentStatsRepositoryFailure(t *testing.T) {
	uc := NewIntentStatsUseCase(&fakeInteractionLog{err: errors.New("db down")})

	if _, err := uc.Execute(context.Background()); err == nil {
		t.Error("expected an error when the repository fails")
	}
}
