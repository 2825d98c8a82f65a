// Package profile contains profile-related use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/domain/valueobject"
)

const (
	minAge = 18
	maxAge = 100
)

// SaveProfileInput represents the input for saving a profile.
type SaveProfileInput struct {
	SessionID       uuid.UUID
	Name            string
	Age             int
	AnnualIncome    decimal.Decimal
	Occupation      string
	SavingsBalance  decimal.Decimal
	DebtBalance     decimal.Decimal
	MonthlyExpenses decimal.Decimal
	RiskTolerance   entity.RiskTolerance
	UserType        entity.UserType
	Goals           []string
}

// SaveProfileOutput represents the output of saving a profile.
type SaveProfileOutput struct {
	Profile *entity.Profile
}

// SaveProfileUseCase validates and stores the profile on the session.
type SaveProfileUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewSaveProfileUseCase creates a new SaveProfileUseCase instance.
func NewSaveProfileUseCase(sessionRepo adapter.SessionRepository) *SaveProfileUseCase {
	return &SaveProfileUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute validates the input and replaces the session's profile.
func (uc *SaveProfileUseCase) Execute(ctx context.Context, input SaveProfileInput) (*SaveProfileOutput, error) {
	if err := uc.validate(&input); err != nil {
		return nil, err
	}

	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	prof := entity.NewProfile(input.Name, input.Age, input.AnnualIncome, valueobject.SanitizeText(input.Occupation))
	prof.SavingsBalance = input.SavingsBalance
	prof.DebtBalance = input.DebtBalance
	prof.MonthlyExpenses = input.MonthlyExpenses
	prof.RiskTolerance = input.RiskTolerance
	prof.UserType = input.UserType
	prof.Goals = dedupeGoals(input.Goals)

	sess.Profile = prof
	sess.Touch()

	if err := uc.sessionRepo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &SaveProfileOutput{
		Profile: prof,
	}, nil
}

// validate applies the input rules: age range, non-negative currency
// fields, monthly expenses within annual income, known enums, non-empty
// sanitized name.
func (uc *SaveProfileUseCase) validate(input *SaveProfileInput) error {
	input.Name = valueobject.SanitizeText(input.Name)
	if input.Name == "" {
		return domainerror.NewProfileError(
			domainerror.ErrCodeMissingName,
			"name is required",
			domainerror.ErrMissingName,
		)
	}

	if input.Age < minAge || input.Age > maxAge {
		return domainerror.NewProfileError(
			domainerror.ErrCodeInvalidAge,
			fmt.Sprintf("age must be between %d and %d", minAge, maxAge),
			domainerror.ErrInvalidAge,
		)
	}

	for _, amount := range []decimal.Decimal{input.AnnualIncome, input.SavingsBalance, input.DebtBalance, input.MonthlyExpenses} {
		if amount.IsNegative() {
			return domainerror.NewProfileError(
				domainerror.ErrCodeNegativeAmount,
				"currency amounts cannot be negative",
				domainerror.ErrNegativeAmount,
			)
		}
	}

	if input.AnnualIncome.IsPositive() && input.MonthlyExpenses.GreaterThan(input.AnnualIncome) {
		return domainerror.NewProfileError(
			domainerror.ErrCodeImplausibleExpenses,
			"monthly expenses cannot exceed annual income",
			domainerror.ErrImplausibleExpenses,
		)
	}

	if input.RiskTolerance != "" && !entity.IsValidRiskTolerance(input.RiskTolerance) {
		return domainerror.NewProfileError(
			domainerror.ErrCodeInvalidRiskTolerance,
			"risk tolerance must be 'conservative', 'moderate', or 'aggressive'",
			domainerror.ErrInvalidRiskTolerance,
		)
	}

	if input.UserType != "" && !entity.IsValidUserType(input.UserType) {
		return domainerror.NewProfileError(
			domainerror.ErrCodeInvalidUserType,
			"user type must be 'student', 'professional', or 'retiree'",
			domainerror.ErrInvalidUserType,
		)
	}

	for i, goal := range input.Goals {
		input.Goals[i] = valueobject.SanitizeText(goal)
	}

	return nil
}

// dedupeGoals removes duplicate and empty goal tags, preserving order.
func dedupeGoals(goals []string) []string {
	seen := make(map[string]struct{}, len(goals))
	out := make([]string, 0, len(goals))
	for _, g := range goals {
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
