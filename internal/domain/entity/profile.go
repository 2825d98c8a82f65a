// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskTolerance represents a user's investment risk appetite.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// UserType represents the broad life stage of a user.
type UserType string

const (
	UserTypeStudent      UserType = "student"
	UserTypeProfessional UserType = "professional"
	UserTypeRetiree      UserType = "retiree"
)

// Profile represents a user's financial profile for the lifetime of a
// session. It is never persisted beyond the session store.
type Profile struct {
	Name            string
	Age             int
	AnnualIncome    decimal.Decimal
	Occupation      string
	SavingsBalance  decimal.Decimal
	DebtBalance     decimal.Decimal
	MonthlyExpenses decimal.Decimal
	RiskTolerance   RiskTolerance
	UserType        UserType
	Goals           []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewProfile creates a new Profile entity.
func NewProfile(name string, age int, annualIncome decimal.Decimal, occupation string) *Profile {
	now := time.Now().UTC()

	return &Profile{
		Name:         name,
		Age:          age,
		AnnualIncome: annualIncome,
		Occupation:   occupation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MonthlyIncome derives the monthly income from the annual figure.
func (p *Profile) MonthlyIncome() decimal.Decimal {
	return p.AnnualIncome.Div(decimal.NewFromInt(12))
}

// MonthlySurplus is the monthly income left after the declared monthly
// expenses. Negative when the user spends more than they earn.
func (p *Profile) MonthlySurplus() decimal.Decimal {
	return p.MonthlyIncome().Sub(p.MonthlyExpenses)
}

// HasGoal reports whether the profile contains the given goal tag.
func (p *Profile) HasGoal(goal string) bool {
	for _, g := range p.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// IsValidRiskTolerance validates a risk tolerance value.
func IsValidRiskTolerance(r RiskTolerance) bool {
	return r == RiskConservative || r == RiskModerate || r == RiskAggressive
}

// IsValidUserType validates a user type value.
func IsValidUserType(u UserType) bool {
	return u == UserTypeStudent || u == UserTypeProfessional || u == UserTypeRetiree
}
