// Package calculator implements the deterministic financial calculators.
package calculator

import (
	"errors"
	"math"
)

// Calculator inputs are validated here rather than in the transport layer
// so every caller gets the same bounds.
var (
	ErrNegativeInput = errors.New("calculator inputs cannot be negative")
	ErrZeroTerm      = errors.New("term must be greater than zero")
)

const monthsPerYear = 12

// CompoundInterestInput describes a lump sum with optional monthly
// contributions compounding monthly.
type CompoundInterestInput struct {
	Principal           float64
	AnnualRate          float64 // e.g. 0.07 for 7%
	Years               int
	MonthlyContribution float64
}

// CompoundInterestResult breaks the future value into its parts.
type CompoundInterestResult struct {
	FutureValue      float64
	TotalContributed float64
	InterestEarned   float64
}

// CompoundInterest computes the future value with monthly compounding.
func CompoundInterest(input CompoundInterestInput) (*CompoundInterestResult, error) {
	if input.Principal < 0 || input.AnnualRate < 0 || input.MonthlyContribution < 0 {
		return nil, ErrNegativeInput
	}
	if input.Years <= 0 {
		return nil, ErrZeroTerm
	}

	months := float64(input.Years * monthsPerYear)
	monthlyRate := input.AnnualRate / monthsPerYear

	var futureValue float64
	if monthlyRate == 0 {
		futureValue = input.Principal + input.MonthlyContribution*months
	} else {
		growth := math.Pow(1+monthlyRate, months)
		futureValue = input.Principal*growth + input.MonthlyContribution*(growth-1)/monthlyRate
	}

	contributed := input.Principal + input.MonthlyContribution*months
	return &CompoundInterestResult{
		FutureValue:      round2(futureValue),
		TotalContributed: round2(contributed),
		InterestEarned:   round2(futureValue - contributed),
	}, nil
}

// LoanPaymentInput describes an amortized loan.
type LoanPaymentInput struct {
	Principal  float64
	AnnualRate float64
	Years      int
}

// LoanPaymentResult is the fixed monthly payment with lifetime totals.
type LoanPaymentResult struct {
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
}

// LoanPayment computes the fixed monthly payment for a fully amortized
// loan. A zero rate divides the principal evenly across the term.
func LoanPayment(input LoanPaymentInput) (*LoanPaymentResult, error) {
	if input.Principal < 0 || input.AnnualRate < 0 {
		return nil, ErrNegativeInput
	}
	if input.Years <= 0 {
		return nil, ErrZeroTerm
	}

	months := float64(input.Years * monthsPerYear)
	monthlyRate := input.AnnualRate / monthsPerYear

	var payment float64
	if monthlyRate == 0 {
		payment = input.Principal / months
	} else {
		growth := math.Pow(1+monthlyRate, months)
		payment = input.Principal * monthlyRate * growth / (growth - 1)
	}

	total := payment * months
	return &LoanPaymentResult{
		MonthlyPayment: round2(payment),
		TotalPaid:      round2(total),
		TotalInterest:  round2(total - input.Principal),
	}, nil
}

// RetirementNeedsInput describes a retirement savings target.
type RetirementNeedsInput struct {
	CurrentAge          int
	RetirementAge       int
	DesiredAnnualIncome float64
	CurrentSavings      float64
	// ExpectedAnnualReturn is the assumed growth rate while saving.
	ExpectedAnnualReturn float64
}

// RetirementNeedsResult is the target corpus and the monthly saving
// required to reach it.
type RetirementNeedsResult struct {
	TargetCorpus          float64
	YearsToRetirement     int
	RequiredMonthlySaving float64
}

// withdrawalMultiple follows the 4% safe-withdrawal rule: the corpus is 25
// times the desired annual income.
const withdrawalMultiple = 25

// RetirementNeeds computes the corpus required to sustain the desired
// income and the monthly contribution needed to close the gap by the
// retirement age.
func RetirementNeeds(input RetirementNeedsInput) (*RetirementNeedsResult, error) {
	if input.DesiredAnnualIncome < 0 || input.CurrentSavings < 0 || input.ExpectedAnnualReturn < 0 {
		return nil, ErrNegativeInput
	}
	if input.RetirementAge <= input.CurrentAge {
		return nil, ErrZeroTerm
	}

	years := input.RetirementAge - input.CurrentAge
	months := float64(years * monthsPerYear)
	monthlyRate := input.ExpectedAnnualReturn / monthsPerYear
	target := input.DesiredAnnualIncome * withdrawalMultiple

	var projectedSavings, annuityFactor float64
	if monthlyRate == 0 {
		projectedSavings = input.CurrentSavings
		annuityFactor = months
	} else {
		growth := math.Pow(1+monthlyRate, months)
		projectedSavings = input.CurrentSavings * growth
		annuityFactor = (growth - 1) / monthlyRate
	}

	gap := target - projectedSavings
	required := 0.0
	if gap > 0 {
		required = gap / annuityFactor
	}

	return &RetirementNeedsResult{
		TargetCorpus:          round2(target),
		YearsToRetirement:     years,
		RequiredMonthlySaving: round2(required),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
