package score

import (
	"fmt"
	"math"

	"github.com/parcelfair/assessment-api/schema"
)

const (
	// DefaultMillRate is tax dollars per $1,000 of assessed value.
	DefaultMillRate = 65.0

	// WorthwhileAnnualSavings is the annual savings, in cents, above which
	// filing an appeal is considered worth the effort ($100/year).
	WorthwhileAnnualSavings int64 = 10000

	fiveYearHorizon = 5
)

var (
	ErrInvalidMillRate      = fmt.Errorf("mill rate must be greater than zero")
	ErrInvalidAssessedValue = fmt.Errorf("assessed value must not be negative")
	ErrInvalidTargetRatio   = fmt.Errorf("target ratio must be within (0, 1]")
	ErrInvalidTotalValue    = fmt.Errorf("total value must be greater than zero")
)

// SavingsEstimator turns an assessment reduction into projected tax savings.
// All arithmetic is in integer cents, rounded half away from zero at each
// step; presentation layers do the dollar conversion.
type SavingsEstimator struct {
	defaultMillRate float64
}

func NewSavingsEstimator(defaultMillRate float64) *SavingsEstimator {
	if defaultMillRate <= 0 {
		defaultMillRate = DefaultMillRate
	}
	return &SavingsEstimator{defaultMillRate: defaultMillRate}
}

// AnnualTaxCents applies the statutory levy formula:
// round(assessed_cents x mill_rate / 1000).
func AnnualTaxCents(assessedCents int64, millRate float64) int64 {
	return RoundCents(float64(assessedCents) * millRate / 1000)
}

// Estimate projects the tax effect of moving from the current to the target
// assessed value. A mill rate of 0 selects the configured default. Savings
// never go negative: a target at or above the current assessment yields zero
// savings and is never worthwhile.
func (s *SavingsEstimator) Estimate(currentAssessed, targetAssessed int64, millRate float64) (*schema.SavingsEstimate, error) {
	rate, err := s.resolveMillRate(millRate)
	if err != nil {
		return nil, err
	}
	if currentAssessed < 0 || targetAssessed < 0 {
		return nil, ErrInvalidAssessedValue
	}

	currentTax := AnnualTaxCents(currentAssessed, rate)
	targetTax := AnnualTaxCents(targetAssessed, rate)

	var reduction, annualSavings int64
	var reductionPct float64
	if targetAssessed < currentAssessed {
		reduction = currentAssessed - targetAssessed
		reductionPct = Round2(float64(reduction) / float64(currentAssessed) * 100)
		if diff := currentTax - targetTax; diff > 0 {
			annualSavings = diff
		}
	}

	return &schema.SavingsEstimate{
		CurrentAssessed:  currentAssessed,
		TargetAssessed:   targetAssessed,
		ReductionAmount:  reduction,
		ReductionPercent: reductionPct,
		CurrentAnnualTax: currentTax,
		TargetAnnualTax:  targetTax,
		AnnualSavings:    annualSavings,
		FiveYearSavings:  annualSavings * fiveYearHorizon,
		MillRate:         rate,
		IsWorthwhile:     annualSavings >= WorthwhileAnnualSavings,
	}, nil
}

// EstimateFromRatio derives the target assessed value from the property's
// total market value and a target assessment ratio, then delegates to
// Estimate.
func (s *SavingsEstimator) EstimateFromRatio(currentAssessed, currentTotal int64, targetRatio, millRate float64) (*schema.SavingsEstimate, error) {
	if targetRatio <= 0 || targetRatio > 1 || math.IsNaN(targetRatio) {
		return nil, ErrInvalidTargetRatio
	}
	if currentTotal <= 0 {
		return nil, ErrInvalidTotalValue
	}

	targetAssessed := RoundCents(float64(currentTotal) * targetRatio)
	return s.Estimate(currentAssessed, targetAssessed, millRate)
}

func (s *SavingsEstimator) resolveMillRate(millRate float64) (float64, error) {
	if millRate == 0 {
		return s.defaultMillRate, nil
	}
	if millRate < 0 || math.IsNaN(millRate) {
		return 0, ErrInvalidMillRate
	}
	return millRate, nil
}
