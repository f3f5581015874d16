package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEstimator() *SavingsEstimator {
	return NewSavingsEstimator(DefaultMillRate)
}

// $70k assessed reduced to $60k at 65 mills saves $650/year.
func TestEstimateReduction(t *testing.T) {
	estimate, err := newTestEstimator().Estimate(7000000, 6000000, 65.0)
	assert.NoError(t, err)

	assert.Equal(t, int64(1000000), estimate.ReductionAmount)
	assert.Equal(t, 14.29, estimate.ReductionPercent)
	assert.Equal(t, int64(455000), estimate.CurrentAnnualTax)
	assert.Equal(t, int64(390000), estimate.TargetAnnualTax)
	assert.Equal(t, int64(65000), estimate.AnnualSavings)
	assert.Equal(t, int64(325000), estimate.FiveYearSavings)
	assert.Equal(t, 65.0, estimate.MillRate)
	assert.True(t, estimate.IsWorthwhile)
}

func TestEstimateClampsNegativeSavings(t *testing.T) {
	for _, target := range []int64{7000000, 7000001, 9000000} {
		estimate, err := newTestEstimator().Estimate(7000000, target, 65.0)
		assert.NoError(t, err)

		assert.Equal(t, int64(0), estimate.AnnualSavings, "target %d", target)
		assert.Equal(t, int64(0), estimate.FiveYearSavings, "target %d", target)
		assert.Equal(t, int64(0), estimate.ReductionAmount, "target %d", target)
		assert.Equal(t, float64(0), estimate.ReductionPercent, "target %d", target)
		assert.False(t, estimate.IsWorthwhile, "target %d", target)
	}
}

func TestEstimateFiveYearIdentity(t *testing.T) {
	cases := []struct {
		current int64
		target  int64
		rate    float64
	}{
		{7000000, 6000000, 65.0},
		{7000000, 6999999, 65.0},
		{123456789, 98765432, 42.7},
		{5000000, 0, 80.0},
		{5000000, 5000000, 65.0},
	}
	for _, c := range cases {
		estimate, err := newTestEstimator().Estimate(c.current, c.target, c.rate)
		assert.NoError(t, err)
		assert.Equal(t, estimate.AnnualSavings*5, estimate.FiveYearSavings)
	}
}

func TestEstimateWorthwhileThreshold(t *testing.T) {
	// $100/year exactly is worthwhile
	estimate, err := newTestEstimator().Estimate(7000000, 7000000-WorthwhileAnnualSavings*1000/65, 65.0)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, estimate.AnnualSavings, WorthwhileAnnualSavings)
	assert.True(t, estimate.IsWorthwhile)

	// a dollar a year is not
	estimate, err = newTestEstimator().Estimate(7000000, 6998462, 65.0)
	assert.NoError(t, err)
	assert.Less(t, estimate.AnnualSavings, WorthwhileAnnualSavings)
	assert.False(t, estimate.IsWorthwhile)
}

func TestEstimateUsesDefaultMillRateWhenUnspecified(t *testing.T) {
	estimate, err := NewSavingsEstimator(50.0).Estimate(7000000, 6000000, 0)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, estimate.MillRate)
	assert.Equal(t, int64(50000), estimate.AnnualSavings)
}

func TestEstimateRejectsNegativeMillRate(t *testing.T) {
	_, err := newTestEstimator().Estimate(7000000, 6000000, -1)
	assert.Equal(t, ErrInvalidMillRate, err)
}

func TestEstimateRejectsNegativeAssessedValues(t *testing.T) {
	_, err := newTestEstimator().Estimate(-1, 6000000, 65.0)
	assert.Equal(t, ErrInvalidAssessedValue, err)

	_, err = newTestEstimator().Estimate(7000000, -1, 65.0)
	assert.Equal(t, ErrInvalidAssessedValue, err)
}

func TestEstimateFromRatio(t *testing.T) {
	// median market value $300k at 20% => $60k target assessed
	estimate, err := newTestEstimator().EstimateFromRatio(7000000, 30000000, 0.20, 65.0)
	assert.NoError(t, err)

	assert.Equal(t, int64(6000000), estimate.TargetAssessed)
	assert.Equal(t, int64(65000), estimate.AnnualSavings)
	assert.True(t, estimate.IsWorthwhile)
}

func TestEstimateFromRatioRejectsOutOfRangeRatio(t *testing.T) {
	for _, ratio := range []float64{0, -0.2, 1.01} {
		_, err := newTestEstimator().EstimateFromRatio(7000000, 30000000, ratio, 65.0)
		assert.Equal(t, ErrInvalidTargetRatio, err, "ratio %v", ratio)
	}
}

func TestEstimateFromRatioRejectsNonPositiveTotal(t *testing.T) {
	for _, total := range []int64{0, -100} {
		_, err := newTestEstimator().EstimateFromRatio(7000000, total, 0.20, 65.0)
		assert.Equal(t, ErrInvalidTotalValue, err, "total %d", total)
	}
}

func TestAnnualTaxCentsRounding(t *testing.T) {
	// 1234567 * 65 / 1000 = 80246.855, rounds half away from zero
	assert.Equal(t, int64(80247), AnnualTaxCents(1234567, 65.0))
	assert.Equal(t, int64(0), AnnualTaxCents(0, 65.0))
}
