package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parcelfair/assessment-api/schema"
)

func newTestScorer() *FairnessScorer {
	return NewFairnessScorer(0.20, 65.0)
}

// Subject at $350k against comparables $280k-$320k (median $300k), statutory
// ratio 20%, mill rate 65.
func TestScoreOverAssessedSubject(t *testing.T) {
	comparables := []int64{28000000, 29000000, 30000000, 31000000, 32000000}

	result, err := newTestScorer().Score(35000000, comparables)
	assert.NoError(t, err)

	assert.Equal(t, int64(30000000), result.MedianValue)
	assert.Equal(t, float64(30000000), result.MeanValue)
	assert.Equal(t, 1581138.83, result.StdDev)
	assert.InDelta(t, 3.1623, result.ZScore, 0.0001)
	assert.Equal(t, float64(100), result.Percentile)
	assert.Equal(t, 14.66, result.FairnessScore)
	assert.Equal(t, schema.InterpretationOverAssessed, result.Interpretation)
	assert.Equal(t, int64(5000000), result.OverAssessment)
	// assessed at ratio: $70k current vs $60k target, 65 mills => $650/yr
	assert.Equal(t, int64(65000), result.PotentialAnnualSavings)
	assert.Equal(t, 5, result.ComparableCount)
	assert.Equal(t, 4.0, result.CoefficientOfDispersion)
}

func TestScoreSubjectAtMedian(t *testing.T) {
	comparables := []int64{28000000, 30000000, 32000000}

	result, err := newTestScorer().Score(30000000, comparables)
	assert.NoError(t, err)

	assert.Equal(t, float64(100), result.FairnessScore)
	assert.Equal(t, schema.InterpretationFair, result.Interpretation)
	assert.Equal(t, float64(0), result.ZScore)
	assert.Equal(t, int64(0), result.OverAssessment)
	assert.Equal(t, int64(0), result.PotentialAnnualSavings)
}

func TestScoreSubjectBelowMedian(t *testing.T) {
	comparables := []int64{28000000, 30000000, 32000000}

	result, err := newTestScorer().Score(25000000, comparables)
	assert.NoError(t, err)

	assert.Equal(t, float64(100), result.FairnessScore)
	assert.Equal(t, int64(0), result.OverAssessment)
	assert.Equal(t, int64(0), result.PotentialAnnualSavings)
}

func TestScoreMonotonicInSubjectValue(t *testing.T) {
	comparables := []int64{28000000, 29000000, 30000000, 31000000, 32000000}
	scorer := newTestScorer()

	previous := float64(101)
	for subject := int64(25000000); subject <= 45000000; subject += 500000 {
		result, err := scorer.Score(subject, comparables)
		assert.NoError(t, err)
		assert.LessOrEqual(t, result.FairnessScore, previous, "fairness score increased at subject value %d", subject)
		assert.GreaterOrEqual(t, result.FairnessScore, float64(0))
		assert.LessOrEqual(t, result.FairnessScore, float64(100))
		previous = result.FairnessScore
	}
}

func TestScoreJustAboveMedianStaysInOverAssessedRange(t *testing.T) {
	comparables := []int64{28000000, 29000000, 30000000, 31000000, 32000000}

	result, err := newTestScorer().Score(30000001, comparables)
	assert.NoError(t, err)

	assert.Less(t, result.FairnessScore, FairBandFloor)
	assert.Equal(t, schema.InterpretationOverAssessed, result.Interpretation)
}

func TestScoreZeroDispersionSubjectEqual(t *testing.T) {
	comparables := []int64{30000000, 30000000, 30000000}

	result, err := newTestScorer().Score(30000000, comparables)
	assert.NoError(t, err)

	assert.Equal(t, float64(0), result.ZScore)
	assert.Equal(t, float64(100), result.FairnessScore)
}

func TestScoreZeroDispersionSubjectAbove(t *testing.T) {
	comparables := []int64{30000000, 30000000, 30000000}

	result, err := newTestScorer().Score(31000000, comparables)
	assert.NoError(t, err)

	assert.Equal(t, zeroDispersionZ, result.ZScore)
	assert.Equal(t, float64(0), result.FairnessScore)
}

func TestScoreZeroDispersionSubjectBelow(t *testing.T) {
	comparables := []int64{30000000, 30000000, 30000000}

	result, err := newTestScorer().Score(29000000, comparables)
	assert.NoError(t, err)

	assert.Equal(t, -zeroDispersionZ, result.ZScore)
	assert.Equal(t, float64(100), result.FairnessScore)
}

func TestScoreConfidenceCappedBelowThreeComparables(t *testing.T) {
	scorer := newTestScorer()

	result, err := scorer.Score(30000000, []int64{30000000, 30000000})
	assert.NoError(t, err)
	assert.LessOrEqual(t, result.Confidence, lowCountConfidenceCap)

	result, err = scorer.Score(30000000, []int64{30000000})
	assert.NoError(t, err)
	assert.LessOrEqual(t, result.Confidence, lowCountConfidenceCap)
}

func TestScoreConfidenceGrowsWithCount(t *testing.T) {
	scorer := newTestScorer()

	few, err := scorer.Score(30000000, []int64{29000000, 30000000, 31000000})
	assert.NoError(t, err)

	many, err := scorer.Score(30000000, []int64{29000000, 29500000, 30000000, 30000000, 30500000, 31000000})
	assert.NoError(t, err)

	assert.Greater(t, many.Confidence, few.Confidence)
}

func TestScoreFiltersNonPositiveComparables(t *testing.T) {
	result, err := newTestScorer().Score(30000000, []int64{0, -100, 30000000})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.ComparableCount)
}

func TestScoreFailsWithoutPositiveComparables(t *testing.T) {
	_, err := newTestScorer().Score(30000000, []int64{0, -100})
	assert.Equal(t, ErrNoComparableValues, err)

	_, err = newTestScorer().Score(30000000, []int64{})
	assert.Equal(t, ErrNoComparableValues, err)
}

func TestScoreFailsOnNonPositiveSubject(t *testing.T) {
	_, err := newTestScorer().Score(0, []int64{30000000})
	assert.Equal(t, ErrInvalidSubjectValue, err)

	_, err = newTestScorer().Score(-5, []int64{30000000})
	assert.Equal(t, ErrInvalidSubjectValue, err)
}

func TestRecommendedActionBands(t *testing.T) {
	cases := []struct {
		score    float64
		expected schema.RecommendedAction
	}{
		{100, schema.ActionNone},
		{70, schema.ActionNone},
		{69.99, schema.ActionMonitor},
		{69, schema.ActionMonitor},
		{50, schema.ActionMonitor},
		{49.99, schema.ActionAppeal},
		{49, schema.ActionAppeal},
		{30, schema.ActionAppeal},
		{29, schema.ActionAppeal},
		{0, schema.ActionAppeal},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, RecommendedAction(c.score), "score %v", c.score)
	}
}
