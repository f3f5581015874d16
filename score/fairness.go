package score

import (
	"fmt"

	"github.com/parcelfair/assessment-api/schema"
)

// Fairness band boundaries. Higher score = more fairly assessed.
// 70-100 fairly assessed, 50-69 slightly over, 30-49 moderately over,
// 0-29 significantly over.
const (
	FairBandFloor    = 70.0
	MonitorBandFloor = 50.0
	StrongBandCeil   = 29.0
)

const (
	// fairnessDecaySlope maps the z-score above the median onto the 0-69
	// over-assessed range; the score reaches 0 at z = 4.
	fairnessDecaySlope = 17.5

	// zeroDispersionZ caps the z-score when every comparable carries the
	// same value and the subject deviates from it.
	zeroDispersionZ = 10.0

	// minComparablesForFullConfidence is the comparable count below which
	// confidence is hard-capped.
	minComparablesForFullConfidence = 3
	lowCountConfidenceCap           = 50.0
)

var (
	ErrNoComparableValues  = fmt.Errorf("no positive comparable values")
	ErrInvalidSubjectValue = fmt.Errorf("subject value must be greater than zero")
)

// FairnessScorer compares a subject's market value against its comparables.
// The jurisdiction applies one statutory assessment ratio across the board,
// which makes ratio comparison uninformative; absolute market values are
// compared instead.
type FairnessScorer struct {
	assessmentRatio float64
	millRate        float64
}

func NewFairnessScorer(assessmentRatio, millRate float64) *FairnessScorer {
	if assessmentRatio <= 0 || assessmentRatio > 1 {
		assessmentRatio = 0.20
	}
	if millRate <= 0 {
		millRate = DefaultMillRate
	}
	return &FairnessScorer{
		assessmentRatio: assessmentRatio,
		millRate:        millRate,
	}
}

// Score computes the dispersion statistics and the 0-100 fairness score for
// a subject value (cents) against its comparables' values (cents).
// Non-positive comparable values are dropped before any statistic is taken;
// an empty remainder is an error, not a zero score.
func (s *FairnessScorer) Score(subjectValue int64, comparableValues []int64) (*schema.FairnessResult, error) {
	if subjectValue <= 0 {
		return nil, ErrInvalidSubjectValue
	}

	values := make([]int64, 0, len(comparableValues))
	for _, v := range comparableValues {
		if v > 0 {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, ErrNoComparableValues
	}

	median := MedianCents(values)
	mean := Mean(values)
	stdDev := SampleStdDev(values)
	z := zScore(subjectValue, median, stdDev)
	fairness := fairnessScore(subjectValue, median, z)

	interpretation := schema.InterpretationOverAssessed
	if fairness >= FairBandFloor {
		interpretation = schema.InterpretationFair
	}

	var overAssessment int64
	if subjectValue > median {
		overAssessment = subjectValue - median
	}

	return &schema.FairnessResult{
		SubjectValue:            subjectValue,
		MedianValue:             median,
		MeanValue:               Round2(mean),
		StdDev:                  Round2(stdDev),
		ZScore:                  z,
		Percentile:              PercentileRank(subjectValue, values),
		FairnessScore:           fairness,
		Confidence:              confidence(len(values), stdDev, median),
		ComparableCount:         len(values),
		CoefficientOfDispersion: CoefficientOfDispersion(values),
		Interpretation:          interpretation,
		OverAssessment:          overAssessment,
		PotentialAnnualSavings:  s.potentialAnnualSavings(subjectValue, median),
	}, nil
}

// RecommendedAction maps a fairness score onto the action bands.
func RecommendedAction(fairnessScore float64) schema.RecommendedAction {
	switch {
	case fairnessScore >= FairBandFloor:
		return schema.ActionNone
	case fairnessScore >= MonitorBandFloor:
		return schema.ActionMonitor
	default:
		return schema.ActionAppeal
	}
}

func zScore(subjectValue, median int64, stdDev float64) float64 {
	if stdDev > 0 {
		return (float64(subjectValue) - float64(median)) / stdDev
	}

	// all comparables identical
	switch {
	case subjectValue == median:
		return 0
	case subjectValue > median:
		return zeroDispersionZ
	default:
		return -zeroDispersionZ
	}
}

// fairnessScore is 100 at or below the median and decays monotonically with
// the z-score above it, capped into the over-assessed range [0, 69].
func fairnessScore(subjectValue, median int64, z float64) float64 {
	if subjectValue <= median {
		return 100
	}
	return Round2(Clamp(FairBandFloor-z*fairnessDecaySlope, 0, FairBandFloor-1))
}

// confidence grows with comparable count and shrinks with relative
// dispersion. Fewer than 3 comparables can never exceed 50, whatever the
// dispersion.
func confidence(count int, stdDev float64, median int64) float64 {
	cv := stdDev / float64(median)

	countComponent := float64(count) * 6
	if countComponent > 60 {
		countComponent = 60
	}
	dispersionComponent := Clamp(40*(1-cv/0.30), 0, 40)

	c := Clamp(countComponent+dispersionComponent, 0, 100)
	if count < minComparablesForFullConfidence && c > lowCountConfidenceCap {
		c = lowCountConfidenceCap
	}
	return Round2(c)
}

// potentialAnnualSavings projects what the subject would save annually were
// it assessed at the comparables' median, under the statutory ratio.
func (s *FairnessScorer) potentialAnnualSavings(subjectValue, median int64) int64 {
	if subjectValue <= median {
		return 0
	}

	currentAssessed := RoundCents(float64(subjectValue) * s.assessmentRatio)
	targetAssessed := RoundCents(float64(median) * s.assessmentRatio)
	if diff := AnnualTaxCents(currentAssessed, s.millRate) - AnnualTaxCents(targetAssessed, s.millRate); diff > 0 {
		return diff
	}
	return 0
}
