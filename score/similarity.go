package score

import (
	"math"

	"github.com/parcelfair/assessment-api/schema"
)

// Component weights of the composite similarity score.
const (
	TypeWeight     = 0.10
	ValueWeight    = 0.35
	AcreageWeight  = 0.30
	LocationWeight = 0.25
)

// Decay slopes chosen so each component hits 0 exactly at its filter
// boundary: 20% value difference, 25% acreage difference, 0.5 miles.
const (
	valueSlope    = 5.0
	acreageSlope  = 4.0
	distanceSlope = 200.0
)

// TypeScore is fixed at 100: mismatching types never reach scoring, the
// candidate filters exclude them.
func TypeScore() float64 {
	return 100
}

func ValueScore(subjectValue, candidateValue int64) float64 {
	diffPct := math.Abs(float64(candidateValue-subjectValue)) / float64(subjectValue) * 100
	return math.Max(0, 100-diffPct*valueSlope)
}

func AcreageScore(subjectAcreage, candidateAcreage float64) float64 {
	diffPct := math.Abs(candidateAcreage-subjectAcreage) / subjectAcreage * 100
	return math.Max(0, 100-diffPct*acreageSlope)
}

// LocationScore is 100 for subdivision matches; proximity matches decay
// linearly with distance and reach 0 at the search radius.
func LocationScore(tier schema.MatchTier, distanceMiles float64) float64 {
	if tier == schema.MatchTierSubdivision {
		return 100
	}
	return math.Max(0, 100-distanceMiles*distanceSlope)
}

// SimilarityScore combines the four component scores into the weighted
// composite, rounded to 2 decimals.
func SimilarityScore(typeScore, valueScore, acreageScore, locationScore float64) float64 {
	return Round2(typeScore*TypeWeight + valueScore*ValueWeight + acreageScore*AcreageWeight + locationScore*LocationWeight)
}
