package schema

import "time"

// MatchTier tells which search strategy produced a comparable.
type MatchTier string

const (
	MatchTierSubdivision MatchTier = "SUBDIVISION"
	MatchTierProximity   MatchTier = "PROXIMITY"
)

// Interpretation of a fairness score.
type Interpretation string

const (
	InterpretationFair         Interpretation = "FAIR"
	InterpretationOverAssessed Interpretation = "OVER_ASSESSED"
)

// RecommendedAction for the property owner.
type RecommendedAction string

const (
	ActionAppeal  RecommendedAction = "APPEAL"
	ActionMonitor RecommendedAction = "MONITOR"
	ActionNone    RecommendedAction = "NONE"
)

// ComparableCandidate is a property selected as a comparable, with its
// per-component and composite similarity scores (each 0-100). Candidates are
// built per matching run and never persisted.
type ComparableCandidate struct {
	Property        Property  `json:"property"`
	MatchTier       MatchTier `json:"match_tier"`
	DistanceMiles   float64   `json:"distance_miles"`
	TypeScore       float64   `json:"type_score"`
	ValueScore      float64   `json:"value_score"`
	AcreageScore    float64   `json:"acreage_score"`
	LocationScore   float64   `json:"location_score"`
	SimilarityScore float64   `json:"similarity_score"`
}

// FairnessResult compares a subject's market value against its comparables.
// Higher fairness score = more fairly assessed. Monetary fields are cents.
type FairnessResult struct {
	SubjectValue            int64          `json:"subject_value"`
	MedianValue             int64          `json:"median_value"`
	MeanValue               float64        `json:"mean_value"`
	StdDev                  float64        `json:"std_dev"`
	ZScore                  float64        `json:"z_score"`
	Percentile              float64        `json:"percentile"`
	FairnessScore           float64        `json:"fairness_score"`
	Confidence              float64        `json:"confidence"`
	ComparableCount         int            `json:"comparable_count"`
	CoefficientOfDispersion float64        `json:"coefficient_of_dispersion"`
	Interpretation          Interpretation `json:"interpretation"`
	OverAssessment          int64          `json:"over_assessment"`
	PotentialAnnualSavings  int64          `json:"potential_annual_savings"`
}

// SavingsEstimate is the projected tax effect of reducing an assessment.
// All monetary fields are integer cents.
type SavingsEstimate struct {
	CurrentAssessed  int64   `json:"current_assessed"`
	TargetAssessed   int64   `json:"target_assessed"`
	ReductionAmount  int64   `json:"reduction_amount"`
	ReductionPercent float64 `json:"reduction_percent"`
	CurrentAnnualTax int64   `json:"current_annual_tax"`
	TargetAnnualTax  int64   `json:"target_annual_tax"`
	AnnualSavings    int64   `json:"annual_savings"`
	FiveYearSavings  int64   `json:"five_year_savings"`
	MillRate         float64 `json:"mill_rate"`
	IsWorthwhile     bool    `json:"is_worthwhile"`
}

// AnalysisResult is the engine's output for one subject property.
type AnalysisResult struct {
	ID                string                `json:"id"`
	ParcelID          string                `json:"parcel_id"`
	Fairness          *FairnessResult       `json:"fairness"`
	Savings           *SavingsEstimate      `json:"savings"`
	RecommendedAction RecommendedAction     `json:"recommended_action"`
	ComparableCount   int                   `json:"comparable_count"`
	Comparables       []ComparableCandidate `json:"comparables,omitempty"`
	AnalyzedAt        time.Time             `json:"analyzed_at"`
}
