package analyzer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/parcelfair/assessment-api/matcher"
	"github.com/parcelfair/assessment-api/schema"
	"github.com/parcelfair/assessment-api/score"
	"github.com/parcelfair/assessment-api/store"
)

const analyzerLogPrefix = "analyzer"

var (
	// ErrPropertyNotFound - the subject parcel id does not resolve.
	ErrPropertyNotFound = store.ErrPropertyNotFound

	// ErrNoComparables - the matcher legitimately found zero candidates.
	// Callers should present "insufficient data to assess", not an error
	// page.
	ErrNoComparables = fmt.Errorf("no comparable properties found")
)

// Config carries the jurisdiction constants. Passed in at construction; the
// engine never reads the environment at call time.
type Config struct {
	// MillRate is tax dollars per $1,000 of assessed value.
	MillRate float64

	// AssessmentRatio is the statutory assessed/market ratio.
	AssessmentRatio float64
}

func DefaultConfig() Config {
	return Config{
		MillRate:        score.DefaultMillRate,
		AssessmentRatio: 0.20,
	}
}

// AnalyzeOptions tune a single analysis call.
type AnalyzeOptions struct {
	// ForceRefresh is accepted for callers that layer a result cache over
	// the engine; the engine itself computes fresh on every call.
	ForceRefresh bool

	// IncludeComparables attaches the ranked comparable list to the result.
	IncludeComparables bool
}

// Analyzer is the engine's public entry point: one analysis per subject
// parcel. Calls are independent and share no mutable state, so concurrent
// analyses of different subjects are safe.
type Analyzer interface {
	Analyze(parcelID string, opts AnalyzeOptions) (*schema.AnalysisResult, error)
}

type assessmentAnalyzer struct {
	store     store.PropertyStore
	matcher   matcher.Matcher
	scorer    *score.FairnessScorer
	estimator *score.SavingsEstimator
	cfg       Config
}

func New(propertyStore store.PropertyStore, m matcher.Matcher, cfg Config) Analyzer {
	def := DefaultConfig()
	if cfg.MillRate <= 0 {
		cfg.MillRate = def.MillRate
	}
	if cfg.AssessmentRatio <= 0 || cfg.AssessmentRatio > 1 {
		cfg.AssessmentRatio = def.AssessmentRatio
	}

	return &assessmentAnalyzer{
		store:     propertyStore,
		matcher:   m,
		scorer:    score.NewFairnessScorer(cfg.AssessmentRatio, cfg.MillRate),
		estimator: score.NewSavingsEstimator(cfg.MillRate),
		cfg:       cfg,
	}
}

func (a *assessmentAnalyzer) Analyze(parcelID string, opts AnalyzeOptions) (*schema.AnalysisResult, error) {
	subject, err := a.store.GetProperty(parcelID)
	if err != nil {
		return nil, err
	}

	comparables, err := a.matcher.FindComparables(parcelID)
	if err != nil {
		return nil, err
	}
	if len(comparables) == 0 {
		log.WithFields(log.Fields{
			"prefix":    analyzerLogPrefix,
			"parcel_id": parcelID,
		}).Info("no comparables for subject parcel")
		return nil, ErrNoComparables
	}

	values := make([]int64, 0, len(comparables))
	for _, c := range comparables {
		values = append(values, c.Property.TotalValue)
	}

	fairness, err := a.scorer.Score(subject.TotalValue, values)
	if err != nil {
		return nil, err
	}

	// the fair assessment implied by the comparables' median under the
	// statutory ratio
	targetAssessed := score.RoundCents(float64(fairness.MedianValue) * a.cfg.AssessmentRatio)

	savings, err := a.estimator.Estimate(subject.AssessedValue, targetAssessed, a.cfg.MillRate)
	if err != nil {
		return nil, err
	}

	result := &schema.AnalysisResult{
		ID:                uuid.NewString(),
		ParcelID:          subject.ParcelID,
		Fairness:          fairness,
		Savings:           savings,
		RecommendedAction: score.RecommendedAction(fairness.FairnessScore),
		ComparableCount:   len(comparables),
		AnalyzedAt:        time.Now().UTC(),
	}
	if opts.IncludeComparables {
		result.Comparables = comparables
	}

	log.WithFields(log.Fields{
		"prefix":         analyzerLogPrefix,
		"parcel_id":      parcelID,
		"fairness_score": fairness.FairnessScore,
		"action":         result.RecommendedAction,
		"comparables":    len(comparables),
	}).Debug("analysis finished")

	return result, nil
}
