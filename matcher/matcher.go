package matcher

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/parcelfair/assessment-api/schema"
	"github.com/parcelfair/assessment-api/score"
	"github.com/parcelfair/assessment-api/store"
)

const (
	matcherLogPrefix = "matcher"
	metersPerMile    = 1609.344
)

// Config bounds the candidate search. Zero-value fields fall back to
// DefaultConfig's.
type Config struct {
	// Value band relative to the subject's total value.
	ValueBandLow  float64
	ValueBandHigh float64

	// Acreage band relative to the subject's acreage.
	AcreageBandLow  float64
	AcreageBandHigh float64

	// RadiusMiles is the proximity tier's search radius.
	RadiusMiles float64

	// SubdivisionSufficiency is the subdivision match count at which
	// proximity candidates from the same subdivision stop being merged in.
	SubdivisionSufficiency int

	// MaxComparables caps the returned list.
	MaxComparables int
}

func DefaultConfig() Config {
	return Config{
		ValueBandLow:           0.80,
		ValueBandHigh:          1.20,
		AcreageBandLow:         0.75,
		AcreageBandHigh:        1.25,
		RadiusMiles:            0.5,
		SubdivisionSufficiency: 5,
		MaxComparables:         20,
	}
}

// Matcher finds comparable properties for a subject parcel.
type Matcher interface {
	// FindComparables returns at most MaxComparables candidates ordered by
	// (tier priority, similarity desc, distance asc). A missing or
	// ineligible subject yields an empty list, not an error: absence of
	// comparables is an expected outcome for unusual properties.
	FindComparables(parcelID string) ([]schema.ComparableCandidate, error)
}

type comparableMatcher struct {
	store store.PropertyStore
	cfg   Config
}

func New(propertyStore store.PropertyStore, cfg Config) Matcher {
	def := DefaultConfig()
	if cfg.ValueBandLow <= 0 || cfg.ValueBandHigh <= 0 {
		cfg.ValueBandLow, cfg.ValueBandHigh = def.ValueBandLow, def.ValueBandHigh
	}
	if cfg.AcreageBandLow <= 0 || cfg.AcreageBandHigh <= 0 {
		cfg.AcreageBandLow, cfg.AcreageBandHigh = def.AcreageBandLow, def.AcreageBandHigh
	}
	if cfg.RadiusMiles <= 0 {
		cfg.RadiusMiles = def.RadiusMiles
	}
	if cfg.SubdivisionSufficiency <= 0 {
		cfg.SubdivisionSufficiency = def.SubdivisionSufficiency
	}
	if cfg.MaxComparables <= 0 {
		cfg.MaxComparables = def.MaxComparables
	}

	return &comparableMatcher{
		store: propertyStore,
		cfg:   cfg,
	}
}

func (m *comparableMatcher) FindComparables(parcelID string) ([]schema.ComparableCandidate, error) {
	subject, err := m.store.GetProperty(parcelID)
	if err != nil {
		if err == store.ErrPropertyNotFound {
			log.WithFields(log.Fields{
				"prefix":    matcherLogPrefix,
				"parcel_id": parcelID,
			}).Warn("subject parcel not found")
			return []schema.ComparableCandidate{}, nil
		}
		return nil, err
	}

	if !subject.Comparable() {
		log.WithFields(log.Fields{
			"prefix":    matcherLogPrefix,
			"parcel_id": parcelID,
		}).Warn("subject parcel not eligible for comparison")
		return []schema.ComparableCandidate{}, nil
	}

	values := store.ValueRange{
		Low:  score.RoundCents(float64(subject.TotalValue) * m.cfg.ValueBandLow),
		High: score.RoundCents(float64(subject.TotalValue) * m.cfg.ValueBandHigh),
	}
	acreage := store.AcreageRange{
		Low:  subject.Acreage * m.cfg.AcreageBandLow,
		High: subject.Acreage * m.cfg.AcreageBandHigh,
	}

	tier1, err := m.subdivisionTier(subject, values, acreage)
	if err != nil {
		return nil, err
	}

	tier2, err := m.proximityTier(subject, values, acreage)
	if err != nil {
		return nil, err
	}

	candidates := m.merge(subject, tier1, tier2)
	m.rank(candidates, len(tier1) >= m.cfg.SubdivisionSufficiency)

	if len(candidates) > m.cfg.MaxComparables {
		candidates = candidates[:m.cfg.MaxComparables]
	}

	log.WithFields(log.Fields{
		"prefix":      matcherLogPrefix,
		"parcel_id":   parcelID,
		"subdivision": len(tier1),
		"proximity":   len(tier2),
		"returned":    len(candidates),
	}).Debug("comparable search finished")

	return candidates, nil
}

func (m *comparableMatcher) subdivisionTier(subject *schema.Property, values store.ValueRange, acreage store.AcreageRange) ([]schema.Property, error) {
	if subject.Subdivision == "" {
		return []schema.Property{}, nil
	}
	return m.store.FindBySubdivision(subject.Subdivision, subject.ParcelID, subject.PropertyType, values, acreage)
}

func (m *comparableMatcher) proximityTier(subject *schema.Property, values store.ValueRange, acreage store.AcreageRange) ([]schema.PropertyDistance, error) {
	if subject.Location == nil {
		return []schema.PropertyDistance{}, nil
	}
	return m.store.FindByProximity(*subject.Location, m.cfg.RadiusMiles, subject.ParcelID, subject.PropertyType, values, acreage)
}

// merge unions the two tiers into one scored candidate pool. Subdivision
// matches win on overlap. When the subdivision tier alone is sufficient,
// proximity candidates from the subject's own subdivision are dropped so the
// same development is not counted twice.
func (m *comparableMatcher) merge(subject *schema.Property, tier1 []schema.Property, tier2 []schema.PropertyDistance) []schema.ComparableCandidate {
	subdivisionSufficient := len(tier1) >= m.cfg.SubdivisionSufficiency

	candidates := make([]schema.ComparableCandidate, 0, len(tier1)+len(tier2))
	seen := make(map[string]bool, len(tier1))

	for _, p := range tier1 {
		if !p.Comparable() || seen[p.ParcelID] {
			continue
		}
		seen[p.ParcelID] = true
		candidates = append(candidates, m.scoreCandidate(subject, p, schema.MatchTierSubdivision, 0))
	}

	for _, p := range tier2 {
		if !p.Comparable() || seen[p.ParcelID] {
			continue
		}
		if subdivisionSufficient && p.Subdivision != "" && p.Subdivision == subject.Subdivision {
			continue
		}
		seen[p.ParcelID] = true
		candidates = append(candidates, m.scoreCandidate(subject, p.Property, schema.MatchTierProximity, p.DistanceMeters/metersPerMile))
	}

	return candidates
}

func (m *comparableMatcher) scoreCandidate(subject *schema.Property, candidate schema.Property, tier schema.MatchTier, distanceMiles float64) schema.ComparableCandidate {
	typeScore := score.TypeScore()
	valueScore := score.ValueScore(subject.TotalValue, candidate.TotalValue)
	acreageScore := score.AcreageScore(subject.Acreage, candidate.Acreage)
	locationScore := score.LocationScore(tier, distanceMiles)

	return schema.ComparableCandidate{
		Property:        candidate,
		MatchTier:       tier,
		DistanceMiles:   distanceMiles,
		TypeScore:       typeScore,
		ValueScore:      valueScore,
		AcreageScore:    acreageScore,
		LocationScore:   locationScore,
		SimilarityScore: score.SimilarityScore(typeScore, valueScore, acreageScore, locationScore),
	}
}

// rank orders candidates by similarity desc then distance asc. When the
// subdivision tier is sufficient on its own, subdivision matches outrank all
// proximity matches. Parcel id breaks remaining ties to keep runs
// deterministic.
func (m *comparableMatcher) rank(candidates []schema.ComparableCandidate, subdivisionFirst bool) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if subdivisionFirst && a.MatchTier != b.MatchTier {
			return a.MatchTier == schema.MatchTierSubdivision
		}
		if a.SimilarityScore != b.SimilarityScore {
			return a.SimilarityScore > b.SimilarityScore
		}
		if a.DistanceMiles != b.DistanceMiles {
			return a.DistanceMiles < b.DistanceMiles
		}
		return a.Property.ParcelID < b.Property.ParcelID
	})
}
