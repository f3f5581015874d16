package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/parcelfair/assessment-api/schema"
)

const metersPerMile = 1609.344

var (
	ErrPropertyNotFound = fmt.Errorf("property not found")
)

// PropertyReader - read-only queries over the appraisal roll
type PropertyReader interface {
	GetProperty(parcelID string) (*schema.Property, error)
	FindBySubdivision(subdivision, excludeParcelID, propertyType string, values ValueRange, acreage AcreageRange) ([]schema.Property, error)
	FindByProximity(location schema.GeoJSON, radiusMiles float64, excludeParcelID, propertyType string, values ValueRange, acreage AcreageRange) ([]schema.PropertyDistance, error)
}

// GetProperty fetches one property by parcel id.
func (m *mongoDB) GetProperty(parcelID string) (*schema.Property, error) {
	c := m.client.Database(m.database).Collection(schema.PropertyCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var property schema.Property
	if err := c.FindOne(ctx, bson.M{"parcel_id": parcelID}).Decode(&property); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPropertyNotFound
		}
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"parcel_id": parcelID,
			"error":     err,
		}).Error("get property")
		return nil, err
	}

	return &property, nil
}

// FindBySubdivision lists candidates sharing the subject's subdivision,
// filtered to the same type and the value/acreage bands.
func (m *mongoDB) FindBySubdivision(subdivision, excludeParcelID, propertyType string, values ValueRange, acreage AcreageRange) ([]schema.Property, error) {
	c := m.client.Database(m.database).Collection(schema.PropertyCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := subdivisionQuery(subdivision, excludeParcelID, propertyType, values, acreage)

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"subdivision": subdivision,
			"error":       err,
		}).Error("query subdivision candidates")
		return nil, fmt.Errorf("subdivision candidate query with error: %s", err)
	}

	properties := make([]schema.Property, 0)
	for cur.Next(ctx) {
		var p schema.Property
		if err = cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode subdivision candidate with error: %s", err)
		}
		properties = append(properties, p)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("subdivision %s query gets %d candidates", subdivision, len(properties))

	return properties, nil
}

// FindByProximity lists candidates within radiusMiles of the location by
// great-circle distance, filtered to the same type and the value/acreage
// bands, each annotated with its distance in meters.
func (m *mongoDB) FindByProximity(location schema.GeoJSON, radiusMiles float64, excludeParcelID, propertyType string, values ValueRange, acreage AcreageRange) ([]schema.PropertyDistance, error) {
	c := m.client.Database(m.database).Collection(schema.PropertyCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		aggStageGeoProximity(radiusMiles*metersPerMile, location, candidateFilter(excludeParcelID, propertyType, values, acreage)),
	}

	cur, err := c.Aggregate(ctx, pipeline)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix":       mongoLogPrefix,
			"radius_miles": radiusMiles,
			"error":        err,
		}).Error("query proximity candidates")
		return nil, fmt.Errorf("proximity candidate query with error: %s", err)
	}

	candidates := make([]schema.PropertyDistance, 0)
	for cur.Next(ctx) {
		var p schema.PropertyDistance
		if err = cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode proximity candidate with error: %s", err)
		}
		candidates = append(candidates, p)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("proximity query within %.2f miles gets %d candidates", radiusMiles, len(candidates))

	return candidates, nil
}
