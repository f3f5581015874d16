package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/parcelfair/assessment-api/schema"
)

// ValueRange bounds a candidate's total market value, in cents, inclusive.
type ValueRange struct {
	Low  int64
	High int64
}

// AcreageRange bounds a candidate's acreage, inclusive.
type AcreageRange struct {
	Low  float64
	High float64
}

// candidateFilter matches properties of the same type within the value and
// acreage bands, excluding the subject itself. The $gt floors restate the
// eligibility invariant so records violating it never reach scoring, even
// when a band bound is not positive.
func candidateFilter(excludeParcelID, propertyType string, values ValueRange, acreage AcreageRange) bson.M {
	return bson.M{
		"parcel_id": bson.M{
			"$ne": excludeParcelID,
		},
		"property_type": propertyType,
		"total_value": bson.M{
			"$gt":  int64(0),
			"$gte": values.Low,
			"$lte": values.High,
		},
		"acreage": bson.M{
			"$gt":  float64(0),
			"$gte": acreage.Low,
			"$lte": acreage.High,
		},
	}
}

func subdivisionQuery(subdivision, excludeParcelID, propertyType string, values ValueRange, acreage AcreageRange) bson.M {
	query := candidateFilter(excludeParcelID, propertyType, values, acreage)
	query["subdivision"] = subdivision
	return query
}

// aggStageGeoProximity finds candidates within maxDistance meters of the
// point, spherically, annotating each with its distance in the "dist" field.
// The candidate filter rides along in the $geoNear query so the index serves
// the whole predicate.
func aggStageGeoProximity(maxDistanceMeters float64, location schema.GeoJSON, filter bson.M) bson.M {
	return bson.M{
		"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": location.Coordinates,
			},
			"distanceField": "dist",
			"maxDistance":   maxDistanceMeters,
			"spherical":     true,
			"query":         filter,
		},
	}
}
