package schema

const (
	PropertyCollection = "property"
)

// GeoJSON is a point geometry. Polygon parcels are stored by their centroid.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// Property is an appraisal-roll record. Monetary fields are integer cents.
type Property struct {
	ParcelID         string   `json:"parcel_id" bson:"parcel_id"`
	PropertyType     string   `json:"property_type" bson:"property_type"`
	TotalValue       int64    `json:"total_value" bson:"total_value"`
	AssessedValue    int64    `json:"assessed_value" bson:"assessed_value"`
	LandValue        int64    `json:"land_value" bson:"land_value"`
	ImprovementValue int64    `json:"improvement_value" bson:"improvement_value"`
	Acreage          float64  `json:"acreage" bson:"acreage"`
	Subdivision      string   `json:"subdivision,omitempty" bson:"subdivision,omitempty"`
	Neighborhood     string   `json:"neighborhood,omitempty" bson:"neighborhood,omitempty"`
	Location         *GeoJSON `json:"location,omitempty" bson:"location,omitempty"`
	OwnerName        string   `json:"owner_name" bson:"owner_name"`
	Address          string   `json:"address" bson:"address"`
}

// Comparable returns whether a property may participate in a comparison,
// either as subject or as candidate. Records with a missing type or a
// non-positive value or acreage are excluded, never defaulted.
func (p Property) Comparable() bool {
	return p.PropertyType != "" && p.TotalValue > 0 && p.Acreage > 0
}

// PropertyDistance is a property returned by a proximity query along with
// its spherical distance from the query point.
type PropertyDistance struct {
	Property       `bson:",inline"`
	DistanceMeters float64 `json:"distance_meters" bson:"dist"`
}
