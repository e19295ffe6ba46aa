package schema

const (
	GeofenceCollection = "geofence"
)

// DangerLevel - classification of a geofence zone
type DangerLevel string

const (
	DangerLevelSafe    DangerLevel = "safe"
	DangerLevelCaution DangerLevel = "caution"
	DangerLevelDanger  DangerLevel = "danger"
)

// GeofenceZone - a named circular region. Only zones with DangerLevelDanger
// raise breach alerts; the rest are evaluated uniformly for reporting.
type GeofenceZone struct {
	ID           string      `bson:"id" json:"id"`
	Name         string      `bson:"name" json:"name"`
	Center       Location    `bson:"center" json:"center"`
	RadiusMeters float64     `bson:"radius_meters" json:"radius_meters"`
	DangerLevel  DangerLevel `bson:"danger_level" json:"danger_level"`
}
