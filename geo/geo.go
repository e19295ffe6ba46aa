package geo

import (
	"math"

	"github.com/tourguard-inc/tourguard-api/schema"
)

const earthRadiusMeters = 6371000

// DistanceMeters returns the great-circle distance between two coordinates.
// The atan2 form keeps the result stable for near-zero and near-antipodal
// pairs, where the asin form can leave the arcsine domain from rounding.
func DistanceMeters(a, b schema.Location) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLng := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// IsWithin reports whether point falls inside the circular region around
// center. A point exactly on the boundary counts as inside.
func IsWithin(point, center schema.Location, radiusMeters float64) bool {
	return DistanceMeters(point, center) <= radiusMeters
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
