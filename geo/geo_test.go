package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourguard-inc/tourguard-api/schema"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	p := schema.Location{Latitude: 26.15, Longitude: 91.74}
	assert.Equal(t, 0.0, DistanceMeters(p, p))
}

func TestDistanceKnownPair(t *testing.T) {
	// Guwahati city center to the airport, about 15.6 km apart
	a := schema.Location{Latitude: 26.1445, Longitude: 91.7362}
	b := schema.Location{Latitude: 26.1061, Longitude: 91.5859}
	d := DistanceMeters(a, b)
	assert.InDelta(t, 15600, d, 500)
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := schema.Location{Latitude: 26.15, Longitude: 91.74}
	b := schema.Location{Latitude: 27.17, Longitude: 88.26}
	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceNearAntipodal(t *testing.T) {
	a := schema.Location{Latitude: 0, Longitude: 0}
	b := schema.Location{Latitude: 0, Longitude: 180}
	d := DistanceMeters(a, b)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*earthRadiusMeters, d, 1)
}

func TestIsWithinBoundaryInclusive(t *testing.T) {
	center := schema.Location{Latitude: 26.15, Longitude: 91.74}

	// walk a hundredth of a degree of longitude and use the measured
	// distance as the radius, so the point sits exactly on the boundary
	point := schema.Location{Latitude: 26.15, Longitude: 91.75}
	radius := DistanceMeters(point, center)

	assert.True(t, IsWithin(point, center, radius))
	assert.False(t, IsWithin(point, center, radius-0.001))
}

func TestIsWithinRandomPointsAroundRadius(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	center := schema.Location{Latitude: 26.15, Longitude: 91.74}
	radius := 1500.0

	for i := 0; i < 200; i++ {
		lat := center.Latitude + (r.Float64()-0.5)*0.1
		lng := center.Longitude + (r.Float64()-0.5)*0.1
		p := schema.Location{Latitude: lat, Longitude: lng}

		d := DistanceMeters(p, center)
		assert.Equal(t, d <= radius, IsWithin(p, center, radius))
	}
}
