package geo

import (
	"fmt"

	"github.com/tourguard-inc/tourguard-api/external/geoinfo"
	"github.com/tourguard-inc/tourguard-api/schema"
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
)

// LocationResolver - interface for resolving a coordinate into a human
// readable address for alert and incident records
type LocationResolver interface {
	GetAddress(schema.Location) (string, error)
}

type GeocodingLocationResolver struct {
	client geoinfo.GeoInfo
}

func NewGeocodingLocationResolver(client geoinfo.GeoInfo) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

// GetAddress returns the formatted address of the first geocoding result
func (g *GeocodingLocationResolver) GetAddress(loc schema.Location) (string, error) {
	results, err := g.client.Get(loc)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", ErrNoGeoInfoFound
	}

	return results[0].FormattedAddress, nil
}
