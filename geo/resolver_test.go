package geo

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	"github.com/tourguard-inc/tourguard-api/external/mocks"
	"github.com/tourguard-inc/tourguard-api/schema"
)

func TestGetAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := mocks.NewMockGeoInfo(ctl)
	client.EXPECT().Get(gomock.Any()).Return([]maps.GeocodingResult{
		{FormattedAddress: "Kamakhya, Guwahati, Assam"},
		{FormattedAddress: "Guwahati, Assam"},
	}, nil).Times(1)

	resolver := NewGeocodingLocationResolver(client)
	address, err := resolver.GetAddress(schema.Location{Latitude: 26.16, Longitude: 91.70})
	assert.NoError(t, err)
	assert.Equal(t, "Kamakhya, Guwahati, Assam", address)
}

func TestGetAddressEmptyResult(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := mocks.NewMockGeoInfo(ctl)
	client.EXPECT().Get(gomock.Any()).Return([]maps.GeocodingResult{}, nil).Times(1)

	resolver := NewGeocodingLocationResolver(client)
	_, err := resolver.GetAddress(schema.Location{Latitude: 0, Longitude: 0})
	assert.Equal(t, ErrNoGeoInfoFound, err)
}

func TestGetAddressClientError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	clientErr := fmt.Errorf("geocoding quota exceeded")

	client := mocks.NewMockGeoInfo(ctl)
	client.EXPECT().Get(gomock.Any()).Return(nil, clientErr).Times(1)

	resolver := NewGeocodingLocationResolver(client)
	_, err := resolver.GetAddress(schema.Location{Latitude: 26.16, Longitude: 91.70})
	assert.Equal(t, clientErr, err)
}
