package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tourguard-inc/tourguard-api/schema"
)

var (
	ErrGeofenceNotFound = fmt.Errorf("geofence not found")
)

// Geofence - operations for the geofence zone collection. The zone set read
// here seeds the in-memory index consulted on every location update.
type Geofence interface {
	CreateGeofence(zone schema.GeofenceZone) error
	UpdateGeofence(zone schema.GeofenceZone) error
	DeleteGeofence(id string) error
	ListGeofences() ([]schema.GeofenceZone, error)
}

func (m *mongoDB) CreateGeofence(zone schema.GeofenceZone) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.GeofenceCollection)
	if _, err := c.InsertOne(ctx, zone); nil != err {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"zone":   zone.ID,
			"error":  err,
		}).Error("create geofence")
		return err
	}

	return nil
}

func (m *mongoDB) UpdateGeofence(zone schema.GeofenceZone) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.GeofenceCollection)
	query := bson.M{"id": zone.ID}
	update := bson.M{"$set": bson.M{
		"name":          zone.Name,
		"center":        zone.Center,
		"radius_meters": zone.RadiusMeters,
		"danger_level":  zone.DangerLevel,
	}}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrGeofenceNotFound
	}

	return nil
}

func (m *mongoDB) DeleteGeofence(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.GeofenceCollection)
	result, err := c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrGeofenceNotFound
	}

	return nil
}

func (m *mongoDB) ListGeofences() ([]schema.GeofenceZone, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.GeofenceCollection)
	cur, err := c.Find(ctx, bson.M{})
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("list geofences with error: %s", err)
		return nil, err
	}

	zones := make([]schema.GeofenceZone, 0)
	for cur.Next(ctx) {
		var zone schema.GeofenceZone
		if err = cur.Decode(&zone); err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, nil
}
