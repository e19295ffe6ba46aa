package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tourguard-inc/tourguard-api/schema"
)

var (
	errInvalidEarlier = fmt.Errorf("invalid earlier")
)

// Incident - operations for durable breach incident records
type Incident interface {
	InsertIncident(incident schema.Incident) error
	ListIncidents(touristID string, limit int64, earlier int64) ([]schema.Incident, error)
}

func (m *mongoDB) InsertIncident(incident schema.Incident) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.IncidentCollection)
	if _, err := c.InsertOne(ctx, incident); nil != err {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"tourist":  incident.TouristID,
			"zone":     incident.ZoneID,
			"incident": incident.ID,
			"error":    err,
		}).Error("insert incident")
		return err
	}

	return nil
}

// ListIncidents returns incidents for a tourist older than `earlier`, newest
// first
func (m *mongoDB) ListIncidents(touristID string, limit int64, earlier int64) ([]schema.Incident, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if earlier <= 0 {
		return nil, errInvalidEarlier
	}

	c := m.client.Database(m.database).Collection(schema.IncidentCollection)
	query := bson.M{
		"tourist_id": touristID,
		"ts": bson.M{
			"$lt": earlier,
		},
	}
	opts := options.Find()
	opts = opts.SetSort(bson.M{"ts": -1}).SetLimit(limit)

	cur, err := c.Find(ctx, query, opts)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"tourist": touristID,
			"error":   err,
		}).Error("list incidents")
		return nil, err
	}

	result := make([]schema.Incident, 0)
	for cur.Next(ctx) {
		var incident schema.Incident
		if err = cur.Decode(&incident); err != nil {
			return nil, err
		}
		result = append(result, incident)
	}

	return result, nil
}
