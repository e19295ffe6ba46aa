package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tourguard-inc/tourguard-api/schema"
)

const (
	// devices report every few seconds; durably sampling once a minute is
	// plenty for the dashboard trail
	locationSampleInterval = time.Minute
)

// LocationHistory - operations for the persisted location trail. The full
// resolution history lives in the in-memory ring buffer; this collection
// keeps a downsampled durable copy.
type LocationHistory interface {
	AddLocationRecord(touristID string, pos schema.Position) error
	ListLocationHistory(touristID string, limit int64, earlier int64) ([]schema.LocationRecord, error)
}

func (m *mongoDB) AddLocationRecord(touristID string, pos schema.Position) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationHistoryCollection)

	query := bson.M{
		"tourist_id": bson.M{
			"$eq": touristID,
		},
	}
	opts := options.FindOne().SetSort(bson.M{"position.ts": -1})

	var latest schema.LocationRecord
	err := c.FindOne(ctx, query, opts).Decode(&latest)
	if err != nil && err != mongo.ErrNoDocuments {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"tourist": touristID,
			"error":   err,
		}).Error("latest location record")
		return err
	}

	// update too fast, ignore those
	if err == nil && time.Unix(pos.Timestamp, 0).Sub(time.Unix(latest.Position.Timestamp, 0)) < locationSampleInterval {
		return nil
	}

	record := schema.LocationRecord{
		TouristID: touristID,
		Position:  pos,
	}
	if _, err = c.InsertOne(ctx, record); nil != err {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"tourist": touristID,
			"error":   err,
		}).Error("add location record")
		return err
	}

	return nil
}

func (m *mongoDB) ListLocationHistory(touristID string, limit int64, earlier int64) ([]schema.LocationRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if earlier <= 0 {
		return nil, errInvalidEarlier
	}

	c := m.client.Database(m.database).Collection(schema.LocationHistoryCollection)
	query := bson.M{
		"tourist_id": touristID,
		"position.ts": bson.M{
			"$lt": earlier,
		},
	}
	opts := options.Find()
	opts = opts.SetSort(bson.M{"position.ts": -1}).SetLimit(limit)

	cur, err := c.Find(ctx, query, opts)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"tourist": touristID,
			"earlier": earlier,
			"limit":   limit,
			"error":   err,
		}).Error("list location history")
		return nil, err
	}

	result := make([]schema.LocationRecord, 0)
	for cur.Next(ctx) {
		var record schema.LocationRecord
		if err = cur.Decode(&record); err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	return result, nil
}
