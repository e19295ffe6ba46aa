package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tourguard-inc/tourguard-api/schema"
)

var (
	ErrProfileNotFound = fmt.Errorf("safety profile not found")
)

// SafetyProfile - operations for persisted tourist safety profiles
type SafetyProfile interface {
	UpsertProfile(profile schema.SafetyProfile) error
	GetProfile(touristID string) (*schema.SafetyProfile, error)
}

func (m *mongoDB) UpsertProfile(profile schema.SafetyProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	query := bson.M{"tourist_id": profile.TouristID}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	_, err := c.UpdateOne(ctx, query, update, opts)
	return err
}

func (m *mongoDB) GetProfile(touristID string) (*schema.SafetyProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.SafetyProfile
	query := bson.M{"tourist_id": touristID}
	if err := c.FindOne(ctx, query).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}
