package schema

const (
	IncidentCollection        = "incident"
	LocationHistoryCollection = "location_history"
)

// Incident - the durable record of a geofence breach. Address is filled in
// best-effort by reverse geocoding and may stay empty.
type Incident struct {
	ID          string      `bson:"id" json:"id"`
	TouristID   string      `bson:"tourist_id" json:"tourist_id"`
	ZoneID      string      `bson:"zone_id" json:"zone_id"`
	ZoneName    string      `bson:"zone_name" json:"zone_name"`
	DangerLevel DangerLevel `bson:"danger_level" json:"danger_level"`
	Position    Position    `bson:"position" json:"position"`
	Address     string      `bson:"address,omitempty" json:"address,omitempty"`
	Timestamp   int64       `bson:"ts" json:"timestamp"`
}

// LocationRecord - a persisted location sample for a tourist
type LocationRecord struct {
	TouristID string   `bson:"tourist_id"`
	Position  Position `bson:"position"`
}
