package schema

// Location - a geographic coordinate pair
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// Position - one location sample reported by a tourist device. Accuracy is
// the device-reported horizontal accuracy in meters; zero means unreported.
type Position struct {
	Location  `bson:",inline"`
	Accuracy  float64 `bson:"accuracy,omitempty" json:"accuracy,omitempty"`
	Timestamp int64   `bson:"ts" json:"timestamp"`
}
