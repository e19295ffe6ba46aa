package monitor

import (
	"github.com/tourguard-inc/tourguard-api/geo"
	"github.com/tourguard-inc/tourguard-api/schema"
)

// BreachEvent - a tourist newly entered a danger zone. Ephemeral: it is
// handed to the dispatcher and to the incident recorder, never stored here.
type BreachEvent struct {
	TouristID   string             `json:"tourist_id"`
	ZoneID      string             `json:"zone_id"`
	ZoneName    string             `json:"zone_name"`
	DangerLevel schema.DangerLevel `json:"danger_level"`
	Position    schema.Position    `json:"position"`
	Timestamp   int64              `json:"timestamp"`
}

// detectBreaches evaluates one position against a zone snapshot.
//
// suppressed is the set of danger zone ids the tourist is already known to
// be inside. It is updated in place: ids are removed when the tourist has
// left the zone and added for each new breach, so a continuous stay inside
// one zone fires exactly once. Location ticks arrive every few seconds; the
// suppression set is what keeps a stationary tourist from flooding the
// dispatcher.
//
// Membership is computed for every zone regardless of danger level, but only
// danger zones produce events. An empty snapshot yields no breaches.
func detectBreaches(touristID string, pos schema.Position, zones []schema.GeofenceZone, suppressed map[string]struct{}) []BreachEvent {
	currentlyInside := make(map[string]struct{}, len(zones))

	var breaches []BreachEvent
	for _, zone := range zones {
		if !geo.IsWithin(pos.Location, zone.Center, zone.RadiusMeters) {
			continue
		}
		currentlyInside[zone.ID] = struct{}{}

		if zone.DangerLevel != schema.DangerLevelDanger {
			continue
		}
		if _, held := suppressed[zone.ID]; held {
			continue
		}

		breaches = append(breaches, BreachEvent{
			TouristID:   touristID,
			ZoneID:      zone.ID,
			ZoneName:    zone.Name,
			DangerLevel: zone.DangerLevel,
			Position:    pos,
			Timestamp:   pos.Timestamp,
		})
	}

	// clear suppression for zones the tourist has left
	for id := range suppressed {
		if _, inside := currentlyInside[id]; !inside {
			delete(suppressed, id)
		}
	}
	for _, b := range breaches {
		suppressed[b.ZoneID] = struct{}{}
	}

	return breaches
}
