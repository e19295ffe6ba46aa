package monitor

import (
	"sync"

	"github.com/tourguard-inc/tourguard-api/schema"
)

// ZoneIndex holds the live geofence set consulted on every location update.
// Zone CRUD arrives from the administrative API; reads vastly outnumber
// writes, so readers take a copied snapshot and never observe a torn set.
type ZoneIndex struct {
	mu    sync.RWMutex
	zones map[string]schema.GeofenceZone
}

func NewZoneIndex() *ZoneIndex {
	return &ZoneIndex{
		zones: make(map[string]schema.GeofenceZone),
	}
}

// Upsert inserts or replaces a zone
func (i *ZoneIndex) Upsert(zone schema.GeofenceZone) error {
	if zone.RadiusMeters <= 0 {
		return ErrInvalidZoneRadius
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.zones[zone.ID] = zone
	return nil
}

// Remove deletes a zone; removing an unknown id is a no-op
func (i *ZoneIndex) Remove(id string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.zones, id)
}

// Get returns a zone by id
func (i *ZoneIndex) Get(id string) (schema.GeofenceZone, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	zone, ok := i.zones[id]
	return zone, ok
}

// Snapshot returns a copy of the current zone set. Order is unspecified.
func (i *ZoneIndex) Snapshot() []schema.GeofenceZone {
	i.mu.RLock()
	defer i.mu.RUnlock()

	zones := make([]schema.GeofenceZone, 0, len(i.zones))
	for _, zone := range i.zones {
		zones = append(zones, zone)
	}
	return zones
}
