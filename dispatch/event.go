package dispatch

import (
	"encoding/json"

	"github.com/tourguard-inc/tourguard-api/schema"
)

// EventKind tags every payload sent to dashboard subscribers
type EventKind string

const (
	KindEmergencyRaised   EventKind = "emergency_raised"
	KindEmergencyResolved EventKind = "emergency_resolved"
	KindGeofenceBreach    EventKind = "geofence_breach"
)

// Event is the closed set of payloads the hub fans out. Every event carries
// the tourist it concerns so the hub can route it to scoped sessions.
type Event interface {
	Kind() EventKind
	TouristID() string
}

// EmergencyRaised - a tourist pressed the panic button
type EmergencyRaised struct {
	Tourist     string           `json:"tourist_id"`
	Reason      string           `json:"reason,omitempty"`
	SafetyScore int              `json:"safety_score"`
	RiskLevel   schema.RiskLevel `json:"risk_level"`
	Position    *schema.Position `json:"position,omitempty"`
	Timestamp   int64            `json:"timestamp"`
}

func (e EmergencyRaised) Kind() EventKind   { return KindEmergencyRaised }
func (e EmergencyRaised) TouristID() string { return e.Tourist }

// EmergencyResolved - a tourist's emergency was marked resolved
type EmergencyResolved struct {
	Tourist     string           `json:"tourist_id"`
	SafetyScore int              `json:"safety_score"`
	RiskLevel   schema.RiskLevel `json:"risk_level"`
	Timestamp   int64            `json:"timestamp"`
}

func (e EmergencyResolved) Kind() EventKind   { return KindEmergencyResolved }
func (e EmergencyResolved) TouristID() string { return e.Tourist }

// GeofenceBreach - a tourist newly entered a danger zone
type GeofenceBreach struct {
	Tourist     string             `json:"tourist_id"`
	ZoneID      string             `json:"zone_id"`
	ZoneName    string             `json:"zone_name"`
	DangerLevel schema.DangerLevel `json:"danger_level"`
	Position    schema.Position    `json:"position"`
	Timestamp   int64              `json:"timestamp"`
}

func (e GeofenceBreach) Kind() EventKind   { return KindGeofenceBreach }
func (e GeofenceBreach) TouristID() string { return e.Tourist }

type envelope struct {
	Type EventKind `json:"type"`
	Data Event     `json:"data"`
}

// Encode serializes an event into the single wire shape every subscriber
// receives: {"type": ..., "data": {...}}
func Encode(event Event) ([]byte, error) {
	return json.Marshal(envelope{
		Type: event.Kind(),
		Data: event,
	})
}
