package monitor

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tourguard-inc/tourguard-api/dispatch"
	"github.com/tourguard-inc/tourguard-api/geo"
	"github.com/tourguard-inc/tourguard-api/schema"
	"github.com/tourguard-inc/tourguard-api/score"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "monitor")
}

// a fresh tourist starts fully safe
const defaultSafetyScore = 100

// Recorder durably records what the pipeline produces. Implementations are
// called from detached goroutines and must never be waited on by the
// ingestion path.
type Recorder interface {
	RecordIncident(incident schema.Incident) error
	RecordProfile(profile schema.SafetyProfile) error
	RecordLocation(touristID string, pos schema.Position) error
}

// Notifier enqueues out-of-band notifications for alert events
type Notifier interface {
	NotifyBreach(incident schema.Incident) error
	NotifyEmergency(profile schema.SafetyProfile, reason string) error
	NotifyResolved(profile schema.SafetyProfile) error
}

// touristState - all mutable state of one tracked tourist. Guarded by its
// own mutex so updates for the same tourist serialize while different
// tourists proceed in parallel.
type touristState struct {
	mu          sync.Mutex
	profile     schema.SafetyProfile
	current     schema.Position
	hasPosition bool
	history     *positionRing
	suppressed  map[string]struct{}
}

// Pipeline orchestrates location ingestion: history update, breach
// detection, score bookkeeping and alert dispatch. Breach detection and
// score math are pure in-memory operations; persistence and push
// notifications happen on detached goroutines.
type Pipeline struct {
	zones    *ZoneIndex
	hub      *dispatch.Hub
	recorder Recorder
	notifier Notifier
	resolver geo.LocationResolver

	mu       sync.RWMutex
	tourists map[string]*touristState
}

// NewPipeline wires the pipeline. recorder, notifier and resolver may be nil,
// which disables the corresponding side effects.
func NewPipeline(zones *ZoneIndex, hub *dispatch.Hub, recorder Recorder, notifier Notifier, resolver geo.LocationResolver) *Pipeline {
	return &Pipeline{
		zones:    zones,
		hub:      hub,
		recorder: recorder,
		notifier: notifier,
		resolver: resolver,
		tourists: make(map[string]*touristState),
	}
}

// ValidatePosition rejects coordinates outside the WGS84 range and negative
// accuracy values
func ValidatePosition(pos schema.Position) error {
	if pos.Latitude < -90 || pos.Latitude > 90 {
		return ErrInvalidPosition
	}
	if pos.Longitude < -180 || pos.Longitude > 180 {
		return ErrInvalidPosition
	}
	if pos.Accuracy < 0 {
		return ErrInvalidPosition
	}
	return nil
}

// Track registers a tourist for monitoring. Tracking an already known
// tourist returns the existing profile unchanged.
func (p *Pipeline) Track(touristID, name string) schema.SafetyProfile {
	p.mu.Lock()
	state, ok := p.tourists[touristID]
	if !ok {
		state = &touristState{
			profile: schema.SafetyProfile{
				TouristID:   touristID,
				Name:        name,
				SafetyScore: defaultSafetyScore,
				RiskLevel:   score.RiskLevelFromScore(defaultSafetyScore),
				Status:      schema.TouristStatusActive,
				LastActive:  time.Now().Unix(),
			},
			history:    newPositionRing(historyCapacity),
			suppressed: make(map[string]struct{}),
		}
		p.tourists[touristID] = state
	}
	p.mu.Unlock()

	state.mu.Lock()
	profile := state.profile
	state.mu.Unlock()

	if !ok {
		p.persistProfile(profile)
	}
	return profile
}

func (p *Pipeline) state(touristID string) (*touristState, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	state, ok := p.tourists[touristID]
	if !ok {
		return nil, ErrUnknownTourist
	}
	return state, nil
}

// IngestLocation processes one position update: validate, append to the
// bounded history, detect breaches against the current zone snapshot and
// publish one GeofenceBreach per newly entered danger zone. A breach only
// notifies; it neither changes the safety score nor forces emergency status.
func (p *Pipeline) IngestLocation(touristID string, pos schema.Position) ([]BreachEvent, error) {
	if err := ValidatePosition(pos); err != nil {
		return nil, err
	}
	if pos.Timestamp == 0 {
		pos.Timestamp = time.Now().Unix()
	}

	state, err := p.state(touristID)
	if err != nil {
		return nil, err
	}

	zones := p.zones.Snapshot()

	state.mu.Lock()
	state.current = pos
	state.hasPosition = true
	state.history.push(pos)
	state.profile.LastActive = time.Now().Unix()

	breaches := detectBreaches(touristID, pos, zones, state.suppressed)

	// published under the per-tourist lock so concurrent updates for one
	// tourist keep their event order; Publish never blocks
	for _, b := range breaches {
		p.hub.Publish(dispatch.GeofenceBreach{
			Tourist:     b.TouristID,
			ZoneID:      b.ZoneID,
			ZoneName:    b.ZoneName,
			DangerLevel: b.DangerLevel,
			Position:    b.Position,
			Timestamp:   b.Timestamp,
		})
	}
	state.mu.Unlock()

	p.persistLocation(touristID, pos)
	for _, b := range breaches {
		p.recordBreach(b)
	}

	return breaches, nil
}

// TriggerPanic moves the tourist into emergency, applies the fixed panic
// delta and publishes EmergencyRaised.
func (p *Pipeline) TriggerPanic(touristID, reason string) (schema.SafetyProfile, error) {
	state, err := p.state(touristID)
	if err != nil {
		return schema.SafetyProfile{}, err
	}

	state.mu.Lock()
	state.profile = score.ApplyDelta(state.profile, score.PanicDelta)
	state.profile.Status = schema.TouristStatusEmergency
	state.profile.LastActive = time.Now().Unix()
	profile := state.profile

	var position *schema.Position
	if state.hasPosition {
		current := state.current
		position = &current
	}

	p.hub.Publish(dispatch.EmergencyRaised{
		Tourist:     touristID,
		Reason:      reason,
		SafetyScore: profile.SafetyScore,
		RiskLevel:   profile.RiskLevel,
		Position:    position,
		Timestamp:   profile.LastActive,
	})
	state.mu.Unlock()

	p.persistProfile(profile)
	if p.notifier != nil {
		go func() {
			if err := p.notifier.NotifyEmergency(profile, reason); err != nil {
				log.WithField("tourist", touristID).WithError(err).Error("notify emergency")
			}
		}()
	}

	return profile, nil
}

// ResolveEmergency returns the tourist to active and applies the fixed
// resolve delta.
func (p *Pipeline) ResolveEmergency(touristID string) (schema.SafetyProfile, error) {
	state, err := p.state(touristID)
	if err != nil {
		return schema.SafetyProfile{}, err
	}

	state.mu.Lock()
	state.profile = score.ApplyDelta(state.profile, score.ResolveDelta)
	state.profile.Status = schema.TouristStatusActive
	state.profile.LastActive = time.Now().Unix()
	profile := state.profile

	p.hub.Publish(dispatch.EmergencyResolved{
		Tourist:     touristID,
		SafetyScore: profile.SafetyScore,
		RiskLevel:   profile.RiskLevel,
		Timestamp:   profile.LastActive,
	})
	state.mu.Unlock()

	p.persistProfile(profile)
	if p.notifier != nil {
		go func() {
			if err := p.notifier.NotifyResolved(profile); err != nil {
				log.WithField("tourist", touristID).WithError(err).Error("notify resolved")
			}
		}()
	}

	return profile, nil
}

// UpdateFactors recomputes the safety score from reported factors. This is
// the absolute recompute path; it does not touch the emergency status.
func (p *Pipeline) UpdateFactors(touristID string, factors score.Factors) (schema.SafetyProfile, error) {
	state, err := p.state(touristID)
	if err != nil {
		return schema.SafetyProfile{}, err
	}

	state.mu.Lock()
	state.profile.SafetyScore = score.ComputeFromFactors(factors)
	state.profile.RiskLevel = score.RiskLevelFromScore(state.profile.SafetyScore)
	state.profile.LastActive = time.Now().Unix()
	profile := state.profile
	state.mu.Unlock()

	p.persistProfile(profile)
	return profile, nil
}

// Profile returns the current safety profile of a tourist
func (p *Pipeline) Profile(touristID string) (schema.SafetyProfile, error) {
	state, err := p.state(touristID)
	if err != nil {
		return schema.SafetyProfile{}, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return state.profile, nil
}

// History returns the retained location history, oldest first
func (p *Pipeline) History(touristID string) ([]schema.Position, error) {
	state, err := p.state(touristID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return state.history.snapshot(), nil
}

// recordBreach turns a breach into a durable incident and a push
// notification. Reverse geocoding is best effort; the incident is recorded
// with whatever address we got.
func (p *Pipeline) recordBreach(b BreachEvent) {
	if p.recorder == nil && p.notifier == nil {
		return
	}

	incident := schema.Incident{
		ID:          uuid.New().String(),
		TouristID:   b.TouristID,
		ZoneID:      b.ZoneID,
		ZoneName:    b.ZoneName,
		DangerLevel: b.DangerLevel,
		Position:    b.Position,
		Timestamp:   b.Timestamp,
	}

	go func() {
		if p.resolver != nil {
			address, err := p.resolver.GetAddress(incident.Position.Location)
			if err == nil {
				incident.Address = address
			} else {
				log.WithField("zone", incident.ZoneID).WithError(err).Warn("resolve breach address")
			}
		}

		if p.recorder != nil {
			if err := p.recorder.RecordIncident(incident); err != nil {
				log.WithField("tourist", incident.TouristID).WithError(err).Error("record incident")
			}
		}
		if p.notifier != nil {
			if err := p.notifier.NotifyBreach(incident); err != nil {
				log.WithField("tourist", incident.TouristID).WithError(err).Error("notify breach")
			}
		}
	}()
}

func (p *Pipeline) persistProfile(profile schema.SafetyProfile) {
	if p.recorder == nil {
		return
	}
	go func() {
		if err := p.recorder.RecordProfile(profile); err != nil {
			log.WithField("tourist", profile.TouristID).WithError(err).Error("record profile")
		}
	}()
}

func (p *Pipeline) persistLocation(touristID string, pos schema.Position) {
	if p.recorder == nil {
		return
	}
	go func() {
		if err := p.recorder.RecordLocation(touristID, pos); err != nil {
			log.WithField("tourist", touristID).WithError(err).Error("record location")
		}
	}()
}
