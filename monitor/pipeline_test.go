package monitor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tourguard-inc/tourguard-api/dispatch"
	"github.com/tourguard-inc/tourguard-api/schema"
	"github.com/tourguard-inc/tourguard-api/score"
)

type fakeRecorder struct {
	incidents chan schema.Incident
	profiles  chan schema.SafetyProfile
	locations chan schema.Position
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{
		incidents: make(chan schema.Incident, 16),
		profiles:  make(chan schema.SafetyProfile, 16),
		locations: make(chan schema.Position, 256),
	}
}

func (r *fakeRecorder) RecordIncident(incident schema.Incident) error {
	r.incidents <- incident
	return nil
}

func (r *fakeRecorder) RecordProfile(profile schema.SafetyProfile) error {
	r.profiles <- profile
	return nil
}

func (r *fakeRecorder) RecordLocation(touristID string, pos schema.Position) error {
	r.locations <- pos
	return nil
}

func newTestPipeline(zones ...schema.GeofenceZone) *Pipeline {
	index := NewZoneIndex()
	for _, z := range zones {
		if err := index.Upsert(z); err != nil {
			panic(err)
		}
	}
	return NewPipeline(index, dispatch.NewHub(), nil, nil, nil)
}

func TestTrackIdempotent(t *testing.T) {
	p := newTestPipeline()

	first := p.Track("t1", "Asha")
	assert.Equal(t, 100, first.SafetyScore)
	assert.Equal(t, schema.RiskLevelLow, first.RiskLevel)
	assert.Equal(t, schema.TouristStatusActive, first.Status)

	again := p.Track("t1", "someone else")
	assert.Equal(t, "Asha", again.Name)
}

func TestIngestRejectsInvalidPosition(t *testing.T) {
	p := newTestPipeline()
	p.Track("t1", "")

	cases := []schema.Position{
		positionAt(91, 0),
		positionAt(-91, 0),
		positionAt(0, 181),
		positionAt(0, -181),
		{Location: schema.Location{Latitude: 26, Longitude: 91}, Accuracy: -1},
	}
	for _, pos := range cases {
		_, err := p.IngestLocation("t1", pos)
		assert.Equal(t, ErrInvalidPosition, err)
	}
}

func TestIngestUnknownTourist(t *testing.T) {
	p := newTestPipeline()
	_, err := p.IngestLocation("nobody", positionAt(26.15, 91.74))
	assert.Equal(t, ErrUnknownTourist, err)

	_, err = p.TriggerPanic("nobody", "")
	assert.Equal(t, ErrUnknownTourist, err)

	_, err = p.ResolveEmergency("nobody")
	assert.Equal(t, ErrUnknownTourist, err)
}

func TestImmediateBreachLeavesProfileUntouched(t *testing.T) {
	p := newTestPipeline(dangerZone("z1", 26.1500, 91.7400, 1500))
	p.Track("t1", "")

	breaches, err := p.IngestLocation("t1", positionAt(26.1500, 91.7400))
	assert.NoError(t, err)
	assert.Len(t, breaches, 1)
	assert.Equal(t, schema.DangerLevelDanger, breaches[0].DangerLevel)

	// informational hazard, not confirmed distress
	profile, err := p.Profile("t1")
	assert.NoError(t, err)
	assert.Equal(t, 100, profile.SafetyScore)
	assert.Equal(t, schema.TouristStatusActive, profile.Status)
}

func TestStationaryTouristBreachesOnce(t *testing.T) {
	p := newTestPipeline(dangerZone("z1", 26.15, 91.74, 1500))
	p.Track("t1", "")

	total := 0
	for i := 0; i < 10; i++ {
		breaches, err := p.IngestLocation("t1", positionAt(26.15, 91.74))
		assert.NoError(t, err)
		total += len(breaches)
	}
	assert.Equal(t, 1, total)

	// leave and come back: exactly one more
	breaches, err := p.IngestLocation("t1", positionAt(26.30, 91.90))
	assert.NoError(t, err)
	assert.Empty(t, breaches)

	breaches, err = p.IngestLocation("t1", positionAt(26.15, 91.74))
	assert.NoError(t, err)
	assert.Len(t, breaches, 1)
}

func TestHistoryBounded(t *testing.T) {
	p := newTestPipeline()
	p.Track("t1", "")

	for i := 0; i < 105; i++ {
		_, err := p.IngestLocation("t1", positionAt(10, float64(i)/1000))
		assert.NoError(t, err)
	}

	history, err := p.History("t1")
	assert.NoError(t, err)
	assert.Len(t, history, 100)
	for i, pos := range history {
		assert.Equal(t, float64(5+i)/1000, pos.Longitude)
	}
}

func TestPanicAndResolveScenario(t *testing.T) {
	p := newTestPipeline()
	p.Track("t1", "")

	// inactivity penalty brings the score to 60
	profile, err := p.UpdateFactors("t1", score.Factors{InactiveMinutes: 31})
	assert.NoError(t, err)
	assert.Equal(t, 60, profile.SafetyScore)
	assert.Equal(t, schema.RiskLevelMedium, profile.RiskLevel)

	profile, err = p.TriggerPanic("t1", "lost in the hills")
	assert.NoError(t, err)
	assert.Equal(t, 30, profile.SafetyScore)
	assert.Equal(t, schema.RiskLevelHigh, profile.RiskLevel)
	assert.Equal(t, schema.TouristStatusEmergency, profile.Status)

	profile, err = p.ResolveEmergency("t1")
	assert.NoError(t, err)
	assert.Equal(t, 50, profile.SafetyScore)
	assert.Equal(t, schema.RiskLevelMedium, profile.RiskLevel)
	assert.Equal(t, schema.TouristStatusActive, profile.Status)
}

func TestConcurrentIngestSameTourist(t *testing.T) {
	p := newTestPipeline(dangerZone("z1", 26.15, 91.74, 1500))
	p.Track("t1", "")

	const updates = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0

	for i := 0; i < updates; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			breaches, err := p.IngestLocation("t1", positionAt(26.15, 91.74))
			assert.NoError(t, err)
			mu.Lock()
			total += len(breaches)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// every update lands inside the zone but only one entry event fires
	assert.Equal(t, 1, total)

	history, err := p.History("t1")
	assert.NoError(t, err)
	assert.Len(t, history, updates)
}

func TestConcurrentIngestDifferentTourists(t *testing.T) {
	p := newTestPipeline(dangerZone("z1", 26.15, 91.74, 1500))

	const tourists = 20
	for i := 0; i < tourists; i++ {
		p.Track(touristName(i), "")
	}

	var wg sync.WaitGroup
	results := make(chan int, tourists)
	for i := 0; i < tourists; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			breaches, err := p.IngestLocation(id, positionAt(26.15, 91.74))
			assert.NoError(t, err)
			results <- len(breaches)
		}(touristName(i))
	}
	wg.Wait()
	close(results)

	for n := range results {
		assert.Equal(t, 1, n)
	}
}

func touristName(i int) string {
	return string(rune('a'+i)) + "-tourist"
}

func TestBreachPublishedToHub(t *testing.T) {
	index := NewZoneIndex()
	assert.NoError(t, index.Upsert(dangerZone("z1", 26.15, 91.74, 1500)))

	hub := dispatch.NewHub()
	defer hub.Shutdown()

	received := make(chan []byte, 4)
	hub.Subscribe("dashboard", dispatch.GlobalScope(), func(payload []byte) error {
		received <- payload
		return nil
	})

	p := NewPipeline(index, hub, nil, nil, nil)
	p.Track("t1", "")
	_, err := p.IngestLocation("t1", positionAt(26.15, 91.74))
	assert.NoError(t, err)

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("breach event never reached the subscriber")
	}
}

func TestRecorderReceivesIncidentAndProfile(t *testing.T) {
	index := NewZoneIndex()
	assert.NoError(t, index.Upsert(dangerZone("z1", 26.15, 91.74, 1500)))

	recorder := newFakeRecorder()
	p := NewPipeline(index, dispatch.NewHub(), recorder, nil, nil)
	p.Track("t1", "")

	// Track persists the initial profile
	select {
	case profile := <-recorder.profiles:
		assert.Equal(t, "t1", profile.TouristID)
	case <-time.After(2 * time.Second):
		t.Fatal("initial profile never recorded")
	}

	_, err := p.IngestLocation("t1", positionAt(26.15, 91.74))
	assert.NoError(t, err)

	select {
	case incident := <-recorder.incidents:
		assert.Equal(t, "z1", incident.ZoneID)
		assert.NotEmpty(t, incident.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("incident never recorded")
	}

	select {
	case <-recorder.locations:
	case <-time.After(2 * time.Second):
		t.Fatal("location never recorded")
	}
}
