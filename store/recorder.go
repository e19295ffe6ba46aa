package store

import (
	"github.com/tourguard-inc/tourguard-api/schema"
)

// PipelineRecorder adapts the mongo store to the pipeline's Recorder
// interface. The pipeline calls it from detached goroutines, so blocking on
// mongo here never touches the ingestion path.
type PipelineRecorder struct {
	store MongoStore
}

func NewPipelineRecorder(store MongoStore) *PipelineRecorder {
	return &PipelineRecorder{
		store: store,
	}
}

func (r *PipelineRecorder) RecordIncident(incident schema.Incident) error {
	return r.store.InsertIncident(incident)
}

func (r *PipelineRecorder) RecordProfile(profile schema.SafetyProfile) error {
	return r.store.UpsertProfile(profile)
}

func (r *PipelineRecorder) RecordLocation(touristID string, pos schema.Position) error {
	return r.store.AddLocationRecord(touristID, pos)
}
