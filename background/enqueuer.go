package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/tourguard-inc/tourguard-api/schema"
)

// Enqueuer submits notification tasks to the machinery broker. It implements
// the pipeline's Notifier interface so the ingestion path only pays for a
// queue write.
type Enqueuer struct {
	taskServer *machinery.Server
}

func NewEnqueuer(taskServer *machinery.Server) *Enqueuer {
	return &Enqueuer{
		taskServer: taskServer,
	}
}

func (e *Enqueuer) NotifyBreach(incident schema.Incident) error {
	_, err := e.taskServer.SendTask(&tasks.Signature{
		Name: TaskNotifyGeofenceBreach,
		Args: []tasks.Arg{
			{Type: "string", Value: incident.TouristID},
			{Type: "string", Value: incident.ZoneName},
			{Type: "string", Value: string(incident.DangerLevel)},
			{Type: "string", Value: incident.Address},
		},
	})
	return err
}

func (e *Enqueuer) NotifyEmergency(profile schema.SafetyProfile, reason string) error {
	_, err := e.taskServer.SendTask(&tasks.Signature{
		Name: TaskNotifyEmergency,
		Args: []tasks.Arg{
			{Type: "string", Value: profile.TouristID},
			{Type: "string", Value: reason},
			{Type: "int64", Value: int64(profile.SafetyScore)},
		},
	})
	return err
}

func (e *Enqueuer) NotifyResolved(profile schema.SafetyProfile) error {
	_, err := e.taskServer.SendTask(&tasks.Signature{
		Name: TaskNotifyResolved,
		Args: []tasks.Arg{
			{Type: "string", Value: profile.TouristID},
			{Type: "int64", Value: int64(profile.SafetyScore)},
		},
	})
	return err
}
