package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
)

// BackgroundManager runs the notification task workers
type BackgroundManager struct {
	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("tourguard-worker", 5)
	return m.worker.Launch()
}
