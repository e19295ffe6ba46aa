package background

import (
	"net/http"
	"time"

	"github.com/tourguard-inc/tourguard-api/external/onesignal"
)

// Background is a struct to maintain common clients and functions for all
// background workers
type Background struct {
	Onesignal *onesignal.OneSignalClient
}

// NewWorker builds the shared client set the task functions close over
func NewWorker() *Background {
	return &Background{
		Onesignal: onesignal.NewClient(&http.Client{
			Timeout: 15 * time.Second,
		}),
	}
}
