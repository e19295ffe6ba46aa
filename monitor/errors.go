package monitor

import "fmt"

var (
	// ErrInvalidPosition - coordinates out of range; the caller must correct
	// the position before retrying
	ErrInvalidPosition = fmt.Errorf("position coordinates out of range")

	// ErrUnknownTourist - the tourist has no tracking state yet
	ErrUnknownTourist = fmt.Errorf("tourist is not tracked")

	// ErrInvalidZoneRadius - geofence radius must be positive
	ErrInvalidZoneRadius = fmt.Errorf("geofence radius must be positive")
)
