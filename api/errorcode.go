package api

import "github.com/tourguard-inc/tourguard-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "tourist is not tracked",
		1101: "position coordinates out of range",

		1200: store.ErrGeofenceNotFound.Error(),
		1201: "geofence radius must be positive",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorTouristNotTracked = errorJSON(1100)
	errorInvalidPosition   = errorJSON(1101)

	errorGeofenceNotFound      = errorJSON(1200)
	errorInvalidGeofenceRadius = errorJSON(1201)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
