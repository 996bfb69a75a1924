package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidTime = New(
		"INVALID_TIME",
		"Invalid time, expected HH:MM in 24h format",
		http.StatusBadRequest,
	)

	ErrEmptyWaypointName = New(
		"VALIDATION_ERROR",
		"Waypoint name must not be empty",
		http.StatusBadRequest,
	)

	ErrActivityNotFound = New(
		"NOT_FOUND",
		"Activity not found",
		http.StatusNotFound,
	)

	ErrWaypointNotFound = New(
		"NOT_FOUND",
		"Waypoint not found",
		http.StatusNotFound,
	)

	ErrPersistenceCorrupt = New(
		"PERSISTENCE_CORRUPT",
		"Persisted waypoint data is unreadable",
		http.StatusInternalServerError,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"Storage operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
