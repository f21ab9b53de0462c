package catalog

import "errors"

var (
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("catalog entry not found")
	// ErrScanInProgress is returned when another process holds the scan lock.
	ErrScanInProgress = errors.New("catalog scan already in progress")
)
