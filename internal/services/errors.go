package services

import "errors"

var (
	// ErrCheckpointNotFound means a checkpoint id did not resolve.
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	// ErrInvalidTimestamp means a sync watermark could not be parsed.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
