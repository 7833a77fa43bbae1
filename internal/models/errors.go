package models

import "errors"

var (
	ErrNotFound         = errors.New("file not found")
	ErrMalformedChunk   = errors.New("malformed chunk")
	ErrConflictingChunk = errors.New("conflicting chunk resubmission")
	ErrInvalidRange     = errors.New("invalid range")
	ErrSessionMismatch  = errors.New("upload session mismatch")
)
