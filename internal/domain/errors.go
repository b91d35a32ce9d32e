package domain

import "errors"

var (
	// ErrEmptyCommand is returned when a command is blank after trimming.
	ErrEmptyCommand = errors.New("command is empty")
	// ErrUnknownMode is returned for modes other than interact and extract.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrSubmissionInFlight is returned when a submission is already outstanding.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	// ErrMalformedPayload is returned when a backend response body is not JSON.
	ErrMalformedPayload = errors.New("malformed response payload")
)
