package schedulers

import "errors"

var (
	ErrInvalidQuantum         = errors.New("time quantum must be a positive integer")
	ErrDeadlockRisk           = errors.New("system is not in safe state")
	ErrMalformedResourceState = errors.New("malformed resource state")
	ErrUnknownAlgorithm       = errors.New("unknown scheduling algorithm")
	ErrInvalidProcess         = errors.New("invalid process")
)
