package errs

import (
	"errors"
)

var (
	ErrProbeFailure   = errors.New("probe failure")
	ErrAdvisorStopped = errors.New("advisor stopped")
	ErrAdvisorStarted = errors.New("advisor already started")
)

var (
	ErrShortNotFound = errors.New("short not found")
)

var (
	ErrMQNotConnected  = errors.New("mq not connected")
	ErrUnknownProbe    = errors.New("unknown probe kind")
	ErrNoActiveClients = errors.New("no active clients")
)
