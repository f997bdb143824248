package constants

import (
	"time"
)

const (
	DefaultProbeInterval = 5 * time.Second
	DefaultProbeTimeout  = 3 * time.Second

	// network state older than StateMaxAgeFactor probe intervals is reported as degraded.
	StateMaxAgeFactor = 3

	ShutdownTimeout = 5 * time.Second
)

const (
	ProbeKindNmcli  = "nmcli"
	ProbeKindStatic = "static"
)

const (
	ReachabilityHTTP = "http"
	ReachabilityICMP = "icmp"
	ReachabilityNone = "none"
)

const (
	DefaultCheckURL   = "http://connectivitycheck.gstatic.com/generate_204"
	DefaultCheckHost  = "1.1.1.1"
	DefaultListenAddr = ":8085"
	DefaultSlowTypes  = "cellular"
)

const (
	NmcliExecutable = "nmcli"
)

const (
	FilePerm = 0755
)
