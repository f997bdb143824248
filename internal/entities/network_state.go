package entities

import (
	"slices"
	"strings"
	"time"
)

type ConnectionType string

const (
	ConnectionTypeUnknown  ConnectionType = "unknown"
	ConnectionTypeWifi     ConnectionType = "wifi"
	ConnectionTypeCellular ConnectionType = "cellular"
	ConnectionTypeOther    ConnectionType = "other"
)

func (t ConnectionType) String() string {
	return string(t)
}

// ParseConnectionType maps probe vocabulary onto known connection types.
func ParseConnectionType(label string) ConnectionType {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "unknown", "none":
		return ConnectionTypeUnknown
	case "wifi", "wi-fi", "wlan", "802-11-wireless":
		return ConnectionTypeWifi
	case "cellular", "gsm", "cdma", "wwan", "lte", "mobile":
		return ConnectionTypeCellular
	default:
		return ConnectionTypeOther
	}
}

// ProbeResult is the raw answer of a connectivity probe.
type ProbeResult struct {
	Connected         bool   `json:"connected"`
	InternetReachable bool   `json:"internetReachable"`
	Type              string `json:"type"`
}

// NetworkState is an immutable connectivity snapshot.
type NetworkState struct {
	connected         bool
	internetReachable bool
	connType          ConnectionType
	slowConnection    bool
	probedAt          time.Time
}

// NewNetworkState builds snapshot from probe result. Connection is slow when its type is in slowTypes.
func NewNetworkState(result ProbeResult, slowTypes []ConnectionType, probedAt time.Time) NetworkState {
	connType := ParseConnectionType(result.Type)

	return NetworkState{
		connected:         result.Connected,
		internetReachable: result.InternetReachable,
		connType:          connType,
		slowConnection:    slices.Contains(slowTypes, connType),
		probedAt:          probedAt,
	}
}

func (s NetworkState) IsConnected() bool {
	return s.connected
}

func (s NetworkState) IsInternetReachable() bool {
	return s.internetReachable
}

func (s NetworkState) Type() ConnectionType {
	if s.connType == "" {
		return ConnectionTypeUnknown
	}

	return s.connType
}

func (s NetworkState) IsSlowConnection() bool {
	return s.slowConnection
}

func (s NetworkState) ProbedAt() time.Time {
	return s.probedAt
}

// Quality returns coarse delivery quality for snapshot.
func (s NetworkState) Quality() Quality {
	switch {
	case !s.connected:
		return QualityOffline
	case s.slowConnection:
		return QualityLow
	default:
		return QualityHigh
	}
}

// ShouldPreload reports whether content may be buffered before user interaction.
func (s NetworkState) ShouldPreload() bool {
	return s.connected && !s.slowConnection
}

// Differs reports whether other snapshot changes anything a consumer acts on.
func (s NetworkState) Differs(other NetworkState) bool {
	return s.connected != other.connected ||
		s.internetReachable != other.internetReachable ||
		s.Type() != other.Type() ||
		s.slowConnection != other.slowConnection
}
