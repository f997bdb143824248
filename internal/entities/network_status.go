package entities

import (
	"time"
)

// NetworkStatus is the wire view of advisor state.
type NetworkStatus struct {
	Known             bool           `json:"known"`
	Connected         bool           `json:"connected"`
	InternetReachable bool           `json:"internetReachable"`
	Type              ConnectionType `json:"type"`
	SlowConnection    bool           `json:"slowConnection"`
	Quality           Quality        `json:"quality"`
	ShouldPreload     bool           `json:"shouldPreload"`
	ProbedAt          *time.Time     `json:"probedAt,omitempty"`
}

func NewNetworkStatus(state NetworkState, known bool) NetworkStatus {
	status := NetworkStatus{
		Known:             known,
		Connected:         state.IsConnected(),
		InternetReachable: state.IsInternetReachable(),
		Type:              state.Type(),
		SlowConnection:    state.IsSlowConnection(),
		Quality:           state.Quality(),
		ShouldPreload:     state.ShouldPreload(),
	}

	if known {
		probedAt := state.ProbedAt()
		status.ProbedAt = &probedAt
	}

	return status
}
