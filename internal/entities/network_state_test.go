package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saksham-app/delivery-agent/internal/entities"
)

var defaultSlowTypes = []entities.ConnectionType{entities.ConnectionTypeCellular}

func TestParseConnectionType(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		label    string
		expected entities.ConnectionType
	}{
		{label: "", expected: entities.ConnectionTypeUnknown},
		{label: "UNKNOWN", expected: entities.ConnectionTypeUnknown},
		{label: "WIFI", expected: entities.ConnectionTypeWifi},
		{label: "wifi", expected: entities.ConnectionTypeWifi},
		{label: "802-11-wireless", expected: entities.ConnectionTypeWifi},
		{label: "CELLULAR", expected: entities.ConnectionTypeCellular},
		{label: "gsm", expected: entities.ConnectionTypeCellular},
		{label: " cdma ", expected: entities.ConnectionTypeCellular},
		{label: "ethernet", expected: entities.ConnectionTypeOther},
		{label: "BLUETOOTH", expected: entities.ConnectionTypeOther},
	}
	for _, testCase := range testTable {
		t.Run(testCase.label, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, entities.ParseConnectionType(testCase.label))
		})
	}
}

func TestNetworkState_Quality(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name            string
		result          entities.ProbeResult
		expectedQuality entities.Quality
		expectedPreload bool
		expectedSlow    bool
	}{
		{
			name:            "disconnected wifi",
			result:          entities.ProbeResult{Connected: false, Type: "wifi"},
			expectedQuality: entities.QualityOffline,
		},
		{
			name:            "disconnected cellular",
			result:          entities.ProbeResult{Connected: false, Type: "cellular"},
			expectedQuality: entities.QualityOffline,
			expectedSlow:    true,
		},
		{
			name:            "disconnected unknown",
			result:          entities.ProbeResult{},
			expectedQuality: entities.QualityOffline,
		},
		{
			name:            "connected cellular",
			result:          entities.ProbeResult{Connected: true, InternetReachable: true, Type: "CELLULAR"},
			expectedQuality: entities.QualityLow,
			expectedSlow:    true,
		},
		{
			name:            "connected wifi",
			result:          entities.ProbeResult{Connected: true, InternetReachable: true, Type: "WIFI"},
			expectedQuality: entities.QualityHigh,
			expectedPreload: true,
		},
		{
			name:            "connected ethernet",
			result:          entities.ProbeResult{Connected: true, Type: "ethernet"},
			expectedQuality: entities.QualityHigh,
			expectedPreload: true,
		},
		{
			name:            "connected unknown type",
			result:          entities.ProbeResult{Connected: true},
			expectedQuality: entities.QualityHigh,
			expectedPreload: true,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			state := entities.NewNetworkState(testCase.result, defaultSlowTypes, time.Now())
			require.Equal(t, testCase.expectedQuality, state.Quality())
			require.Equal(t, testCase.expectedPreload, state.ShouldPreload())
			require.Equal(t, testCase.expectedSlow, state.IsSlowConnection())

			// derivations are pure
			require.Equal(t, state.Quality(), state.Quality())
			require.Equal(t, state.ShouldPreload(), state.ShouldPreload())
		})
	}
}

func TestNetworkState_ConfiguredSlowTypes(t *testing.T) {
	t.Parallel()

	slowTypes := []entities.ConnectionType{entities.ConnectionTypeCellular, entities.ConnectionTypeOther}
	state := entities.NewNetworkState(entities.ProbeResult{Connected: true, Type: "ethernet"}, slowTypes, time.Now())

	assert.Equal(t, entities.QualityLow, state.Quality())
	assert.False(t, state.ShouldPreload())
}

func TestNetworkState_ZeroValue(t *testing.T) {
	t.Parallel()

	var state entities.NetworkState
	assert.Equal(t, entities.QualityOffline, state.Quality())
	assert.False(t, state.ShouldPreload())
	assert.Equal(t, entities.ConnectionTypeUnknown, state.Type())
}

func TestNetworkState_Differs(t *testing.T) {
	t.Parallel()

	var (
		now      = time.Now()
		wifi     = entities.NewNetworkState(entities.ProbeResult{Connected: true, Type: "wifi"}, defaultSlowTypes, now)
		wifiNext = entities.NewNetworkState(entities.ProbeResult{Connected: true, Type: "WIFI"}, defaultSlowTypes, now.Add(time.Second))
		cellular = entities.NewNetworkState(entities.ProbeResult{Connected: true, Type: "gsm"}, defaultSlowTypes, now)
	)

	assert.False(t, wifi.Differs(wifiNext))
	assert.True(t, wifi.Differs(cellular))
}

func TestNewNetworkStatus(t *testing.T) {
	t.Parallel()

	probedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	state := entities.NewNetworkState(entities.ProbeResult{Connected: true, InternetReachable: true, Type: "cellular"}, defaultSlowTypes, probedAt)

	status := entities.NewNetworkStatus(state, true)
	require.True(t, status.Known)
	require.Equal(t, entities.QualityLow, status.Quality)
	require.False(t, status.ShouldPreload)
	require.True(t, status.SlowConnection)
	require.NotNil(t, status.ProbedAt)
	require.Equal(t, probedAt, *status.ProbedAt)

	unknown := entities.NewNetworkStatus(entities.NetworkState{}, false)
	require.False(t, unknown.Known)
	require.Nil(t, unknown.ProbedAt)
	require.Equal(t, entities.QualityOffline, unknown.Quality)
}
