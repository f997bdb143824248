package netstate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saksham-app/delivery-agent/internal/domains/netstate"
	"github.com/saksham-app/delivery-agent/internal/domains/netstate/netstate_mocks"
)

var (
	errTestError = errors.New("test error")
)

func expectNmcli(f *netstate_mocks.MockIShellService) *netstate_mocks.MockIShellService_ExecOutput_Call {
	return f.EXPECT().
		ExecOutput(mock.Anything, "nmcli", "--terse", "--fields", "TYPE,STATE", "device")
}

func TestLinkProbe_ProbeLink(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name         string
		output       string
		execErr      error
		expectedLink netstate.Link
		expectedErr  error
	}{
		{
			name: "wifi connected",
			output: `wifi:connected
loopback:connected (externally)
ethernet:unavailable
`,
			expectedLink: netstate.Link{Connected: true, Type: "wifi"},
		},
		{
			name: "cellular only",
			output: `gsm:connected
wifi:disconnected
loopback:connected (externally)
`,
			expectedLink: netstate.Link{Connected: true, Type: "gsm"},
		},
		{
			name: "ethernet preferred over wifi and cellular",
			output: `gsm:connected
wifi:connected
ethernet:connected
`,
			expectedLink: netstate.Link{Connected: true, Type: "ethernet"},
		},
		{
			name: "wifi preferred over cellular",
			output: `gsm:connected
wifi:connected
`,
			expectedLink: netstate.Link{Connected: true, Type: "wifi"},
		},
		{
			name: "virtual devices ignored",
			output: `loopback:connected (externally)
bridge:connected
wireguard:connected
wifi:connecting (getting IP configuration)
`,
			expectedLink: netstate.Link{},
		},
		{
			name:         "empty output",
			output:       "",
			expectedLink: netstate.Link{},
		},
		{
			name:        "nmcli failure",
			execErr:     errTestError,
			expectedErr: errTestError,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			shellService := netstate_mocks.NewMockIShellService(t)
			expectNmcli(shellService).
				Return([]byte(testCase.output), testCase.execErr).
				Times(1)

			link, err := netstate.NewLinkProbe(shellService).ProbeLink(context.Background())
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.expectedLink, link)
		})
	}
}
