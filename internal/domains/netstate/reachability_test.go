package netstate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/saksham-app/delivery-agent/internal/domains/netstate"
)

func TestHTTPReachability_CheckReachable(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name              string
		statusCode        int
		expectedReachable bool
	}{
		{
			name:              "generate 204",
			statusCode:        http.StatusNoContent,
			expectedReachable: true,
		},
		{
			name:              "server error",
			statusCode:        http.StatusInternalServerError,
			expectedReachable: false,
		},
		{
			name:              "forbidden",
			statusCode:        http.StatusForbidden,
			expectedReachable: false,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(testCase.statusCode)
			}))
			defer server.Close()

			reachable, err := netstate.NewHTTPReachability(server.URL, time.Second).CheckReachable(context.Background())
			require.NoError(t, err)
			require.Equal(t, testCase.expectedReachable, reachable)
		})
	}
}

func TestHTTPReachability_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	url := server.URL
	server.Close()

	reachable, err := netstate.NewHTTPReachability(url, time.Second).CheckReachable(context.Background())
	require.Error(t, err)
	require.False(t, reachable)
}

func TestHTTPReachability_CaptivePortal(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name              string
		path              string
		statusCode        int
		expectedReachable bool
	}{
		{
			name:              "generate 204 answered with no content",
			path:              "/generate_204",
			statusCode:        http.StatusNoContent,
			expectedReachable: true,
		},
		{
			name:              "generate 204 answered with login page",
			path:              "/generate_204",
			statusCode:        http.StatusOK,
			expectedReachable: false,
		},
		{
			name:              "custom check url answered with ok",
			path:              "/health",
			statusCode:        http.StatusOK,
			expectedReachable: true,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if testCase.statusCode == http.StatusOK {
					_, _ = w.Write([]byte("<html>sign in to continue</html>"))
					return
				}
				w.WriteHeader(testCase.statusCode)
			}))
			defer server.Close()

			reachable, err := netstate.NewHTTPReachability(server.URL+testCase.path, time.Second).CheckReachable(context.Background())
			require.NoError(t, err)
			require.Equal(t, testCase.expectedReachable, reachable)
		})
	}
}

func TestICMPReachability_UnresolvableHost(t *testing.T) {
	t.Parallel()

	reachable, err := netstate.NewICMPReachability("host.invalid", 100*time.Millisecond, false).
		CheckReachable(context.Background())
	require.Error(t, err)
	require.False(t, reachable)
}
