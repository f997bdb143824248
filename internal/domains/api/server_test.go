package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/errs"
)

var errTestError = errors.New("test error")

type (
	stubAdvisor struct {
		state entities.NetworkState
		known bool
	}

	stubDelivery struct {
		plans entities.DeliveryPlans
		err   error
	}

	stubCatalog struct {
		shorts entities.CareerShorts
		err    error
	}
)

func (s stubAdvisor) State() (entities.NetworkState, bool) {
	return s.state, s.known
}

func (s stubDelivery) Plan(shortID string) (entities.DeliveryPlan, error) {
	if s.err != nil {
		return entities.DeliveryPlan{}, s.err
	}

	for _, plan := range s.plans {
		if plan.ShortID == shortID {
			return plan, nil
		}
	}

	return entities.DeliveryPlan{}, fmt.Errorf("Plan: %w", errs.ErrShortNotFound)
}

func (s stubDelivery) Feed() (entities.DeliveryPlans, error) {
	return s.plans, s.err
}

func (s stubCatalog) List() (entities.CareerShorts, error) {
	return s.shorts, s.err
}

func wifiState(probedAt time.Time) entities.NetworkState {
	return entities.NewNetworkState(entities.ProbeResult{
		Connected:         true,
		InternetReachable: true,
		Type:              "wifi",
	}, []entities.ConnectionType{entities.ConnectionTypeCellular}, probedAt)
}

func doRequest(t *testing.T, handler http.Handler, path string, target any) int {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}

	return recorder.Code
}

func TestServer_Network(t *testing.T) {
	server := NewServer(":0", stubAdvisor{state: wifiState(time.Now()), known: true}, stubDelivery{}, stubCatalog{}, nil)

	var status entities.NetworkStatus
	code := doRequest(t, server.Router(), "/api/v1/network", &status)
	require.Equal(t, http.StatusOK, code)
	require.True(t, status.Known)
	require.Equal(t, entities.QualityHigh, status.Quality)
	require.True(t, status.ShouldPreload)
	require.Equal(t, entities.ConnectionTypeWifi, status.Type)
}

func TestServer_Plan(t *testing.T) {
	type testTable struct {
		name         string
		delivery     stubDelivery
		path         string
		expectedCode int
	}

	plans := entities.DeliveryPlans{
		{ShortID: "1", Title: "Nurse", Quality: entities.QualityHigh, URL: "https://cdn.example.com/1.mp4?quality=high", Preload: true},
	}

	tests := []testTable{
		{
			name:         "plan found",
			delivery:     stubDelivery{plans: plans},
			path:         "/api/v1/shorts/1/plan",
			expectedCode: http.StatusOK,
		},
		{
			name:         "short not found",
			delivery:     stubDelivery{plans: plans},
			path:         "/api/v1/shorts/42/plan",
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "catalog failure",
			delivery:     stubDelivery{err: errTestError},
			path:         "/api/v1/shorts/1/plan",
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(":0", stubAdvisor{}, tt.delivery, stubCatalog{}, nil)

			var body map[string]any
			code := doRequest(t, server.Router(), tt.path, &body)
			require.Equal(t, tt.expectedCode, code)

			if tt.expectedCode == http.StatusOK {
				require.Equal(t, "1", body["shortId"])
				require.Equal(t, true, body["preload"])
			} else {
				require.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestServer_ShortsAndFeed(t *testing.T) {
	server := NewServer(":0", stubAdvisor{},
		stubDelivery{plans: entities.DeliveryPlans{{ShortID: "1", Quality: entities.QualityOffline, Offline: true}}},
		stubCatalog{shorts: entities.CareerShorts{{ID: "1", Title: "Nurse"}, {ID: "2", Title: "Engineer"}}},
		nil,
	)

	var shorts entities.CareerShorts
	require.Equal(t, http.StatusOK, doRequest(t, server.Router(), "/api/v1/shorts", &shorts))
	require.Len(t, shorts, 2)

	var plans entities.DeliveryPlans
	require.Equal(t, http.StatusOK, doRequest(t, server.Router(), "/api/v1/feed", &plans))
	require.Len(t, plans, 1)
	require.True(t, plans[0].Offline)
	require.Empty(t, plans[0].URL)

	failing := NewServer(":0", stubAdvisor{}, stubDelivery{err: errTestError}, stubCatalog{err: errTestError}, nil)
	require.Equal(t, http.StatusInternalServerError, doRequest(t, failing.Router(), "/api/v1/shorts", nil))
	require.Equal(t, http.StatusInternalServerError, doRequest(t, failing.Router(), "/api/v1/feed", nil))
}

func TestServer_Health(t *testing.T) {
	type testTable struct {
		name           string
		checkers       []HealthChecker
		expectedCode   int
		expectedStatus Status
	}

	tests := []testTable{
		{
			name:           "no checkers",
			expectedCode:   http.StatusOK,
			expectedStatus: StatusHealthy,
		},
		{
			name: "fresh network state",
			checkers: []HealthChecker{
				NewAdvisorChecker(stubAdvisor{state: wifiState(time.Now()), known: true}, time.Minute),
			},
			expectedCode:   http.StatusOK,
			expectedStatus: StatusHealthy,
		},
		{
			name: "unknown network state",
			checkers: []HealthChecker{
				NewAdvisorChecker(stubAdvisor{}, time.Minute),
			},
			expectedCode:   http.StatusOK,
			expectedStatus: StatusDegraded,
		},
		{
			name: "stale network state",
			checkers: []HealthChecker{
				NewAdvisorChecker(stubAdvisor{state: wifiState(time.Now().Add(-time.Hour)), known: true}, time.Minute),
			},
			expectedCode:   http.StatusOK,
			expectedStatus: StatusDegraded,
		},
		{
			name: "unhealthy component",
			checkers: []HealthChecker{
				NewAdvisorChecker(stubAdvisor{}, time.Minute),
				NewFuncChecker("mq", func(_ context.Context) (Status, string) {
					return StatusUnhealthy, "broker unreachable"
				}),
			},
			expectedCode:   http.StatusServiceUnavailable,
			expectedStatus: StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(":0", stubAdvisor{}, stubDelivery{}, stubCatalog{}, nil)
			for _, checker := range tt.checkers {
				server.AddChecker(checker)
			}

			var response HealthResponse
			code := doRequest(t, server.Router(), "/health", &response)
			require.Equal(t, tt.expectedCode, code)
			require.Equal(t, tt.expectedStatus, response.Status)
			require.Len(t, response.Components, len(tt.checkers))
		})
	}
}

func TestServer_StartStop(t *testing.T) {
	server := NewServer("127.0.0.1:0", stubAdvisor{}, stubDelivery{}, stubCatalog{}, nil)

	require.NoError(t, server.Start())
	require.Error(t, server.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, server.Stop(ctx))
	require.NoError(t, server.Stop(ctx))
}
