package delivery_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saksham-app/delivery-agent/internal/domains/delivery"
	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/errs"
	"github.com/saksham-app/delivery-agent/internal/objects/dto"
)

type publishedResponse struct {
	body       any
	statusCode int
	errMsg     string
}

type recordingPublisher struct {
	mx        sync.Mutex
	responses []publishedResponse
}

func (p *recordingPublisher) PublishResponse(_ dto.WebsocketMessage, body any) error {
	p.mx.Lock()
	defer p.mx.Unlock()

	p.responses = append(p.responses, publishedResponse{body: body, statusCode: http.StatusOK})
	return nil
}

func (p *recordingPublisher) PublishErrorResponse(_ dto.WebsocketMessage, statusCode int, errMsg string) error {
	p.mx.Lock()
	defer p.mx.Unlock()

	p.responses = append(p.responses, publishedResponse{statusCode: statusCode, errMsg: errMsg})
	return nil
}

func newRequest(t *testing.T, body any) dto.WebsocketMessage {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	return dto.WebsocketMessage{
		ID:     "req-1",
		Method: "get_delivery_plan",
		Body:   data,
	}
}

func TestHandler_GetDeliveryPlan(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name               string
		body               any
		prepare            func(f *serviceFields)
		expectedStatusCode int
	}{
		{
			name: "plan published",
			body: map[string]string{"shortId": "1"},
			prepare: func(f *serviceFields) {
				f.catalogService.EXPECT().Get("1").Return(testShort, nil)
				f.advisorService.EXPECT().State().Return(newState(entities.ProbeResult{Connected: true, Type: "wifi"}), true)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "missing short id",
			body:               map[string]string{},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown short",
			body: map[string]string{"shortId": "404"},
			prepare: func(f *serviceFields) {
				f.catalogService.EXPECT().Get("404").Return(entities.CareerShort{}, errs.ErrShortNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			publisher := new(recordingPublisher)
			handler := delivery.NewHandler(publisher, delivery.NewService(f.advisorService, f.catalogService))

			err := handler.GetDeliveryPlan(newRequest(t, testCase.body))
			if testCase.expectedStatusCode == http.StatusOK {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}

			require.Len(t, publisher.responses, 1)
			require.Equal(t, testCase.expectedStatusCode, publisher.responses[0].statusCode)
			if testCase.expectedStatusCode == http.StatusOK {
				plan, ok := publisher.responses[0].body.(entities.DeliveryPlan)
				require.True(t, ok)
				require.Equal(t, entities.QualityHigh, plan.Quality)
			}
		})
	}
}

func TestHandler_ListFeed(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.catalogService.EXPECT().List().Return(entities.CareerShorts{testShort}, nil)
	f.advisorService.EXPECT().State().Return(newState(entities.ProbeResult{Connected: true, Type: "wifi"}), true)

	publisher := new(recordingPublisher)
	handler := delivery.NewHandler(publisher, delivery.NewService(f.advisorService, f.catalogService))

	require.NoError(t, handler.ListFeed(dto.WebsocketMessage{ID: "req-2", Method: "list_feed"}))
	require.Len(t, publisher.responses, 1)

	plans, ok := publisher.responses[0].body.(entities.DeliveryPlans)
	require.True(t, ok)
	require.Len(t, plans, 1)
}
