package advisorevent

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/saksham-app/delivery-agent/internal/constants"
	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/errs"
	"github.com/saksham-app/delivery-agent/internal/observable"
)

type (
	IAdvisorService interface {
		StateChanged() *observable.Observable[entities.NetworkState]
	}

	IBroadcaster interface {
		Broadcast(method string, body any) (err error)
	}

	IMQPublisher interface {
		IsConnected() bool
		Publish(subject string, body any) (err error)
	}

	// Service pushes advisor state changes to connected renderers and MQ subscribers.
	Service struct {
		advisorService IAdvisorService
		broadcaster    IBroadcaster
		mqPublisher    IMQPublisher
	}
)

func NewService(advisorService IAdvisorService, broadcaster IBroadcaster, mqPublisher IMQPublisher) *Service {
	return &Service{
		advisorService: advisorService,
		broadcaster:    broadcaster,
		mqPublisher:    mqPublisher,
	}
}

func (s *Service) StartListenEvents(ctx context.Context) {
	stateListener := s.advisorService.StateChanged().Subscribe()
	defer s.advisorService.StateChanged().Unsubscribe(stateListener)

	for {
		select {
		case <-ctx.Done():
			return

		case state := <-stateListener.C():
			s.notify(entities.NewNetworkStatus(state, true))
		}
	}
}

func (s *Service) notify(status entities.NetworkStatus) {
	log.Info().
		Str("type", status.Type.String()).
		Str("quality", status.Quality.String()).
		Bool("preload", status.ShouldPreload).
		Msg("notify: network state changed")

	if err := s.broadcaster.Broadcast(constants.MethodNetworkStateChanged, status); err != nil {
		if !errors.Is(err, errs.ErrNoActiveClients) {
			log.Error().Err(err).Msg("notify: broadcast network state error")
		}
	}

	if s.mqPublisher == nil || !s.mqPublisher.IsConnected() {
		return
	}

	if err := s.mqPublisher.Publish(constants.MQAdvisorStateChanged, status); err != nil {
		log.Error().Err(err).Msg("notify: publish network state error")
	}
}
