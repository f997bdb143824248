package mq

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/saksham-app/delivery-agent/internal/errs"
)

const (
	reconnectWait = 2 * time.Second
)

type (
	Handler func(m *nats.Msg) (resp any)

	// Service is request/reply and publish gateway to the NATS broker.
	Service struct {
		url string

		mx            sync.Mutex
		conn          *nats.Conn
		handlers      map[string]Handler
		subscriptions map[string]*nats.Subscription
	}
)

func NewService(url string) *Service {
	return &Service{
		url:           url,
		handlers:      map[string]Handler{},
		subscriptions: map[string]*nats.Subscription{},
	}
}

func (s *Service) RegisterHandlers(handlers map[string]Handler) {
	s.mx.Lock()
	defer s.mx.Unlock()

	for subject, handler := range handlers {
		s.handlers[subject] = handler
	}
}

// Connect connects to broker, reconnects are handled by nats client.
func (s *Service) Connect() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn != nil {
		return fmt.Errorf("Connect: already connected")
	}

	conn, err := nats.Connect(s.url,
		nats.Name("delivery-agent"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Connect: disconnected from MQ broker")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("Connect: reconnected to MQ broker")
		}),
	)
	if err != nil {
		return fmt.Errorf("Connect: %w", err)
	}

	s.conn = conn
	return nil
}

func (s *Service) IsConnected() bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.conn != nil && s.conn.IsConnected()
}

// ActivateHandler subscribes registered handler to its subject.
func (s *Service) ActivateHandler(subject string) (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn == nil {
		return fmt.Errorf("ActivateHandler: %w", errs.ErrMQNotConnected)
	}

	handler, ok := s.handlers[subject]
	if !ok {
		return fmt.Errorf("ActivateHandler: handler for subject %s is not registered", subject)
	}

	if _, ok = s.subscriptions[subject]; ok {
		return nil
	}

	subscription, err := s.conn.Subscribe(subject, func(m *nats.Msg) {
		data, err := encodeResponse(handler, m)
		if err != nil {
			log.Error().Err(err).Str("subject", subject).Msg("ActivateHandler")
			return
		}

		if m.Reply == "" {
			return
		}

		if err = m.Respond(data); err != nil {
			log.Error().Err(err).Str("subject", subject).Msg("ActivateHandler: respond error")
		}
	})
	if err != nil {
		return fmt.Errorf("ActivateHandler: %w", err)
	}

	s.subscriptions[subject] = subscription
	return nil
}

func (s *Service) DeactivateHandler(subject string) (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	subscription, ok := s.subscriptions[subject]
	if !ok {
		return nil
	}

	delete(s.subscriptions, subject)
	if err = subscription.Unsubscribe(); err != nil {
		return fmt.Errorf("DeactivateHandler: %w", err)
	}

	return nil
}

// Publish sends json encoded body to subject.
func (s *Service) Publish(subject string, body any) (err error) {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	s.mx.Lock()
	conn := s.conn
	s.mx.Unlock()

	if conn == nil {
		return fmt.Errorf("Publish: %w", errs.ErrMQNotConnected)
	}

	if err = conn.Publish(subject, data); err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	return nil
}

// Close drains subscriptions and closes connection.
func (s *Service) Close() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn == nil {
		return nil
	}

	conn := s.conn
	s.conn = nil
	s.subscriptions = map[string]*nats.Subscription{}

	if err = conn.Drain(); err != nil {
		conn.Close()
		return fmt.Errorf("Close: %w", err)
	}

	return nil
}

func encodeResponse(handler Handler, m *nats.Msg) (data []byte, err error) {
	resp := handler(m)
	if resp == nil {
		return nil, fmt.Errorf("encodeResponse: handler returned empty response")
	}

	if data, err = json.Marshal(resp); err != nil {
		return nil, fmt.Errorf("encodeResponse: %w", err)
	}

	return data, nil
}
