package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/saksham-app/delivery-agent/internal/errs"
	"github.com/saksham-app/delivery-agent/internal/objects/dto"
)

type (
	WsHandler func(request dto.WebsocketMessage) error

	// Service accepts media renderer connections and routes their requests by method.
	Service struct {
		upgrader   websocket.Upgrader
		pingPeriod time.Duration
		pongWait   time.Duration
		writeWait  time.Duration

		routes map[string]WsHandler

		mx      sync.RWMutex
		clients map[string]*client
		closed  bool
	}
)

func NewService(pingPeriod, pongWait, writeWait time.Duration) *Service {
	return &Service{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		pingPeriod: pingPeriod,
		pongWait:   pongWait,
		writeWait:  writeWait,

		routes:  map[string]WsHandler{},
		clients: map[string]*client{},
	}
}

func (s *Service) SetRoutes(routes map[string]WsHandler) {
	s.routes = routes
}

// ServeHTTP upgrades request to websocket connection and registers renderer client.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("ServeHTTP: upgrade connection error")
		return
	}

	c := newClient(uuid.NewString(), conn)
	if !s.register(c) {
		c.close()
		return
	}

	log.Debug().
		Str("client", c.id).
		Str("remote addr", r.RemoteAddr).
		Msg("ServeHTTP: renderer connected")

	go s.writePump(c)
	go s.readPump(c)
}

// PublishResponse sends response for request back to requesting client.
func (s *Service) PublishResponse(sourceMessage dto.WebsocketMessage, body any) (err error) {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("PublishResponse: %w", err)
	}

	response := dto.WebsocketMessage{
		ID:         sourceMessage.ID,
		Method:     sourceMessage.Method,
		Body:       data,
		StatusCode: http.StatusOK,
	}
	if err = s.sendTo(sourceMessage.ClientID, response); err != nil {
		return fmt.Errorf("PublishResponse: %w", err)
	}

	return nil
}

// PublishErrorResponse sends error response for request back to requesting client.
func (s *Service) PublishErrorResponse(sourceMessage dto.WebsocketMessage, statusCode int, errMsg string) (err error) {
	response := dto.WebsocketMessage{
		ID:         sourceMessage.ID,
		Method:     sourceMessage.Method,
		StatusCode: statusCode,
		Error:      errMsg,
	}
	if err = s.sendTo(sourceMessage.ClientID, response); err != nil {
		return fmt.Errorf("PublishErrorResponse: %w", err)
	}

	return nil
}

// Broadcast sends notification to every connected client.
func (s *Service) Broadcast(method string, body any) (err error) {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("Broadcast: %w", err)
	}

	payload, err := json.Marshal(dto.WebsocketMessage{
		ID:     uuid.NewString(),
		Method: method,
		Body:   data,
	})
	if err != nil {
		return fmt.Errorf("Broadcast: %w", err)
	}

	s.mx.RLock()
	defer s.mx.RUnlock()

	if len(s.clients) == 0 {
		return fmt.Errorf("Broadcast: %w", errs.ErrNoActiveClients)
	}

	for _, c := range s.clients {
		if !c.enqueue(payload) {
			log.Warn().
				Str("client", c.id).
				Str("method", method).
				Msg("Broadcast: client send buffer is full, notification dropped")
		}
	}

	return nil
}

func (s *Service) ClientsCount() int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return len(s.clients)
}

// Stop disconnects all clients and rejects new ones.
func (s *Service) Stop() (err error) {
	s.mx.Lock()
	if s.closed {
		s.mx.Unlock()
		return fmt.Errorf("Stop: websocket service already stopped")
	}

	s.closed = true
	clients := s.clients
	s.clients = map[string]*client{}
	s.mx.Unlock()

	for _, c := range clients {
		c.close()
	}

	return nil
}

func (s *Service) register(c *client) bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.closed {
		return false
	}

	s.clients[c.id] = c
	return true
}

func (s *Service) unregister(c *client) {
	s.mx.Lock()
	delete(s.clients, c.id)
	s.mx.Unlock()

	c.close()
}

func (s *Service) sendTo(clientID string, message dto.WebsocketMessage) (err error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("sendTo: %w", err)
	}

	s.mx.RLock()
	c, ok := s.clients[clientID]
	s.mx.RUnlock()
	if !ok {
		return fmt.Errorf("sendTo: client %s is not connected", clientID)
	}

	if !c.enqueue(payload) {
		return fmt.Errorf("sendTo: client %s send buffer is full", clientID)
	}

	return nil
}

func (s *Service) readPump(c *client) {
	defer s.unregister(c)

	if err := c.conn.SetReadDeadline(time.Now().Add(s.pongWait)); err != nil {
		log.Error().Err(err).Msg("readPump: set read deadline error")
		return
	}

	c.conn.SetPongHandler(func(_ string) error {
		return c.conn.SetReadDeadline(time.Now().Add(s.pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().
					Err(err).
					Str("client", c.id).
					Msg("readPump: connection closed unexpectedly")
			}

			return
		}

		var request dto.WebsocketMessage
		if err = json.Unmarshal(data, &request); err != nil {
			log.Warn().
				Err(err).
				Str("client", c.id).
				Msg("readPump: malformed websocket message")

			continue
		}
		request.ClientID = c.id

		log.Trace().
			Any("websocket message", request).
			Msg("readPump: got websocket message")

		handler, ok := s.routes[request.Method]
		if !ok {
			if err = s.PublishErrorResponse(request, http.StatusMethodNotAllowed, "method not allowed"); err != nil {
				log.Error().Err(err).Msg("readPump")
			}

			continue
		}

		go func() {
			if err := handler(request); err != nil {
				log.Error().
					Err(err).
					Str("method", request.Method).
					Msg("readPump")
			}
		}()
	}
}

func (s *Service) writePump(c *client) {
	ticker := time.NewTicker(s.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(s.writeWait))
			_ = c.conn.Close()
			return

		case payload := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(s.writeWait)); err != nil {
				log.Error().Err(err).Msg("writePump: set write deadline error")
				s.unregister(c)
				break
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Error().
					Err(err).
					Str("client", c.id).
					Msg("writePump: write message error")

				s.unregister(c)
			}

		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.writeWait)); err != nil {
				log.Error().
					Err(err).
					Str("client", c.id).
					Msg("writePump: ping websocket failed")

				s.unregister(c)
			}
		}
	}
}
