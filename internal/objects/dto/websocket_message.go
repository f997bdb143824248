package dto

import (
	"encoding/json"
	"fmt"
)

type WebsocketMessage struct {
	ID         string          `json:"id"`
	Method     string          `json:"method"`
	Body       json.RawMessage `json:"body,omitempty"`
	StatusCode int             `json:"statusCode,omitempty"`
	Error      string          `json:"error,omitempty"`

	// ClientID identifies renderer connection the message came from.
	ClientID string `json:"-"`
}

func (m WebsocketMessage) IsErrorResponse() bool {
	return m.StatusCode >= 400
}

func (m WebsocketMessage) Err() error {
	if !m.IsErrorResponse() {
		return nil
	}

	return fmt.Errorf("%d: %s", m.StatusCode, m.Error)
}
