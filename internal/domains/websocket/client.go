package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

const (
	clientSendBuffer = 16
)

type client struct {
	id   string
	conn *websocket.Conn

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(id string, conn *websocket.Conn) *client {
	return &client{
		id:   id,
		conn: conn,

		send: make(chan []byte, clientSendBuffer),
		done: make(chan struct{}),
	}
}

// enqueue schedules payload for writing, returns false if client is closed or its buffer is full.
func (c *client) enqueue(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// close signals write pump to send close frame and release connection.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
