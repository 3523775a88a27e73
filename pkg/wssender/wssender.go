// Package wssender serializes writes to a websocket connection. gorilla
// connections allow one concurrent writer only.
package wssender

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const defaultWriteTimeout = 10 * time.Second

type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type Sender struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	writeTimeout time.Duration
}

func New(conn *websocket.Conn) *Sender {
	return &Sender{
		conn:         conn,
		writeTimeout: defaultWriteTimeout,
	}
}

func (s *Sender) Send(msgType string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := s.conn.WriteJSON(&Message{
		Type:    msgType,
		Payload: payload,
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", msgType, err)
	}

	return nil
}
