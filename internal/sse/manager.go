// Package sse pushes page updates to the browser as Server-Sent Events.
package sse

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/katiamach/rainfall-console/internal/logger"
)

const clientBuffer = 100

// Message is one Server-Sent Event.
type Message struct {
	ID        int64       `json:"id"`
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Manager fans messages out to the connected pages.
type Manager struct {
	mu        sync.RWMutex
	clients   map[string]chan Message
	onConnect func(clientID string)

	seq int64
}

// NewManager creates new Manager with no clients.
func NewManager() *Manager {
	return &Manager{clients: make(map[string]chan Message)}
}

// AddClient registers clientID and returns its message channel. A client
// registering twice replaces its previous channel.
func (m *Manager) AddClient(clientID string) <-chan Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.clients[clientID]; ok {
		close(existing)
	}

	ch := make(chan Message, clientBuffer)
	m.clients[clientID] = ch

	logger.WithFields(logger.Fields{"client": clientID, "total": len(m.clients)}).Info("sse client connected")
	return ch
}

// RemoveClient unregisters clientID and closes ch. It does nothing when
// clientID has since reconnected with a newer channel.
func (m *Manager) RemoveClient(clientID string, ch <-chan Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.clients[clientID]
	if !ok || current != ch {
		return
	}

	close(current)
	delete(m.clients, clientID)

	logger.WithFields(logger.Fields{"client": clientID, "remaining": len(m.clients)}).Info("sse client disconnected")
}

// ClientCount returns the number of connected clients.
func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.clients)
}

// SetClientConnectCallback sets the function run once a client stream is open.
func (m *Manager) SetClientConnectCallback(fn func(clientID string)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onConnect = fn
}

// NotifyClientConnected runs the connect callback for clientID.
func (m *Manager) NotifyClientConnected(clientID string) {
	m.mu.RLock()
	fn := m.onConnect
	m.mu.RUnlock()

	if fn != nil {
		fn(clientID)
	}
}

// Publish broadcasts an event of the given type.
func (m *Manager) Publish(event string, data interface{}) {
	m.Broadcast(Message{Type: event, Data: data})
}

// Broadcast sends message to every client. Clients whose buffer is full miss
// the message.
func (m *Manager) Broadcast(message Message) {
	message = m.stamp(message)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for id, ch := range m.clients {
		m.deliver(id, ch, message)
	}
}

// SendToClient sends message to clientID only.
func (m *Manager) SendToClient(clientID string, message Message) {
	message = m.stamp(message)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if ch, ok := m.clients[clientID]; ok {
		m.deliver(clientID, ch, message)
	}
}

func (m *Manager) stamp(message Message) Message {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	if message.ID == 0 {
		message.ID = atomic.AddInt64(&m.seq, 1)
	}

	return message
}

func (m *Manager) deliver(clientID string, ch chan Message, message Message) {
	select {
	case ch <- message:
	default:
		logger.WithFields(logger.Fields{"client": clientID, "type": message.Type}).Warn("sse client channel full, skipping message")
	}
}
