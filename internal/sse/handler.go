package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/katiamach/rainfall-console/internal/logger"
)

// KeepAlive is the interval of the comment lines that keep idle streams open.
var KeepAlive = 30 * time.Second

// Handler streams the manager's messages to one page until it disconnects.
func Handler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		clientID := r.Header.Get("X-Client-Id")
		if clientID == "" {
			clientID = uuid.NewString()
		}

		messages := mgr.AddClient(clientID)
		defer mgr.RemoveClient(clientID, messages)

		hello := Message{ID: -1, Type: "connected", Data: map[string]string{"client_id": clientID}, Timestamp: time.Now()}
		if err := Write(w, hello); err != nil {
			logger.Error(fmt.Errorf("failed to greet sse client %s: %w", clientID, err))
			return
		}
		flusher.Flush()

		mgr.NotifyClientConnected(clientID)

		ticker := time.NewTicker(KeepAlive)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				if err := Write(w, msg); err != nil {
					logger.Error(fmt.Errorf("failed to send sse message to %s: %w", clientID, err))
					return
				}
				flusher.Flush()
			case <-ticker.C:
				if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// Write encodes msg in the event stream format with a JSON data line.
func Write(w io.Writer, msg Message) error {
	data := []byte("{}")
	if msg.Data != nil {
		var err error
		data, err = json.Marshal(msg.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal sse data: %w", err)
		}
	}

	if msg.ID > 0 {
		if _, err := fmt.Fprintf(w, "id: %d\n", msg.ID); err != nil {
			return err
		}
	}
	if msg.Type != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", msg.Type); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "data: %s\n\n", data)

	return err
}
