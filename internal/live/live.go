// Package live consumes the service's informational event feed. The
// service broadcasts a JSON message per state change over a WebSocket; the
// client only listens, it never sends.
package live

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

// Event is one decoded notification. Type carries the server's snake_case
// event name; Data keeps the full message for display.
type Event struct {
	Type string
	Data json.RawMessage
}

// Stream connects to the live endpoint and delivers events until ctx is
// canceled or the server closes the socket. The returned channel closes
// when the stream ends.
func Stream(ctx context.Context, baseURL, prefix string) (<-chan Event, error) {
	target, err := wsURL(baseURL, prefix)
	if err != nil {
		return nil, err
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, target, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %d)", target, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}

	ch := make(chan Event)
	done := make(chan struct{})

	// ReadMessage cannot be interrupted by ctx directly; closing the
	// connection unblocks it.
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	go func() {
		defer close(ch)
		defer close(done)
		defer conn.Close()
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var probe struct {
				Type string `json:"type"`
			}
			_ = json.Unmarshal(msg, &probe)
			select {
			case ch <- Event{Type: probe.Type, Data: json.RawMessage(msg)}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// wsURL derives the WebSocket target from the HTTP base URL and the API
// prefix.
func wsURL(baseURL, prefix string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("parse server URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + strings.TrimRight(strings.TrimSpace(prefix), "/") + "/live"
	return u.String(), nil
}
