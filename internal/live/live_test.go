package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWSURL(t *testing.T) {
	cases := []struct {
		base, prefix, want string
	}{
		{"http://localhost:8080", "/api", "ws://localhost:8080/api/live"},
		{"https://bids.example.com", "/api", "wss://bids.example.com/api/live"},
		{"http://localhost:8080", "", "ws://localhost:8080/live"},
		{"http://localhost:8080/", "/api/", "ws://localhost:8080/api/live"},
	}
	for _, tc := range cases {
		got, err := wsURL(tc.base, tc.prefix)
		if err != nil {
			t.Errorf("wsURL(%q, %q): %v", tc.base, tc.prefix, err)
			continue
		}
		if got != tc.want {
			t.Errorf("wsURL(%q, %q) = %q; want %q", tc.base, tc.prefix, got, tc.want)
		}
	}
}

func TestWSURLRejectsUnknownScheme(t *testing.T) {
	if _, err := wsURL("ftp://host", "/api"); err == nil {
		t.Error("expected error for ftp scheme")
	}
}

func TestStreamDeliversEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/live" {
			http.NotFound(w, r)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"bid_year_created","year":2025}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"area_created","bid_year":2025,"area":"ZAB-N"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := Stream(ctx, srv.URL, "/api")
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	first, ok := <-ch
	if !ok {
		t.Fatal("channel closed before first event")
	}
	if first.Type != "bid_year_created" {
		t.Errorf("first event type = %q", first.Type)
	}
	if !strings.Contains(string(first.Data), `"year":2025`) {
		t.Errorf("first event data = %s", first.Data)
	}

	second, ok := <-ch
	if !ok {
		t.Fatal("channel closed before second event")
	}
	if second.Type != "area_created" {
		t.Errorf("second event type = %q", second.Type)
	}

	// Server handler returns, closing the socket; the channel follows.
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected channel close after server hangup")
		}
	case <-time.After(5 * time.Second):
		t.Error("channel did not close after server hangup")
	}
}

func TestStreamCancelClosesChannel(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		// Hold the socket open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Stream(ctx, srv.URL, "/api")
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel after cancel")
		}
	case <-time.After(5 * time.Second):
		t.Error("channel did not close after cancel")
	}
}

func TestStreamDialFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := Stream(ctx, "http://127.0.0.1:1", "/api"); err == nil {
		t.Error("expected dial error")
	}
}
