package console

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/zab-bid-org/zabcli/internal/catalog"
	"github.com/zab-bid-org/zabcli/internal/client"
	"github.com/zab-bid-org/zabcli/internal/prompt"
	"github.com/zab-bid-org/zabcli/internal/session"
)

func newConsole(t *testing.T, serverURL, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	cli, err := client.New(serverURL, "", 0, nil)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(input), &out)
	return New(cli, catalog.New(catalog.DefaultPrefix), p, session.New(), &out, nil), &out
}

func TestPostFlow(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"event_id":1}`))
	}))
	defer srv.Close()

	input := "1\na1\nAdmin\nc1\nsetup\n2025\n2025-01-05\n26\n"
	con, out := newConsole(t, srv.URL, input)

	if err := con.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if gotPath != "/api/bid_years" {
		t.Errorf("path = %q; want /api/bid_years", gotPath)
	}
	if gotBody["year"] != float64(2025) || gotBody["actor_id"] != "a1" {
		t.Errorf("unexpected body: %v", gotBody)
	}

	text := out.String()
	for _, want := range []string{
		"Available endpoints:",
		"1. Create Bid Year",
		"\nSelected: Create Bid Year",
		"\nRequest JSON:",
		"\nResponse:",
		"\n---",
		"\nExiting.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q\n%s", want, text)
		}
	}
}

func TestSessionDefaultsShownOnLaterIterations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	// Create an area (stores actor, year, area), then EOF.
	input := "3\na1\nAdmin\nc1\nsetup\n2025\nZAB-N\n"
	con, out := newConsole(t, srv.URL, input)
	if err := con.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	if strings.Index(text, "Current session defaults:") < 0 {
		t.Fatalf("defaults block never shown\n%s", text)
	}
	// The block appears after the first request, not before it.
	if strings.Index(text, "Current session defaults:") < strings.Index(text, "Selected: Create Area") {
		t.Errorf("defaults shown before anything was stored\n%s", text)
	}
	if !strings.Contains(text, `"bid_year": 2025`) {
		t.Errorf("stored year missing from defaults block\n%s", text)
	}
}

func TestInvalidSelectionRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	input := "99\nabc\n2\n"
	con, out := newConsole(t, srv.URL, input)
	if err := con.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := strings.Count(out.String(), "Invalid selection."); n != 2 {
		t.Errorf("invalid-selection notice printed %d times; want 2", n)
	}
	if !strings.Contains(out.String(), "Selected: List Bid Years") {
		t.Errorf("valid retry did not dispatch\n%s", out.String())
	}
}

func TestGetEchoesQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"bid_year":2025,"areas":[]}`))
	}))
	defer srv.Close()

	input := "4\n2025\n"
	con, out := newConsole(t, srv.URL, input)
	if err := con.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gotQuery != "bid_year=2025" {
		t.Errorf("query = %q", gotQuery)
	}
	if !strings.Contains(out.String(), "\nQuery params:") {
		t.Errorf("query params not echoed\n%s", out.String())
	}
}

func TestParameterlessGetEchoesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bid_years":[]}`))
	}))
	defer srv.Close()

	con, out := newConsole(t, srv.URL, "2\n")
	if err := con.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "Query params:") {
		t.Errorf("parameterless GET should not echo params\n%s", out.String())
	}
}

func TestAuditEventPathSegment(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"event_id":42}`))
	}))
	defer srv.Close()

	con, _ := newConsole(t, srv.URL, "15\n42\n")
	if err := con.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gotPath != "/api/audit/event/42" {
		t.Errorf("path = %q; want /api/audit/event/42", gotPath)
	}
}

func TestUnimplementedEndpointSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	con, out := newConsole(t, srv.URL, "35\n")
	if err := con.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("server hit %d times for unimplemented endpoint", hits.Load())
	}
	text := out.String()
	if !strings.Contains(text, "\nNot Implemented:") {
		t.Errorf("missing not-implemented notice\n%s", text)
	}
	if !strings.Contains(text, "/api/lifecycle/bootstrap-complete") {
		t.Errorf("notice should name the path\n%s", text)
	}
	// The loop survives: the menu is printed again before EOF ends it.
	if n := strings.Count(text, "Available endpoints:"); n != 2 {
		t.Errorf("menu printed %d times; want 2", n)
	}
}

func TestNetworkFailureContinuesLoop(t *testing.T) {
	con, out := newConsole(t, "http://127.0.0.1:1", "2\n")
	if err := con.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "\nRequest failed:") {
		t.Errorf("missing failure notice\n%s", text)
	}
	if n := strings.Count(text, "Available endpoints:"); n != 2 {
		t.Errorf("menu printed %d times; want 2", n)
	}
	if !strings.Contains(text, "\nExiting.") {
		t.Errorf("missing clean exit\n%s", text)
	}
}

func TestNon2xxRendersBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":true,"message":"bid year already exists"}`))
	}))
	defer srv.Close()

	input := "1\na1\nAdmin\nc1\nsetup\n2025\n2025-01-05\n26\n"
	con, out := newConsole(t, srv.URL, input)
	if err := con.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "409") {
		t.Errorf("status missing\n%s", text)
	}
	if !strings.Contains(text, "bid year already exists") {
		t.Errorf("error body missing\n%s", text)
	}
}

func TestContextCancelStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Reader that would block forever if the loop ignored ctx.
	cli, _ := client.New("http://127.0.0.1:1", "", 0, nil)
	var out bytes.Buffer
	blocked, w := io.Pipe()
	defer w.Close()
	con := New(cli, catalog.New(catalog.DefaultPrefix), prompt.New(blocked, &out), session.New(), &out, nil)

	if err := con.Run(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
