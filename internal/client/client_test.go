package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeBaseURL(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"http://localhost:8080", "http://localhost:8080", false},
		{"http://localhost:8080/", "http://localhost:8080", false},
		{"https://bids.example.com", "https://bids.example.com", false},
		{"localhost:9090", "http://localhost:9090", false},
		{":8080", "http://localhost:8080", false},
		{"  http://h/  ", "http://h", false},
		{"", "", true},
		{"http://", "", true},
	}
	for _, tc := range cases {
		got, err := normalizeBaseURL(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("normalizeBaseURL(%q) = %q; want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizeBaseURL(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("normalizeBaseURL(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetWithQueryParams(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"areas":["ZAB-N"]}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "", 0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	status, body, err := c.Get(context.Background(), "/api/areas", Params{
		Query: map[string]string{"bid_year": "2025"},
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d; want 200", status)
	}
	if gotPath != "/api/areas" {
		t.Errorf("path = %q; want /api/areas", gotPath)
	}
	if gotQuery != "bid_year=2025" {
		t.Errorf("query = %q; want bid_year=2025", gotQuery)
	}
	if string(body) != `{"areas":["ZAB-N"]}` {
		t.Errorf("body = %s", body)
	}
}

func TestGetWithPathSegment(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "", 0, nil)
	_, _, err := c.Get(context.Background(), "/api/audit/event", Params{PathSegment: "42"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotPath != "/api/audit/event/42" {
		t.Errorf("path = %q; want /api/audit/event/42", gotPath)
	}
}

func TestPostSendsJSONAndHeaders(t *testing.T) {
	var (
		gotContentType string
		gotAuth        string
		gotRequestID   string
		gotBody        map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "tok-123", 0, nil)
	status, _, err := c.Post(context.Background(), "/api/bid_years", map[string]any{"year": 2025})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if status != http.StatusCreated {
		t.Errorf("status = %d; want 201", status)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("authorization = %q; want Bearer tok-123", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
	if y, ok := gotBody["year"].(float64); !ok || y != 2025 {
		t.Errorf("body year = %v", gotBody["year"])
	}
}

func TestNoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "", 0, nil)
	if _, _, err := c.Get(context.Background(), "/api/bid_years", Params{}); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hasAuth {
		t.Errorf("Authorization header sent without a token: %q", gotAuth)
	}
}

func TestNon2xxReturnedNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":true,"message":"bid year already exists"}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "", 0, nil)
	status, body, err := c.Post(context.Background(), "/api/bid_years", map[string]int{"year": 2025})
	if err != nil {
		t.Fatalf("Post returned error for HTTP 409: %v", err)
	}
	if status != http.StatusConflict {
		t.Errorf("status = %d; want 409", status)
	}
	if len(body) == 0 {
		t.Error("error body not returned")
	}
}

func TestTransportErrorSurfaces(t *testing.T) {
	// Port 1 refuses connections on any sane machine.
	c, _ := New("http://127.0.0.1:1", "", 0, nil)
	_, _, err := c.Get(context.Background(), "/api/bid_years", Params{})
	if err == nil {
		t.Fatal("expected transport error")
	}
}

func TestParamsEmpty(t *testing.T) {
	if !(Params{}).Empty() {
		t.Error("zero Params should be empty")
	}
	if (Params{Query: map[string]string{"a": "1"}}).Empty() {
		t.Error("Params with query should not be empty")
	}
	if (Params{PathSegment: "7"}).Empty() {
		t.Error("Params with path segment should not be empty")
	}
}
