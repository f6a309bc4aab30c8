package catalog

import (
	"net/http"
	"strconv"
	"testing"
)

func TestKeysAreSequential(t *testing.T) {
	c := New(DefaultPrefix)
	for i, ep := range c.List() {
		want := strconv.Itoa(i + 1)
		if ep.Key != want {
			t.Errorf("endpoint %q has key %s; want %s", ep.ID, ep.Key, want)
		}
	}
}

func TestPrefixJoining(t *testing.T) {
	cases := []struct {
		prefix string
		want   string
	}{
		{"/api", "/api/bid_years"},
		{"/api/", "/api/bid_years"},
		{"", "/bid_years"},
		{"/v2/bid", "/v2/bid/bid_years"},
	}
	for _, tc := range cases {
		c := New(tc.prefix)
		ep, ok := c.Resolve("1")
		if !ok {
			t.Fatalf("prefix %q: key 1 not found", tc.prefix)
		}
		if ep.Path != tc.want {
			t.Errorf("prefix %q: path = %q; want %q", tc.prefix, ep.Path, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	c := New(DefaultPrefix)

	ep, ok := c.Resolve("11")
	if !ok {
		t.Fatal("key 11 not found")
	}
	if ep.ID != Rollback || ep.Method != http.MethodPost || ep.Path != "/api/rollback" {
		t.Errorf("unexpected endpoint for key 11: %+v", ep)
	}

	// Surrounding whitespace is operator noise, not a different key.
	if _, ok := c.Resolve(" 11 "); !ok {
		t.Error("whitespace-padded key should resolve")
	}

	for _, bad := range []string{"0", "99", "abc", ""} {
		if _, ok := c.Resolve(bad); ok {
			t.Errorf("key %q should not resolve", bad)
		}
	}
}

func TestIDsAreUnique(t *testing.T) {
	c := New(DefaultPrefix)
	seen := make(map[string]string, c.Len())
	for _, ep := range c.List() {
		if prev, dup := seen[ep.ID]; dup {
			t.Errorf("id %q used by keys %s and %s", ep.ID, prev, ep.Key)
		}
		seen[ep.ID] = ep.Key
	}
}

func TestMethodPathPairsAreUnique(t *testing.T) {
	c := New(DefaultPrefix)
	seen := make(map[string]string, c.Len())
	for _, ep := range c.List() {
		mp := ep.Method + " " + ep.Path
		if prev, dup := seen[mp]; dup {
			t.Errorf("%s used by both %q and %q", mp, prev, ep.ID)
		}
		seen[mp] = ep.ID
	}
}

func TestKnownEntries(t *testing.T) {
	c := New(DefaultPrefix)
	cases := []struct {
		key    string
		id     string
		method string
		path   string
	}{
		{"1", BidYearCreate, http.MethodPost, "/api/bid_years"},
		{"7", LeaveAvailability, http.MethodGet, "/api/leave/availability"},
		{"15", AuditEvent, http.MethodGet, "/api/audit/event"},
		{"18", AuthFirstAdmin, http.MethodPost, "/api/auth/bootstrap/create-first-admin"},
		{"26", UserUpdate, http.MethodPost, "/api/users/update"},
		{"34", CSVImport, http.MethodPost, "/api/bootstrap/users/csv/import"},
		{"38", LifecycleBidClosed, http.MethodPost, "/api/lifecycle/bidding-closed"},
	}
	for _, tc := range cases {
		ep, ok := c.Resolve(tc.key)
		if !ok {
			t.Errorf("key %s not found", tc.key)
			continue
		}
		if ep.ID != tc.id || ep.Method != tc.method || ep.Path != tc.path {
			t.Errorf("key %s = %+v; want id=%s method=%s path=%s", tc.key, ep, tc.id, tc.method, tc.path)
		}
	}
}
