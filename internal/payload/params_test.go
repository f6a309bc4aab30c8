package payload

import (
	"testing"

	"github.com/zab-bid-org/zabcli/internal/catalog"
	"github.com/zab-bid-org/zabcli/internal/session"
)

func TestListBidYearsTakesNoParams(t *testing.T) {
	p, _ := scripted("")
	params, err := Query(endpoint(t, catalog.BidYearList), p, session.New())
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !params.Empty() {
		t.Errorf("params = %+v; want empty", params)
	}
}

func TestListAreasParams(t *testing.T) {
	p, _ := scripted("2025\n")
	s := session.New()
	params, err := Query(endpoint(t, catalog.AreaList), p, s)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if params.Query["bid_year"] != "2025" {
		t.Errorf("bid_year = %q; want 2025", params.Query["bid_year"])
	}
	if y, ok := s.BidYear(); !ok || y != 2025 {
		t.Errorf("session year = %d, %v; want stored", y, ok)
	}
}

func TestYearAreaEndpointsShareShape(t *testing.T) {
	for _, id := range []string{catalog.UserList, catalog.StateCurrent, catalog.AuditTimeline} {
		p, _ := scripted("2025\nZAB-S\n")
		params, err := Query(endpoint(t, id), p, session.New())
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if params.Query["bid_year"] != "2025" || params.Query["area"] != "ZAB-S" {
			t.Errorf("%s: params = %v", id, params.Query)
		}
		if len(params.Query) != 2 {
			t.Errorf("%s: %d params; want 2", id, len(params.Query))
		}
	}
}

func TestLeaveAvailabilityParams(t *testing.T) {
	p, _ := scripted("2025\nZAB-N\nAB\n")
	params, err := Query(endpoint(t, catalog.LeaveAvailability), p, session.New())
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	want := map[string]string{"bid_year": "2025", "area": "ZAB-N", "initials": "AB"}
	for k, v := range want {
		if params.Query[k] != v {
			t.Errorf("%s = %q; want %q", k, params.Query[k], v)
		}
	}
}

func TestHistoricalStateParams(t *testing.T) {
	p, _ := scripted("2025\nZAB-N\n42\n")
	params, err := Query(endpoint(t, catalog.StateHistorical), p, session.New())
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if params.Query["event_id"] != "42" {
		t.Errorf("event_id = %q; want 42", params.Query["event_id"])
	}
}

func TestAuditEventTravelsAsPathSegment(t *testing.T) {
	p, _ := scripted("42\n")
	params, err := Query(endpoint(t, catalog.AuditEvent), p, session.New())
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if params.PathSegment != "42" {
		t.Errorf("path segment = %q; want 42", params.PathSegment)
	}
	if len(params.Query) != 0 {
		t.Errorf("query = %v; want none", params.Query)
	}
}

func TestBareGetEndpointsPromptNothing(t *testing.T) {
	ids := []string{
		catalog.BootstrapStatus,
		catalog.ActiveBidYearGet,
		catalog.BootstrapCompleteness,
		catalog.AuthBootstrapStatus,
		catalog.AuthWhoAmI,
		catalog.OperatorList,
	}
	for _, id := range ids {
		p, out := scripted("")
		params, err := Query(endpoint(t, id), p, session.New())
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if !params.Empty() {
			t.Errorf("%s: params = %+v; want empty", id, params)
		}
		if out.Len() != 0 {
			t.Errorf("%s: prompted unexpectedly: %q", id, out.String())
		}
	}
}
