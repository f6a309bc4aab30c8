package payload

import (
	"strconv"

	"github.com/zab-bid-org/zabcli/internal/catalog"
	"github.com/zab-bid-org/zabcli/internal/client"
	"github.com/zab-bid-org/zabcli/internal/prompt"
	"github.com/zab-bid-org/zabcli/internal/session"
)

// ParamsFunc gathers the inputs for one GET endpoint.
type ParamsFunc func(p *prompt.Prompter, s *session.Defaults) (client.Params, error)

var paramBuilders = map[string]ParamsFunc{
	catalog.AreaList:          bidYearParams,
	catalog.UserList:          yearAreaParams,
	catalog.LeaveAvailability: leaveAvailabilityParams,
	catalog.StateCurrent:      yearAreaParams,
	catalog.StateHistorical:   historicalStateParams,
	catalog.AuditTimeline:     yearAreaParams,
	catalog.AuditEvent:        auditEventParams,
}

// Query gathers GET parameters for ep. Endpoints with no registered builder
// take no parameters.
func Query(ep catalog.Endpoint, p *prompt.Prompter, s *session.Defaults) (client.Params, error) {
	build, ok := paramBuilders[ep.ID]
	if !ok {
		return client.Params{}, nil
	}
	return build(p, s)
}

func bidYearParams(p *prompt.Prompter, s *session.Defaults) (client.Params, error) {
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return client.Params{}, err
	}
	s.SetBidYear(bidYear)
	return client.Params{Query: map[string]string{
		"bid_year": strconv.Itoa(bidYear),
	}}, nil
}

// yearAreaParams covers the listing endpoints that are scoped to one area
// of one bid year.
func yearAreaParams(p *prompt.Prompter, s *session.Defaults) (client.Params, error) {
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return client.Params{}, err
	}
	area, err := promptArea(p, s)
	if err != nil {
		return client.Params{}, err
	}
	s.SetBidYear(bidYear)
	s.SetArea(area)
	return client.Params{Query: map[string]string{
		"bid_year": strconv.Itoa(bidYear),
		"area":     area,
	}}, nil
}

func leaveAvailabilityParams(p *prompt.Prompter, s *session.Defaults) (client.Params, error) {
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return client.Params{}, err
	}
	area, err := promptArea(p, s)
	if err != nil {
		return client.Params{}, err
	}
	initials, err := p.Text("User initials", "")
	if err != nil {
		return client.Params{}, err
	}
	s.SetBidYear(bidYear)
	s.SetArea(area)
	return client.Params{Query: map[string]string{
		"bid_year": strconv.Itoa(bidYear),
		"area":     area,
		"initials": initials,
	}}, nil
}

func historicalStateParams(p *prompt.Prompter, s *session.Defaults) (client.Params, error) {
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return client.Params{}, err
	}
	area, err := promptArea(p, s)
	if err != nil {
		return client.Params{}, err
	}
	eventID, err := p.Int("Event ID")
	if err != nil {
		return client.Params{}, err
	}
	s.SetBidYear(bidYear)
	s.SetArea(area)
	return client.Params{Query: map[string]string{
		"bid_year": strconv.Itoa(bidYear),
		"area":     area,
		"event_id": strconv.Itoa(eventID),
	}}, nil
}

// auditEventParams is the one GET input that travels as a trailing path
// segment instead of a query string.
func auditEventParams(p *prompt.Prompter, _ *session.Defaults) (client.Params, error) {
	eventID, err := p.Int("Event ID")
	if err != nil {
		return client.Params{}, err
	}
	return client.Params{PathSegment: strconv.Itoa(eventID)}, nil
}
