// Package catalog defines the fixed menu of service endpoints the console
// can drive. Request builders key on the endpoint IDs declared here, never
// on paths, so moving the API under a different prefix cannot desynchronize
// dispatch.
package catalog

import (
	"net/http"
	"strconv"
	"strings"
)

// DefaultPrefix is where the service mounts its API router.
const DefaultPrefix = "/api"

// Endpoint IDs, one per operation the service exposes.
const (
	BidYearCreate         = "bidyear.create"
	BidYearList           = "bidyear.list"
	AreaCreate            = "area.create"
	AreaList              = "area.list"
	UserRegister          = "user.register"
	UserList              = "user.list"
	LeaveAvailability     = "leave.availability"
	BootstrapStatus       = "bootstrap.status"
	Checkpoint            = "checkpoint"
	Finalize              = "finalize"
	Rollback              = "rollback"
	StateCurrent          = "state.current"
	StateHistorical       = "state.historical"
	AuditTimeline         = "audit.timeline"
	AuditEvent            = "audit.event"
	AuthBootstrapStatus   = "auth.bootstrap.status"
	AuthBootstrapLogin    = "auth.bootstrap.login"
	AuthFirstAdmin        = "auth.first_admin"
	AuthLogin             = "auth.login"
	AuthLogout            = "auth.logout"
	AuthWhoAmI            = "auth.whoami"
	ActiveBidYearSet      = "bootstrap.active.set"
	ActiveBidYearGet      = "bootstrap.active.get"
	ExpectedAreasSet      = "bootstrap.areas.expected"
	ExpectedUsersSet      = "bootstrap.users.expected"
	UserUpdate            = "user.update"
	BootstrapCompleteness = "bootstrap.completeness"
	OperatorList          = "operator.list"
	OperatorCreate        = "operator.create"
	OperatorDisable       = "operator.disable"
	OperatorEnable        = "operator.enable"
	OperatorDelete        = "operator.delete"
	CSVPreview            = "csv.preview"
	CSVImport             = "csv.import"
	LifecycleBootstrap    = "lifecycle.bootstrap_complete"
	LifecycleCanonical    = "lifecycle.canonicalized"
	LifecycleBidOpen      = "lifecycle.bidding_active"
	LifecycleBidClosed    = "lifecycle.bidding_closed"
)

// Endpoint is one selectable operation. Key is the menu number the operator
// types; Path already includes the configured prefix.
type Endpoint struct {
	Key    string
	ID     string
	Name   string
	Method string
	Path   string
}

// Catalog is the ordered endpoint list. Read-only after New.
type Catalog struct {
	endpoints []Endpoint
	byKey     map[string]int
}

type entry struct {
	id     string
	name   string
	method string
	path   string
}

// Menu order mirrors the order operators learned on the service's own
// tooling, so the numbers stay stable as endpoint families grow at the end.
var entries = []entry{
	{BidYearCreate, "Create Bid Year", http.MethodPost, "/bid_years"},
	{BidYearList, "List Bid Years", http.MethodGet, "/bid_years"},
	{AreaCreate, "Create Area", http.MethodPost, "/areas"},
	{AreaList, "List Areas", http.MethodGet, "/areas"},
	{UserRegister, "Register User", http.MethodPost, "/users"},
	{UserList, "List Users", http.MethodGet, "/users"},
	{LeaveAvailability, "Leave Availability", http.MethodGet, "/leave/availability"},
	{BootstrapStatus, "Bootstrap Status", http.MethodGet, "/bootstrap/status"},
	{Checkpoint, "Checkpoint", http.MethodPost, "/checkpoint"},
	{Finalize, "Finalize", http.MethodPost, "/finalize"},
	{Rollback, "Rollback", http.MethodPost, "/rollback"},
	{StateCurrent, "Current State", http.MethodGet, "/state/current"},
	{StateHistorical, "Historical State", http.MethodGet, "/state/historical"},
	{AuditTimeline, "Audit Timeline", http.MethodGet, "/audit/timeline"},
	{AuditEvent, "Audit Event by ID", http.MethodGet, "/audit/event"},
	{AuthBootstrapStatus, "Auth Bootstrap Status", http.MethodGet, "/auth/bootstrap/status"},
	{AuthBootstrapLogin, "Bootstrap Login", http.MethodPost, "/auth/bootstrap/login"},
	{AuthFirstAdmin, "Create First Admin", http.MethodPost, "/auth/bootstrap/create-first-admin"},
	{AuthLogin, "Login", http.MethodPost, "/auth/login"},
	{AuthLogout, "Logout", http.MethodPost, "/auth/logout"},
	{AuthWhoAmI, "Who Am I", http.MethodGet, "/auth/me"},
	{ActiveBidYearSet, "Set Active Bid Year", http.MethodPost, "/bootstrap/bid-years/active"},
	{ActiveBidYearGet, "Get Active Bid Year", http.MethodGet, "/bootstrap/bid-years/active"},
	{ExpectedAreasSet, "Set Expected Area Count", http.MethodPost, "/bootstrap/bid-years/expected-areas"},
	{ExpectedUsersSet, "Set Expected User Count", http.MethodPost, "/bootstrap/areas/expected-users"},
	{UserUpdate, "Update User", http.MethodPost, "/users/update"},
	{BootstrapCompleteness, "Bootstrap Completeness", http.MethodGet, "/bootstrap/completeness"},
	{OperatorList, "List Operators", http.MethodGet, "/operators"},
	{OperatorCreate, "Create Operator", http.MethodPost, "/operators"},
	{OperatorDisable, "Disable Operator", http.MethodPost, "/operators/disable"},
	{OperatorEnable, "Enable Operator", http.MethodPost, "/operators/enable"},
	{OperatorDelete, "Delete Operator", http.MethodPost, "/operators/delete"},
	{CSVPreview, "Preview CSV Users", http.MethodPost, "/bootstrap/users/csv/preview"},
	{CSVImport, "Import CSV Users", http.MethodPost, "/bootstrap/users/csv/import"},
	{LifecycleBootstrap, "Transition: Bootstrap Complete", http.MethodPost, "/lifecycle/bootstrap-complete"},
	{LifecycleCanonical, "Transition: Canonicalized", http.MethodPost, "/lifecycle/canonicalized"},
	{LifecycleBidOpen, "Transition: Bidding Active", http.MethodPost, "/lifecycle/bidding-active"},
	{LifecycleBidClosed, "Transition: Bidding Closed", http.MethodPost, "/lifecycle/bidding-closed"},
}

// New builds the catalog with every path joined to prefix. An empty prefix
// yields bare paths for servers that mount the API at the root.
func New(prefix string) *Catalog {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	c := &Catalog{
		endpoints: make([]Endpoint, 0, len(entries)),
		byKey:     make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		key := strconv.Itoa(i + 1)
		c.endpoints = append(c.endpoints, Endpoint{
			Key:    key,
			ID:     e.id,
			Name:   e.name,
			Method: e.method,
			Path:   prefix + e.path,
		})
		c.byKey[key] = i
	}
	return c
}

// List returns the endpoints in menu order. Callers must not modify the
// returned slice.
func (c *Catalog) List() []Endpoint {
	return c.endpoints
}

// Resolve looks up an endpoint by its menu key.
func (c *Catalog) Resolve(key string) (Endpoint, bool) {
	i, ok := c.byKey[strings.TrimSpace(key)]
	if !ok {
		return Endpoint{}, false
	}
	return c.endpoints[i], true
}

// Len reports the number of endpoints.
func (c *Catalog) Len() int {
	return len(c.endpoints)
}
