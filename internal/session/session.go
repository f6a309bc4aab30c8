// Package session remembers values the operator has already typed so that
// later prompts can offer them as defaults.
package session

// Defaults carries the sticky values of one console run. Values land here
// only after a full prompt sequence accepted them; a rejected input never
// reaches the store. The console drives prompts from a single goroutine, so
// access is unsynchronized.
type Defaults struct {
	actorID   string
	actorRole string
	causeID   string
	causeDesc string
	bidYear   int
	hasYear   bool
	area      string
}

// New returns an empty store.
func New() *Defaults {
	return &Defaults{}
}

// ActorID returns the last accepted actor id.
func (d *Defaults) ActorID() (string, bool) {
	return d.actorID, d.actorID != ""
}

// ActorRole returns the last accepted actor role.
func (d *Defaults) ActorRole() (string, bool) {
	return d.actorRole, d.actorRole != ""
}

// CauseID returns the last accepted cause id.
func (d *Defaults) CauseID() (string, bool) {
	return d.causeID, d.causeID != ""
}

// CauseDescription returns the last accepted cause description.
func (d *Defaults) CauseDescription() (string, bool) {
	return d.causeDesc, d.causeDesc != ""
}

// BidYear returns the last accepted bid year.
func (d *Defaults) BidYear() (int, bool) {
	return d.bidYear, d.hasYear
}

// Area returns the last accepted area id.
func (d *Defaults) Area() (string, bool) {
	return d.area, d.area != ""
}

// SetActor records a complete attribution block.
func (d *Defaults) SetActor(id, role, causeID, causeDesc string) {
	d.actorID = id
	d.actorRole = role
	d.causeID = causeID
	d.causeDesc = causeDesc
}

// SetCause records just the cause pair, for request families that carry no
// actor fields in the body.
func (d *Defaults) SetCause(causeID, causeDesc string) {
	d.causeID = causeID
	d.causeDesc = causeDesc
}

// SetBidYear records the bid year.
func (d *Defaults) SetBidYear(year int) {
	d.bidYear = year
	d.hasYear = true
}

// SetArea records the area id.
func (d *Defaults) SetArea(area string) {
	d.area = area
}

// Empty reports whether nothing has been stored yet.
func (d *Defaults) Empty() bool {
	return d.actorID == "" && d.actorRole == "" && d.causeID == "" &&
		d.causeDesc == "" && !d.hasYear && d.area == ""
}

// Snapshot is the display form of the store. Unset fields marshal away so
// the printed block only shows what the operator has actually established.
type Snapshot struct {
	ActorID          string `json:"actor_id,omitempty"`
	ActorRole        string `json:"actor_role,omitempty"`
	CauseID          string `json:"cause_id,omitempty"`
	CauseDescription string `json:"cause_description,omitempty"`
	BidYear          *int   `json:"bid_year,omitempty"`
	Area             string `json:"area,omitempty"`
}

// Snapshot returns a copy of the current defaults for display.
func (d *Defaults) Snapshot() Snapshot {
	snap := Snapshot{
		ActorID:          d.actorID,
		ActorRole:        d.actorRole,
		CauseID:          d.causeID,
		CauseDescription: d.causeDesc,
		Area:             d.area,
	}
	if d.hasYear {
		year := d.bidYear
		snap.BidYear = &year
	}
	return snap
}
