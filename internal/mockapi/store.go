package mockapi

import "sync"

// StoredUser is one registered user in the fixture store.
type StoredUser struct {
	Initials               string
	Name                   string
	Crew                   *int
	UserType               string
	CumulativeNATCABUDate  string
	NATCABUDate            string
	EODFAADate             string
	ServiceComputationDate string
	LotteryValue           *int
}

// Operator is one operator account.
type Operator struct {
	ID          int
	LoginName   string
	DisplayName string
	Role        string
	Disabled    bool
}

// AuditEntry is one recorded mutation.
type AuditEntry struct {
	EventID          int
	ActorID          string
	ActorType        string
	CauseID          string
	CauseDescription string
	ActionName       string
	ActionDetails    string
	BidYear          *int
	Area             *string
}

// Store holds everything the mock has been told. One mutex guards it all;
// the traffic here is a single operator clicking through a console.
type Store struct {
	mu sync.Mutex

	years      []int
	areas      map[int][]string
	users      map[int]map[string][]StoredUser
	activeYear *int

	operators      []Operator
	nextOperatorID int

	expectedAreas map[int]int
	expectedUsers map[areaKey]int

	audit     []AuditEntry
	nextEvent int
}

type areaKey struct {
	year int
	area string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		areas:          make(map[int][]string),
		users:          make(map[int]map[string][]StoredUser),
		expectedAreas:  make(map[int]int),
		expectedUsers:  make(map[areaKey]int),
		nextOperatorID: 1,
		nextEvent:      1,
	}
}

// Seed loads fixture state. Seeded state carries no audit history; the
// log starts with the first live request.
func (s *Store) Seed(ff *FixtureFile) {
	if ff == nil {
		return
	}
	for _, fy := range ff.BidYears {
		s.AddBidYear(fy.Year)
		for _, fa := range fy.Areas {
			s.AddArea(fy.Year, fa.Area)
			for _, fu := range fa.Users {
				s.RegisterUser(fy.Year, fa.Area, StoredUser{
					Initials: fu.Initials,
					Name:     fu.Name,
					Crew:     fu.Crew,
					UserType: fu.UserType,
				})
			}
		}
	}
	if ff.ActiveBidYear != nil {
		s.SetActiveYear(*ff.ActiveBidYear)
	}
}

// RecordEvent appends an audit entry, assigning it the next event id.
func (s *Store) RecordEvent(e AuditEntry) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.EventID = s.nextEvent
	s.nextEvent++
	s.audit = append(s.audit, e)
	return e.EventID
}

// AuditEvents returns the recorded entries scoped to a year and area.
// Entries without a scope (logins, operator changes) are excluded.
func (s *Store) AuditEvents(year int, area string) []AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AuditEntry, 0)
	for _, e := range s.audit {
		if e.BidYear != nil && *e.BidYear == year && e.Area != nil && *e.Area == area {
			out = append(out, e)
		}
	}
	return out
}

// AuditEvent returns the entry with the given id.
func (s *Store) AuditEvent(id int) (AuditEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.audit {
		if e.EventID == id {
			return e, true
		}
	}
	return AuditEntry{}, false
}

// AddBidYear records a bid year. Recording twice is a no-op.
func (s *Store) AddBidYear(year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addYearLocked(year)
}

func (s *Store) addYearLocked(year int) {
	for _, y := range s.years {
		if y == year {
			return
		}
	}
	s.years = append(s.years, year)
}

// AddArea records an area under a bid year. An unknown year is created on
// the fly; the mock never rejects.
func (s *Store) AddArea(year int, area string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addYearLocked(year)
	s.addAreaLocked(year, area)
}

func (s *Store) addAreaLocked(year int, area string) {
	for _, a := range s.areas[year] {
		if a == area {
			return
		}
	}
	s.areas[year] = append(s.areas[year], area)
}

// RegisterUser records a user.
func (s *Store) RegisterUser(year int, area string, u StoredUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addYearLocked(year)
	s.addAreaLocked(year, area)
	if s.users[year] == nil {
		s.users[year] = make(map[string][]StoredUser)
	}
	s.users[year][area] = append(s.users[year][area], u)
}

// UpdateUser replaces a user matched by initials. Reports false when no
// such user exists.
func (s *Store) UpdateUser(year int, area string, u StoredUser) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.users[year][area]
	for i := range list {
		if list[i].Initials == u.Initials {
			list[i] = u
			return true
		}
	}
	return false
}

// BidYears returns the recorded years in insertion order.
func (s *Store) BidYears() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

// Areas returns the recorded areas for a year in insertion order.
func (s *Store) Areas(year int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.areas[year]))
	copy(out, s.areas[year])
	return out
}

// Users returns the recorded users for a year and area.
func (s *Store) Users(year int, area string) []StoredUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.users[year][area]
	out := make([]StoredUser, len(list))
	copy(out, list)
	return out
}

// SetActiveYear records the active bid year.
func (s *Store) SetActiveYear(year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeYear = &year
}

// ActiveYear returns the active bid year, if one was set.
func (s *Store) ActiveYear() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeYear == nil {
		return 0, false
	}
	return *s.activeYear, true
}

// CreateOperator records an operator account and returns it with its id.
func (s *Store) CreateOperator(login, display, role string) Operator {
	s.mu.Lock()
	defer s.mu.Unlock()
	op := Operator{
		ID:          s.nextOperatorID,
		LoginName:   login,
		DisplayName: display,
		Role:        role,
	}
	s.nextOperatorID++
	s.operators = append(s.operators, op)
	return op
}

// Operators returns all recorded operator accounts.
func (s *Store) Operators() []Operator {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Operator, len(s.operators))
	copy(out, s.operators)
	return out
}

// SetOperatorDisabled flips an operator's disabled flag. Reports false
// when the id is unknown.
func (s *Store) SetOperatorDisabled(id int, disabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.operators {
		if s.operators[i].ID == id {
			s.operators[i].Disabled = disabled
			return true
		}
	}
	return false
}

// DeleteOperator removes an operator account. Reports false when the id
// is unknown.
func (s *Store) DeleteOperator(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.operators {
		if s.operators[i].ID == id {
			s.operators = append(s.operators[:i], s.operators[i+1:]...)
			return true
		}
	}
	return false
}

// SetExpectedAreas records the expected area count for a year.
func (s *Store) SetExpectedAreas(year, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expectedAreas[year] = count
}

// ExpectedAreas returns the expected area count for a year.
func (s *Store) ExpectedAreas(year int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.expectedAreas[year]
	return n, ok
}

// SetExpectedUsers records the expected user count for an area.
func (s *Store) SetExpectedUsers(year int, area string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expectedUsers[areaKey{year, area}] = count
}

// ExpectedUsers returns the expected user count for an area.
func (s *Store) ExpectedUsers(year int, area string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.expectedUsers[areaKey{year, area}]
	return n, ok
}

// UserCount returns the number of users recorded under a year.
func (s *Store) UserCount(year int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, list := range s.users[year] {
		total += len(list)
	}
	return total
}

// AreaUserCount returns the number of users recorded under one area.
func (s *Store) AreaUserCount(year int, area string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users[year][area])
}
