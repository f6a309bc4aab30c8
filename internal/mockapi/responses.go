package mockapi

// Response shapes mirror the real service's envelopes closely enough for
// console display; the console never decodes them.

// WriteResponse is the mutation success envelope.
type WriteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	EventID *int   `json:"event_id,omitempty"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// UserResponse is the display form of a registered user. Crew is a display
// string here, unlike the nullable integer on requests.
type UserResponse struct {
	BidYear                int    `json:"bid_year"`
	Initials               string `json:"initials"`
	Name                   string `json:"name"`
	Area                   string `json:"area"`
	Crew                   string `json:"crew"`
	CumulativeNATCABUDate  string `json:"cumulative_natca_bu_date"`
	NATCABUDate            string `json:"natca_bu_date"`
	EODFAADate             string `json:"eod_faa_date"`
	ServiceComputationDate string `json:"service_computation_date"`
	LotteryValue           *int   `json:"lottery_value"`
}

// StateResponse is a full area snapshot.
type StateResponse struct {
	BidYearID int            `json:"bid_year_id"`
	BidYear   int            `json:"bid_year"`
	AreaID    int            `json:"area_id"`
	AreaCode  string         `json:"area_code"`
	Users     []UserResponse `json:"users"`
}

// AuditEventResponse is one audit log entry.
type AuditEventResponse struct {
	EventID          int     `json:"event_id"`
	ActorID          string  `json:"actor_id"`
	ActorType        string  `json:"actor_type"`
	CauseID          string  `json:"cause_id"`
	CauseDescription string  `json:"cause_description"`
	ActionName       string  `json:"action_name"`
	ActionDetails    *string `json:"action_details"`
	BeforeSnapshot   string  `json:"before_snapshot"`
	AfterSnapshot    string  `json:"after_snapshot"`
	BidYear          *int    `json:"bid_year"`
	Area             *string `json:"area"`
}

// AuditTimelineResponse is the ordered event list for one area.
type AuditTimelineResponse struct {
	BidYear int                  `json:"bid_year"`
	Area    string               `json:"area"`
	Events  []AuditEventResponse `json:"events"`
}

// ListBidYearsResponse lists the known bid years.
type ListBidYearsResponse struct {
	BidYears []int `json:"bid_years"`
}

// ListAreasResponse lists the areas of one bid year.
type ListAreasResponse struct {
	BidYear int      `json:"bid_year"`
	Areas   []string `json:"areas"`
}

// UserInfo is the compact user form used by listings.
type UserInfo struct {
	Initials string `json:"initials"`
	Name     string `json:"name"`
	Crew     *int   `json:"crew"`
}

// ListUsersResponse lists the users of one area.
type ListUsersResponse struct {
	BidYear int        `json:"bid_year"`
	Area    string     `json:"area"`
	Users   []UserInfo `json:"users"`
}

// LeaveAvailabilityResponse reports one user's leave balance.
type LeaveAvailabilityResponse struct {
	BidYear        int     `json:"bid_year"`
	Area           string  `json:"area"`
	Initials       string  `json:"initials"`
	EarnedHours    float64 `json:"earned_hours"`
	EarnedDays     float64 `json:"earned_days"`
	UsedHours      float64 `json:"used_hours"`
	RemainingHours float64 `json:"remaining_hours"`
	RemainingDays  float64 `json:"remaining_days"`
	IsExhausted    bool    `json:"is_exhausted"`
	IsOverdrawn    bool    `json:"is_overdrawn"`
	Explanation    string  `json:"explanation"`
}

// BidYearStatusInfo summarizes one bid year for bootstrap status.
type BidYearStatusInfo struct {
	BidYearID      int `json:"bid_year_id"`
	Year           int `json:"year"`
	AreaCount      int `json:"area_count"`
	TotalUserCount int `json:"total_user_count"`
}

// AreaStatusInfo summarizes one area for bootstrap status.
type AreaStatusInfo struct {
	BidYearID int    `json:"bid_year_id"`
	BidYear   int    `json:"bid_year"`
	AreaID    int    `json:"area_id"`
	AreaCode  string `json:"area_code"`
	UserCount int    `json:"user_count"`
}

// BootstrapStatusResponse is the whole-system bootstrap summary.
type BootstrapStatusResponse struct {
	BidYears []BidYearStatusInfo `json:"bid_years"`
	Areas    []AreaStatusInfo    `json:"areas"`
}

// ActiveBidYearResponse reports the active bid year, when one is set.
type ActiveBidYearResponse struct {
	BidYearID *int `json:"bid_year_id"`
	Year      *int `json:"year"`
}

// SetActiveBidYearResponse confirms an active bid year change.
type SetActiveBidYearResponse struct {
	BidYearID int    `json:"bid_year_id"`
	Year      int    `json:"year"`
	Message   string `json:"message"`
}

// SetExpectedAreaCountResponse confirms an expected area count change.
type SetExpectedAreaCountResponse struct {
	BidYear       int    `json:"bid_year"`
	ExpectedCount int    `json:"expected_count"`
	Message       string `json:"message"`
}

// SetExpectedUserCountResponse confirms an expected user count change.
type SetExpectedUserCountResponse struct {
	BidYear       int    `json:"bid_year"`
	Area          string `json:"area"`
	ExpectedCount int    `json:"expected_count"`
	Message       string `json:"message"`
}

// CompletenessAreaInfo reports one area's fill against expectations.
type CompletenessAreaInfo struct {
	Area          string `json:"area"`
	UserCount     int    `json:"user_count"`
	ExpectedCount *int   `json:"expected_count"`
	Complete      bool   `json:"complete"`
}

// CompletenessResponse reports bootstrap completeness for the active year.
type CompletenessResponse struct {
	ActiveBidYear     *int                   `json:"active_bid_year"`
	AreaCount         int                    `json:"area_count"`
	ExpectedAreaCount *int                   `json:"expected_area_count"`
	Areas             []CompletenessAreaInfo `json:"areas"`
	IsReadyForBidding bool                   `json:"is_ready_for_bidding"`
	BlockingReasons   []string               `json:"blocking_reasons"`
}

// BootstrapAuthStatusResponse reports whether first-admin setup is open.
type BootstrapAuthStatusResponse struct {
	IsBootstrapMode bool `json:"is_bootstrap_mode"`
}

// BootstrapLoginResponse carries the temporary bootstrap session token.
type BootstrapLoginResponse struct {
	BootstrapToken string `json:"bootstrap_token"`
	IsBootstrap    bool   `json:"is_bootstrap"`
}

// LoginResponse carries an operator session.
type LoginResponse struct {
	SessionToken string `json:"session_token"`
	LoginName    string `json:"login_name"`
	DisplayName  string `json:"display_name"`
	Role         string `json:"role"`
	ExpiresAt    string `json:"expires_at"`
}

// WhoAmIResponse describes the calling operator.
type WhoAmIResponse struct {
	LoginName   string `json:"login_name"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsDisabled  bool   `json:"is_disabled"`
}

// CreateOperatorResponse confirms a created operator account.
type CreateOperatorResponse struct {
	OperatorID  int    `json:"operator_id"`
	LoginName   string `json:"login_name"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// OperatorInfo is one row of the operator listing.
type OperatorInfo struct {
	OperatorID  int    `json:"operator_id"`
	LoginName   string `json:"login_name"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsDisabled  bool   `json:"is_disabled"`
}

// ListOperatorsResponse lists all operator accounts.
type ListOperatorsResponse struct {
	Operators []OperatorInfo `json:"operators"`
}

// CSVRowResult is one validated row of a CSV preview.
type CSVRowResult struct {
	RowNumber int      `json:"row_number"`
	Initials  *string  `json:"initials"`
	Name      *string  `json:"name"`
	AreaID    *string  `json:"area_id"`
	UserType  *string  `json:"user_type"`
	Crew      *int     `json:"crew"`
	Status    string   `json:"status"`
	Errors    []string `json:"errors"`
}

// CSVPreviewResponse reports per-row validation of a CSV roster.
type CSVPreviewResponse struct {
	Rows         []CSVRowResult `json:"rows"`
	TotalRows    int            `json:"total_rows"`
	ValidCount   int            `json:"valid_count"`
	InvalidCount int            `json:"invalid_count"`
}

// CSVImportResponse confirms an import of selected rows.
type CSVImportResponse struct {
	Success       bool   `json:"success"`
	ImportedCount int    `json:"imported_count"`
	Message       string `json:"message"`
	EventID       *int   `json:"event_id,omitempty"`
}
