package payload

// ActorEnvelope is the audit attribution block carried by the original
// mutating request family. The client forwards it verbatim; interpreting
// the actor is the service's job. Field order matters: the console echoes
// request bodies before sending, and operators read them against the
// service's audit output.
type ActorEnvelope struct {
	ActorID          string `json:"actor_id"`
	ActorRole        string `json:"actor_role"`
	CauseID          string `json:"cause_id"`
	CauseDescription string `json:"cause_description"`
}

// Cause is the attribution pair used by the newer route families, which
// authenticate through session tokens and only need the cause in the body.
type Cause struct {
	CauseID          string `json:"cause_id"`
	CauseDescription string `json:"cause_description"`
}

// CreateBidYearRequest creates a bid year with its pay-period calendar.
type CreateBidYearRequest struct {
	ActorEnvelope
	Year          int    `json:"year"`
	StartDate     string `json:"start_date"`
	NumPayPeriods int    `json:"num_pay_periods"`
}

// CreateAreaRequest creates an area within a bid year.
type CreateAreaRequest struct {
	ActorEnvelope
	BidYear int    `json:"bid_year"`
	AreaID  string `json:"area_id"`
}

// RegisterUserRequest registers a user with their seniority dates. Crew
// and LotteryValue are pointers without omitempty: the service expects
// explicit nulls for "not assigned".
type RegisterUserRequest struct {
	ActorEnvelope
	BidYear                int    `json:"bid_year"`
	Initials               string `json:"initials"`
	Name                   string `json:"name"`
	Area                   string `json:"area"`
	Crew                   *int   `json:"crew"`
	UserType               string `json:"user_type"`
	CumulativeNATCABUDate  string `json:"cumulative_natca_bu_date"`
	NATCABUDate            string `json:"natca_bu_date"`
	EODFAADate             string `json:"eod_faa_date"`
	ServiceComputationDate string `json:"service_computation_date"`
	LotteryValue           *int   `json:"lottery_value"`
}

// UpdateUserRequest replaces a user's registered fields. Same shape as
// RegisterUserRequest but a distinct contract on the service side.
type UpdateUserRequest struct {
	ActorEnvelope
	BidYear                int    `json:"bid_year"`
	Initials               string `json:"initials"`
	Name                   string `json:"name"`
	Area                   string `json:"area"`
	Crew                   *int   `json:"crew"`
	UserType               string `json:"user_type"`
	CumulativeNATCABUDate  string `json:"cumulative_natca_bu_date"`
	NATCABUDate            string `json:"natca_bu_date"`
	EODFAADate             string `json:"eod_faa_date"`
	ServiceComputationDate string `json:"service_computation_date"`
	LotteryValue           *int   `json:"lottery_value"`
}

// AreaActionRequest addresses one area of one bid year. Checkpoint and
// finalize share it.
type AreaActionRequest struct {
	ActorEnvelope
	BidYear int    `json:"bid_year"`
	Area    string `json:"area"`
}

// RollbackRequest rolls an area back to an earlier audit event.
type RollbackRequest struct {
	ActorEnvelope
	BidYear       int    `json:"bid_year"`
	Area          string `json:"area"`
	TargetEventID int    `json:"target_event_id"`
}

// BootstrapLoginRequest signs in with the bootstrap credentials available
// before any operator exists.
type BootstrapLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateFirstAdminRequest creates the first admin operator while the
// service is still in bootstrap mode.
type CreateFirstAdminRequest struct {
	LoginName   string `json:"login_name"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// LoginRequest signs an operator in.
type LoginRequest struct {
	LoginName string `json:"login_name"`
	Password  string `json:"password"`
}

// LogoutRequest invalidates a session token.
type LogoutRequest struct {
	SessionToken string `json:"session_token"`
}

// SetActiveBidYearRequest marks one bid year as the active one.
type SetActiveBidYearRequest struct {
	ActorEnvelope
	Year int `json:"year"`
}

// SetExpectedAreaCountRequest declares how many areas a bid year should
// end up with, for completeness tracking.
type SetExpectedAreaCountRequest struct {
	ActorEnvelope
	BidYear       int `json:"bid_year"`
	ExpectedCount int `json:"expected_count"`
}

// SetExpectedUserCountRequest declares how many users an area should end
// up with.
type SetExpectedUserCountRequest struct {
	ActorEnvelope
	BidYear       int    `json:"bid_year"`
	Area          string `json:"area"`
	ExpectedCount int    `json:"expected_count"`
}

// CreateOperatorRequest provisions a console operator account.
type CreateOperatorRequest struct {
	Cause
	LoginName            string `json:"login_name"`
	DisplayName          string `json:"display_name"`
	Role                 string `json:"role"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// OperatorActionRequest addresses one operator by id. Disable, enable and
// delete share it.
type OperatorActionRequest struct {
	Cause
	OperatorID int `json:"operator_id"`
}

// PreviewCSVUsersRequest validates a CSV roster without importing it.
type PreviewCSVUsersRequest struct {
	CSVContent string `json:"csv_content"`
}

// ImportCSVUsersRequest imports the selected rows of a previously
// previewed CSV roster. Indices are 0-based.
type ImportCSVUsersRequest struct {
	CSVContent         string `json:"csv_content"`
	SelectedRowIndices []int  `json:"selected_row_indices"`
}
