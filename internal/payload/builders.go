// Package payload turns prompt sequences into typed request bodies and
// query parameters. Builders register against catalog endpoint IDs; an
// endpoint listed in the catalog without a body builder is surfaced to the
// console as ErrNotImplemented rather than sent half-built.
package payload

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/zab-bid-org/zabcli/internal/catalog"
	"github.com/zab-bid-org/zabcli/internal/prompt"
	"github.com/zab-bid-org/zabcli/internal/session"
)

// ErrNotImplemented marks POST endpoints the catalog lists ahead of
// builder support.
var ErrNotImplemented = errors.New("request body not implemented")

// BodyFunc assembles the JSON body for one POST endpoint.
type BodyFunc func(p *prompt.Prompter, s *session.Defaults) (any, error)

var bodyBuilders = map[string]BodyFunc{
	catalog.BidYearCreate:      buildCreateBidYear,
	catalog.AreaCreate:         buildCreateArea,
	catalog.UserRegister:       buildRegisterUser,
	catalog.Checkpoint:         buildAreaAction,
	catalog.Finalize:           buildAreaAction,
	catalog.Rollback:           buildRollback,
	catalog.AuthBootstrapLogin: buildBootstrapLogin,
	catalog.AuthFirstAdmin:     buildFirstAdmin,
	catalog.AuthLogin:          buildLogin,
	catalog.AuthLogout:         buildLogout,
	catalog.ActiveBidYearSet:   buildSetActiveBidYear,
	catalog.ExpectedAreasSet:   buildSetExpectedAreas,
	catalog.ExpectedUsersSet:   buildSetExpectedUsers,
	catalog.UserUpdate:         buildUpdateUser,
	catalog.OperatorCreate:     buildCreateOperator,
	catalog.OperatorDisable:    buildOperatorAction,
	catalog.OperatorEnable:     buildOperatorAction,
	catalog.OperatorDelete:     buildOperatorAction,
	catalog.CSVPreview:         buildCSVPreview,
	catalog.CSVImport:          buildCSVImport,
}

// Body builds the POST payload for ep, or reports ErrNotImplemented when no
// builder is registered for it.
func Body(ep catalog.Endpoint, p *prompt.Prompter, s *session.Defaults) (any, error) {
	build, ok := bodyBuilders[ep.ID]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNotImplemented, ep.Path)
	}
	return build(p, s)
}

// userTypes is the closed set of user classifications the service accepts.
var userTypes = []string{"CPC", "CPC-IT", "Dev-D", "Dev-R"}

// operatorRoles is the closed set of operator roles.
var operatorRoles = []string{"Admin", "Bidder"}

func orEmpty(v string, ok bool) string {
	if !ok {
		return ""
	}
	return v
}

// causeDefault prefers the last accepted cause id and otherwise suggests a
// fresh one, so every mutation starts with a usable attribution id.
func causeDefault(s *session.Defaults) string {
	if v, ok := s.CauseID(); ok {
		return v
	}
	return "cause_" + ulid.Make().String()
}

// promptActor collects the attribution block, pre-filling from and updating
// the session defaults.
func promptActor(p *prompt.Prompter, s *session.Defaults) (ActorEnvelope, error) {
	actorID, err := p.Text("Actor ID", orEmpty(s.ActorID()))
	if err != nil {
		return ActorEnvelope{}, err
	}
	actorRole, err := p.Text("Actor Role (Admin/Bidder)", orEmpty(s.ActorRole()))
	if err != nil {
		return ActorEnvelope{}, err
	}
	causeID, err := p.Text("Cause ID", causeDefault(s))
	if err != nil {
		return ActorEnvelope{}, err
	}
	causeDesc, err := p.Text("Cause description", orEmpty(s.CauseDescription()))
	if err != nil {
		return ActorEnvelope{}, err
	}
	s.SetActor(actorID, actorRole, causeID, causeDesc)
	return ActorEnvelope{
		ActorID:          actorID,
		ActorRole:        actorRole,
		CauseID:          causeID,
		CauseDescription: causeDesc,
	}, nil
}

// promptCause collects just the cause pair for the token-authenticated
// route families.
func promptCause(p *prompt.Prompter, s *session.Defaults) (Cause, error) {
	causeID, err := p.Text("Cause ID", causeDefault(s))
	if err != nil {
		return Cause{}, err
	}
	causeDesc, err := p.Text("Cause description", orEmpty(s.CauseDescription()))
	if err != nil {
		return Cause{}, err
	}
	s.SetCause(causeID, causeDesc)
	return Cause{CauseID: causeID, CauseDescription: causeDesc}, nil
}

func promptBidYear(p *prompt.Prompter, s *session.Defaults) (int, error) {
	if y, ok := s.BidYear(); ok {
		return p.IntDefault("Bid year", y)
	}
	return p.Int("Bid year")
}

func promptArea(p *prompt.Prompter, s *session.Defaults) (string, error) {
	return p.Text("Area", orEmpty(s.Area()))
}

func promptUserType(p *prompt.Prompter, def string) (string, error) {
	for {
		v, err := p.Text("User type (CPC, CPC-IT, Dev-D, Dev-R)", def)
		if err != nil {
			return "", err
		}
		if slices.Contains(userTypes, v) {
			return v, nil
		}
		p.Sayf("Invalid user type. Allowed: %s", strings.Join(userTypes, ", "))
	}
}

func promptOperatorRole(p *prompt.Prompter) (string, error) {
	for {
		v, err := p.Text("Role (Admin/Bidder)", "")
		if err != nil {
			return "", err
		}
		if slices.Contains(operatorRoles, v) {
			return v, nil
		}
		p.Sayf("Invalid role. Allowed: %s", strings.Join(operatorRoles, ", "))
	}
}

func buildCreateBidYear(p *prompt.Prompter, s *session.Defaults) (any, error) {
	env, err := promptActor(p, s)
	if err != nil {
		return nil, err
	}
	year, err := p.Int("Bid year")
	if err != nil {
		return nil, err
	}
	p.Say("Start date must be a Sunday in January (format: YYYY-MM-DD)")
	startDate, err := p.Text("Start date (YYYY-MM-DD)", "")
	if err != nil {
		return nil, err
	}
	p.Say("Number of pay periods must be 26 or 27")
	numPayPeriods, err := p.Int("Number of pay periods (26 or 27)")
	if err != nil {
		return nil, err
	}
	return CreateBidYearRequest{
		ActorEnvelope: env,
		Year:          year,
		StartDate:     startDate,
		NumPayPeriods: numPayPeriods,
	}, nil
}

func buildCreateArea(p *prompt.Prompter, s *session.Defaults) (any, error) {
	env, err := promptActor(p, s)
	if err != nil {
		return nil, err
	}
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return nil, err
	}
	areaID, err := p.Text("Area ID", "")
	if err != nil {
		return nil, err
	}
	s.SetBidYear(bidYear)
	s.SetArea(areaID)
	return CreateAreaRequest{ActorEnvelope: env, BidYear: bidYear, AreaID: areaID}, nil
}

func buildRegisterUser(p *prompt.Prompter, s *session.Defaults) (any, error) {
	env, err := promptActor(p, s)
	if err != nil {
		return nil, err
	}
	assignCrew, err := p.YesNo("Assign crew now?", false)
	if err != nil {
		return nil, err
	}
	var crew *int
	if assignCrew {
		n, err := p.Int("Crew (1-7)")
		if err != nil {
			return nil, err
		}
		crew = &n
	}
	userType, err := promptUserType(p, "")
	if err != nil {
		return nil, err
	}
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return nil, err
	}
	initials, err := p.Text("User initials", "")
	if err != nil {
		return nil, err
	}
	name, err := p.Text("User name", "")
	if err != nil {
		return nil, err
	}
	area, err := promptArea(p, s)
	if err != nil {
		return nil, err
	}
	cumulative, err := p.Text("Cumulative NATCA BU date (YYYY-MM-DD)", "")
	if err != nil {
		return nil, err
	}
	natcaBU, err := p.Text("NATCA BU date (YYYY-MM-DD)", "")
	if err != nil {
		return nil, err
	}
	eodFAA, err := p.Text("EOD/FAA date (YYYY-MM-DD)", "")
	if err != nil {
		return nil, err
	}
	scd, err := p.Text("SCD (YYYY-MM-DD)", "")
	if err != nil {
		return nil, err
	}
	s.SetBidYear(bidYear)
	s.SetArea(area)
	return RegisterUserRequest{
		ActorEnvelope:          env,
		BidYear:                bidYear,
		Initials:               initials,
		Name:                   name,
		Area:                   area,
		Crew:                   crew,
		UserType:               userType,
		CumulativeNATCABUDate:  cumulative,
		NATCABUDate:            natcaBU,
		EODFAADate:             eodFAA,
		ServiceComputationDate: scd,
		LotteryValue:           nil,
	}, nil
}

// buildAreaAction serves checkpoint and finalize; their bodies are
// identical and only the path differs.
func buildAreaAction(p *prompt.Prompter, s *session.Defaults) (any, error) {
	env, err := promptActor(p, s)
	if err != nil {
		return nil, err
	}
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return nil, err
	}
	area, err := promptArea(p, s)
	if err != nil {
		return nil, err
	}
	s.SetBidYear(bidYear)
	s.SetArea(area)
	return AreaActionRequest{ActorEnvelope: env, BidYear: bidYear, Area: area}, nil
}

func buildRollback(p *prompt.Prompter, s *session.Defaults) (any, error) {
	env, err := promptActor(p, s)
	if err != nil {
		return nil, err
	}
	targetEventID, err := p.Int("Target event ID to roll back to")
	if err != nil {
		return nil, err
	}
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return nil, err
	}
	area, err := promptArea(p, s)
	if err != nil {
		return nil, err
	}
	s.SetBidYear(bidYear)
	s.SetArea(area)
	return RollbackRequest{
		ActorEnvelope: env,
		BidYear:       bidYear,
		Area:          area,
		TargetEventID: targetEventID,
	}, nil
}

func buildBootstrapLogin(p *prompt.Prompter, _ *session.Defaults) (any, error) {
	username, err := p.Text("Username", "admin")
	if err != nil {
		return nil, err
	}
	password, err := p.Text("Password", "admin")
	if err != nil {
		return nil, err
	}
	return BootstrapLoginRequest{Username: username, Password: password}, nil
}

func buildFirstAdmin(p *prompt.Prompter, _ *session.Defaults) (any, error) {
	loginName, err := p.Text("New admin login name", "")
	if err != nil {
		return nil, err
	}
	displayName, err := p.Text("New admin display name", "")
	if err != nil {
		return nil, err
	}
	password, err := p.Text("New admin password", "")
	if err != nil {
		return nil, err
	}
	return CreateFirstAdminRequest{
		LoginName:   loginName,
		DisplayName: displayName,
		Password:    password,
	}, nil
}

func buildLogin(p *prompt.Prompter, _ *session.Defaults) (any, error) {
	loginName, err := p.Text("Login name", "")
	if err != nil {
		return nil, err
	}
	password, err := p.Text("Password", "")
	if err != nil {
		return nil, err
	}
	return LoginRequest{LoginName: loginName, Password: password}, nil
}

func buildLogout(p *prompt.Prompter, _ *session.Defaults) (any, error) {
	token, err := p.Text("Session token", "")
	if err != nil {
		return nil, err
	}
	return LogoutRequest{SessionToken: token}, nil
}

func buildSetActiveBidYear(p *prompt.Prompter, s *session.Defaults) (any, error) {
	env, err := promptActor(p, s)
	if err != nil {
		return nil, err
	}
	year, err := p.Int("Bid year to activate")
	if err != nil {
		return nil, err
	}
	return SetActiveBidYearRequest{ActorEnvelope: env, Year: year}, nil
}

func buildSetExpectedAreas(p *prompt.Prompter, s *session.Defaults) (any, error) {
	env, err := promptActor(p, s)
	if err != nil {
		return nil, err
	}
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return nil, err
	}
	expected, err := p.Int("Expected area count")
	if err != nil {
		return nil, err
	}
	s.SetBidYear(bidYear)
	return SetExpectedAreaCountRequest{
		ActorEnvelope: env,
		BidYear:       bidYear,
		ExpectedCount: expected,
	}, nil
}

func buildSetExpectedUsers(p *prompt.Prompter, s *session.Defaults) (any, error) {
	env, err := promptActor(p, s)
	if err != nil {
		return nil, err
	}
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return nil, err
	}
	area, err := promptArea(p, s)
	if err != nil {
		return nil, err
	}
	expected, err := p.Int("Expected user count")
	if err != nil {
		return nil, err
	}
	s.SetBidYear(bidYear)
	s.SetArea(area)
	return SetExpectedUserCountRequest{
		ActorEnvelope: env,
		BidYear:       bidYear,
		Area:          area,
		ExpectedCount: expected,
	}, nil
}

func buildUpdateUser(p *prompt.Prompter, s *session.Defaults) (any, error) {
	env, err := promptActor(p, s)
	if err != nil {
		return nil, err
	}
	bidYear, err := promptBidYear(p, s)
	if err != nil {
		return nil, err
	}
	initials, err := p.Text("User initials", "")
	if err != nil {
		return nil, err
	}
	name, err := p.Text("User name", "")
	if err != nil {
		return nil, err
	}
	area, err := promptArea(p, s)
	if err != nil {
		return nil, err
	}
	userType, err := promptUserType(p, "CPC")
	if err != nil {
		return nil, err
	}
	hasCrew, err := p.YesNo("Has crew assignment?", true)
	if err != nil {
		return nil, err
	}
	var crew *int
	if hasCrew {
		n, err := p.Int("Crew (1-7)")
		if err != nil {
			return nil, err
		}
		crew = &n
	}
	p.Say("Enter seniority dates (format: YYYY-MM-DD)")
	cumulative, err := p.Text("Cumulative NATCA BU date", "")
	if err != nil {
		return nil, err
	}
	natcaBU, err := p.Text("NATCA BU date", "")
	if err != nil {
		return nil, err
	}
	eodFAA, err := p.Text("EOD/FAA date", "")
	if err != nil {
		return nil, err
	}
	scd, err := p.Text("Service Computation Date", "")
	if err != nil {
		return nil, err
	}
	hasLottery, err := p.YesNo("Has lottery value?", false)
	if err != nil {
		return nil, err
	}
	var lottery *int
	if hasLottery {
		n, err := p.Int("Lottery value")
		if err != nil {
			return nil, err
		}
		lottery = &n
	}
	s.SetBidYear(bidYear)
	s.SetArea(area)
	return UpdateUserRequest{
		ActorEnvelope:          env,
		BidYear:                bidYear,
		Initials:               initials,
		Name:                   name,
		Area:                   area,
		Crew:                   crew,
		UserType:               userType,
		CumulativeNATCABUDate:  cumulative,
		NATCABUDate:            natcaBU,
		EODFAADate:             eodFAA,
		ServiceComputationDate: scd,
		LotteryValue:           lottery,
	}, nil
}

func buildCreateOperator(p *prompt.Prompter, s *session.Defaults) (any, error) {
	cause, err := promptCause(p, s)
	if err != nil {
		return nil, err
	}
	loginName, err := p.Text("Operator login name", "")
	if err != nil {
		return nil, err
	}
	displayName, err := p.Text("Operator display name", "")
	if err != nil {
		return nil, err
	}
	role, err := promptOperatorRole(p)
	if err != nil {
		return nil, err
	}
	password, err := p.Text("Password", "")
	if err != nil {
		return nil, err
	}
	confirmation, err := p.Text("Confirm password", "")
	if err != nil {
		return nil, err
	}
	return CreateOperatorRequest{
		Cause:                cause,
		LoginName:            loginName,
		DisplayName:          displayName,
		Role:                 role,
		Password:             password,
		PasswordConfirmation: confirmation,
	}, nil
}

// buildOperatorAction serves disable, enable and delete; only the path
// differs.
func buildOperatorAction(p *prompt.Prompter, s *session.Defaults) (any, error) {
	cause, err := promptCause(p, s)
	if err != nil {
		return nil, err
	}
	operatorID, err := p.Int("Operator ID")
	if err != nil {
		return nil, err
	}
	return OperatorActionRequest{Cause: cause, OperatorID: operatorID}, nil
}

// promptCSVContent reads a roster file from disk, re-asking until a
// readable path is given.
func promptCSVContent(p *prompt.Prompter) (string, error) {
	for {
		path, err := p.Text("Path to CSV file", "")
		if err != nil {
			return "", err
		}
		data, readErr := os.ReadFile(path)
		if readErr == nil {
			return string(data), nil
		}
		p.Sayf("Cannot read file: %v", readErr)
	}
}

func buildCSVPreview(p *prompt.Prompter, _ *session.Defaults) (any, error) {
	content, err := promptCSVContent(p)
	if err != nil {
		return nil, err
	}
	return PreviewCSVUsersRequest{CSVContent: content}, nil
}

func buildCSVImport(p *prompt.Prompter, _ *session.Defaults) (any, error) {
	content, err := promptCSVContent(p)
	if err != nil {
		return nil, err
	}
	for {
		raw, err := p.Text("Row indices to import (comma-separated, 0-based)", "")
		if err != nil {
			return nil, err
		}
		indices, parseErr := parseIndices(raw)
		if parseErr == nil {
			return ImportCSVUsersRequest{CSVContent: content, SelectedRowIndices: indices}, nil
		}
		p.Say("Please enter comma-separated integers.")
	}
}

func parseIndices(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		indices = append(indices, n)
	}
	return indices, nil
}
