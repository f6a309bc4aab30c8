package mockapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zab-bid-org/zabcli/internal/payload"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ---- bid years and areas ----

func (s *Server) createBidYear(c *gin.Context) {
	var req payload.CreateBidYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.store.AddBidYear(req.Year)
	id := s.store.RecordEvent(AuditEntry{
		ActorID:          req.ActorID,
		ActorType:        req.ActorRole,
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       "create_bid_year",
		ActionDetails:    fmt.Sprintf("start_date=%s num_pay_periods=%d", req.StartDate, req.NumPayPeriods),
		BidYear:          &req.Year,
	})
	s.hub.Broadcast("bid_year_created", gin.H{"year": req.Year, "event_id": id})

	c.JSON(http.StatusOK, WriteResponse{
		Success: true,
		Message: fmt.Sprintf("Bid year %d created", req.Year),
		EventID: &id,
	})
}

func (s *Server) listBidYears(c *gin.Context) {
	c.JSON(http.StatusOK, ListBidYearsResponse{BidYears: s.store.BidYears()})
}

func (s *Server) createArea(c *gin.Context) {
	var req payload.CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.store.AddArea(req.BidYear, req.AreaID)
	id := s.store.RecordEvent(AuditEntry{
		ActorID:          req.ActorID,
		ActorType:        req.ActorRole,
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       "create_area",
		BidYear:          &req.BidYear,
		Area:             &req.AreaID,
	})
	s.hub.Broadcast("area_created", gin.H{"bid_year": req.BidYear, "area": req.AreaID, "event_id": id})

	c.JSON(http.StatusOK, WriteResponse{
		Success: true,
		Message: fmt.Sprintf("Area %s created in bid year %d", req.AreaID, req.BidYear),
		EventID: &id,
	})
}

func (s *Server) listAreas(c *gin.Context) {
	year := intQuery(c, "bid_year")
	c.JSON(http.StatusOK, ListAreasResponse{BidYear: year, Areas: s.store.Areas(year)})
}

// ---- users ----

func (s *Server) registerUser(c *gin.Context) {
	var req payload.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.store.RegisterUser(req.BidYear, req.Area, storedUserFrom(req.Initials, req.Name, req.Crew, req.UserType,
		req.CumulativeNATCABUDate, req.NATCABUDate, req.EODFAADate, req.ServiceComputationDate, req.LotteryValue))
	id := s.store.RecordEvent(AuditEntry{
		ActorID:          req.ActorID,
		ActorType:        req.ActorRole,
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       "register_user",
		ActionDetails:    fmt.Sprintf("initials=%s", req.Initials),
		BidYear:          &req.BidYear,
		Area:             &req.Area,
	})
	s.hub.Broadcast("user_registered", gin.H{"bid_year": req.BidYear, "area": req.Area, "initials": req.Initials, "event_id": id})

	c.JSON(http.StatusOK, WriteResponse{
		Success: true,
		Message: fmt.Sprintf("User %s registered in area %s of bid year %d", req.Initials, req.Area, req.BidYear),
		EventID: &id,
	})
}

func (s *Server) updateUser(c *gin.Context) {
	var req payload.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ok := s.store.UpdateUser(req.BidYear, req.Area, storedUserFrom(req.Initials, req.Name, req.Crew, req.UserType,
		req.CumulativeNATCABUDate, req.NATCABUDate, req.EODFAADate, req.ServiceComputationDate, req.LotteryValue))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   true,
			Message: fmt.Sprintf("User %s not found in area %s of bid year %d", req.Initials, req.Area, req.BidYear),
		})
		return
	}

	id := s.store.RecordEvent(AuditEntry{
		ActorID:          req.ActorID,
		ActorType:        req.ActorRole,
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       "update_user",
		ActionDetails:    fmt.Sprintf("initials=%s", req.Initials),
		BidYear:          &req.BidYear,
		Area:             &req.Area,
	})
	s.hub.Broadcast("user_updated", gin.H{"bid_year": req.BidYear, "area": req.Area, "initials": req.Initials, "event_id": id})

	c.JSON(http.StatusOK, WriteResponse{
		Success: true,
		Message: fmt.Sprintf("User %s updated", req.Initials),
		EventID: &id,
	})
}

func (s *Server) listUsers(c *gin.Context) {
	year := intQuery(c, "bid_year")
	area := c.Query("area")

	users := s.store.Users(year, area)
	resp := ListUsersResponse{BidYear: year, Area: area, Users: make([]UserInfo, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, UserInfo{Initials: u.Initials, Name: u.Name, Crew: u.Crew})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) leaveAvailability(c *gin.Context) {
	c.JSON(http.StatusOK, LeaveAvailabilityResponse{
		BidYear:        intQuery(c, "bid_year"),
		Area:           c.Query("area"),
		Initials:       c.Query("initials"),
		EarnedHours:    104,
		EarnedDays:     13,
		UsedHours:      24,
		RemainingHours: 80,
		RemainingDays:  10,
		Explanation:    "4 hours accrued per completed pay period",
	})
}

// ---- area lifecycle ----

func (s *Server) checkpointArea(c *gin.Context) {
	s.areaAction(c, "checkpoint_area", "area_checkpointed", "Checkpoint recorded for area %s")
}

func (s *Server) finalizeArea(c *gin.Context) {
	s.areaAction(c, "finalize_area", "area_finalized", "Area %s finalized")
}

func (s *Server) areaAction(c *gin.Context, action, event, format string) {
	var req payload.AreaActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id := s.store.RecordEvent(AuditEntry{
		ActorID:          req.ActorID,
		ActorType:        req.ActorRole,
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       action,
		BidYear:          &req.BidYear,
		Area:             &req.Area,
	})
	s.hub.Broadcast(event, gin.H{"bid_year": req.BidYear, "area": req.Area, "event_id": id})

	c.JSON(http.StatusOK, WriteResponse{
		Success: true,
		Message: fmt.Sprintf(format, req.Area),
		EventID: &id,
	})
}

func (s *Server) rollback(c *gin.Context) {
	var req payload.RollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id := s.store.RecordEvent(AuditEntry{
		ActorID:          req.ActorID,
		ActorType:        req.ActorRole,
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       "rollback",
		ActionDetails:    fmt.Sprintf("target_event_id=%d", req.TargetEventID),
		BidYear:          &req.BidYear,
		Area:             &req.Area,
	})
	s.hub.Broadcast("rolled_back", gin.H{"bid_year": req.BidYear, "area": req.Area, "target_event_id": req.TargetEventID, "event_id": id})

	c.JSON(http.StatusOK, WriteResponse{
		Success: true,
		Message: fmt.Sprintf("Rolled back area %s to event %d", req.Area, req.TargetEventID),
		EventID: &id,
	})
}

// ---- state and audit ----

func (s *Server) currentState(c *gin.Context) {
	c.JSON(http.StatusOK, s.stateSnapshot(intQuery(c, "bid_year"), c.Query("area")))
}

// historicalState serves the current snapshot; the mock keeps no history.
func (s *Server) historicalState(c *gin.Context) {
	c.JSON(http.StatusOK, s.stateSnapshot(intQuery(c, "bid_year"), c.Query("area")))
}

func (s *Server) stateSnapshot(year int, area string) StateResponse {
	users := s.store.Users(year, area)
	resp := StateResponse{
		BidYearID: s.yearID(year),
		BidYear:   year,
		AreaID:    s.areaID(year, area),
		AreaCode:  area,
		Users:     make([]UserResponse, 0, len(users)),
	}
	for _, u := range users {
		crew := ""
		if u.Crew != nil {
			crew = strconv.Itoa(*u.Crew)
		}
		resp.Users = append(resp.Users, UserResponse{
			BidYear:                year,
			Initials:               u.Initials,
			Name:                   u.Name,
			Area:                   area,
			Crew:                   crew,
			CumulativeNATCABUDate:  u.CumulativeNATCABUDate,
			NATCABUDate:            u.NATCABUDate,
			EODFAADate:             u.EODFAADate,
			ServiceComputationDate: u.ServiceComputationDate,
			LotteryValue:           u.LotteryValue,
		})
	}
	return resp
}

func (s *Server) auditTimeline(c *gin.Context) {
	year := intQuery(c, "bid_year")
	area := c.Query("area")

	entries := s.store.AuditEvents(year, area)
	resp := AuditTimelineResponse{BidYear: year, Area: area, Events: make([]AuditEventResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Events = append(resp.Events, auditResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) auditEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	e, ok := s.store.AuditEvent(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: true, Message: fmt.Sprintf("Audit event %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, auditResponse(e))
}

func auditResponse(e AuditEntry) AuditEventResponse {
	resp := AuditEventResponse{
		EventID:          e.EventID,
		ActorID:          e.ActorID,
		ActorType:        e.ActorType,
		CauseID:          e.CauseID,
		CauseDescription: e.CauseDescription,
		ActionName:       e.ActionName,
		BeforeSnapshot:   "{}",
		AfterSnapshot:    "{}",
		BidYear:          e.BidYear,
		Area:             e.Area,
	}
	if e.ActionDetails != "" {
		details := e.ActionDetails
		resp.ActionDetails = &details
	}
	return resp
}

// ---- bootstrap and business rules ----

func (s *Server) bootstrapStatus(c *gin.Context) {
	resp := BootstrapStatusResponse{BidYears: []BidYearStatusInfo{}, Areas: []AreaStatusInfo{}}
	for _, year := range s.store.BidYears() {
		resp.BidYears = append(resp.BidYears, BidYearStatusInfo{
			BidYearID:      s.yearID(year),
			Year:           year,
			AreaCount:      len(s.store.Areas(year)),
			TotalUserCount: s.store.UserCount(year),
		})
		for _, area := range s.store.Areas(year) {
			resp.Areas = append(resp.Areas, AreaStatusInfo{
				BidYearID: s.yearID(year),
				BidYear:   year,
				AreaID:    s.areaID(year, area),
				AreaCode:  area,
				UserCount: s.store.AreaUserCount(year, area),
			})
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) setActiveBidYear(c *gin.Context) {
	var req payload.SetActiveBidYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.store.AddBidYear(req.Year)
	s.store.SetActiveYear(req.Year)
	s.store.RecordEvent(AuditEntry{
		ActorID:          req.ActorID,
		ActorType:        req.ActorRole,
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       "set_active_bid_year",
		BidYear:          &req.Year,
	})
	s.hub.Broadcast("active_bid_year_changed", gin.H{"year": req.Year})

	c.JSON(http.StatusOK, SetActiveBidYearResponse{
		BidYearID: s.yearID(req.Year),
		Year:      req.Year,
		Message:   fmt.Sprintf("Bid year %d is now active", req.Year),
	})
}

func (s *Server) getActiveBidYear(c *gin.Context) {
	resp := ActiveBidYearResponse{}
	if year, ok := s.store.ActiveYear(); ok {
		id := s.yearID(year)
		resp.BidYearID = &id
		resp.Year = &year
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) setExpectedAreas(c *gin.Context) {
	var req payload.SetExpectedAreaCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.store.SetExpectedAreas(req.BidYear, req.ExpectedCount)
	s.store.RecordEvent(AuditEntry{
		ActorID:          req.ActorID,
		ActorType:        req.ActorRole,
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       "set_expected_area_count",
		ActionDetails:    fmt.Sprintf("expected_count=%d", req.ExpectedCount),
		BidYear:          &req.BidYear,
	})

	c.JSON(http.StatusOK, SetExpectedAreaCountResponse{
		BidYear:       req.BidYear,
		ExpectedCount: req.ExpectedCount,
		Message:       fmt.Sprintf("Expected area count set to %d for bid year %d", req.ExpectedCount, req.BidYear),
	})
}

func (s *Server) setExpectedUsers(c *gin.Context) {
	var req payload.SetExpectedUserCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.store.SetExpectedUsers(req.BidYear, req.Area, req.ExpectedCount)
	s.store.RecordEvent(AuditEntry{
		ActorID:          req.ActorID,
		ActorType:        req.ActorRole,
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       "set_expected_user_count",
		ActionDetails:    fmt.Sprintf("expected_count=%d", req.ExpectedCount),
		BidYear:          &req.BidYear,
		Area:             &req.Area,
	})

	c.JSON(http.StatusOK, SetExpectedUserCountResponse{
		BidYear:       req.BidYear,
		Area:          req.Area,
		ExpectedCount: req.ExpectedCount,
		Message:       fmt.Sprintf("Expected user count set to %d for area '%s' in bid year %d", req.ExpectedCount, req.Area, req.BidYear),
	})
}

func (s *Server) completeness(c *gin.Context) {
	resp := CompletenessResponse{Areas: []CompletenessAreaInfo{}, BlockingReasons: []string{}}

	year, ok := s.store.ActiveYear()
	if !ok {
		resp.BlockingReasons = append(resp.BlockingReasons, "no active bid year")
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.ActiveBidYear = &year

	areas := s.store.Areas(year)
	resp.AreaCount = len(areas)
	if n, ok := s.store.ExpectedAreas(year); ok {
		expected := n
		resp.ExpectedAreaCount = &expected
		if len(areas) < n {
			resp.BlockingReasons = append(resp.BlockingReasons,
				fmt.Sprintf("expected %d areas, have %d", n, len(areas)))
		}
	} else {
		resp.BlockingReasons = append(resp.BlockingReasons, "expected area count not set")
	}

	for _, area := range areas {
		info := CompletenessAreaInfo{Area: area, UserCount: s.store.AreaUserCount(year, area)}
		if n, ok := s.store.ExpectedUsers(year, area); ok {
			expected := n
			info.ExpectedCount = &expected
			info.Complete = info.UserCount >= n
		}
		if !info.Complete {
			resp.BlockingReasons = append(resp.BlockingReasons,
				fmt.Sprintf("area %s is not complete", area))
		}
		resp.Areas = append(resp.Areas, info)
	}

	resp.IsReadyForBidding = len(resp.BlockingReasons) == 0
	c.JSON(http.StatusOK, resp)
}

// ---- auth ----

func (s *Server) authBootstrapStatus(c *gin.Context) {
	c.JSON(http.StatusOK, BootstrapAuthStatusResponse{
		IsBootstrapMode: len(s.store.Operators()) == 0,
	})
}

func (s *Server) bootstrapLogin(c *gin.Context) {
	var req payload.BootstrapLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, BootstrapLoginResponse{
		BootstrapToken: "bootstrap-" + uuid.NewString(),
		IsBootstrap:    true,
	})
}

func (s *Server) createFirstAdmin(c *gin.Context) {
	var req payload.CreateFirstAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	op := s.store.CreateOperator(req.LoginName, req.DisplayName, "Admin")
	s.hub.Broadcast("operator_created", gin.H{"operator_id": op.ID, "login_name": op.LoginName})

	c.JSON(http.StatusOK, CreateOperatorResponse{
		OperatorID:  op.ID,
		LoginName:   op.LoginName,
		DisplayName: op.DisplayName,
		Role:        op.Role,
	})
}

func (s *Server) login(c *gin.Context) {
	var req payload.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp := LoginResponse{
		SessionToken: "session-" + uuid.NewString(),
		LoginName:    req.LoginName,
		DisplayName:  req.LoginName,
		Role:         "Admin",
		ExpiresAt:    time.Now().Add(12 * time.Hour).UTC().Format(time.RFC3339),
	}
	for _, op := range s.store.Operators() {
		if op.LoginName == req.LoginName {
			resp.DisplayName = op.DisplayName
			resp.Role = op.Role
			break
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) logout(c *gin.Context) {
	var req payload.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	c.JSON(http.StatusOK, WriteResponse{Success: true, Message: "Session terminated"})
}

func (s *Server) whoAmI(c *gin.Context) {
	resp := WhoAmIResponse{LoginName: "admin", DisplayName: "Bootstrap Admin", Role: "Admin"}
	if ops := s.store.Operators(); len(ops) > 0 {
		resp = WhoAmIResponse{
			LoginName:   ops[0].LoginName,
			DisplayName: ops[0].DisplayName,
			Role:        ops[0].Role,
			IsDisabled:  ops[0].Disabled,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ---- operators ----

func (s *Server) createOperator(c *gin.Context) {
	var req payload.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	op := s.store.CreateOperator(req.LoginName, req.DisplayName, req.Role)
	s.store.RecordEvent(AuditEntry{
		CauseID:          req.CauseID,
		CauseDescription: req.CauseDescription,
		ActionName:       "create_operator",
		ActionDetails:    fmt.Sprintf("login_name=%s role=%s", req.LoginName, req.Role),
	})
	s.hub.Broadcast("operator_created", gin.H{"operator_id": op.ID, "login_name": op.LoginName})

	c.JSON(http.StatusOK, CreateOperatorResponse{
		OperatorID:  op.ID,
		LoginName:   op.LoginName,
		DisplayName: op.DisplayName,
		Role:        op.Role,
	})
}

func (s *Server) listOperators(c *gin.Context) {
	ops := s.store.Operators()
	resp := ListOperatorsResponse{Operators: make([]OperatorInfo, 0, len(ops))}
	for _, op := range ops {
		resp.Operators = append(resp.Operators, OperatorInfo{
			OperatorID:  op.ID,
			LoginName:   op.LoginName,
			DisplayName: op.DisplayName,
			Role:        op.Role,
			IsDisabled:  op.Disabled,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) operatorAction(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payload.OperatorActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		var ok bool
		switch kind {
		case "disable":
			ok = s.store.SetOperatorDisabled(req.OperatorID, true)
		case "enable":
			ok = s.store.SetOperatorDisabled(req.OperatorID, false)
		case "delete":
			ok = s.store.DeleteOperator(req.OperatorID)
		}
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   true,
				Message: fmt.Sprintf("Operator %d not found", req.OperatorID),
			})
			return
		}

		s.store.RecordEvent(AuditEntry{
			CauseID:          req.CauseID,
			CauseDescription: req.CauseDescription,
			ActionName:       kind + "_operator",
			ActionDetails:    fmt.Sprintf("operator_id=%d", req.OperatorID),
		})
		s.hub.Broadcast("operator_"+kind+"d", gin.H{"operator_id": req.OperatorID})

		c.JSON(http.StatusOK, WriteResponse{
			Success: true,
			Message: fmt.Sprintf("Operator %d %sd", req.OperatorID, kind),
		})
	}
}

// ---- CSV import ----

func (s *Server) previewCSV(c *gin.Context) {
	var req payload.PreviewCSVUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	rows := parseCSVRows(req.CSVContent)
	resp := CSVPreviewResponse{Rows: rows, TotalRows: len(rows)}
	for _, row := range rows {
		if row.Status == "valid" {
			resp.ValidCount++
		} else {
			resp.InvalidCount++
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) importCSV(c *gin.Context) {
	var req payload.ImportCSVUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	rows := parseCSVRows(req.CSVContent)
	year, hasYear := s.store.ActiveYear()
	imported := 0
	for _, idx := range req.SelectedRowIndices {
		if idx < 0 || idx >= len(rows) || rows[idx].Status != "valid" {
			continue
		}
		row := rows[idx]
		if hasYear {
			s.store.RegisterUser(year, *row.AreaID, StoredUser{
				Initials: *row.Initials,
				Name:     *row.Name,
				Crew:     row.Crew,
				UserType: *row.UserType,
			})
		}
		imported++
	}

	id := s.store.RecordEvent(AuditEntry{
		ActionName:    "import_csv_users",
		ActionDetails: fmt.Sprintf("imported=%d", imported),
	})
	s.hub.Broadcast("users_imported", gin.H{"imported": imported, "event_id": id})

	c.JSON(http.StatusOK, CSVImportResponse{
		Success:       true,
		ImportedCount: imported,
		Message:       fmt.Sprintf("Imported %d of %d previewed rows", imported, len(rows)),
		EventID:       &id,
	})
}

// parseCSVRows applies the naive column check the mock stands in for: a
// header line, then initials,name,area_id,crew,user_type per row. Real
// validation lives in the service.
func parseCSVRows(content string) []CSVRowResult {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	rows := make([]CSVRowResult, 0)
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		row := CSVRowResult{RowNumber: len(rows) + 1, Errors: []string{}}
		fields := strings.Split(line, ",")
		if len(fields) < 5 {
			row.Status = "invalid"
			row.Errors = append(row.Errors, fmt.Sprintf("expected at least 5 columns, got %d", len(fields)))
		} else {
			row.Status = "valid"
			initials := strings.TrimSpace(fields[0])
			name := strings.TrimSpace(fields[1])
			areaID := strings.TrimSpace(fields[2])
			userType := strings.TrimSpace(fields[4])
			row.Initials = &initials
			row.Name = &name
			row.AreaID = &areaID
			row.UserType = &userType
			if crew, err := strconv.Atoi(strings.TrimSpace(fields[3])); err == nil {
				row.Crew = &crew
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ---- lifecycle ----

func (s *Server) lifecycle(phase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		_ = c.ShouldBindJSON(&body)

		id := s.store.RecordEvent(AuditEntry{
			ActionName: "transition_" + phase,
		})
		s.hub.Broadcast("lifecycle_"+phase, gin.H{"event_id": id})

		c.JSON(http.StatusOK, WriteResponse{
			Success: true,
			Message: fmt.Sprintf("Transition to %s applied", phase),
			EventID: &id,
		})
	}
}

// ---- helpers ----

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: true, Message: err.Error()})
}

func intQuery(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}

// yearID maps a year to its ordinal, standing in for a database id.
func (s *Server) yearID(year int) int {
	for i, y := range s.store.BidYears() {
		if y == year {
			return i + 1
		}
	}
	return 0
}

// areaID maps an area to its ordinal within the year.
func (s *Server) areaID(year int, area string) int {
	for i, a := range s.store.Areas(year) {
		if a == area {
			return i + 1
		}
	}
	return 0
}

func storedUserFrom(initials, name string, crew *int, userType, cumulative, natca, eod, scd string, lottery *int) StoredUser {
	return StoredUser{
		Initials:               initials,
		Name:                   name,
		Crew:                   crew,
		UserType:               userType,
		CumulativeNATCABUDate:  cumulative,
		NATCABUDate:            natca,
		EODFAADate:             eod,
		ServiceComputationDate: scd,
		LotteryValue:           lottery,
	}
}
