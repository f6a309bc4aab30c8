package mockapi

import (
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zab-bid-org/zabcli/internal/catalog"
)

// Server hosts the gin engine over the fixture store.
type Server struct {
	engine *gin.Engine
	config *Config
	store  *Store
	hub    *Hub
	log    *logrus.Logger
}

// NewServer constructs the mock HTTP server.
func NewServer(cfg *Config, store *Store, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if store == nil {
		store = NewStore()
	}
	if cfg == nil {
		cfg = &Config{Addr: ":8080", Prefix: "/api"}
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))

	srv := &Server{
		engine: engine,
		config: cfg,
		store:  store,
		hub:    NewHub(log),
		log:    log,
	}

	srv.setupRoutes()

	return srv
}

// Engine returns the underlying gin engine (for httptest).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// setupRoutes registers a handler per catalog entry plus the live feed.
// Driving registration off the catalog keeps the mock's surface in
// lockstep with what the console can ask for.
func (s *Server) setupRoutes() {
	handlers := map[string]gin.HandlerFunc{
		catalog.BidYearCreate:         s.createBidYear,
		catalog.BidYearList:           s.listBidYears,
		catalog.AreaCreate:            s.createArea,
		catalog.AreaList:              s.listAreas,
		catalog.UserRegister:          s.registerUser,
		catalog.UserList:              s.listUsers,
		catalog.UserUpdate:            s.updateUser,
		catalog.LeaveAvailability:     s.leaveAvailability,
		catalog.Checkpoint:            s.checkpointArea,
		catalog.Finalize:              s.finalizeArea,
		catalog.Rollback:              s.rollback,
		catalog.StateCurrent:          s.currentState,
		catalog.StateHistorical:       s.historicalState,
		catalog.AuditTimeline:         s.auditTimeline,
		catalog.AuditEvent:            s.auditEvent,
		catalog.BootstrapStatus:       s.bootstrapStatus,
		catalog.AuthBootstrapStatus:   s.authBootstrapStatus,
		catalog.AuthBootstrapLogin:    s.bootstrapLogin,
		catalog.AuthFirstAdmin:        s.createFirstAdmin,
		catalog.AuthLogin:             s.login,
		catalog.AuthLogout:            s.logout,
		catalog.AuthWhoAmI:            s.whoAmI,
		catalog.ActiveBidYearSet:      s.setActiveBidYear,
		catalog.ActiveBidYearGet:      s.getActiveBidYear,
		catalog.ExpectedAreasSet:      s.setExpectedAreas,
		catalog.ExpectedUsersSet:      s.setExpectedUsers,
		catalog.BootstrapCompleteness: s.completeness,
		catalog.OperatorCreate:        s.createOperator,
		catalog.OperatorList:          s.listOperators,
		catalog.OperatorDisable:       s.operatorAction("disable"),
		catalog.OperatorEnable:        s.operatorAction("enable"),
		catalog.OperatorDelete:        s.operatorAction("delete"),
		catalog.CSVPreview:            s.previewCSV,
		catalog.CSVImport:             s.importCSV,
		catalog.LifecycleBootstrap:    s.lifecycle("bootstrap_complete"),
		catalog.LifecycleCanonical:    s.lifecycle("canonicalized"),
		catalog.LifecycleBidOpen:      s.lifecycle("bidding_active"),
		catalog.LifecycleBidClosed:    s.lifecycle("bidding_closed"),
	}

	for _, ep := range catalog.New(s.config.Prefix).List() {
		path := ep.Path
		if ep.ID == catalog.AuditEvent {
			// The one route whose input travels as a path segment.
			path += "/:id"
		}
		s.engine.Handle(ep.Method, path, handlers[ep.ID])
	}

	prefix := strings.TrimRight(strings.TrimSpace(s.config.Prefix), "/")
	s.engine.GET(prefix+"/live", s.hub.Handle)

	s.engine.GET("/health", s.health)
}

// requestLogger returns a middleware that logs requests.
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.WithFields(logrus.Fields{
			"method":  method,
			"path":    path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("request")
	}
}
