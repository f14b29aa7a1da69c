package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicscribe-team/clinic-scribe/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	aiHandler        *AI
	patientHandler   *Patient
	bookingHandler   *Booking
	recordHandler    *Record
	dashboardHandler *Dashboard
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	aiHandler *AI,
	patientHandler *Patient,
	bookingHandler *Booking,
	recordHandler *Record,
	dashboardHandler *Dashboard,
) *Router {
	return &Router{
		cfg:              cfg,
		aiHandler:        aiHandler,
		patientHandler:   patientHandler,
		bookingHandler:   bookingHandler,
		recordHandler:    recordHandler,
		dashboardHandler: dashboardHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAIRoutes(v1)
	rt.setupPatientRoutes(v1)
	rt.setupBookingRoutes(v1)
	rt.setupRecordRoutes(v1)
	rt.setupDashboardRoutes(v1)
}

// setupAIRoutes configures the consultation pipeline routes
func (rt *Router) setupAIRoutes(g *echo.Group) {
	aiGroup := g.Group("/ai")

	aiGroup.POST("/stt", rt.aiHandler.Transcribe)
	aiGroup.POST("/analyze", rt.aiHandler.Analyze)
	aiGroup.POST("/embed", rt.aiHandler.Embed)
	aiGroup.POST("/compare", rt.aiHandler.Compare)
}

// setupPatientRoutes configures patient lookup routes
func (rt *Router) setupPatientRoutes(g *echo.Group) {
	patientGroup := g.Group("/patients")

	patientGroup.GET("", rt.patientHandler.List)
	patientGroup.GET("/:id", rt.patientHandler.GetByID)
	patientGroup.GET("/:id/history", rt.patientHandler.History)
}

// setupBookingRoutes configures examination session routes
func (rt *Router) setupBookingRoutes(g *echo.Group) {
	g.POST("/bookings", rt.bookingHandler.Create)
}

// setupRecordRoutes configures medical record routes
func (rt *Router) setupRecordRoutes(g *echo.Group) {
	g.POST("/medical-records", rt.recordHandler.Create)
}

// setupDashboardRoutes configures practice statistics routes
func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard/stats", rt.dashboardHandler.Stats)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	environment := "development"
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": environment,
	})
}
