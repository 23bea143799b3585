package routes

import (
	"net/http"

	"studio-ops-backend/internal/api/handlers"
	"studio-ops-backend/internal/api/middleware"
	"studio-ops-backend/internal/config"
	"studio-ops-backend/internal/logger"
	"studio-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services holds the workflow components the API exposes
type Services struct {
	Directory    service.TeamDirectoryInterface
	Events       service.EventStoreInterface
	Assignments  service.AssignmentServiceInterface
	Stages       service.StageServiceInterface
	Deliverables service.DeliverableServiceInterface
	Ledger       service.TimeLedgerInterface

	// Checks are reported by the health endpoints, keyed by service name
	Checks map[string]handlers.DependencyCheck
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(svc *Services, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(svc.Checks)
	teamMemberHandler := handlers.NewTeamMemberHandler(svc.Directory)
	eventHandler := handlers.NewEventHandler(svc.Events)
	assignmentHandler := handlers.NewAssignmentHandler(svc.Events, svc.Assignments)
	stageHandler := handlers.NewStageHandler(svc.Stages)
	deliverableHandler := handlers.NewDeliverableHandler(svc.Deliverables, cfg.MaxUploadBytes)
	timeLogHandler := handlers.NewTimeLogHandler(svc.Events, svc.Ledger)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded deliverable files
	if cfg.UploadDir != "" && cfg.UploadBaseURL != "" {
		router.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	v1 := router.Group("/api/v1")
	{
		// Team directory routes
		members := v1.Group("/team-members")
		{
			members.GET("", teamMemberHandler.ListTeamMembers)
			members.POST("", teamMemberHandler.CreateTeamMember)
			members.GET("/:id", teamMemberHandler.GetTeamMember)
			members.PUT("/:id", teamMemberHandler.UpdateTeamMember)
			members.DELETE("/:id", teamMemberHandler.DeleteTeamMember)
			members.PUT("/:id/availability", teamMemberHandler.SetAvailability)
		}

		// Event routes
		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents) // Optional stage parameter
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)

			// Crew assignment
			events.GET("/:id/candidates", assignmentHandler.ListCandidates) // Requires role parameter
			events.GET("/:id/assignments/counts", assignmentHandler.GetCounts)
			events.POST("/:id/assignments", assignmentHandler.Assign)
			events.PUT("/:id/assignments/:memberId", assignmentHandler.UpdateStatus)
			events.DELETE("/:id/assignments/:memberId", assignmentHandler.Unassign) // Requires version parameter

			// Pipeline stages
			events.POST("/:id/stage/production", stageHandler.MoveToProduction)
			events.POST("/:id/stage/post-production", stageHandler.MoveToPostProduction)
			events.POST("/:id/stage/complete", stageHandler.CompleteEvent)
			events.POST("/:id/stage/override", stageHandler.OverrideStage)

			// Deliverables
			events.POST("/:id/deliverables", deliverableHandler.AddDeliverable)
			events.POST("/:id/deliverables/upload", deliverableHandler.UploadDeliverable)
			events.PUT("/:id/deliverables/:deliverableId/assign", deliverableHandler.AssignDeliverable)
			events.PUT("/:id/deliverables/:deliverableId/advance", deliverableHandler.AdvanceDeliverable)
			events.PUT("/:id/deliverables/:deliverableId/revision", deliverableHandler.RequestRevision)
			events.PUT("/:id/deliverables/:deliverableId/complete", deliverableHandler.CompleteDeliverable)
			events.DELETE("/:id/deliverables/:deliverableId", deliverableHandler.RemoveDeliverable) // Requires version parameter

			// Time tracking
			events.GET("/:id/time-logs/summary", timeLogHandler.GetSummary)
			events.POST("/:id/time-logs", timeLogHandler.LogTime)
			events.POST("/:id/time-logs/crew", timeLogHandler.LogCrewTime)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(string(logger.RequestIDKey)),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(checks map[string]handlers.DependencyCheck) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(checks)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
