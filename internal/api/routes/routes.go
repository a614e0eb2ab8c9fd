package routes

import (
	"whatsapp-crm-backend/internal/api/handlers"
	"whatsapp-crm-backend/internal/api/middleware"
	"whatsapp-crm-backend/internal/config"
	"whatsapp-crm-backend/internal/logger"
	"whatsapp-crm-backend/internal/metrics"
	"whatsapp-crm-backend/internal/repository"
	"whatsapp-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	log := logger.New()

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	contactRepo := repository.NewContactRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	calendarConfigRepo := repository.NewCalendarConfigRepository(db)

	// Initialize the notification publisher; the API stays up without it
	var notifier service.NotifierInterface
	if cfg.AMQPURL != "" {
		n, err := service.NewNotifier(cfg.AMQPURL, cfg.NotifyExchange, log)
		if err != nil {
			log.WithError(err).Warn("Notification publisher unavailable, notifications disabled")
		} else {
			notifier = n
		}
	}

	calendarService := service.NewCalendarService(cfg, log)

	// Initialize services
	tenantService := service.NewTenantService(tenantRepo, calendarConfigRepo, validator)
	employeeService := service.NewEmployeeService(employeeRepo, tenantRepo, validator)
	contactService := service.NewContactService(contactRepo, tenantRepo, assignmentRepo, employeeRepo, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, employeeRepo, contactRepo, counterRepo, tenantRepo, notifier, validator, log)
	availabilityService := service.NewAvailabilityService(appointmentRepo, calendarConfigRepo, contactRepo, employeeRepo, calendarService, validator, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, calendarConfigRepo, contactRepo, employeeRepo, calendarService, notifier, validator, log)

	// Start the counter reconciler unless the schedule is disabled
	if cfg.ReconcileSchedule != "" {
		reconciler := service.NewReconcilerService(counterRepo, cfg.ReconcileSchedule, log)
		if err := reconciler.Start(); err != nil {
			log.WithError(err).Warn("Counter reconciler not started")
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	contactHandler := handlers.NewContactHandler(contactService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics route
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Tenant routes
		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.PUT("/:id", tenantHandler.UpdateTenant)
			tenants.GET("/:id/calendar", tenantHandler.GetCalendarConfigs)
			tenants.PUT("/:id/calendar", tenantHandler.UpsertCalendarConfig)
		}

		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.GetEmployeesByTenant) // Requires tenant_id parameter
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.PUT("/:id/channels", employeeHandler.UpsertChannelSetting)
		}

		// Contact routes
		contacts := v1.Group("/contacts")
		{
			contacts.GET("", contactHandler.GetContactsByTenant) // Requires tenant_id parameter
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.POST("/:id/tags", contactHandler.AddContactTag)
			contacts.DELETE("/:id/tags", contactHandler.RemoveContactTag)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.POST("", assignmentHandler.AssignLead)
			assignments.POST("/release", assignmentHandler.ReleaseLead)
			assignments.GET("/active", assignmentHandler.GetActiveAssignment) // Requires contact_id and channel parameters
		}

		// Availability route
		v1.GET("/availability", availabilityHandler.GetFreeSlots)

		// Appointment routes
		appointments := v1.Group("/appointments")
		{
			appointments.POST("", appointmentHandler.CreateAppointment)
			appointments.POST("/reschedule", appointmentHandler.RescheduleAppointment)
			appointments.POST("/cancel", appointmentHandler.CancelAppointment)
			appointments.GET("/upcoming", appointmentHandler.GetUpcomingAppointments) // Requires tenant_id and contact_id parameters
			appointments.GET("/:id", appointmentHandler.GetAppointment)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
