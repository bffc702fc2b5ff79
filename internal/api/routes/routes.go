package routes

import (
	"camp-records-backend/internal/api/handlers"
	"camp-records-backend/internal/api/middleware"
	"camp-records-backend/internal/auth"
	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/config"
	"camp-records-backend/internal/repository"
	"camp-records-backend/internal/service"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
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

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	staffMemberRepo := repository.NewStaffMemberRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	bunkRepo := repository.NewBunkRepository(db)
	camperRepo := repository.NewCamperRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	cabinRepo := repository.NewCabinRepository(db)
	staffAssignmentRepo := repository.NewStaffAssignmentRepository(db)
	counselorBunkRepo := repository.NewCounselorBunkAssignmentRepository(db)
	camperStayRepo := repository.NewCamperBunkAssignmentRepository(db)
	bunkLogRepo := repository.NewBunkLogRepository(db)
	counselorLogRepo := repository.NewCounselorLogRepository(db)
	supplyOrderRepo := repository.NewSupplyOrderRepository(db)

	// Initialize the authorization engine. The directory backs all three of
	// its storage interfaces, and the guard is shared by every handler so one
	// request sees one assignment snapshot.
	directory := repository.NewAuthzDirectory(db)
	guard := authz.NewGuard(directory, directory, directory, authz.SystemClock{})

	// Initialize services
	staffMemberService := service.NewStaffMemberService(staffMemberRepo, validator)
	unitService := service.NewUnitService(unitRepo, validator)
	bunkService := service.NewBunkService(bunkRepo, unitRepo, validator)
	camperService := service.NewCamperService(camperRepo, camperStayRepo, bunkRepo, validator)
	sessionService := service.NewSessionService(sessionRepo, validator)
	cabinService := service.NewCabinService(cabinRepo, validator)
	staffAssignmentService := service.NewStaffAssignmentService(staffAssignmentRepo, unitRepo, staffMemberRepo, guard.Resolver(), validator)
	counselorBunkService := service.NewCounselorBunkAssignmentService(counselorBunkRepo, bunkRepo, staffMemberRepo, validator)
	bunkLogService := service.NewBunkLogService(bunkLogRepo, bunkRepo, authz.SystemClock{}, directory, validator)
	counselorLogService := service.NewCounselorLogService(counselorLogRepo, staffMemberRepo, bunkRepo, authz.SystemClock{}, directory, validator)
	supplyOrderService := service.NewSupplyOrderService(supplyOrderRepo, unitRepo, validator)
	directoryService := service.NewDirectoryService(cfg)

	// Initialize auth configuration and services
	authConfig := auth.NewAuthConfig(cfg)
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if err := authConfig.ValidateConfig(); err != nil {
		log.Printf("Warning: auth config invalid, auth routes disabled: %v", err)
	} else {
		authService, err := auth.NewAuthService(authConfig, staffMemberRepo)
		if err != nil {
			log.Printf("Warning: failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	scopeMiddleware := middleware.NewScopeMiddleware(staffMemberRepo, guard)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	staffMemberHandler := handlers.NewStaffMemberHandler(staffMemberService)
	unitHandler := handlers.NewUnitHandler(unitService, guard)
	bunkHandler := handlers.NewBunkHandler(bunkService, guard)
	camperHandler := handlers.NewCamperHandler(camperService, guard)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	cabinHandler := handlers.NewCabinHandler(cabinService)
	staffAssignmentHandler := handlers.NewStaffAssignmentHandler(staffAssignmentService)
	counselorBunkHandler := handlers.NewCounselorBunkAssignmentHandler(counselorBunkService)
	bunkLogHandler := handlers.NewBunkLogHandler(bunkLogService, guard)
	counselorLogHandler := handlers.NewCounselorLogHandler(counselorLogService, guard)
	supplyOrderHandler := handlers.NewSupplyOrderHandler(supplyOrderService, guard)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/v1/auth")
		{
			providerGroup := authGroup.Group("/:provider")
			{
				providerGroup.GET("/start", authHandler.Start)
				providerGroup.GET("/callback", authHandler.Callback)
			}

			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.POST("/validate", authHandler.ValidateToken)
		}
	}

	// API v1 routes - all endpoints require an authenticated staff member
	// with a resolved visibility scope
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}
	v1.Use(scopeMiddleware.Resolve())

	{
		// Staff member routes
		staffMembers := v1.Group("/staff-members")
		{
			staffMembers.GET("", staffMemberHandler.ListStaffMembers)
			staffMembers.POST("", staffMemberHandler.CreateStaffMember)
			staffMembers.GET("/:id", staffMemberHandler.GetStaffMember)
			staffMembers.PUT("/:id", staffMemberHandler.UpdateStaffMember)
			staffMembers.DELETE("/:id", staffMemberHandler.DeleteStaffMember)
		}

		// Unit routes
		units := v1.Group("/units")
		{
			units.GET("", unitHandler.ListUnits)
			units.POST("", unitHandler.CreateUnit)
			units.GET("/:unitId", unitHandler.GetUnit)
			units.PUT("/:unitId", unitHandler.UpdateUnit)
			units.DELETE("/:unitId", unitHandler.DeleteUnit)
			units.GET("/:unitId/bunks", unitHandler.GetUnitWithBunks)
			units.GET("/:unitId/assignments", staffAssignmentHandler.GetAssignmentsByUnit)
			units.GET("/:unitId/assignments/active", staffAssignmentHandler.GetActiveForUnit)
			units.GET("/:unitId/assignments/primary", staffAssignmentHandler.GetPrimaryForUnit)
		}

		// Bunk routes
		bunks := v1.Group("/bunks")
		{
			bunks.GET("", bunkHandler.ListBunks)
			bunks.POST("", bunkHandler.CreateBunk)
			bunks.GET("/:bunkId", bunkHandler.GetBunk)
			bunks.PUT("/:bunkId", bunkHandler.UpdateBunk)
			bunks.DELETE("/:bunkId", bunkHandler.DeleteBunk)
			bunks.GET("/:bunkId/counselors", counselorBunkHandler.GetAssignmentsByBunk)
			bunks.GET("/:bunkId/counselors/active", counselorBunkHandler.GetActiveForBunk)
		}

		// Camper routes
		campers := v1.Group("/campers")
		{
			campers.GET("", camperHandler.ListCampers)
			campers.POST("", camperHandler.CreateCamper)
			campers.GET("/:id", camperHandler.GetCamper)
			campers.PUT("/:id", camperHandler.UpdateCamper)
			campers.DELETE("/:id", camperHandler.DeleteCamper)
			campers.POST("/:id/move", camperHandler.MoveCamper)
		}

		// Session routes
		sessions := v1.Group("/sessions")
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.PUT("/:id", sessionHandler.UpdateSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
		}

		// Cabin routes
		cabins := v1.Group("/cabins")
		{
			cabins.GET("", cabinHandler.ListCabins)
			cabins.POST("", cabinHandler.CreateCabin)
			cabins.GET("/:id", cabinHandler.GetCabin)
			cabins.PUT("/:id", cabinHandler.UpdateCabin)
			cabins.DELETE("/:id", cabinHandler.DeleteCabin)
			cabins.GET("/:id/bunks", cabinHandler.GetCabinWithBunks)
		}

		// Staff assignment routes
		staffAssignments := v1.Group("/staff-assignments")
		{
			staffAssignments.POST("", staffAssignmentHandler.CreateStaffAssignment)
			staffAssignments.GET("/:id", staffAssignmentHandler.GetStaffAssignment)
			staffAssignments.POST("/:id/primary", staffAssignmentHandler.SetPrimary)
			staffAssignments.POST("/:id/close", staffAssignmentHandler.CloseStaffAssignment)
		}

		// Counselor bunk assignment routes
		counselorAssignments := v1.Group("/counselor-assignments")
		{
			counselorAssignments.POST("", counselorBunkHandler.CreateAssignment)
			counselorAssignments.GET("/:id", counselorBunkHandler.GetAssignment)
			counselorAssignments.POST("/:id/primary", counselorBunkHandler.SetPrimary)
			counselorAssignments.POST("/:id/close", counselorBunkHandler.CloseAssignment)
		}

		// Bunk log routes
		bunkLogs := v1.Group("/bunk-logs")
		{
			bunkLogs.GET("", bunkLogHandler.ListBunkLogs)
			bunkLogs.POST("", bunkLogHandler.CreateBunkLog)
			bunkLogs.GET("/:id", bunkLogHandler.GetBunkLog)
			bunkLogs.PUT("/:id", bunkLogHandler.UpdateBunkLog)
			bunkLogs.DELETE("/:id", bunkLogHandler.DeleteBunkLog)
			bunkLogs.POST("/:id/redate", bunkLogHandler.RedateBunkLog)
		}

		// Counselor log routes
		counselorLogs := v1.Group("/counselor-logs")
		{
			counselorLogs.GET("", counselorLogHandler.ListCounselorLogs)
			counselorLogs.POST("", counselorLogHandler.CreateCounselorLog)
			counselorLogs.GET("/:id", counselorLogHandler.GetCounselorLog)
			counselorLogs.PUT("/:id", counselorLogHandler.UpdateCounselorLog)
			counselorLogs.DELETE("/:id", counselorLogHandler.DeleteCounselorLog)
			counselorLogs.POST("/:id/redate", counselorLogHandler.RedateCounselorLog)
		}

		// Supply order routes
		supplyOrders := v1.Group("/supply-orders")
		{
			supplyOrders.GET("", supplyOrderHandler.ListSupplyOrders)
			supplyOrders.POST("", supplyOrderHandler.CreateSupplyOrder)
			supplyOrders.GET("/:id", supplyOrderHandler.GetSupplyOrder)
			supplyOrders.PUT("/:id", supplyOrderHandler.UpdateSupplyOrder)
			supplyOrders.DELETE("/:id", supplyOrderHandler.DeleteSupplyOrder)
			supplyOrders.POST("/:id/status", supplyOrderHandler.SetSupplyOrderStatus)
		}

		// Staff directory routes
		directoryGroup := v1.Group("/directory")
		{
			directoryGroup.GET("/users/search", directoryHandler.UserSearch)
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
