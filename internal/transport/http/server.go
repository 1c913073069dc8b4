package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "fitmanager/internal/app"
	"fitmanager/internal/bootstrap"
	"fitmanager/internal/cache"
	"fitmanager/internal/platform/rabbitmq"
	"fitmanager/internal/repository"
	"fitmanager/internal/transport/http/handler"
	"fitmanager/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/health", healthHandler.Check)
	router.GET("/db-health", healthHandler.DBCheck)

	userRepo := repository.NewUserRepository(app.MySQL)
	weightRepo := repository.NewWeightRepository(app.MySQL)
	macroRepo := repository.NewMacroRepository(app.MySQL)
	hydrationRepo := repository.NewHydrationRepository(app.MySQL)

	events := rabbitmq.NewActivityPublisher(app.MQConn, app.Config.RabbitMQ.ActivityEventQueue)
	dashboardCache := cache.NewDashboardCache(
		app.Redis,
		time.Duration(app.Config.Redis.DashboardTTLSeconds)*time.Second,
	)

	authService := appsvc.NewAuthService(
		userRepo,
		events,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	userService := appsvc.NewUserService(userRepo, weightRepo, macroRepo, hydrationRepo, events, dashboardCache)
	weightService := appsvc.NewWeightService(weightRepo, events, dashboardCache)
	macroService := appsvc.NewMacroService(macroRepo, events, dashboardCache)
	hydrationService := appsvc.NewHydrationService(hydrationRepo, events, dashboardCache)
	dashboardService := appsvc.NewDashboardService(userRepo, weightRepo, macroRepo, hydrationRepo, dashboardCache)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	weightHandler := handler.NewWeightHandler(weightService)
	macroHandler := handler.NewMacroHandler(macroService)
	hydrationHandler := handler.NewHydrationHandler(hydrationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authGroup := router.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/verify", authHandler.Verify)

	authed := router.Group("/", middleware.AuthJWT(app.Config.Auth.JWTSecret))

	userGroup := authed.Group("/user")
	userGroup.GET("", userHandler.Get)
	userGroup.PUT("", userHandler.Update)
	userGroup.DELETE("", userHandler.Delete)

	weightGroup := authed.Group("/weights")
	weightGroup.POST("", weightHandler.Create)
	weightGroup.GET("", weightHandler.List)
	weightGroup.DELETE("/last", weightHandler.DeleteLast)
	weightGroup.GET("/:id", weightHandler.Get)
	weightGroup.PUT("/:id", weightHandler.Update)
	weightGroup.DELETE("/:id", weightHandler.Delete)

	macroGroup := authed.Group("/macros")
	macroGroup.POST("", macroHandler.Create)
	macroGroup.GET("", macroHandler.List)
	macroGroup.GET("/:id", macroHandler.Get)
	macroGroup.PUT("/:id", macroHandler.Update)
	macroGroup.DELETE("/:id", macroHandler.Delete)

	hydrationGroup := authed.Group("/hydrations")
	hydrationGroup.POST("", hydrationHandler.Create)
	hydrationGroup.GET("", hydrationHandler.List)
	hydrationGroup.DELETE("/last", hydrationHandler.DeleteLast)
	hydrationGroup.GET("/:id", hydrationHandler.Get)
	hydrationGroup.PUT("/:id", hydrationHandler.Update)
	hydrationGroup.DELETE("/:id", hydrationHandler.Delete)

	authed.GET("/dashboard", dashboardHandler.Get)

	return router
}
