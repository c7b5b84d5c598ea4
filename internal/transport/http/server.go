package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appsvc "projectpad/internal/app"
	"projectpad/internal/bootstrap"
	"projectpad/internal/cache"
	"projectpad/internal/platform/rabbitmq"
	"projectpad/internal/repository"
	"projectpad/internal/transport/http/handler"
	"projectpad/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is running..."})
	})
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	projectRepo := repository.NewProjectRepository(app.MySQL)
	publisher := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.ActivityQueue)
	listCache := cache.NewProjectListCache(
		app.Redis,
		time.Duration(app.Config.Redis.ProjectListTTLSeconds)*time.Second,
	)

	authService := appsvc.NewAuthService(
		userRepo,
		publisher,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	projectService := appsvc.NewProjectService(projectRepo, listCache, publisher)

	enforceOwner := app.Config.Auth.EnforceProjectAuth
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService, enforceOwner)

	api := router.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	projects := api.Group("/projects")
	if enforceOwner {
		projects.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	}
	projects.POST("", projectHandler.Create)
	projects.GET("/:userId", projectHandler.List)
	projects.DELETE("/:id", projectHandler.Delete)

	return router
}
