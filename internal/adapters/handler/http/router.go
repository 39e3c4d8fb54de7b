package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/comitanigiacomo/movewell-api/internal/adapters/cache"
	"github.com/comitanigiacomo/movewell-api/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
	"github.com/comitanigiacomo/movewell-api/internal/core/services"

	_ "github.com/comitanigiacomo/movewell-api/docs"
)

type RouterDependencies struct {
	AuthHandler        *AuthHandler
	ExerciseHandler    *ExerciseHandler
	DashboardHandler   *DashboardHandler
	AppointmentHandler *AppointmentHandler
	PostureHandler     *PostureHandler
	ChatHandler        *ChatHandler
	TokenService       *services.TokenService
	Store              domain.KeyValueStore
	StoreName          string
	Redis              *redis.Client
	RateLimit          int
	RateLimitWindow    time.Duration
	StartTime          time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	if deps.Redis != nil && deps.RateLimit > 0 {
		window := deps.RateLimitWindow
		if window <= 0 {
			window = time.Minute
		}
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, window))
	}

	router.GET("/health", func(c *gin.Context) {
		storeStatus := "connected"
		if err := deps.Store.Ping(c.Request.Context()); err != nil {
			storeStatus = "unreachable"
		}

		redisStatus := cache.Status(c.Request.Context(), deps.Redis)

		statusCode := http.StatusOK
		if storeStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":  "ok",
			"storage": deps.StoreName,
			"store":   storeStatus,
			"redis":   redisStatus,
			"uptime":  time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(apiV1)
	deps.AppointmentHandler.RegisterPublicRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.AuthHandler.RegisterProtectedRoutes(protected)
		deps.DashboardHandler.RegisterRoutes(protected)
		deps.ExerciseHandler.RegisterRoutes(protected)
		deps.AppointmentHandler.RegisterRoutes(protected)
		deps.PostureHandler.RegisterRoutes(protected)
		deps.ChatHandler.RegisterRoutes(protected)
	}

	return router
}
