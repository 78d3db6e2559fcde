package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/api"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/database"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/middleware"
)

// SetupRouter builds the gin engine with middleware, the public health
// endpoint and all API routes.
func SetupRouter(deps api.Deps) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler(deps.DB, deps.Redis))

	api.SetupAPI(router, deps)

	return router
}

func healthHandler(db *gorm.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		status := http.StatusOK

		dbStatus := "ok"
		if db == nil {
			dbStatus = "not configured"
		} else if err := database.HealthCheck(ctx, db); err != nil {
			dbStatus = "unreachable"
			status = http.StatusServiceUnavailable
		}

		redisStatus := "ok"
		if redisClient == nil {
			redisStatus = "not configured"
		} else if err := redisClient.Ping(ctx).Err(); err != nil {
			redisStatus = "unreachable"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		c.JSON(status, gin.H{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
