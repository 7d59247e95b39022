package api

import (
	"context"  // Ping timeouts
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// HealthResponse reports the state of the service and its stores
type HealthResponse struct {
	Status    string    `json:"status"`    // healthy or degraded
	Timestamp time.Time `json:"timestamp"` // Time of the check
	Version   string    `json:"version"`   // Build version
	DB        string    `json:"db"`        // up or down
	Cache     string    `json:"cache"`     // up, down or disabled
}

// HealthHandler pings the database and Redis
func HealthHandler(db *gorm.DB, rdb *redis.Client, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		resp := HealthResponse{Status: "healthy", Timestamp: time.Now().UTC(), Version: version, DB: "up", Cache: "disabled"}
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			resp.DB = "down"
			resp.Status = "degraded"
		}
		if rdb != nil {
			resp.Cache = "up"
			if err := rdb.Ping(ctx).Err(); err != nil {
				resp.Cache = "down" // Reads still work without the cache
			}
		}
		status := http.StatusOK
		if resp.DB == "down" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, resp)
	}
}
