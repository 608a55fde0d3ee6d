package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Bran258/land-roys-v4/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// Checks DB and Redis connectivity and reports how many async jobs sit in
// each dead letter list; never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		dlq := gin.H{}
		if redisStatus == "connected" {
			for _, queue := range []string{worker.QueueNotificaciones, worker.QueueComprobantes} {
				if n, err := worker.DLQLength(ctx, rdb, queue); err == nil {
					dlq[queue] = n
				}
			}
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"status": dbStatus,
			"redis":  redisStatus,
			"dlq":    dlq,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
