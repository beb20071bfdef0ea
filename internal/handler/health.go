package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/gallegosdmz/pos-front-sub000/internal/infra"
)

// Health returns a JSON health check response.
// Reports Redis connectivity and the upstream circuit breaker state; never
// exposes credentials or internals.
func Health(rdb *redis.Client, upstreamCB *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		if redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":       status == http.StatusOK,
			"redis":    redisStatus,
			"upstream": upstreamCB.State().String(),
		})
	}
}
