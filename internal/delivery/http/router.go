package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-attribution-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const rateLimitWindow = time.Minute

// NewRouter wires the external HTTP surface: click ingestion, click
// lookup, keep-alive ping and prometheus metrics. CORS is deliberately
// permissive: the ingestion endpoint is called straight from browser
// checkout pages on third-party domains.
func NewRouter(clickHandler *handlers.ClickHandler, redisClient *redis.Client, rateLimitPerMinute int) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = false
	corsConfig.AllowMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"}
	router.Use(cors.New(corsConfig))

	router.POST("/frontend-utm-data",
		instrument("frontend-utm-data"),
		rateLimiter(redisClient, rateLimitPerMinute),
		clickHandler.Submit)
	router.GET("/id/:id", instrument("lookup"), clickHandler.Lookup)
	router.GET("/ping", instrument("ping"), clickHandler.Ping)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// instrument records request count and duration per handler.
func instrument(handlerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.HTTPRequestDuration.
			WithLabelValues(handlerName, c.Request.Method).
			Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.
			WithLabelValues(handlerName, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}

// rateLimiter caps submissions per client IP per minute. Disabled when
// no redis client is configured; a redis outage fails open.
func rateLimiter(redisClient *redis.Client, limit int) gin.HandlerFunc {
	if redisClient == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:click:%s", c.ClientIP())

		count, err := redisClient.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			redisClient.Expire(c.Request.Context(), key, rateLimitWindow)
		}
		if count > int64(limit) {
			c.AbortWithStatusJSON(429, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
