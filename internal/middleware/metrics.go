package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Axton-Industries/Nextgen-work/internal/service"
)

// unmatchedRoute labels requests no route matched, keeping the label set bounded.
const unmatchedRoute = "unmatched"

// Metrics observes each request under its route template. Routes listed in skip, such as
// health checks and the scrape endpoint, are not recorded.
func Metrics(metricsSvc *service.MetricsService, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, route := range skip {
		skipped[route] = struct{}{}
	}
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := routeLabel(c)
		if _, ok := skipped[route]; ok {
			return
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}
