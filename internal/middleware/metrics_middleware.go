package middleware

import (
	"time"

	"github.com/miguelF21/Facepay/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency by matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
