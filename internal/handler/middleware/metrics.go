package middleware

import (
	"strconv"
	"time"

	"dealswap/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const ctxEngineCodeKey = "engine_code"

// SetEngineCode records the taxonomy code of a failed engine operation for the metrics middleware.
func SetEngineCode(c *gin.Context, code string) {
	c.Set(ctxEngineCodeKey, code)
}

func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		reg.ObserveRequest(route, c.Request.Method, strconv.Itoa(status), time.Since(start).Seconds())

		if code := c.GetString(ctxEngineCodeKey); code != "" {
			reg.Outcome(route, code)
		} else if status < 400 {
			reg.Outcome(route, "ok")
		}
	}
}
