package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-submission-bot/pkg/log"
)

// HeaderTraceID carries the request trace ID in both directions.
const HeaderTraceID = "X-Trace-Id"

// Trace attaches a trace ID to the request context and logs the request once it completes.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(HeaderTraceID)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		ctx := log.WithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderTraceID, traceID)

		start := time.Now()
		c.Next()

		m.l.Debugf(ctx, "internal.middleware.Trace: %s %s %d %s",
			c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
