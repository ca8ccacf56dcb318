package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

const requestStartTimeKey = "requestStartTime"

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

func StartRequest(c *gin.Context) {
	c.Set(requestStartTimeKey, CurrentTimeFunc())
}

func TraceLog(c *gin.Context) {
	// Finish all others and then write trace log
	c.Next()

	startTime := c.MustGet(requestStartTimeKey).(time.Time)

	// tool routes swap in a logger that already carries the tool name
	requestLogger(c).Info().
		Str("label", "trace").
		Str("method", c.Request.Method).
		Str("url", c.Request.URL.Path).
		Int("code", c.Writer.Status()).
		Int("size", c.Writer.Size()).
		Float64("duration", time.Since(startTime).Seconds()).
		Msg("")
}
