package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CorrelationIDHeader = "x-correlation-id"
	CorrelationIDKey    = "correlationId"
)

// CorrelationId takes the correlation id from the request header, or creates
// one, and echoes it back to the caller.
func CorrelationId(c *gin.Context) {
	correlationId := c.GetHeader(CorrelationIDHeader)
	if correlationId == "" {
		correlationId = uuid.New().String()
	}

	c.Set(CorrelationIDKey, correlationId)
	c.Header(CorrelationIDHeader, correlationId)
}
