package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const LoggerKey = "logger"

func RegisterLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestLogger := logger.
			With().
			Str(CorrelationIDKey, c.GetString(CorrelationIDKey)).
			Logger()

		c.Set(LoggerKey, &requestLogger)
	}
}
