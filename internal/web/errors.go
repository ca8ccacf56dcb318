package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HandleError logs err on the request logger and aborts with an error body.
func HandleError(c *gin.Context, code int, message string, err error) {
	response := ErrorResponse{Message: message}

	event := requestLogger(c).Warn()
	if code >= 500 {
		event = requestLogger(c).Error()
	}

	if err != nil {
		response.Error = err.Error()
		event = event.Err(err)
	}

	event.
		Int("code", code).
		Msg(message)

	c.AbortWithStatusJSON(code, response)
}

func requestLogger(c *gin.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey); ok {
		return logger.(*zerolog.Logger)
	}

	nop := zerolog.Nop()
	return &nop
}
