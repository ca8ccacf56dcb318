package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func PanicRecovery(c *gin.Context) {
	gin.CustomRecoveryWithWriter(&recoveryWriter{
		logger: requestLogger(c),
	}, func(c *gin.Context, err any) {
		HandleError(c, http.StatusInternalServerError, "Panic recovered", fmt.Errorf("%v", err))
	})(c)
}

type recoveryWriter struct {
	logger *zerolog.Logger
}

func (r *recoveryWriter) Write(p []byte) (n int, err error) {
	r.
		logger.
		Error().
		Str("label", "panic").
		Msg(string(p))

	return len(p), nil
}
