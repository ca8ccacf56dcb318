package web

import (
	"net/http"
	"time"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/agent"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/metrics"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Logger     *zerolog.Logger
	Registry   ToolRegistry
	Agents     agent.Definition
	Observer   metrics.Observer
	Production bool
}

func SetupRouter(deps Dependencies) *gin.Engine {
	startTime := time.Now()

	if deps.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	if deps.Observer == nil {
		deps.Observer = metrics.Noop()
	}

	router := gin.New()

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(deps.Logger)).
		Use(TraceLog).
		Use(PanicRecovery)

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if !deps.Production {
		pprof.Register(router)
	}

	RegisterToolRoutes(router, deps.Registry, deps.Agents, deps.Observer)

	return router
}
