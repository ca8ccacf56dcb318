package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/agent"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/metrics"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/toolkit"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ToolRegistry interface {
	Tools() []toolkit.Tool
	HandleTool(ctx context.Context, name string, args map[string]any) (any, error)
}

type ToolResponse struct {
	Result any `json:"result"`
}

func RegisterToolRoutes(router *gin.Engine, registry ToolRegistry, agents agent.Definition, observer metrics.Observer) {
	router.GET("/tools", func(c *gin.Context) {
		c.JSON(http.StatusOK, registry.Tools())
	})

	router.POST("/tools/:name", func(c *gin.Context) {
		name := c.Param("name")

		toolLogger := requestLogger(c).
			With().
			Str("tool", name).
			Str("operationId", uuid.New().String()).
			Logger()
		c.Set(LoggerKey, &toolLogger)

		args, err := bindArgs(c)
		if err != nil {
			observer.ObserveToolCall(name, metrics.OutcomeInvalidArgument, 0)
			HandleError(c, http.StatusBadRequest, "Failed to bind tool arguments", err)
			return
		}

		slowLog := slowlog.CreateLogger(&toolLogger)
		key := fmt.Sprintf("tool:%s", name)
		slowLog.Start(key)

		result, err := registry.HandleTool(c.Request.Context(), name, args)
		duration := slowLog.Stop(key)

		switch {
		case errors.Is(err, toolkit.ErrUnknownTool):
			observer.ObserveToolCall(name, metrics.OutcomeUnknownTool, duration)
			HandleError(c, http.StatusNotFound, "Tool not found", err)
			return
		case errors.Is(err, toolkit.ErrInvalidArguments):
			observer.ObserveToolCall(name, metrics.OutcomeInvalidArgument, duration)
			HandleError(c, http.StatusBadRequest, "Invalid tool arguments", err)
			return
		case err != nil:
			observer.ObserveToolCall(name, metrics.OutcomeError, duration)
			HandleError(c, http.StatusBadGateway, "Tool failed", err)
			return
		}

		observer.ObserveToolCall(name, metrics.OutcomeOK, duration)
		c.JSON(http.StatusOK, ToolResponse{Result: result})
	})

	router.GET("/agents", func(c *gin.Context) {
		c.JSON(http.StatusOK, agents)
	})
}

// An empty body is the same as no arguments.
func bindArgs(c *gin.Context) (map[string]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var args map[string]any
	if err := json.Unmarshal(body, &args); err != nil {
		return nil, err
	}

	return args, nil
}
