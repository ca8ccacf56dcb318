package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeUnknownTool     = "unknown_tool"
	OutcomeError           = "error"
)

type Observer interface {
	ObserveToolCall(tool string, outcome string, duration time.Duration)
	ObserveOutgoingRequest(destination string, code int)
}

var (
	toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bank_agent_tool_calls_total",
		Help: "Number of tool invocations by outcome",
	}, []string{"tool", "outcome"})

	toolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bank_agent_tool_duration_seconds",
		Help:    "Tool invocation duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})

	outgoingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bank_agent_outgoing_requests_total",
		Help: "Requests sent to bank services by destination and status code, 0 for transport failures",
	}, []string{"destination", "code"})
)

type prometheusObserver struct {
	toolCalls        *prometheus.CounterVec
	toolDuration     *prometheus.HistogramVec
	outgoingRequests *prometheus.CounterVec
}

func NewPrometheusObserver() Observer {
	return &prometheusObserver{
		toolCalls:        toolCalls,
		toolDuration:     toolDuration,
		outgoingRequests: outgoingRequests,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (p *prometheusObserver) ObserveToolCall(tool string, outcome string, duration time.Duration) {
	p.toolCalls.WithLabelValues(tool, outcome).Inc()
	p.toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

func (p *prometheusObserver) ObserveOutgoingRequest(destination string, code int) {
	p.outgoingRequests.WithLabelValues(destination, strconv.Itoa(code)).Inc()
}

type noopObserver struct{}

// Noop discards everything.
func Noop() Observer {
	return noopObserver{}
}

func (noopObserver) ObserveToolCall(string, string, time.Duration) {}

func (noopObserver) ObserveOutgoingRequest(string, int) {}
