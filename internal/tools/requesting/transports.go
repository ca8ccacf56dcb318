package requesting

import (
	"net/http"
	"time"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/metrics"
	"github.com/rs/zerolog"
)

type TransportMiddleware func(http.RoundTripper) http.RoundTripper

type InterceptorTransport struct {
	Transport   http.RoundTripper
	Middlewares []TransportMiddleware
}

func (t *InterceptorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	for _, middleware := range t.Middlewares {
		transport = middleware(transport)
	}

	return transport.RoundTrip(req)
}

type LoggingTransportMiddleware struct {
	Transport   http.RoundTripper
	destination string
	log         *zerolog.Logger
}

func NewLoggingTransportMiddleware(log *zerolog.Logger, destination string) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &LoggingTransportMiddleware{
			Transport:   rt,
			destination: destination,
			log:         log,
		}
	}
}

func (t *LoggingTransportMiddleware) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	// login sends credentials in the query string
	logged := *req.URL
	logged.RawQuery = ""

	message := t.log.Info().
		Str("label", "outgoing-request").
		Str("method", req.Method).
		Str("url", logged.String()).
		Str("destination", t.destination)

	defer func() {
		message.
			Float64("duration", time.Since(startTime).Seconds()).
			Msg("")
	}()

	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		message.Str("error", err.Error()).Int("code", 0)
		return nil, err
	}

	message.Int("code", resp.StatusCode)

	return resp, nil
}

type MetricsTransportMiddleware struct {
	Transport   http.RoundTripper
	destination string
	observer    metrics.Observer
}

func NewMetricsTransportMiddleware(observer metrics.Observer, destination string) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &MetricsTransportMiddleware{
			Transport:   rt,
			destination: destination,
			observer:    observer,
		}
	}
}

func (t *MetricsTransportMiddleware) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		t.observer.ObserveOutgoingRequest(t.destination, 0)
		return nil, err
	}

	t.observer.ObserveOutgoingRequest(t.destination, resp.StatusCode)

	return resp, nil
}
