package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/metrics"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/requesting"
	"github.com/rs/zerolog"
)

const DefaultTimeout = 3 * time.Second

type OptionFunc func(o *Options)

type Options struct {
	// Name of the caller, sent as part of the user agent
	name string

	// BaseURL - full URL to the service including protocol and port
	baseURL string

	// Timeout - if not set, then default timeout is used
	timeout time.Duration

	// Transport - defaults to http.DefaultTransport
	transport http.RoundTripper

	observer metrics.Observer

	// Verifier - checks bearer tokens before they are sent downstream, nil skips the check
	verifier TokenVerifier
}

type TokenVerifier interface {
	Verify(token string) bool
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(o *Options) {
		o.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(o *Options) {
		o.timeout = timeout
	}
}

func WithTransport(transport http.RoundTripper) OptionFunc {
	return func(o *Options) {
		o.transport = transport
	}
}

func WithObserver(observer metrics.Observer) OptionFunc {
	return func(o *Options) {
		o.observer = observer
	}
}

func WithTokenVerifier(verifier TokenVerifier) OptionFunc {
	return func(o *Options) {
		o.verifier = verifier
	}
}

func NewOptions(optionFuncs ...OptionFunc) (*Options, error) {
	options := &Options{
		name:     "bank-agent",
		observer: metrics.Noop(),
	}

	for _, optionFunc := range optionFuncs {
		optionFunc(options)
	}

	if options.baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	return options, nil
}

func (o *Options) Name() string {
	return o.name
}

func (o *Options) BaseURL() string {
	return strings.TrimRight(o.baseURL, "/")
}

func (o *Options) Verifier() TokenVerifier {
	return o.verifier
}

func (o *Options) Timeout() time.Duration {
	if o.timeout != 0 {
		return o.timeout
	}
	return DefaultTimeout
}

// HTTPClient builds the client used to talk to destination, with outgoing
// request logging and metrics.
func (o *Options) HTTPClient(logger *zerolog.Logger, destination string) *http.Client {
	return &http.Client{
		Timeout: o.Timeout(),
		Transport: &requesting.InterceptorTransport{
			Transport: o.transport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(logger, destination),
				requesting.NewMetricsTransportMiddleware(o.observer, destination),
			},
		},
	}
}

// UserAgent identifies requests sent on behalf of the agent.
func (o *Options) UserAgent(destination string) string {
	return fmt.Sprintf("%s-local-client via %s", destination, o.name)
}

// BaseURLFor joins a host and port the way the bank services are addressed in cluster.
func BaseURLFor(host string, port string) string {
	return fmt.Sprintf("http://%s:%s", host, port)
}
