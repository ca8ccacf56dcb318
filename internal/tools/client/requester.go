package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/schema"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/requesting"
	"github.com/oapi-codegen/runtime"
	"github.com/rs/zerolog"
)

var ErrMissingIdentifier = errors.New("identifier is required")

// Requester holds what the three bank service clients share: readiness probe,
// authenticated GETs and response normalization.
type Requester struct {
	destination string
	options     *Options
	http        *http.Client
}

func NewRequester(logger *zerolog.Logger, destination string, options *Options) *Requester {
	return &Requester{
		destination: destination,
		options:     options,
		http:        options.HTTPClient(logger, destination),
	}
}

func (r *Requester) Destination() string {
	return r.destination
}

// Ready probes GET /ready. Only a 200 counts as ready, transport failures are returned.
func (r *Requester) Ready(ctx context.Context) (bool, error) {
	response, err := r.Get(ctx, "/ready", nil, "")
	if err != nil {
		return false, err
	}
	defer requesting.Drain(response)

	return response.StatusCode == http.StatusOK, nil
}

// Get sends a GET to path. The bearer header is only set when token is not empty.
func (r *Requester) Get(ctx context.Context, path string, query url.Values, token string) (*http.Response, error) {
	target := r.options.BaseURL() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", r.destination, err)
	}

	request.Header.Set("User-Agent", r.options.UserAgent(r.destination))
	request.Header.Set("Accept", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := r.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.destination, requesting.TransportError(err))
	}

	return response, nil
}

// FetchAuthorized sends an authenticated GET to prefix/{identifier} and
// normalizes the answer. Tokens rejected by the configured verifier never
// leave the process.
func (r *Requester) FetchAuthorized(ctx context.Context, prefix string, paramName string, identifier string, token string) (schema.NormalizedResponse, error) {
	if identifier == "" {
		return schema.NormalizedResponse{}, fmt.Errorf("%s: %w", paramName, ErrMissingIdentifier)
	}

	if verifier := r.options.Verifier(); verifier != nil && !verifier.Verify(token) {
		e := schema.NewResponseError(http.StatusUnauthorized, "invalid or expired token")
		return schema.NormalizedResponse{Error: &e}, nil
	}

	segment, err := runtime.StyleParamWithLocation("simple", false, paramName, runtime.ParamLocationPath, identifier)
	if err != nil {
		return schema.NormalizedResponse{}, fmt.Errorf("encoding %s: %w", paramName, err)
	}

	response, err := r.Get(ctx, prefix+"/"+segment, nil, token)
	if err != nil {
		return schema.NormalizedResponse{}, err
	}

	normalized, err := requesting.Normalize(response)
	if err != nil {
		return schema.NormalizedResponse{}, fmt.Errorf("%s: %w", r.destination, err)
	}

	return normalized, nil
}
