package requesting

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/schema"
)

var (
	ErrTimeout         = errors.New("request timed out")
	ErrConnection      = errors.New("connection failed")
	ErrInvalidJSONBody = errors.New("response body is not valid JSON")
)

// TransportError classifies an error returned by http.Client.Do. The original
// error stays in the chain.
func TransportError(err error) error {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrConnection, err)
}

// Normalize passes a 200 body through unchanged and turns every other status
// into a ResponseError carrying the raw body text. The body is always closed.
func Normalize(response *http.Response) (schema.NormalizedResponse, error) {
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return schema.NormalizedResponse{}, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if response.StatusCode != http.StatusOK {
		e := schema.NewResponseError(response.StatusCode, string(body))
		return schema.NormalizedResponse{Error: &e}, nil
	}

	if !json.Valid(body) {
		return schema.NormalizedResponse{}, ErrInvalidJSONBody
	}

	return schema.NormalizedResponse{Body: json.RawMessage(body)}, nil
}

// Drain discards the rest of the body so the connection can be reused.
func Drain(response *http.Response) {
	_, _ = io.Copy(io.Discard, response.Body)
	response.Body.Close()
}
