package requesting_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/schema"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/requesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNormalize(t *testing.T) {
	t.Run("should pass 200 bodies through unchanged", func(t *testing.T) {
		bodies := []string{
			`12345`,
			`[{"label":"Bob","account_num":"1234567890","routing_num":"883745000","is_external":false}]`,
			`{"nested":{"a":[1,2,3]},"b":null}`,
		}

		for _, body := range bodies {
			normalized, err := requesting.Normalize(response(http.StatusOK, body))

			require.NoError(t, err)
			assert.True(t, normalized.Ok())

			encoded, err := json.Marshal(normalized)
			require.NoError(t, err)
			assert.Equal(t, body, string(encoded))
		}
	})

	t.Run("should synthesize error mapping on any other status", func(t *testing.T) {
		tests := []struct {
			code int
			body string
		}{
			{http.StatusUnauthorized, "failed to verify token"},
			{http.StatusNotFound, ""},
			{http.StatusInternalServerError, "<html>oops</html>"},
			{http.StatusCreated, `{"ok":true}`},
		}

		for _, test := range tests {
			normalized, err := requesting.Normalize(response(test.code, test.body))

			require.NoError(t, err)
			assert.False(t, normalized.Ok())
			assert.Equal(t, schema.NewResponseError(test.code, test.body), *normalized.Error)

			encoded, _ := json.Marshal(normalized)
			var decoded map[string]any
			require.NoError(t, json.Unmarshal(encoded, &decoded))
			assert.Equal(t, false, decoded["success"])
			assert.Equal(t, float64(test.code), decoded["status code"])
			assert.Equal(t, test.body, decoded["response"])
		}
	})

	t.Run("should fail on non json 200 body", func(t *testing.T) {
		_, err := requesting.Normalize(response(http.StatusOK, "ready"))
		assert.ErrorIs(t, err, requesting.ErrInvalidJSONBody)
	})
}

func TestTransportError(t *testing.T) {
	t.Run("should pass nil through", func(t *testing.T) {
		assert.Nil(t, requesting.TransportError(nil))
	})

	t.Run("should classify timeouts", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(50 * time.Millisecond)
		}))
		defer testServer.Close()

		client := &http.Client{Timeout: time.Millisecond}
		_, err := client.Get(testServer.URL)

		classified := requesting.TransportError(err)
		assert.ErrorIs(t, classified, requesting.ErrTimeout)
	})

	t.Run("should classify connection failures", func(t *testing.T) {
		testServer := httptest.NewServer(http.NotFoundHandler())
		url := testServer.URL
		testServer.Close()

		_, err := http.Get(url)

		classified := requesting.TransportError(err)
		assert.ErrorIs(t, classified, requesting.ErrConnection)
	})

	t.Run("should keep the cause in the chain", func(t *testing.T) {
		classified := requesting.TransportError(context.Canceled)
		assert.True(t, errors.Is(classified, context.Canceled))
	})
}
