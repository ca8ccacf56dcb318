package client

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("should require a base url", func(t *testing.T) {
		_, err := NewOptions()
		assert.Error(t, err)
	})

	t.Run("should apply defaults", func(t *testing.T) {
		options, err := NewOptions(WithBaseURL("http://balancereader:8080/"))

		require.NoError(t, err)
		assert.Equal(t, "bank-agent", options.Name())
		assert.Equal(t, "http://balancereader:8080", options.BaseURL())
		assert.Equal(t, DefaultTimeout, options.Timeout())
	})

	t.Run("should override timeout", func(t *testing.T) {
		options, err := NewOptions(WithBaseURL("http://contacts:8080"), WithTimeout(time.Second))

		require.NoError(t, err)
		assert.Equal(t, time.Second, options.Timeout())

		log := zerolog.New(&bytes.Buffer{})
		assert.Equal(t, time.Second, options.HTTPClient(&log, "contacts").Timeout)
	})

	t.Run("should build base urls", func(t *testing.T) {
		assert.Equal(t, "http://userservice:8080", BaseURLFor("userservice", "8080"))
	})

	t.Run("should build user agent", func(t *testing.T) {
		options, _ := NewOptions(WithBaseURL("http://x"))
		assert.Equal(t, "contacts-local-client via bank-agent", options.UserAgent("contacts"))
	})
}
