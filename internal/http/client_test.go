package http

import (
	"bytes"
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bybitrest/pkg/core"
)

func newTestServer(t *testing.T, handler nethttp.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestNewClient_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{"missing_base_url", &Config{Timeout: time.Second}},
		{"bad_base_url", &Config{BaseURL: "not a url", Timeout: time.Second}},
		{"zero_timeout", &Config{BaseURL: "https://api.bybit.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.config, zerolog.Nop())
			require.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestClient_Get(t *testing.T) {
	server := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/test", r.URL.Path)
		assert.Equal(t, "value", r.URL.Query().Get("key"))
		assert.Equal(t, "h", r.Header.Get("X-Test"))
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte(`{"result":"success"}`))
	})

	c, err := NewClient(&Config{BaseURL: server.URL, Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.Get(context.Background(), "/test",
		WithQueryParams(map[string]string{"key": "value"}),
		WithHeader("X-Test", "h"))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())
	assert.JSONEq(t, `{"result":"success"}`, string(resp.Bytes()))
}

func TestClient_Post_JSONBody(t *testing.T) {
	server := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "POST", r.Method)
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"name":"test"}`, string(body))
		w.WriteHeader(nethttp.StatusCreated)
	})

	c, err := NewClient(&Config{BaseURL: server.URL, Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.Post(context.Background(), "/test", map[string]string{"name": "test"},
		WithHeaders(map[string]string{"Content-Type": "application/json"}))

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode())
}

func TestClient_Post_InvalidUTF8IsReplaced(t *testing.T) {
	server := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.True(t, utf8.Valid(body))
		assert.JSONEq(t, `{"note":"a\ufffdb"}`, string(body))
		w.WriteHeader(nethttp.StatusOK)
	})

	c, err := NewClient(&Config{BaseURL: server.URL, Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Post(context.Background(), "/test", map[string]string{"note": "a\xffb"},
		WithHeader("Content-Type", "application/json"))

	require.NoError(t, err)
}

func TestClient_DefaultHeaders(t *testing.T) {
	server := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "test-value", r.Header.Get("X-Custom-Header"))
		w.WriteHeader(nethttp.StatusOK)
	})

	c, err := NewClient(&Config{
		BaseURL: server.URL,
		Timeout: time.Second,
		Headers: map[string]string{"X-Custom-Header": "test-value"},
	}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(context.Background(), "/test")
	require.NoError(t, err)
}

func TestClient_ErrorStatusIsNotAnError(t *testing.T) {
	server := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusInternalServerError)
	})

	c, err := NewClient(&Config{BaseURL: server.URL, Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.Get(context.Background(), "/test")

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode())
}

func TestClient_NoRetry(t *testing.T) {
	var hits int
	server := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		hits++
		w.WriteHeader(nethttp.StatusServiceUnavailable)
	})

	c, err := NewClient(&Config{BaseURL: server.URL, Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(context.Background(), "/test")

	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestClient_Closed(t *testing.T) {
	c, err := NewClient(&Config{BaseURL: "https://api.bybit.com", Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err = c.Get(context.Background(), "/test")
	assert.ErrorIs(t, err, core.ErrClientClosed)
}

func TestClient_DebugLogging(t *testing.T) {
	server := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	})

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	c, err := NewClient(&Config{BaseURL: server.URL, Timeout: time.Second}, logger)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(context.Background(), "/logged")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "http request")
	assert.Contains(t, buf.String(), "http response")
}

func TestClient_BaseURL(t *testing.T) {
	c, err := NewClient(&Config{BaseURL: "https://api-testnet.bybit.com", Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "https://api-testnet.bybit.com", c.BaseURL())
}
