package fiber_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/DoctorPortal/DoctorPortal/internal/logger/adapter/fiber"
	"github.com/DoctorPortal/DoctorPortal/internal/logger"
)

// accessEntry is the subset of the access log format checked here.
type accessEntry struct {
	IP        string  `json:"ip"`
	Status    int     `json:"status"`
	URI       string  `json:"uri"`
	Method    string  `json:"method"`
	Host      string  `json:"host"`
	Latency   float64 `json:"latency"`
	RequestID string  `json:"request_id"`
	Error     string  `json:"error"`
}

func newApp(cfg adapter.Config) *fiber.App {
	app := fiber.New(fiber.Config{CaseSensitive: true, Immutable: true})
	app.Use(adapter.New(cfg))

	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderXRequestID, "req-1")
		return c.SendString("hello test")
	})
	app.Get("/checkalive", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/broken", func(_ *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		targetPath string
		wantStatus int
		wantURI    string
		wantError  string
	}{
		{name: "root", targetPath: "/", wantStatus: fiber.StatusOK, wantURI: "/"},
		{name: "query string kept", targetPath: "/?test=123", wantStatus: fiber.StatusOK, wantURI: "/?test=123"},
		{name: "multi slash kept", targetPath: "/no_path//?test=123", wantStatus: fiber.StatusNotFound, wantURI: "/no_path//?test=123"},
		{name: "chain error", targetPath: "/broken", wantStatus: fiber.StatusTeapot, wantURI: "/broken", wantError: "short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			app := newApp(adapter.Config{Output: &out})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.targetPath, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Performance"))

			var entry accessEntry
			require.NoError(t, json.Unmarshal(out.Bytes(), &entry))

			assert.Equal(t, tt.wantStatus, entry.Status)
			assert.Equal(t, tt.wantURI, entry.URI)
			assert.Equal(t, fiber.MethodGet, entry.Method)
			assert.Equal(t, "example.com", entry.Host)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, entry.Error)
			}
		})
	}
}

func TestNewRequestID(t *testing.T) {
	var out bytes.Buffer

	app := newApp(adapter.Config{Output: &out})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	var entry accessEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "req-1", entry.RequestID)
}

func TestNewSkipsCheckAlive(t *testing.T) {
	var out bytes.Buffer

	app := newApp(adapter.Config{
		Output:        &out,
		CheckAliveURI: "/checkalive",
		Config:        logger.Log{SkipCheckAlive: true},
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/checkalive", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, out.String())
}

func TestNewWithoutWriters(t *testing.T) {
	app := newApp(adapter.Config{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
