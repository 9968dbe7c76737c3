package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/models"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestStructuredLoggerRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	srv := fiber.New()
	srv.Use(StructuredLogger(logger))
	srv.Get("/posts", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/posts", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	line := logLine(t, &buf)
	assert.Equal(t, "request completed", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, resp.Header.Get("X-Request-ID"), line["request_id"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
	assert.NotContains(t, line, "user_id")
	assert.NotContains(t, line, "user_role")
}

func TestStructuredLoggerAdminIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	srv := fiber.New()
	srv.Use(StructuredLogger(logger))
	srv.Get("/admin/posts", func(c *fiber.Ctx) error {
		// What AuthRequired stores for a session-backed request.
		c.Locals("userID", "user-1")
		c.Locals("userRole", models.RoleAdmin)
		c.Locals("session", &models.Session{ID: "sess-1", UserID: "user-1"})
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/admin/posts", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	line := logLine(t, &buf)
	assert.Equal(t, "user-1", line["user_id"])
	assert.Equal(t, models.RoleAdmin, line["user_role"])
	assert.Equal(t, "sess-1", line["session_id"])
}

func TestStructuredLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		handler   fiber.Handler
		wantLevel string
		wantMsg   string
	}{
		{
			name: "handler error",
			handler: func(c *fiber.Ctx) error {
				return fiber.ErrInternalServerError
			},
			wantLevel: "ERROR",
			wantMsg:   "request error",
		},
		{
			name: "server error status",
			handler: func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusBadGateway)
			},
			wantLevel: "ERROR",
			wantMsg:   "server error",
		},
		{
			name: "client error status",
			handler: func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusNotFound)
			},
			wantLevel: "WARN",
			wantMsg:   "client error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			srv := fiber.New()
			srv.Use(StructuredLogger(logger))
			srv.Get("/", tt.handler)

			resp, err := srv.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			line := logLine(t, &buf)
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.wantMsg, line["msg"])
		})
	}
}
