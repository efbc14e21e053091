//go:build unit

package middleware_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"pricing-panel/internal/handler/middleware"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/tests/common/httptest"
	usecasemock "pricing-panel/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoggedRouter(t *testing.T, validator *usecasemock.MockSessionValidator) (*gin.Engine, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.Log.Level = "info"

	var buf bytes.Buffer
	logger := middleware.NewLoggerTo(cfg.Log, &buf)
	session := middleware.NewSessionMiddleware(validator, cfg)

	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/api/products", session.RequireSession(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router, &buf
}

func logLine(t *testing.T, buf *bytes.Buffer, msg string) string {
	t.Helper()
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, msg) {
			return line
		}
	}
	require.Failf(t, "log line not found", "%q in %s", msg, buf.String())
	return ""
}

func TestLoggingMiddleware_CompanyID(t *testing.T) {
	t.Run("header company on both lines", func(t *testing.T) {
		router, buf := newLoggedRouter(t, nil)

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/products", nil,
			map[string]string{middleware.HeaderCompanyID: "1001"})
		require.Equal(t, http.StatusNoContent, rec.Code)

		assert.Contains(t, logLine(t, buf, "Request started"), "company_id=1001")
		completed := logLine(t, buf, "Request completed")
		assert.Equal(t, 1, strings.Count(completed, "company_id="))
		assert.Contains(t, completed, "company_id=1001")
	})

	t.Run("session company only on completion", func(t *testing.T) {
		validator := usecasemock.NewMockSessionValidator(gomock.NewController(t))
		validator.EXPECT().ValidateSession("tok").Return("2002", nil)
		router, buf := newLoggedRouter(t, validator)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/products", nil, "tok")
		require.Equal(t, http.StatusNoContent, rec.Code)

		assert.NotContains(t, logLine(t, buf, "Request started"), "company_id=")
		assert.Contains(t, logLine(t, buf, "Request completed"), "company_id=2002")
	})
}
