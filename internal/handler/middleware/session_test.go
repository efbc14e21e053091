//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"pricing-panel/internal/handler/middleware"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/cookie"
	"pricing-panel/tests/common/httptest"
	usecasemock "pricing-panel/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSessionRouter(m *middleware.SessionMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/products", m.RequireSession(), middleware.RequireCompany(), func(c *gin.Context) {
		companyID, _ := middleware.GetCompanyID(c)
		c.JSON(http.StatusOK, gin.H{"company_id": companyID, "header": c.GetHeader(middleware.HeaderCompanyID)})
	})
	return router
}

func TestSessionMiddleware_Disabled(t *testing.T) {
	m := middleware.NewSessionMiddleware(nil, config.NewTestConfig())
	assert.False(t, m.Enabled())
	router := newSessionRouter(m)

	t.Run("header company passes through", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/products", nil,
			map[string]string{middleware.HeaderCompanyID: "1001"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"company_id":"1001","header":"1001"}`, rec.Body.String())
	})

	t.Run("missing company header", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/products", nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "x-company-id header is required")
	})
}

func TestSessionMiddleware_Enabled(t *testing.T) {
	cfg := config.NewTestConfig()

	setup := func(t *testing.T) (*usecasemock.MockSessionValidator, *gin.Engine) {
		t.Helper()
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockSessionValidator(ctrl)
		return validator, newSessionRouter(middleware.NewSessionMiddleware(validator, cfg))
	}

	t.Run("bearer token sets company and session cookie", func(t *testing.T) {
		validator, router := setup(t)
		validator.EXPECT().ValidateSession("tok").Return("1001", nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/products", nil, "tok")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"company_id":"1001","header":"1001"}`, rec.Body.String())

		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		require.NotNil(t, c)
		assert.Equal(t, "tok", c.Value)
		assert.True(t, c.HttpOnly)
	})

	t.Run("cookie token does not reissue the cookie", func(t *testing.T) {
		validator, router := setup(t)
		validator.EXPECT().ValidateSession("from-cookie").Return("1001", nil)

		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/api/products", nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: "from-cookie"}}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, httptest.ExtractCookie(rec, cookie.SessionCookieName))
	})

	t.Run("matching company header is accepted", func(t *testing.T) {
		validator, router := setup(t)
		validator.EXPECT().ValidateSession("tok").Return("1001", nil)

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/products", nil,
			map[string]string{"Authorization": "Bearer tok", middleware.HeaderCompanyID: "1001"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		_, router := setup(t)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/products", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Session token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		validator, router := setup(t)
		validator.EXPECT().ValidateSession("bad").Return("", errors.New("invalid token"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/products", nil, "bad")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired session")
	})

	t.Run("company header of another merchant", func(t *testing.T) {
		validator, router := setup(t)
		validator.EXPECT().ValidateSession("tok").Return("1001", nil)

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/products", nil,
			map[string]string{"Authorization": "Bearer tok", middleware.HeaderCompanyID: "2002"})
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Company mismatch")
	})
}
