package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pricing-panel/internal/handler/httperr"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/cookie"
	"pricing-panel/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxCompanyIDKey = "company_id"

	HeaderCompanyID = "x-company-id"
)

var (
	errSessionRequired = errors.New("session token required")
	errSessionInvalid  = errors.New("session token invalid")
	errCompanyMismatch = errors.New("session company does not match request company")
	errCompanyRequired = errors.New("x-company-id header required")
)

// SessionMiddleware checks extension session tokens. A nil validator turns the
// check off.
type SessionMiddleware struct {
	validator usecase.SessionValidator
	cookieCfg config.CookieConfig
	duration  time.Duration
}

func NewSessionMiddleware(validator usecase.SessionValidator, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		validator: validator,
		cookieCfg: cfg.Cookie,
		duration:  cfg.Session.Duration,
	}
}

func (m *SessionMiddleware) Enabled() bool {
	return m != nil && m.validator != nil
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() {
			c.Next()
			return
		}

		token := cookie.GetSessionToken(c)
		fromHeader := false
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
				fromHeader = true
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errSessionRequired, "Session token required", nil)
			return
		}

		companyID, err := m.validator.ValidateSession(token)
		if err != nil {
			slog.Warn("Session validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errSessionInvalid, "Invalid or expired session", nil)
			return
		}

		if header := strings.TrimSpace(c.GetHeader(HeaderCompanyID)); header != "" && header != companyID {
			httperr.AbortWithError(c, http.StatusForbidden, errCompanyMismatch, "Company mismatch", nil)
			return
		}

		// Iframe requests after the first one carry the cookie instead of the header.
		if fromHeader {
			cookie.SetSessionCookie(c, m.cookieCfg, token, m.duration)
		}

		c.Set(ctxCompanyIDKey, companyID)
		c.Next()
	}
}

// RequireCompany makes sure the request names the merchant it acts for.
func RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		if companyID, ok := GetCompanyID(c); ok {
			if c.GetHeader(HeaderCompanyID) == "" {
				c.Request.Header.Set(HeaderCompanyID, companyID)
			}
			c.Next()
			return
		}

		companyID := strings.TrimSpace(c.GetHeader(HeaderCompanyID))
		if companyID == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errCompanyRequired, "x-company-id header is required", nil)
			return
		}
		c.Set(ctxCompanyIDKey, companyID)
		c.Next()
	}
}

func GetCompanyID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxCompanyIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
