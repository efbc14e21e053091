//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"pricing-panel/internal/pkg/jwt"
	"pricing-panel/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionValidator_ValidateSession(t *testing.T) {
	svc := jwt.NewService("session-secret", time.Hour)
	validator := usecase.NewSessionValidator(svc)

	t.Run("returns the company of a valid token", func(t *testing.T) {
		token, err := svc.GenerateToken("1001", time.Now())
		require.NoError(t, err)

		companyID, err := validator.ValidateSession(token)
		require.NoError(t, err)
		assert.Equal(t, "1001", companyID)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken("1001", time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = validator.ValidateSession(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken("1001", time.Now())
		require.NoError(t, err)

		_, err = validator.ValidateSession(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := validator.ValidateSession("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
