//go:build unit

package promotion_test

import (
	"testing"

	"pricing-panel/internal/domain/promotion"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	price := decimal.RequireFromString("499.5")
	negative := decimal.NewFromInt(-1)

	t.Run("defaults", func(t *testing.T) {
		req, err := promotion.NewRequest("  Cotton Kurta ", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "Cotton Kurta", req.ProductName)
		assert.Equal(t, promotion.DefaultCategory, req.Category)
		assert.True(t, req.CurrentPrice.IsZero())
	})

	t.Run("keeps given values", func(t *testing.T) {
		req, err := promotion.NewRequest("Cotton Kurta", "Ethnic Wear", &price)
		require.NoError(t, err)
		assert.Equal(t, "Ethnic Wear", req.Category)
		assert.True(t, price.Equal(req.CurrentPrice))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := promotion.NewRequest(" ", "Ethnic Wear", nil)
		assert.ErrorIs(t, err, promotion.ErrProductNameRequired)

		_, err = promotion.NewRequest("Cotton Kurta", "", &negative)
		assert.ErrorIs(t, err, promotion.ErrNegativePrice)
	})
}

func TestRequest_CacheKey(t *testing.T) {
	price := decimal.RequireFromString("499.5")
	samePrice := decimal.RequireFromString("499.50")
	otherPrice := decimal.RequireFromString("450")

	base, err := promotion.NewRequest("Cotton Kurta", "Ethnic Wear", &price)
	require.NoError(t, err)

	t.Run("case and spacing insensitive", func(t *testing.T) {
		other, err := promotion.NewRequest("  cotton   KURTA", "ethnic wear", &samePrice)
		require.NoError(t, err)
		assert.Equal(t, base.CacheKey(), other.CacheKey())
		assert.Equal(t, "cotton-kurta:ethnic-wear:499.50", base.CacheKey())
	})

	t.Run("price is part of the key", func(t *testing.T) {
		other, err := promotion.NewRequest("Cotton Kurta", "Ethnic Wear", &otherPrice)
		require.NoError(t, err)
		assert.NotEqual(t, base.CacheKey(), other.CacheKey())
	})

	t.Run("colons in names cannot shift key parts", func(t *testing.T) {
		a, err := promotion.NewRequest("Kurta:Set", "Ethnic", &price)
		require.NoError(t, err)
		b, err := promotion.NewRequest("Kurta", "Set:Ethnic", &price)
		require.NoError(t, err)
		assert.NotEqual(t, a.CacheKey(), b.CacheKey())
		assert.Equal(t, "kurta%3Aset:ethnic:499.50", a.CacheKey())
	})

	t.Run("product key prefixes the cache key", func(t *testing.T) {
		assert.Contains(t, base.CacheKey(), promotion.ProductKey("COTTON kurta")+":")
	})
}
