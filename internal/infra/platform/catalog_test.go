//go:build unit

package platform_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pricing-panel/internal/domain/catalog"
	"pricing-panel/internal/infra"
	"pricing-panel/internal/infra/platform"
	"pricing-panel/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogClient(srv *httptest.Server) *platform.CatalogClient {
	cfg := config.PlatformConfig{BaseURL: srv.URL + "/", AccessToken: "platform-token", Timeout: 2 * time.Second}
	return platform.NewCatalogClient(cfg, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCatalogClient_FetchPage(t *testing.T) {
	ctx := context.Background()

	t.Run("company scope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/service/platform/catalog/v1.0/company/1001/products/", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page_no"))
			assert.Equal(t, "50", r.URL.Query().Get("page_size"))
			assert.Equal(t, "Bearer platform-token", r.Header.Get("Authorization"))
			assert.Equal(t, "1001", r.Header.Get("x-company-id"))
			_, _ = w.Write([]byte(`{"items":[{"uid":7,"name":"Kurta","slug":"kurta"}],"page":{"current":2,"size":50,"has_next":true}}`))
		}))
		defer srv.Close()

		scope, err := catalog.NewCompanyScope("1001")
		require.NoError(t, err)
		page, err := newCatalogClient(srv).FetchPage(ctx, scope, 2, 50)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, int64(7), page.Items[0].UID)
		assert.True(t, page.Page.HasNext)
	})

	t.Run("application scope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/service/platform/catalog/v1.0/company/1001/application/app-9/raw-products/", r.URL.Path)
			_, _ = w.Write([]byte(`{"page":{"current":1,"has_next":false}}`))
		}))
		defer srv.Close()

		scope, err := catalog.NewApplicationScope("1001", "app-9")
		require.NoError(t, err)
		page, err := newCatalogClient(srv).FetchPage(ctx, scope, 1, 100)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.False(t, page.Page.HasNext)
	})

	testCases := []struct {
		name   string
		status int
		body   string
		kind   infra.RepositoryErrorKind
	}{
		{name: "upstream error status", status: http.StatusBadGateway, body: `{"message":"bad gateway"}`, kind: infra.KindUpstreamFailure},
		{name: "not JSON", status: http.StatusOK, body: `<html>`, kind: infra.KindContractViolation},
		{name: "items of wrong type", status: http.StatusOK, body: `{"items":{}}`, kind: infra.KindContractViolation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			scope, err := catalog.NewCompanyScope("1001")
			require.NoError(t, err)
			page, err := newCatalogClient(srv).FetchPage(ctx, scope, 1, 100)
			assert.Nil(t, page)
			assert.True(t, infra.IsKind(err, tc.kind), "expected kind %s, got %v", tc.kind, err)
		})
	}
}
