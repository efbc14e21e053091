package platform

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pricing-panel/internal/domain/catalog"
	"pricing-panel/internal/infra"
	"pricing-panel/internal/infra/upstream"
	"pricing-panel/internal/pkg/config"
)

const catalogBasePath = "/service/platform/catalog/v1.0/company/"

// CatalogClient reads product listings from the platform catalog API.
type CatalogClient struct {
	http    *upstream.Client
	baseURL string
	token   string
	logger  *slog.Logger
}

func NewCatalogClient(cfg config.PlatformConfig, httpClient *http.Client, logger *slog.Logger) *CatalogClient {
	return &CatalogClient{
		http:    upstream.NewClient(httpClient, cfg.Timeout),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
		logger:  logger,
	}
}

// FetchPage requests one page for scope. A missing items field decodes to an empty page.
func (c *CatalogClient) FetchPage(ctx context.Context, scope catalog.Scope, pageNo, pageSize int) (*catalog.Page, error) {
	endpoint := c.pageURL(scope, pageNo, pageSize)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.token)
	header.Set("x-company-id", scope.CompanyID)

	resp, err := c.http.DoJSON(ctx, http.MethodGet, endpoint, header, nil)
	if err != nil {
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstreamFailure, "catalog page request failed", err)
	}

	var page catalog.Page
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, infra.WrapRepoErr(c.logger, infra.KindContractViolation, "catalog page is not valid JSON", err)
	}
	return &page, nil
}

func (c *CatalogClient) pageURL(scope catalog.Scope, pageNo, pageSize int) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(catalogBasePath)
	b.WriteString(url.PathEscape(scope.CompanyID))
	if scope.IsApplication() {
		b.WriteString("/application/")
		b.WriteString(url.PathEscape(scope.ApplicationID))
		b.WriteString("/raw-products/")
	} else {
		b.WriteString("/products/")
	}

	q := url.Values{}
	q.Set("page_no", strconv.Itoa(pageNo))
	q.Set("page_size", strconv.Itoa(pageSize))
	b.WriteString("?")
	b.WriteString(q.Encode())
	return b.String()
}
