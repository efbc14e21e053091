//go:build unit || e2e

package builder

import (
	"fmt"

	"pricing-panel/internal/domain/catalog"
)

func NewProduct(uid int64) catalog.Product {
	return catalog.Product{
		UID:          uid,
		Name:         fmt.Sprintf("Product %d", uid),
		Slug:         fmt.Sprintf("product-%d", uid),
		Brand:        &catalog.Brand{Name: "Acme"},
		CategorySlug: "apparel",
		Media:        []catalog.Media{{Type: "image", URL: fmt.Sprintf("https://cdn.example.com/%d.jpg", uid)}},
		Price: &catalog.Price{
			Effective: &catalog.PriceRange{CurrencySymbol: "₹", Min: 499, Max: 599},
		},
	}
}

// NewPages splits total products into pages of size; the last page has has_next=false.
func NewPages(total, size int) []*catalog.Page {
	var pages []*catalog.Page
	uid := int64(1)
	for remaining := total; ; {
		n := min(size, remaining)
		page := &catalog.Page{Page: catalog.PageInfo{Current: len(pages) + 1, Size: size, ItemTotal: total}}
		for range n {
			page.Items = append(page.Items, NewProduct(uid))
			uid++
		}
		remaining -= n
		page.Page.HasNext = remaining > 0
		pages = append(pages, page)
		if remaining <= 0 {
			return pages
		}
	}
}
