package response

import "pricing-panel/internal/domain/catalog"

type ProductListResponse struct {
	Items []catalog.Product `json:"items"`
}

func FromProducts(items []catalog.Product) *ProductListResponse {
	if items == nil {
		items = []catalog.Product{}
	}
	return &ProductListResponse{Items: items}
}

// SuccessResponse is the body of endpoints that only acknowledge.
type SuccessResponse struct {
	Success bool `json:"success"`
}
