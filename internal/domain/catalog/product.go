package catalog

// Product mirrors the catalog API item shape the panel renders.
// Items are relayed as received and never modified locally.
type Product struct {
	UID          int64   `json:"uid"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	ItemCode     string  `json:"item_code,omitempty"`
	Brand        *Brand  `json:"brand,omitempty"`
	CategorySlug string  `json:"category_slug,omitempty"`
	Media        []Media `json:"media,omitempty"`
	Price        *Price  `json:"price,omitempty"`
}

type Brand struct {
	UID  int64  `json:"uid,omitempty"`
	Name string `json:"name"`
}

type Media struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type Price struct {
	Effective *PriceRange `json:"effective,omitempty"`
	Marked    *PriceRange `json:"marked,omitempty"`
}

type PriceRange struct {
	CurrencyCode   string  `json:"currency_code,omitempty"`
	CurrencySymbol string  `json:"currency_symbol,omitempty"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
}

// Page is one response of the paginated listing endpoints.
type Page struct {
	Items []Product `json:"items"`
	Page  PageInfo  `json:"page"`
}

type PageInfo struct {
	Type      string `json:"type,omitempty"`
	Current   int    `json:"current"`
	Size      int    `json:"size"`
	ItemTotal int    `json:"item_total"`
	HasNext   bool   `json:"has_next"`
}
