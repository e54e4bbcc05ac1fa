package types

import "storefront-dashboard/internal/analytics"

// CartLine is one resolved row of the cart view. Unresolvable product
// references keep the row (Resolved=false) so the storefront can render a
// placeholder instead of dropping the item.
type CartLine struct {
	ItemID    string  `json:"item_id"`
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	Image     string  `json:"image,omitempty"`
	Resolved  bool    `json:"resolved"`
}

// CartSummaryData represents data for the cart summary view
type CartSummaryData struct {
	Lines           []CartLine                `json:"lines"`
	TotalAmount     float64                   `json:"total_amount"`
	TotalItems      int                       `json:"total_items"`
	MissingProducts int                       `json:"missing_products"`
	ValueByCategory []analytics.CategoryValue `json:"value_by_category"`
}

// WishlistLine is one resolved row of the wishlist view.
type WishlistLine struct {
	ItemID    string  `json:"item_id"`
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	InStock   bool    `json:"in_stock"`
	Resolved  bool    `json:"resolved"`
}

// WishlistSummaryData represents data for the wishlist summary view
type WishlistSummaryData struct {
	Lines           []WishlistLine `json:"lines"`
	MissingProducts int            `json:"missing_products"`
}
