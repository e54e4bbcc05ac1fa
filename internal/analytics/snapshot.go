package analytics

import "storefront-dashboard/internal/models"

// Snapshot is an immutable point-in-time copy of the backend collections the
// dashboard aggregates over. A new snapshot fully replaces the old one on
// every load or refresh; nothing in this package mutates it.
type Snapshot struct {
	Products      []models.Product      `json:"products"`
	Reviews       []models.Review       `json:"reviews"`
	CartItems     []models.CartItem     `json:"cart_items"`
	WishlistItems []models.WishlistItem `json:"wishlist_items"`
	Payments      []models.Payment      `json:"payments"`
}

// BuildProductIndex builds a lookup from product id to product record.
// Duplicate ids degrade gracefully: the last occurrence wins.
func BuildProductIndex(products []models.Product) map[string]models.Product {
	index := make(map[string]models.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
