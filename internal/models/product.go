package models

// Product represents a product in the storefront catalog. Products are
// immutable snapshots received from the backend; nothing here mutates them.
type Product struct {
	ID            string   `json:"id"`
	MainCategory  string   `json:"main_category"`
	SubCategory   string   `json:"sub_category"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Rating        float64  `json:"rating"`
	Stock         int      `json:"stock"`
	Images        []string `json:"images"`
}

// InStock returns true if the product has remaining stock.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// OnSale returns true if the product has a marked-down price.
func (p *Product) OnSale() bool {
	return p.OriginalPrice > p.Price && p.Price > 0
}

// DiscountPercent returns the discount relative to the original price,
// rounded down to a whole percentage. Zero when the product is not on sale.
func (p *Product) DiscountPercent() int {
	if !p.OnSale() {
		return 0
	}
	return int((p.OriginalPrice - p.Price) / p.OriginalPrice * 100)
}

// MainImage returns the first product image, or empty string if none exist.
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
