package analytics

import "storefront-dashboard/internal/models"

// CategoryCount is one chart row: how many items fall into a taxonomy entry.
type CategoryCount struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// CategoryValue is one pie-chart slice: the monetary value held in a
// taxonomy entry.
type CategoryValue struct {
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Value float64 `json:"value"`
}

// CountByCategory counts items per taxonomy entry. The result always has one
// row per taxonomy entry, in taxonomy order, so chart colors and legends stay
// stable across renders. Items whose resolved slug matches no taxonomy entry
// are silently excluded.
func CountByCategory[T any](items []T, categoryOf func(T) string, taxonomy []models.Category) []CategoryCount {
	counts := make(map[string]int, len(taxonomy))
	for _, item := range items {
		counts[categoryOf(item)]++
	}

	rows := make([]CategoryCount, 0, len(taxonomy))
	for _, c := range taxonomy {
		rows = append(rows, CategoryCount{
			Name:  c.Name,
			Slug:  c.Slug,
			Count: counts[c.Slug],
		})
	}
	return rows
}

// CartValueByCategory sums cart line totals per taxonomy entry. Unresolvable
// items contribute nothing. Zero-value slices are dropped, since the cart pie
// chart renders only categories holding value.
func CartValueByCategory(items []models.CartItem, index map[string]models.Product) []CategoryValue {
	values := make(map[string]float64, len(models.Taxonomy()))
	for _, item := range items {
		product, ok := ResolveProduct(item.Product, index)
		if !ok {
			continue
		}
		values[product.MainCategory] += item.Subtotal(product)
	}

	var slices []CategoryValue
	for _, c := range models.Taxonomy() {
		if values[c.Slug] == 0 {
			continue
		}
		slices = append(slices, CategoryValue{
			Name:  c.Name,
			Slug:  c.Slug,
			Value: values[c.Slug],
		})
	}
	return slices
}
