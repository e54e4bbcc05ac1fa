package analytics

import "storefront-dashboard/internal/models"

// ResolveProduct resolves a possibly-unpopulated product reference against
// the product index. A populated reference is used directly without a
// lookup; a bare id goes through the index; a missing reference resolves to
// nothing. Callers must treat a false result as referential data missing and
// render a placeholder — backend population of foreign keys is not
// guaranteed.
func ResolveProduct(ref models.ProductRef, index map[string]models.Product) (models.Product, bool) {
	if p, ok := ref.Populated(); ok {
		return p, true
	}
	if id := ref.ProductID(); id != "" {
		p, ok := index[id]
		return p, ok
	}
	return models.Product{}, false
}
