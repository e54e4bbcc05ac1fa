package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"storefront-dashboard/internal/analytics"
	"storefront-dashboard/internal/models"
)

// ErrProductNotFound is returned when a product id is not in the snapshot.
var ErrProductNotFound = errors.New("product not found")

// CatalogService provides the storefront's browse, filter and search
// behavior over the product snapshot.
type CatalogService struct {
	snapshots SnapshotProvider
}

// NewCatalogService creates a new catalog service
func NewCatalogService(snapshots SnapshotProvider) *CatalogService {
	return &CatalogService{
		snapshots: snapshots,
	}
}

// ProductFilters represents filters for browsing the catalog
type ProductFilters struct {
	Query       string  `json:"query"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	PriceMin    float64 `json:"price_min"`
	PriceMax    float64 `json:"price_max"`
	MinRating   float64 `json:"min_rating"`
	InStockOnly bool    `json:"in_stock_only"`
	SortBy      string  `json:"sort_by"`    // price, rating, discount, relevance
	SortOrder   string  `json:"sort_order"` // asc, desc
	Page        int     `json:"page"`
	PerPage     int     `json:"per_page"`
}

// ProductListResult represents the result of a catalog listing
type ProductListResult struct {
	Products      []models.Product           `json:"products"`
	TotalCount    int                        `json:"total_count"`
	FilteredCount int                        `json:"filtered_count"`
	Categories    []models.Category          `json:"categories"`
	Facets        []analytics.CategoryCount  `json:"facets"`
	Page          int                        `json:"page"`
	PerPage       int                        `json:"per_page"`
}

// ListProducts filters, sorts and paginates the product snapshot.
func (s *CatalogService) ListProducts(ctx context.Context, filters ProductFilters, refresh bool) (*ProductListResult, error) {
	snap, err := s.snapshots.Snapshot(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	filtered := s.applyFilters(snap.Products, filters)
	sorted := s.applySorting(filtered, filters)
	page, perPage := normalizePagination(filters.Page, filters.PerPage)

	result := &ProductListResult{
		Products:      paginate(sorted, page, perPage),
		TotalCount:    len(snap.Products),
		FilteredCount: len(filtered),
		Categories:    models.Taxonomy(),
		Facets: analytics.CountByCategory(filtered, func(p models.Product) string {
			return p.MainCategory
		}, models.Taxonomy()),
		Page:    page,
		PerPage: perPage,
	}

	return result, nil
}

// GetProduct looks up a single product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id string, refresh bool) (models.Product, error) {
	snap, err := s.snapshots.Snapshot(ctx, refresh)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	index := analytics.BuildProductIndex(snap.Products)
	product, ok := index[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}

// applyFilters applies every active filter predicate over the snapshot
func (s *CatalogService) applyFilters(products []models.Product, filters ProductFilters) []models.Product {
	var filtered []models.Product

	for _, product := range products {
		if filters.Category != "" && product.MainCategory != filters.Category {
			continue
		}

		if filters.SubCategory != "" && product.SubCategory != filters.SubCategory {
			continue
		}

		if filters.PriceMin > 0 && product.Price < filters.PriceMin {
			continue
		}
		if filters.PriceMax > 0 && product.Price > filters.PriceMax {
			continue
		}

		if filters.MinRating > 0 && product.Rating < filters.MinRating {
			continue
		}

		if filters.InStockOnly && !product.InStock() {
			continue
		}

		if filters.Query != "" && s.calculateRelevance(product, filters.Query) == 0 {
			continue
		}

		filtered = append(filtered, product)
	}

	return filtered
}

// applySorting sorts products based on the specified criteria
func (s *CatalogService) applySorting(products []models.Product, filters ProductFilters) []models.Product {
	if len(products) == 0 {
		return products
	}

	// Create a copy to avoid modifying the original slice
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch filters.SortBy {
	case "price":
		sort.Slice(sorted, func(i, j int) bool {
			if filters.SortOrder == "desc" {
				return sorted[i].Price > sorted[j].Price
			}
			return sorted[i].Price < sorted[j].Price
		})
	case "rating":
		sort.Slice(sorted, func(i, j int) bool {
			if filters.SortOrder == "asc" {
				return sorted[i].Rating < sorted[j].Rating
			}
			return sorted[i].Rating > sorted[j].Rating
		})
	case "discount":
		sort.Slice(sorted, func(i, j int) bool {
			if filters.SortOrder == "asc" {
				return sorted[i].DiscountPercent() < sorted[j].DiscountPercent()
			}
			return sorted[i].DiscountPercent() > sorted[j].DiscountPercent()
		})
	case "relevance":
		if filters.Query != "" {
			sort.SliceStable(sorted, func(i, j int) bool {
				return s.calculateRelevance(sorted[i], filters.Query) > s.calculateRelevance(sorted[j], filters.Query)
			})
		}
	default:
		// Default sort keeps catalog order (backend order) stable
	}

	return sorted
}

// calculateRelevance scores how well a product matches the search query
func (s *CatalogService) calculateRelevance(product models.Product, query string) float64 {
	if query == "" {
		return 0
	}

	query = strings.ToLower(query)
	relevance := 0.0

	// Name match (highest weight)
	if strings.Contains(strings.ToLower(product.Name), query) {
		relevance += 10.0
	}

	// Subcategory match (medium weight)
	if strings.Contains(strings.ToLower(product.SubCategory), query) {
		relevance += 5.0
	}

	// Main category match (low weight)
	if strings.Contains(strings.ToLower(product.MainCategory), query) {
		relevance += 2.0
	}

	return relevance
}

func normalizePagination(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 12
	}
	return page, perPage
}

func paginate(products []models.Product, page, perPage int) []models.Product {
	start := (page - 1) * perPage
	end := start + perPage

	if start >= len(products) {
		return []models.Product{}
	}
	if end > len(products) {
		end = len(products)
	}

	return products[start:end]
}
