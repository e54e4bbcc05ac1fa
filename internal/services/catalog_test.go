package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-dashboard/internal/analytics"
	"storefront-dashboard/internal/models"
)

// stubSnapshots satisfies SnapshotProvider with a fixed snapshot.
type stubSnapshots struct {
	snapshot *analytics.Snapshot
	err      error
}

func (s *stubSnapshots) Snapshot(ctx context.Context, refresh bool) (*analytics.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func catalogProducts() []models.Product {
	return []models.Product{
		{ID: "p1", MainCategory: "books", SubCategory: "fiction", Name: "The Long Harbor", Price: 18, Rating: 4.5, Stock: 4},
		{ID: "p2", MainCategory: "men-wear", SubCategory: "shirts", Name: "Oxford Shirt", Price: 45, OriginalPrice: 60, Rating: 4.0, Stock: 2},
		{ID: "p3", MainCategory: "men-wear", SubCategory: "trousers", Name: "Chino Trousers", Price: 55, Rating: 3.5, Stock: 0},
		{ID: "p4", MainCategory: "books", SubCategory: "history", Name: "Harbor Cities", Price: 32, Rating: 4.8, Stock: 1},
	}
}

func newCatalogFixture() *CatalogService {
	return NewCatalogService(&stubSnapshots{
		snapshot: &analytics.Snapshot{Products: catalogProducts()},
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	service := newCatalogFixture()

	result, err := service.ListProducts(context.Background(), ProductFilters{}, false)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalCount)
	assert.Equal(t, 4, result.FilteredCount)
	assert.Len(t, result.Products, 4)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 12, result.PerPage)
	assert.Len(t, result.Categories, 7)

	// Facets cover the whole taxonomy, including empty categories.
	require.Len(t, result.Facets, 7)
	counts := map[string]int{}
	for _, facet := range result.Facets {
		counts[facet.Slug] = facet.Count
	}
	assert.Equal(t, 2, counts["books"])
	assert.Equal(t, 2, counts["men-wear"])
	assert.Equal(t, 0, counts["luxury-shoes"])
}

func TestCatalogService_Filters(t *testing.T) {
	service := newCatalogFixture()

	tests := []struct {
		name    string
		filters ProductFilters
		wantIDs []string
	}{
		{
			name:    "by category",
			filters: ProductFilters{Category: "men-wear"},
			wantIDs: []string{"p2", "p3"},
		},
		{
			name:    "by price range",
			filters: ProductFilters{PriceMin: 30, PriceMax: 50},
			wantIDs: []string{"p2", "p4"},
		},
		{
			name:    "by minimum rating",
			filters: ProductFilters{MinRating: 4.5},
			wantIDs: []string{"p1", "p4"},
		},
		{
			name:    "in stock only",
			filters: ProductFilters{Category: "men-wear", InStockOnly: true},
			wantIDs: []string{"p2"},
		},
		{
			name:    "by search query",
			filters: ProductFilters{Query: "harbor"},
			wantIDs: []string{"p1", "p4"},
		},
		{
			name:    "no matches",
			filters: ProductFilters{Query: "submarine"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.ListProducts(context.Background(), tt.filters, false)
			require.NoError(t, err)

			ids := make([]string, 0, len(result.Products))
			for _, p := range result.Products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogService_Sorting(t *testing.T) {
	service := newCatalogFixture()

	t.Run("price ascending", func(t *testing.T) {
		result, err := service.ListProducts(context.Background(), ProductFilters{SortBy: "price", SortOrder: "asc"}, false)
		require.NoError(t, err)
		require.Len(t, result.Products, 4)
		assert.Equal(t, "p1", result.Products[0].ID)
		assert.Equal(t, "p3", result.Products[3].ID)
	})

	t.Run("rating defaults to descending", func(t *testing.T) {
		result, err := service.ListProducts(context.Background(), ProductFilters{SortBy: "rating"}, false)
		require.NoError(t, err)
		require.Len(t, result.Products, 4)
		assert.Equal(t, "p4", result.Products[0].ID)
		assert.Equal(t, "p3", result.Products[3].ID)
	})

	t.Run("discount puts the only sale item first", func(t *testing.T) {
		result, err := service.ListProducts(context.Background(), ProductFilters{SortBy: "discount"}, false)
		require.NoError(t, err)
		require.Len(t, result.Products, 4)
		assert.Equal(t, "p2", result.Products[0].ID)
	})

	t.Run("relevance ranks name matches above category matches", func(t *testing.T) {
		result, err := service.ListProducts(context.Background(), ProductFilters{Query: "shirt", SortBy: "relevance"}, false)
		require.NoError(t, err)
		require.Len(t, result.Products, 1)
		assert.Equal(t, "p2", result.Products[0].ID)
	})
}

func TestCatalogService_Pagination(t *testing.T) {
	service := newCatalogFixture()

	result, err := service.ListProducts(context.Background(), ProductFilters{Page: 2, PerPage: 3}, false)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 3, result.PerPage)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "p4", result.Products[0].ID)
	assert.Equal(t, 4, result.FilteredCount)

	// A page past the end returns an empty slice, not an error.
	result, err = service.ListProducts(context.Background(), ProductFilters{Page: 9, PerPage: 3}, false)
	require.NoError(t, err)
	assert.Empty(t, result.Products)
}

func TestCatalogService_GetProduct(t *testing.T) {
	service := newCatalogFixture()

	product, err := service.GetProduct(context.Background(), "p2", false)
	require.NoError(t, err)
	assert.Equal(t, "Oxford Shirt", product.Name)

	_, err = service.GetProduct(context.Background(), "nope", false)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_SnapshotError(t *testing.T) {
	service := NewCatalogService(&stubSnapshots{err: errors.New("backend down")})

	_, err := service.ListProducts(context.Background(), ProductFilters{}, false)
	require.Error(t, err)

	_, err = service.GetProduct(context.Background(), "p1", false)
	require.Error(t, err)
}
