package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront-dashboard/internal/models"
	"storefront-dashboard/internal/services"
)

// CatalogHandler handles storefront catalog HTTP requests
type CatalogHandler struct {
	catalogService services.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filters := parseProductFilters(r)

	result, err := h.catalogService.ListProducts(r.Context(), filters, wantsRefresh(r))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list products: %v", err), http.StatusBadGateway)
		return
	}

	if err := writeJSON(w, result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write JSON response: %v", err), http.StatusInternalServerError)
		return
	}
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id, wantsRefresh(r))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to get product: %v", err), http.StatusBadGateway)
		return
	}

	if err := writeJSON(w, product); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write JSON response: %v", err), http.StatusInternalServerError)
		return
	}
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, models.Taxonomy()); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write JSON response: %v", err), http.StatusInternalServerError)
		return
	}
}

// parseProductFilters extracts catalog filters from the query string
func parseProductFilters(r *http.Request) services.ProductFilters {
	q := r.URL.Query()

	return services.ProductFilters{
		Query:       q.Get("q"),
		Category:    q.Get("category"),
		SubCategory: q.Get("sub_category"),
		PriceMin:    parseFloat(q.Get("price_min")),
		PriceMax:    parseFloat(q.Get("price_max")),
		MinRating:   parseFloat(q.Get("min_rating")),
		InStockOnly: q.Get("in_stock") == "true",
		SortBy:      q.Get("sort_by"),
		SortOrder:   q.Get("sort_order"),
		Page:        parseInt(q.Get("page")),
		PerPage:     parseInt(q.Get("per_page")),
	}
}

func parseFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(value string) int {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return i
}
