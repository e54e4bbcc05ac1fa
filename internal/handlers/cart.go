package handlers

import (
	"fmt"
	"net/http"

	"storefront-dashboard/internal/services"
)

// CartHandler handles cart and wishlist summary HTTP requests
type CartHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewCartHandler creates a new cart handler
func NewCartHandler(dashboardService services.DashboardServiceInterface) *CartHandler {
	return &CartHandler{
		dashboardService: dashboardService,
	}
}

// CartSummary handles GET /api/cart/summary
func (h *CartHandler) CartSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.CartSummary(r.Context(), wantsRefresh(r))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get cart summary: %v", err), http.StatusBadGateway)
		return
	}

	if err := writeJSON(w, summary); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write JSON response: %v", err), http.StatusInternalServerError)
		return
	}
}

// WishlistSummary handles GET /api/wishlist/summary
func (h *CartHandler) WishlistSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.WishlistSummary(r.Context(), wantsRefresh(r))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get wishlist summary: %v", err), http.StatusBadGateway)
		return
	}

	if err := writeJSON(w, summary); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write JSON response: %v", err), http.StatusInternalServerError)
		return
	}
}
