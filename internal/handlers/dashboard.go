package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-dashboard/internal/models"
	"storefront-dashboard/internal/services"
)

// DashboardHandler handles admin analytics HTTP requests
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// AdminDashboard handles GET /admin/dashboard
func (h *DashboardHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardService.AdminDashboard(r.Context(), wantsRefresh(r))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get dashboard data: %v", err), http.StatusBadGateway)
		return
	}

	if err := writeJSON(w, dashboard); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write JSON response: %v", err), http.StatusInternalServerError)
		return
	}
}

// Revenue handles GET /admin/analytics/revenue
func (h *DashboardHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	status := models.PaymentStatus(r.URL.Query().Get("status"))
	switch status {
	case "", models.PaymentPending, models.PaymentCompleted, models.PaymentFailed:
	default:
		http.Error(w, "Invalid payment status", http.StatusBadRequest)
		return
	}

	series, err := h.dashboardService.RevenueSeries(r.Context(), status, wantsRefresh(r))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get revenue series: %v", err), http.StatusBadGateway)
		return
	}

	if err := writeJSON(w, series); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write JSON response: %v", err), http.StatusInternalServerError)
		return
	}
}

// Categories handles GET /admin/analytics/categories
func (h *DashboardHandler) Categories(w http.ResponseWriter, r *http.Request) {
	collection := r.URL.Query().Get("collection")
	if collection == "" {
		collection = "products"
	}

	dashboard, err := h.dashboardService.AdminDashboard(r.Context(), wantsRefresh(r))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get category counts: %v", err), http.StatusBadGateway)
		return
	}

	switch collection {
	case "products":
		err = writeJSON(w, dashboard.ProductsByCategory)
	case "cart":
		err = writeJSON(w, dashboard.CartByCategory)
	case "wishlist":
		err = writeJSON(w, dashboard.WishlistByCategory)
	default:
		http.Error(w, "Invalid collection", http.StatusBadRequest)
		return
	}

	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to write JSON response: %v", err), http.StatusInternalServerError)
		return
	}
}

// Ratings handles GET /admin/analytics/ratings
func (h *DashboardHandler) Ratings(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardService.AdminDashboard(r.Context(), wantsRefresh(r))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get rating histogram: %v", err), http.StatusBadGateway)
		return
	}

	if err := writeJSON(w, dashboard.RatingHistogram); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write JSON response: %v", err), http.StatusInternalServerError)
		return
	}
}

// wantsRefresh reports whether the request asked to bypass the snapshot cache
func wantsRefresh(r *http.Request) bool {
	return r.URL.Query().Get("refresh") == "true"
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}
