package services

import (
	"context"

	"storefront-dashboard/internal/analytics"
	"storefront-dashboard/internal/models"
	"storefront-dashboard/internal/types"
)

// BackendService fetches snapshot collections from the remote commerce
// backend. The backend owns all business logic; this side only reads.
type BackendService interface {
	FetchSnapshot(ctx context.Context) (*analytics.Snapshot, error)
}

// SnapshotProvider hands out the current snapshot, optionally bypassing any
// cache when the caller asked for an explicit refresh.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, refresh bool) (*analytics.Snapshot, error)
}

// DashboardServiceInterface defines dashboard aggregation operations
type DashboardServiceInterface interface {
	SnapshotProvider
	AdminDashboard(ctx context.Context, refresh bool) (*analytics.Dashboard, error)
	RevenueSeries(ctx context.Context, status models.PaymentStatus, refresh bool) ([]analytics.DailyRevenue, error)
	CartSummary(ctx context.Context, refresh bool) (*types.CartSummaryData, error)
	WishlistSummary(ctx context.Context, refresh bool) (*types.WishlistSummaryData, error)
}

// CatalogServiceInterface defines storefront catalog operations
type CatalogServiceInterface interface {
	ListProducts(ctx context.Context, filters ProductFilters, refresh bool) (*ProductListResult, error)
	GetProduct(ctx context.Context, id string, refresh bool) (models.Product, error)
}
