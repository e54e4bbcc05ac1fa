package services

import (
	"context"
	"fmt"
	"log"

	"storefront-dashboard/internal/analytics"
	"storefront-dashboard/internal/models"
	"storefront-dashboard/internal/types"
)

// Placeholder shown for cart/wishlist rows whose product reference could not
// be resolved. The backend does not guarantee foreign-key population, so a
// missing product is a renderable state, not an error.
const unresolvedProductName = "Unavailable product"

// DashboardService derives the admin dashboard and storefront summaries from
// backend snapshots. All derivation is pure; the only side effects live in
// the fetch and cache layers.
type DashboardService struct {
	backend BackendService
	cache   *SnapshotCache
}

// NewDashboardService creates a new dashboard service. cache may be nil, in
// which case every request fetches a fresh snapshot.
func NewDashboardService(backend BackendService, cache *SnapshotCache) *DashboardService {
	return &DashboardService{
		backend: backend,
		cache:   cache,
	}
}

// Snapshot returns the current snapshot, preferring the cache unless the
// caller asked for an explicit refresh. Cache failures degrade to a direct
// fetch rather than failing the request.
func (s *DashboardService) Snapshot(ctx context.Context, refresh bool) (*analytics.Snapshot, error) {
	if s.cache != nil && !refresh {
		snap, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("Snapshot cache read failed: %v", err)
		} else if snap != nil {
			return snap, nil
		}
	}

	snap, err := s.backend.FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snap); err != nil {
			log.Printf("Snapshot cache write failed: %v", err)
		}
	}

	return snap, nil
}

// AdminDashboard returns the full chart-ready dashboard for the admin panel.
func (s *DashboardService) AdminDashboard(ctx context.Context, refresh bool) (*analytics.Dashboard, error) {
	snap, err := s.Snapshot(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return analytics.BuildDashboard(*snap), nil
}

// RevenueSeries returns the daily revenue chart. With an empty status every
// payment in the snapshot contributes, matching what the chart has always
// shown; passing a status narrows the series to that subset.
func (s *DashboardService) RevenueSeries(ctx context.Context, status models.PaymentStatus, refresh bool) ([]analytics.DailyRevenue, error) {
	snap, err := s.Snapshot(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to build revenue series: %w", err)
	}

	payments := snap.Payments
	if status != "" {
		payments = analytics.FilterByStatus(payments, status)
	}
	return analytics.RevenueByDay(payments), nil
}

// CartSummary resolves every cart item against the product index and returns
// the renderable cart view. Unresolvable references become placeholder rows.
func (s *DashboardService) CartSummary(ctx context.Context, refresh bool) (*types.CartSummaryData, error) {
	snap, err := s.Snapshot(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to build cart summary: %w", err)
	}

	index := analytics.BuildProductIndex(snap.Products)
	summary := &types.CartSummaryData{
		Lines:           make([]types.CartLine, 0, len(snap.CartItems)),
		ValueByCategory: analytics.CartValueByCategory(snap.CartItems, index),
	}

	for _, item := range snap.CartItems {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		product, ok := analytics.ResolveProduct(item.Product, index)
		if !ok {
			summary.MissingProducts++
			summary.Lines = append(summary.Lines, types.CartLine{
				ItemID:    item.ID,
				ProductID: item.Product.ProductID(),
				Name:      unresolvedProductName,
				Quantity:  qty,
			})
			continue
		}

		subtotal := item.Subtotal(product)
		summary.TotalAmount += subtotal
		summary.TotalItems += qty
		summary.Lines = append(summary.Lines, types.CartLine{
			ItemID:    item.ID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  qty,
			Subtotal:  subtotal,
			Image:     product.MainImage(),
			Resolved:  true,
		})
	}

	return summary, nil
}

// WishlistSummary resolves wishlist items the same way CartSummary does.
func (s *DashboardService) WishlistSummary(ctx context.Context, refresh bool) (*types.WishlistSummaryData, error) {
	snap, err := s.Snapshot(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to build wishlist summary: %w", err)
	}

	index := analytics.BuildProductIndex(snap.Products)
	summary := &types.WishlistSummaryData{
		Lines: make([]types.WishlistLine, 0, len(snap.WishlistItems)),
	}

	for _, item := range snap.WishlistItems {
		product, ok := analytics.ResolveProduct(item.Product, index)
		if !ok {
			summary.MissingProducts++
			summary.Lines = append(summary.Lines, types.WishlistLine{
				ItemID:    item.ID,
				ProductID: item.Product.ProductID(),
				Name:      unresolvedProductName,
			})
			continue
		}

		summary.Lines = append(summary.Lines, types.WishlistLine{
			ItemID:    item.ID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.MainImage(),
			InStock:   product.InStock(),
			Resolved:  true,
		})
	}

	return summary, nil
}
