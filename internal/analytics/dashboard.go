package analytics

import (
	"sort"

	"storefront-dashboard/internal/models"
)

// Dashboard is the full chart-ready view of one snapshot, as the admin
// dashboard displays it.
type Dashboard struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	TotalProducts   int     `json:"total_products"`
	PendingPayments int     `json:"pending_payments"`
	FailedPayments  int     `json:"failed_payments"`

	RevenueByDay        []DailyRevenue   `json:"revenue_by_day"`
	ProductsByCategory  []CategoryCount  `json:"products_by_category"`
	CartByCategory      []CategoryCount  `json:"cart_by_category"`
	WishlistByCategory  []CategoryCount  `json:"wishlist_by_category"`
	CartValueByCategory []CategoryValue  `json:"cart_value_by_category"`
	RatingHistogram     []RatingBucket   `json:"rating_histogram"`
	RecentPayments      []models.Payment `json:"recent_payments"`
}

const recentPaymentsLimit = 5

// BuildDashboard derives the dashboard from one immutable snapshot. Every
// derivation is a pure function of the snapshot, so calling this twice on
// the same input yields identical output. Headline figures count completed
// payments only; the revenue series deliberately includes every status the
// snapshot carries (the chart has always shown gross gateway activity).
func BuildDashboard(snap Snapshot) *Dashboard {
	index := BuildProductIndex(snap.Products)
	taxonomy := models.Taxonomy()
	summary := Summarize(snap.Payments)

	categoryOfRef := func(ref models.ProductRef) string {
		p, ok := ResolveProduct(ref, index)
		if !ok {
			return ""
		}
		return p.MainCategory
	}

	dashboard := &Dashboard{
		TotalRevenue:  summary.TotalRevenue,
		TotalOrders:   summary.TotalOrders,
		TotalProducts: len(snap.Products),

		RevenueByDay: RevenueByDay(snap.Payments),
		ProductsByCategory: CountByCategory(snap.Products, func(p models.Product) string {
			return p.MainCategory
		}, taxonomy),
		CartByCategory: CountByCategory(snap.CartItems, func(item models.CartItem) string {
			return categoryOfRef(item.Product)
		}, taxonomy),
		WishlistByCategory: CountByCategory(snap.WishlistItems, func(item models.WishlistItem) string {
			return categoryOfRef(item.Product)
		}, taxonomy),
		CartValueByCategory: CartValueByCategory(snap.CartItems, index),
		RatingHistogram:     RatingHistogram(snap.Reviews),
		RecentPayments:      recentPayments(snap.Payments, recentPaymentsLimit),
	}

	for _, p := range snap.Payments {
		switch {
		case p.IsPending():
			dashboard.PendingPayments++
		case p.IsFailed():
			dashboard.FailedPayments++
		}
	}

	return dashboard
}

// recentPayments returns the newest payments, most recent first.
func recentPayments(payments []models.Payment, limit int) []models.Payment {
	sorted := make([]models.Payment, len(payments))
	copy(sorted, payments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
