package analytics

import (
	"sort"

	"storefront-dashboard/internal/models"
)

// DailyRevenue is one point of the revenue-over-time chart.
type DailyRevenue struct {
	Date        string  `json:"date"`
	TotalAmount float64 `json:"total_amount"`
	Orders      int     `json:"orders"`
}

// Summary holds the headline figures of the admin dashboard.
type Summary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalOrders  int     `json:"total_orders"`
}

// RevenueByDay groups payments by calendar day (UTC), summing amounts per
// day. Rows come back in chronological order, one per distinct day; days
// with no payments are simply absent, not zero-filled. No status filtering
// happens here — the caller decides which payments belong in the series.
func RevenueByDay(payments []models.Payment) []DailyRevenue {
	if len(payments) == 0 {
		return []DailyRevenue{}
	}

	// Sort a copy so the caller's snapshot is never reordered.
	sorted := make([]models.Payment, len(payments))
	copy(sorted, payments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var series []DailyRevenue
	for _, p := range sorted {
		date := p.CreatedAt.UTC().Format("2006-01-02")
		if n := len(series); n > 0 && series[n-1].Date == date {
			series[n-1].TotalAmount += p.TotalAmount
			series[n-1].Orders++
			continue
		}
		series = append(series, DailyRevenue{
			Date:        date,
			TotalAmount: p.TotalAmount,
			Orders:      1,
		})
	}
	return series
}

// Summarize computes total revenue and order count from completed payments
// only. Pending and failed payments never contribute to either figure.
func Summarize(payments []models.Payment) Summary {
	var summary Summary
	for _, p := range payments {
		if !p.IsCompleted() {
			continue
		}
		summary.TotalRevenue += p.TotalAmount
		summary.TotalOrders++
	}
	return summary
}

// FilterByStatus returns the payments matching the given status. Used by the
// revenue endpoint when the caller asks for a completed-only series.
func FilterByStatus(payments []models.Payment, status models.PaymentStatus) []models.Payment {
	filtered := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
