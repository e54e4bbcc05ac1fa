package models

import (
	"testing"
)

func TestPayment_StatusHelpers(t *testing.T) {
	tests := []struct {
		name          string
		status        PaymentStatus
		wantPending   bool
		wantCompleted bool
		wantFailed    bool
	}{
		{
			name:        "pending payment",
			status:      PaymentPending,
			wantPending: true,
		},
		{
			name:          "completed payment",
			status:        PaymentCompleted,
			wantCompleted: true,
		},
		{
			name:       "failed payment",
			status:     PaymentFailed,
			wantFailed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := Payment{Status: tt.status}
			if got := payment.IsPending(); got != tt.wantPending {
				t.Errorf("IsPending() = %v, want %v", got, tt.wantPending)
			}
			if got := payment.IsCompleted(); got != tt.wantCompleted {
				t.Errorf("IsCompleted() = %v, want %v", got, tt.wantCompleted)
			}
			if got := payment.IsFailed(); got != tt.wantFailed {
				t.Errorf("IsFailed() = %v, want %v", got, tt.wantFailed)
			}
		})
	}
}

func TestPayment_ItemCount(t *testing.T) {
	tests := []struct {
		name     string
		products []PaymentProduct
		want     int
	}{
		{
			name: "sums quantities",
			products: []PaymentProduct{
				{ProductID: "p1", Quantity: 2},
				{ProductID: "p2", Quantity: 3},
			},
			want: 5,
		},
		{
			name: "zero quantity counts as one",
			products: []PaymentProduct{
				{ProductID: "p1", Quantity: 0},
			},
			want: 1,
		},
		{
			name:     "no products",
			products: nil,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := Payment{Products: tt.products}
			if got := payment.ItemCount(); got != tt.want {
				t.Errorf("ItemCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPayment_GetStatusDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		status PaymentStatus
		want   string
	}{
		{
			name:   "pending",
			status: PaymentPending,
			want:   "Pending Payment",
		},
		{
			name:   "completed",
			status: PaymentCompleted,
			want:   "Completed",
		},
		{
			name:   "failed",
			status: PaymentFailed,
			want:   "Failed",
		},
		{
			name:   "unknown status falls through",
			status: PaymentStatus("refunded"),
			want:   "refunded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := Payment{Status: tt.status}
			if got := payment.GetStatusDisplayName(); got != tt.want {
				t.Errorf("GetStatusDisplayName() = %v, want %v", got, tt.want)
			}
		})
	}
}
