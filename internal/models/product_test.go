package models

import (
	"testing"
)

func TestProduct_OnSale(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{
			name:    "marked down",
			product: Product{Price: 45, OriginalPrice: 60},
			want:    true,
		},
		{
			name:    "no original price",
			product: Product{Price: 45},
			want:    false,
		},
		{
			name:    "original equals price",
			product: Product{Price: 45, OriginalPrice: 45},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.OnSale(); got != tt.want {
				t.Errorf("OnSale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProduct_DiscountPercent(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    int
	}{
		{
			name:    "quarter off",
			product: Product{Price: 45, OriginalPrice: 60},
			want:    25,
		},
		{
			name:    "not on sale",
			product: Product{Price: 45},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.DiscountPercent(); got != tt.want {
				t.Errorf("DiscountPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProduct_MainImage(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    string
	}{
		{
			name:    "first image",
			product: Product{Images: []string{"/a.jpg", "/b.jpg"}},
			want:    "/a.jpg",
		},
		{
			name:    "no images",
			product: Product{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.MainImage(); got != tt.want {
				t.Errorf("MainImage() = %v, want %v", got, tt.want)
			}
		})
	}
}
