package analytics

import (
	"testing"

	"storefront-dashboard/internal/models"
)

func TestBuildProductIndex(t *testing.T) {
	tests := []struct {
		name     string
		products []models.Product
		wantLen  int
	}{
		{
			name: "index by id",
			products: []models.Product{
				{ID: "p1", Name: "Oxford Shirt"},
				{ID: "p2", Name: "Summer Dress"},
			},
			wantLen: 2,
		},
		{
			name:     "empty input",
			products: nil,
			wantLen:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := BuildProductIndex(tt.products)
			if len(index) != tt.wantLen {
				t.Errorf("BuildProductIndex() len = %v, want %v", len(index), tt.wantLen)
			}
			for _, p := range tt.products {
				if index[p.ID].ID != p.ID {
					t.Errorf("index missing product %v", p.ID)
				}
			}
		})
	}
}

func TestBuildProductIndex_DuplicateLastWins(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "First"},
		{ID: "p1", Name: "Second"},
	}

	index := BuildProductIndex(products)

	if len(index) != 1 {
		t.Fatalf("BuildProductIndex() len = %v, want 1", len(index))
	}
	if index["p1"].Name != "Second" {
		t.Errorf("duplicate id: index has %v, want last occurrence", index["p1"].Name)
	}
}
