package analytics

import (
	"testing"

	"storefront-dashboard/internal/models"
)

func TestResolveProduct(t *testing.T) {
	indexed := models.Product{ID: "p1", Name: "Indexed Copy"}
	populated := models.Product{ID: "p1", Name: "Populated Copy"}
	index := map[string]models.Product{"p1": indexed}

	tests := []struct {
		name     string
		ref      models.ProductRef
		wantOK   bool
		wantName string
	}{
		{
			name:     "populated reference used directly, no index lookup",
			ref:      models.PopulatedRef(populated),
			wantOK:   true,
			wantName: "Populated Copy",
		},
		{
			name:     "bare id resolved through the index",
			ref:      models.IDRef("p1"),
			wantOK:   true,
			wantName: "Indexed Copy",
		},
		{
			name:   "missing reference resolves to nothing",
			ref:    models.ProductRef{},
			wantOK: false,
		},
		{
			name:   "id absent from index resolves to nothing",
			ref:    models.IDRef("ghost"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, ok := ResolveProduct(tt.ref, index)
			if ok != tt.wantOK {
				t.Fatalf("ResolveProduct() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && product.Name != tt.wantName {
				t.Errorf("ResolveProduct() product = %v, want %v", product.Name, tt.wantName)
			}
		})
	}
}

func TestResolveProduct_NilIndex(t *testing.T) {
	// A nil index must not panic; bare ids simply fail to resolve.
	if _, ok := ResolveProduct(models.IDRef("p1"), nil); ok {
		t.Error("ResolveProduct() with nil index resolved, want miss")
	}

	product := models.Product{ID: "p1", Name: "Populated"}
	if _, ok := ResolveProduct(models.PopulatedRef(product), nil); !ok {
		t.Error("ResolveProduct() populated ref should not need the index")
	}
}
