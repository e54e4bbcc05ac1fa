package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"storefront-dashboard/internal/analytics"
	"storefront-dashboard/internal/models"
)

// MockBackendService serves a seeded in-memory snapshot. Used when no
// BACKEND_URL is configured so the dashboard stays explorable without the
// remote backend, and by handler tests.
type MockBackendService struct {
	snapshot analytics.Snapshot
}

// NewMockBackendService creates a mock backend with sample data
func NewMockBackendService() *MockBackendService {
	log.Println("Backend service: Using mock snapshot (no BACKEND_URL configured)")
	return &MockBackendService{snapshot: sampleSnapshot()}
}

// FetchSnapshot returns a copy of the seeded snapshot.
func (m *MockBackendService) FetchSnapshot(ctx context.Context) (*analytics.Snapshot, error) {
	snap := analytics.Snapshot{
		Products:      append([]models.Product(nil), m.snapshot.Products...),
		Reviews:       append([]models.Review(nil), m.snapshot.Reviews...),
		CartItems:     append([]models.CartItem(nil), m.snapshot.CartItems...),
		WishlistItems: append([]models.WishlistItem(nil), m.snapshot.WishlistItems...),
		Payments:      append([]models.Payment(nil), m.snapshot.Payments...),
	}
	return &snap, nil
}

func sampleSnapshot() analytics.Snapshot {
	now := time.Now().UTC()

	products := []models.Product{
		{ID: uuid.NewString(), MainCategory: "men-wear", SubCategory: "shirts", Name: "Oxford Shirt", Price: 45, OriginalPrice: 60, Rating: 4.4, Stock: 12, Images: []string{"/images/oxford-shirt.jpg"}},
		{ID: uuid.NewString(), MainCategory: "women-wear", SubCategory: "dresses", Name: "Summer Dress", Price: 75, Rating: 4.8, Stock: 5, Images: []string{"/images/summer-dress.jpg"}},
		{ID: uuid.NewString(), MainCategory: "luxury-shoes", SubCategory: "loafers", Name: "Leather Loafers", Price: 220, OriginalPrice: 280, Rating: 4.1, Stock: 3, Images: []string{"/images/loafers.jpg"}},
		{ID: uuid.NewString(), MainCategory: "books", SubCategory: "fiction", Name: "The Long Harbor", Price: 18, Rating: 3.6, Stock: 40, Images: []string{"/images/long-harbor.jpg"}},
		{ID: uuid.NewString(), MainCategory: "premium-perfumes", SubCategory: "unisex", Name: "Amber Noir", Price: 130, Rating: 4.9, Stock: 0, Images: []string{"/images/amber-noir.jpg"}},
		{ID: uuid.NewString(), MainCategory: "precious-jewelries", SubCategory: "necklaces", Name: "Gold Pendant", Price: 540, Rating: 5, Stock: 2, Images: []string{"/images/gold-pendant.jpg"}},
	}

	reviews := []models.Review{
		{ID: uuid.NewString(), ProductID: products[0].ID, Rating: 4.6, Comment: "Great fit", User: "amara", CreatedAt: now.AddDate(0, 0, -9)},
		{ID: uuid.NewString(), ProductID: products[0].ID, Rating: 3.4, Comment: "Color faded a bit", User: "jon", CreatedAt: now.AddDate(0, 0, -6)},
		{ID: uuid.NewString(), ProductID: products[1].ID, Rating: 5, Comment: "Perfect for the season", User: "lucia", CreatedAt: now.AddDate(0, 0, -4)},
		{ID: uuid.NewString(), ProductID: products[3].ID, Rating: 2.2, Comment: "Slow start", User: "dee", CreatedAt: now.AddDate(0, 0, -2)},
	}

	cartItems := []models.CartItem{
		{ID: uuid.NewString(), Product: models.PopulatedRef(products[0]), Quantity: 2},
		{ID: uuid.NewString(), Product: models.IDRef(products[2].ID), Quantity: 1},
		// Unpopulated reference: the backend sometimes sends null here.
		{ID: uuid.NewString(), Quantity: 1},
	}

	wishlistItems := []models.WishlistItem{
		{ID: uuid.NewString(), Product: models.PopulatedRef(products[5])},
		{ID: uuid.NewString(), Product: models.IDRef(products[4].ID)},
	}

	payments := []models.Payment{
		{
			ID: uuid.NewString(), Status: models.PaymentCompleted, TotalAmount: 165,
			CreatedAt: now.AddDate(0, 0, -7),
			Products:  []models.PaymentProduct{{ProductID: products[0].ID, Quantity: 2}, {ProductID: products[3].ID, Quantity: 1}},
			Customer:  models.PaymentCustomer{Name: "Amara Obi", Email: "amara@example.com"},
		},
		{
			ID: uuid.NewString(), Status: models.PaymentCompleted, TotalAmount: 220,
			CreatedAt: now.AddDate(0, 0, -7),
			Products:  []models.PaymentProduct{{ProductID: products[2].ID, Quantity: 1}},
			Customer:  models.PaymentCustomer{Name: "Jon Mwangi", Email: "jon@example.com"},
		},
		{
			ID: uuid.NewString(), Status: models.PaymentPending, TotalAmount: 75,
			CreatedAt: now.AddDate(0, 0, -3),
			Products:  []models.PaymentProduct{{ProductID: products[1].ID, Quantity: 1}},
			Customer:  models.PaymentCustomer{Name: "Lucia Perez", Email: "lucia@example.com"},
		},
		{
			ID: uuid.NewString(), Status: models.PaymentFailed, TotalAmount: 540,
			CreatedAt: now.AddDate(0, 0, -1),
			Products:  []models.PaymentProduct{{ProductID: products[5].ID, Quantity: 1}},
			Customer:  models.PaymentCustomer{Name: "Dee Nasser", Email: "dee@example.com"},
		},
		{
			ID: uuid.NewString(), Status: models.PaymentCompleted, TotalAmount: 130,
			CreatedAt: now.AddDate(0, 0, -1),
			Products:  []models.PaymentProduct{{ProductID: products[4].ID, Quantity: 1}},
			Customer:  models.PaymentCustomer{Name: "Amara Obi", Email: "amara@example.com"},
		},
	}

	return analytics.Snapshot{
		Products:      products,
		Reviews:       reviews,
		CartItems:     cartItems,
		WishlistItems: wishlistItems,
		Payments:      payments,
	}
}
