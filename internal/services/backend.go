package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"storefront-dashboard/internal/analytics"
	"storefront-dashboard/internal/models"
)

// BackendConfig represents commerce backend client configuration
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// BackendClient reads snapshot collections from the commerce REST backend
type BackendClient struct {
	config  BackendConfig
	client  *http.Client
	baseURL string
}

// NewBackendClient creates a new commerce backend client
func NewBackendClient(config BackendConfig) *BackendClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &BackendClient{
		config:  config,
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
	}
}

// BackendError represents a non-2xx response from the backend
type BackendError struct {
	StatusCode int
	Path       string
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend responded %d on %s: %s", e.StatusCode, e.Path, e.Message)
}

// FetchProducts retrieves the product catalog
func (c *BackendClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/api/products", &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// FetchReviews retrieves all product reviews
func (c *BackendClient) FetchReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.get(ctx, "/api/reviews", &reviews); err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

// FetchCartItems retrieves cart items
func (c *BackendClient) FetchCartItems(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.get(ctx, "/api/carts", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}
	return items, nil
}

// FetchWishlistItems retrieves wishlist items
func (c *BackendClient) FetchWishlistItems(ctx context.Context) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := c.get(ctx, "/api/wishlists", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist items: %w", err)
	}
	return items, nil
}

// FetchPayments retrieves payment records
func (c *BackendClient) FetchPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.get(ctx, "/api/payments", &payments); err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	return payments, nil
}

// FetchSnapshot assembles a full snapshot from the five backend collections.
// Products and payments are required; the remaining collections degrade to
// empty on failure so a broken reviews endpoint cannot take down the whole
// dashboard.
func (c *BackendClient) FetchSnapshot(ctx context.Context) (*analytics.Snapshot, error) {
	products, err := c.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := c.FetchPayments(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := c.FetchReviews(ctx)
	if err != nil {
		log.Printf("Continuing without reviews: %v", err)
		reviews = []models.Review{}
	}

	cartItems, err := c.FetchCartItems(ctx)
	if err != nil {
		log.Printf("Continuing without cart items: %v", err)
		cartItems = []models.CartItem{}
	}

	wishlistItems, err := c.FetchWishlistItems(ctx)
	if err != nil {
		log.Printf("Continuing without wishlist items: %v", err)
		wishlistItems = []models.WishlistItem{}
	}

	return &analytics.Snapshot{
		Products:      products,
		Reviews:       reviews,
		CartItems:     cartItems,
		WishlistItems: wishlistItems,
		Payments:      payments,
	}, nil
}

// get performs a GET request against the backend and decodes the JSON body
func (c *BackendClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &BackendError{
			StatusCode: resp.StatusCode,
			Path:       path,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
