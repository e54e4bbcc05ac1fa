package models

import "time"

// Review represents a customer review of a product. Ratings may be
// fractional; aggregation rounds them into whole-star buckets.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
