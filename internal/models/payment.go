package models

import "time"

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment represents an order paid (or attempted) through the payment
// gateway. The backend owns the record; this is a read-only snapshot.
type Payment struct {
	ID          string           `json:"id"`
	Status      PaymentStatus    `json:"status"`
	TotalAmount float64          `json:"total_amount"`
	CreatedAt   time.Time        `json:"created_at"`
	Products    []PaymentProduct `json:"product_data"`
	Customer    PaymentCustomer  `json:"user_data"`
}

// PaymentProduct is a product line within a payment.
type PaymentProduct struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PaymentCustomer is the customer details captured at checkout.
type PaymentCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsPending returns true if the payment is still awaiting the gateway
func (p *Payment) IsPending() bool {
	return p.Status == PaymentPending
}

// IsCompleted returns true if the gateway confirmed the payment
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentCompleted
}

// IsFailed returns true if the gateway rejected the payment
func (p *Payment) IsFailed() bool {
	return p.Status == PaymentFailed
}

// ItemCount returns the total quantity of products in the payment.
func (p *Payment) ItemCount() int {
	total := 0
	for _, line := range p.Products {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		total += qty
	}
	return total
}

// GetStatusDisplayName returns a human-readable status name
func (p *Payment) GetStatusDisplayName() string {
	switch p.Status {
	case PaymentPending:
		return "Pending Payment"
	case PaymentCompleted:
		return "Completed"
	case PaymentFailed:
		return "Failed"
	default:
		return string(p.Status)
	}
}
