package payment

import (
	"context"
	"errors"
)

// Server-side order policy. The amount is in minor currency units (paise).
const (
	OrderAmount   int64 = 500
	OrderCurrency       = "INR"
)

// ErrSignatureMismatch is returned when a payment callback signature does not
// match the digest computed with the key secret.
var ErrSignatureMismatch = errors.New("payment signature verification failed")

// Gateway is the provider-facing side of checkout.
type Gateway interface {
	// CreateOrder registers an order with the provider and returns its reference.
	CreateOrder(ctx context.Context, amount int64, currency string) (Order, error)
	// VerifySignature checks the signature the provider attached to a completed payment.
	VerifySignature(v Verification) error
}

// Order is a provider-side checkout transaction. It is never stored locally.
type Order struct {
	ID       string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Verification carries the fields posted back by the checkout widget.
type Verification struct {
	PaymentID string
	OrderID   string
	Signature string
}

// State is the lifecycle of one checkout session as seen in logs.
// Nothing is persisted; a session that never calls back stays unresolved.
type State string

const (
	StateInitiated        State = "INITIATED"
	StateOrderCreated     State = "ORDER_CREATED"
	StatePaymentSucceeded State = "PAYMENT_SUCCEEDED"
	StatePaymentFailed    State = "PAYMENT_FAILED"
)
