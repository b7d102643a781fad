package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
	"github.com/sony/gobreaker/v2"
)

// OrderCreator is the slice of the Razorpay order resource used here.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type razorpayGateway struct {
	orders    OrderCreator
	keySecret string
	cb        *gobreaker.CircuitBreaker[Order]
}

// NewRazorpayGateway builds a Gateway backed by the Razorpay API. Empty
// credentials are accepted; the provider rejects the calls instead.
func NewRazorpayGateway(keyID, keySecret string) Gateway {
	client := razorpay.NewClient(keyID, keySecret)
	return NewGateway(client.Order, keySecret)
}

// NewGateway wires a Gateway around any order creator.
func NewGateway(orders OrderCreator, keySecret string) Gateway {
	return &razorpayGateway{
		orders:    orders,
		keySecret: keySecret,
		cb:        newCircuitBreaker("razorpay"),
	}
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amount int64, currency string) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}

	return g.cb.Execute(func() (Order, error) {
		body, err := g.orders.Create(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
		}, nil)
		if err != nil {
			return Order{}, fmt.Errorf("create razorpay order: %w", err)
		}

		id, ok := body["id"].(string)
		if !ok || id == "" {
			return Order{}, fmt.Errorf("create razorpay order: response has no order id")
		}

		return Order{ID: id, Amount: amount, Currency: currency}, nil
	})
}

func (g *razorpayGateway) VerifySignature(v Verification) error {
	params := map[string]interface{}{
		"razorpay_order_id":   v.OrderID,
		"razorpay_payment_id": v.PaymentID,
	}
	if !utils.VerifyPaymentSignature(params, v.Signature, g.keySecret) {
		return ErrSignatureMismatch
	}
	return nil
}
