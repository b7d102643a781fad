package payment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/payment"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "EnLs21M47BllR3X8PSFtjtbd"

type fakeOrders struct {
	calls []map[string]interface{}
	resp  map[string]interface{}
	err   error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.calls = append(f.calls, data)
	return f.resp, f.err
}

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateOrder_SendsPolicyAmount(t *testing.T) {
	orders := &fakeOrders{resp: map[string]interface{}{"id": "order_IEIaMR65cu6nz3", "amount": float64(500)}}
	gw := payment.NewGateway(orders, testSecret)

	order, err := gw.CreateOrder(context.Background(), payment.OrderAmount, payment.OrderCurrency)
	require.NoError(t, err)

	assert.Equal(t, "order_IEIaMR65cu6nz3", order.ID)
	assert.Equal(t, int64(500), order.Amount)
	assert.Equal(t, "INR", order.Currency)

	require.Len(t, orders.calls, 1)
	assert.Equal(t, int64(500), orders.calls[0]["amount"])
	assert.Equal(t, "INR", orders.calls[0]["currency"])
}

func TestCreateOrder_PropagatesGatewayError(t *testing.T) {
	authErr := errors.New("Authentication failed")
	gw := payment.NewGateway(&fakeOrders{err: authErr}, "")

	_, err := gw.CreateOrder(context.Background(), payment.OrderAmount, payment.OrderCurrency)
	assert.ErrorIs(t, err, authErr)
}

func TestCreateOrder_MissingOrderID(t *testing.T) {
	gw := payment.NewGateway(&fakeOrders{resp: map[string]interface{}{}}, testSecret)

	_, err := gw.CreateOrder(context.Background(), payment.OrderAmount, payment.OrderCurrency)
	assert.Error(t, err)
}

func TestCreateOrder_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	orders := &fakeOrders{err: errors.New("gateway down")}
	gw := payment.NewGateway(orders, testSecret)

	for i := 0; i < 3; i++ {
		_, err := gw.CreateOrder(context.Background(), payment.OrderAmount, payment.OrderCurrency)
		require.Error(t, err)
	}

	_, err := gw.CreateOrder(context.Background(), payment.OrderAmount, payment.OrderCurrency)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Len(t, orders.calls, 3, "open breaker must not reach the gateway")
}

func TestCreateOrder_CancelledContext(t *testing.T) {
	orders := &fakeOrders{resp: map[string]interface{}{"id": "order_x"}}
	gw := payment.NewGateway(orders, testSecret)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.CreateOrder(ctx, payment.OrderAmount, payment.OrderCurrency)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, orders.calls)
}

func TestVerifySignature(t *testing.T) {
	gw := payment.NewGateway(&fakeOrders{}, testSecret)
	valid := sign("order_IEIaMR65cu6nz3", "pay_IH4NVgf4Dreq1l", testSecret)

	tests := []struct {
		name    string
		v       payment.Verification
		wantErr error
	}{
		{
			name: "valid signature",
			v:    payment.Verification{OrderID: "order_IEIaMR65cu6nz3", PaymentID: "pay_IH4NVgf4Dreq1l", Signature: valid},
		},
		{
			name:    "tampered signature",
			v:       payment.Verification{OrderID: "order_IEIaMR65cu6nz3", PaymentID: "pay_IH4NVgf4Dreq1l", Signature: strings.Repeat("0", len(valid))},
			wantErr: payment.ErrSignatureMismatch,
		},
		{
			name:    "swapped ids",
			v:       payment.Verification{OrderID: "pay_IH4NVgf4Dreq1l", PaymentID: "order_IEIaMR65cu6nz3", Signature: valid},
			wantErr: payment.ErrSignatureMismatch,
		},
		{
			name:    "signed with another secret",
			v:       payment.Verification{OrderID: "order_IEIaMR65cu6nz3", PaymentID: "pay_IH4NVgf4Dreq1l", Signature: sign("order_IEIaMR65cu6nz3", "pay_IH4NVgf4Dreq1l", "other")},
			wantErr: payment.ErrSignatureMismatch,
		},
		{
			name:    "missing fields",
			v:       payment.Verification{},
			wantErr: payment.ErrSignatureMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gw.VerifySignature(tt.v)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
