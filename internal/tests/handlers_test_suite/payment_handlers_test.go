package handlers_test_suite

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/storefront/internal/http"
	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/payment"
)

func TestCreateOrderHandler_IgnoresClientAmount(t *testing.T) {
	r := newRouter()

	for _, body := range []string{``, `{"amount": 1}`, `{"amount": 999999, "currency": "USD"}`} {
		w := postJSON(r, "/order", body)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp handler.OrderResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Amount != 500 {
			t.Errorf("expected amount 500 for body %q, got %d", body, resp.Amount)
		}
		if resp.OrderID != "order_test123" {
			t.Errorf("expected order id order_test123, got %q", resp.OrderID)
		}

		sent := orders.lastRequest()
		if sent["amount"] != payment.OrderAmount || sent["currency"] != "INR" {
			t.Errorf("unexpected gateway request: %v", sent)
		}
	}
}

func TestCreateOrderHandler_GatewayError(t *testing.T) {
	failing := &fakeOrders{err: errors.New("authentication failed")}
	r := newRouterWith(payment.NewGateway(failing, keySecret), api.Options{})

	w := postJSON(r, "/order", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestVerifyPaymentHandler(t *testing.T) {
	r := newRouter()

	const orderID, paymentID = "order_test123", "pay_test456"
	valid := signature(orderID, paymentID)

	tests := []struct {
		name      string
		paymentID string
		sig       string
	}{
		{name: "Tampered signature", paymentID: paymentID, sig: strings.Repeat("0", len(valid))},
		{name: "Signature for another payment", paymentID: "pay_other", sig: valid},
		{name: "Missing signature", paymentID: paymentID, sig: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(r, "/verify", url.Values{
				"razorpay_payment_id": {tt.paymentID},
				"razorpay_order_id":   {orderID},
				"razorpay_signature":  {tt.sig},
			})

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if got := w.Body.String(); got != "Signature verification failed" {
				t.Errorf("unexpected body %q", got)
			}
		})
	}

	t.Run("Valid signature", func(t *testing.T) {
		w := postForm(r, "/verify", url.Values{
			"razorpay_payment_id": {paymentID},
			"razorpay_order_id":   {orderID},
			"razorpay_signature":  {valid},
		})

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302 Found, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/success" {
			t.Errorf("expected redirect to /success, got %q", loc)
		}
	})
}

func TestCheckoutPageHandler_ExposesKeyID(t *testing.T) {
	w := get(newRouter(), "/order")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), keyID) {
		t.Error("expected checkout page to carry the public key id")
	}
	if strings.Contains(w.Body.String(), keySecret) {
		t.Error("key secret leaked into the checkout page")
	}
}
