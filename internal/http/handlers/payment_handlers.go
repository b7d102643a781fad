package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/payment"
	"github.com/rs/zerolog/log"
)

const signatureFailedText = "Signature verification failed"

// CheckoutPageHandler renders the checkout widget with the public key id.
func (s *Server) CheckoutPageHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "checkout.html", "Checkout", checkoutPage{
		KeyID:    s.razorpayKeyID,
		Amount:   payment.OrderAmount,
		Currency: payment.OrderCurrency,
	})
}

// CreateOrderHandler godoc
// @Summary Create a gateway order
// @Description Creates a Razorpay order for the fixed checkout amount. Any request body is ignored.
// @Tags checkout
// @Produce json
// @Success 200 {object} OrderResponse
// @Failure 500 {string} string "Gateway error"
// @Router /order [post]
func (s *Server) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	logger.Info().Str("state", string(payment.StateInitiated)).Msg("checkout")

	order, err := s.gateway.CreateOrder(r.Context(), payment.OrderAmount, payment.OrderCurrency)
	if err != nil {
		logger.Error().Err(err).Str("component", "CreateOrderHandler").Msg("gateway order failed")
		http.Error(w, "could not create order", http.StatusInternalServerError)
		return
	}

	logger.Info().Str("state", string(payment.StateOrderCreated)).Str("order_id", order.ID).Msg("checkout")

	if err := writeJSON(w, http.StatusOK, OrderResponse{OrderID: order.ID, Amount: order.Amount}); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
	}
}

// VerifyPaymentHandler godoc
// @Summary Verify a completed payment
// @Tags checkout
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param razorpay_payment_id formData string true "Payment id"
// @Param razorpay_order_id formData string true "Order id"
// @Param razorpay_signature formData string true "HMAC signature"
// @Success 302 "Redirect to /success"
// @Failure 400 {string} string "Signature verification failed"
// @Router /verify [post]
func (s *Server) VerifyPaymentHandler(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	v := payment.Verification{
		PaymentID: r.PostFormValue("razorpay_payment_id"),
		OrderID:   r.PostFormValue("razorpay_order_id"),
		Signature: r.PostFormValue("razorpay_signature"),
	}

	err := s.gateway.VerifySignature(v)
	if errors.Is(err, payment.ErrSignatureMismatch) {
		logger.Warn().Str("state", string(payment.StatePaymentFailed)).Str("order_id", v.OrderID).Msg("checkout")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, signatureFailedText)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("component", "VerifyPaymentHandler").Msg("verification error")
		http.Error(w, "could not verify payment", http.StatusInternalServerError)
		return
	}

	logger.Info().Str("state", string(payment.StatePaymentSucceeded)).
		Str("order_id", v.OrderID).Str("payment_id", v.PaymentID).Msg("checkout")
	http.Redirect(w, r, "/success", http.StatusFound)
}
