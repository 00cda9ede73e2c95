// File: services/booking/payment.go
package booking

import (
	"context"
	"fmt"

	"villamar/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler is the payment collaborator contract: create a payment
// intent for the deposit and hand back something the client can complete.
// Invoked post-commit only; failure never undoes the reservation.
type PaymentHandler interface {
	CreateDeposit(ctx context.Context, req models.PaymentRequest) (*models.PaymentHandle, error)
}

// StripePaymentHandler creates Stripe payment intents. Amounts are already in
// minor units, which is exactly what Stripe expects.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) CreateDeposit(ctx context.Context, req models.PaymentRequest) (*models.PaymentHandle, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %d", req.Amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(int64(req.Amount)),
		Currency:     stripe.String(req.Currency),
		Description:  stripe.String(req.Description),
		ReceiptEmail: stripe.String(req.GuestEmail),
	}
	params.Context = ctx
	params.AddMetadata("reservationId", req.ReservationID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent creation failed: %w", err)
	}

	h.logger.Info("payment intent created",
		zap.String("reservationID", req.ReservationID),
		zap.String("paymentIntentID", pi.ID))

	return &models.PaymentHandle{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
	}, nil
}
