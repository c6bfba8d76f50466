// Package payment implements the payment-gateway collaborator with Stripe.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeGateway creates payment intents through the Stripe API.
type StripeGateway struct{}

// NewStripeGateway sets the account secret key and returns the gateway.
// The stripe-go client keys off package-level state, so construct this once
// at startup.
func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

// CreateIntent creates an intent for amountCents in the given currency and
// returns the client secret the frontend uses to complete the payment.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create intent: %w", err)
	}
	return intent.ClientSecret, nil
}
