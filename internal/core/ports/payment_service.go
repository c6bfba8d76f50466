package ports

import (
	"context"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

// PaymentGateway creates payment intents with an external processor.
// AmountCents is the charge amount in the currency's smallest unit.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}

// RecordPaymentInput carries a payment record as reported by the caller.
type RecordPaymentInput struct {
	Email         string
	Amount        int64
	Currency      string
	TransactionID string
	Status        string
	Attributes    map[string]any
}

// RecordPaymentResult echoes back the stored record's identity.
type RecordPaymentResult struct {
	InsertedID string
}

// PaymentService defines use-case operations for payments.
type PaymentService interface {
	// CreateIntent requests a payment intent for amountCents in USD and
	// returns the gateway's client secret.
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
	Record(ctx context.Context, input RecordPaymentInput) (*RecordPaymentResult, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
}
