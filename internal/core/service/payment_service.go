package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

const intentCurrency = "usd"

// ReceiptNotifier enqueues best-effort outbound mail (the queue dispatcher).
type ReceiptNotifier interface {
	Enqueue(job ports.MailJob)
}

// PaymentService implements payment-intent creation and payment recording.
type PaymentService struct {
	repo     ports.PaymentRepository
	gateway  ports.PaymentGateway
	notifier ReceiptNotifier
	logger   zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, gateway ports.PaymentGateway, notifier ReceiptNotifier, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, gateway: gateway, notifier: notifier, logger: logger}
}

// CreateIntent requests a USD payment intent for amountCents (smallest
// currency unit) and returns the gateway's client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", fmt.Errorf("create intent: %w", domain.ErrInvalidRequest)
	}

	secret, err := s.gateway.CreateIntent(ctx, amountCents, intentCurrency)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amountCents).Msg("payment intent failed")
		return "", fmt.Errorf("create intent: %w", err)
	}

	s.logger.Info().Int64("amount", amountCents).Msg("payment intent created")
	return secret, nil
}

// Record stores a payment record verbatim. The record is not reconciled
// against the gateway. When the payer email is known a receipt is queued for
// asynchronous delivery; receipt failures never fail the request.
func (s *PaymentService) Record(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
	payment := &domain.Payment{
		ID:            ulid.Make().String(),
		Email:         input.Email,
		Amount:        input.Amount,
		Currency:      input.Currency,
		TransactionID: input.TransactionID,
		Status:        input.Status,
		CreatedAt:     time.Now().UTC(),
		Attributes:    input.Attributes,
	}

	if err := s.repo.Insert(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	if s.notifier != nil && payment.Email != "" {
		s.notifier.Enqueue(ports.MailJob{
			To:      payment.Email,
			Subject: "Payment received",
			Body:    receiptBody(payment),
		})
	}

	s.logger.Info().Str("payment_id", payment.ID).Str("email", payment.Email).Int64("amount", payment.Amount).Msg("payment recorded")
	return &ports.RecordPaymentResult{InsertedID: payment.ID}, nil
}

func (s *PaymentService) List(ctx context.Context) ([]*domain.Payment, error) {
	return s.repo.FindAll(ctx)
}

func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	if email == "" {
		return nil, fmt.Errorf("list payments: %w", domain.ErrInvalidRequest)
	}
	return s.repo.FindByEmail(ctx, email)
}

func receiptBody(p *domain.Payment) string {
	cur := p.Currency
	if cur == "" {
		cur = intentCurrency
	}
	return fmt.Sprintf("We received your payment of %d.%02d %s (reference %s). Thank you!",
		p.Amount/100, p.Amount%100, cur, p.ID)
}
