package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

type stubPaymentRepo struct {
	payments []*domain.Payment
	fail     error
}

func (r *stubPaymentRepo) Insert(_ context.Context, p *domain.Payment) error {
	if r.fail != nil {
		return r.fail
	}
	clone := *p
	r.payments = append(r.payments, &clone)
	return nil
}

func (r *stubPaymentRepo) FindAll(_ context.Context) ([]*domain.Payment, error) {
	return r.payments, nil
}

func (r *stubPaymentRepo) FindByEmail(_ context.Context, email string) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range r.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubGateway struct {
	amount   int64
	currency string
	secret   string
	err      error
}

func (g *stubGateway) CreateIntent(_ context.Context, amountCents int64, currency string) (string, error) {
	g.amount = amountCents
	g.currency = currency
	return g.secret, g.err
}

type stubNotifier struct {
	jobs []ports.MailJob
}

func (n *stubNotifier) Enqueue(job ports.MailJob) {
	n.jobs = append(n.jobs, job)
}

func TestPaymentService_CreateIntent(t *testing.T) {
	gw := &stubGateway{secret: "pi_123_secret_abc"}
	svc := NewPaymentService(&stubPaymentRepo{}, gw, nil, zerolog.Nop())

	secret, err := svc.CreateIntent(context.Background(), 500)
	if err != nil {
		t.Fatalf("CreateIntent returned error: %v", err)
	}
	if secret != "pi_123_secret_abc" {
		t.Fatalf("unexpected secret %q", secret)
	}
	if gw.amount != 500 || gw.currency != "usd" {
		t.Fatalf("gateway called with amount=%d currency=%q", gw.amount, gw.currency)
	}
}

func TestPaymentService_CreateIntent_InvalidAmount(t *testing.T) {
	svc := NewPaymentService(&stubPaymentRepo{}, &stubGateway{}, nil, zerolog.Nop())

	for _, amount := range []int64{0, -100} {
		if _, err := svc.CreateIntent(context.Background(), amount); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("amount %d: expected ErrInvalidRequest, got %v", amount, err)
		}
	}
}

func TestPaymentService_CreateIntent_GatewayFailure(t *testing.T) {
	gw := &stubGateway{err: errors.New("stripe: api unavailable")}
	svc := NewPaymentService(&stubPaymentRepo{}, gw, nil, zerolog.Nop())

	if _, err := svc.CreateIntent(context.Background(), 500); err == nil {
		t.Fatalf("expected gateway error to propagate")
	}
}

func TestPaymentService_Record(t *testing.T) {
	repo := &stubPaymentRepo{}
	notifier := &stubNotifier{}
	svc := NewPaymentService(repo, &stubGateway{}, notifier, zerolog.Nop())

	result, err := svc.Record(context.Background(), ports.RecordPaymentInput{
		Email:         "payer@example.com",
		Amount:        1999,
		Currency:      "usd",
		TransactionID: "pi_123",
		Status:        "succeeded",
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if result.InsertedID == "" {
		t.Fatalf("expected generated id")
	}
	if len(repo.payments) != 1 {
		t.Fatalf("expected one stored payment, got %d", len(repo.payments))
	}
	if repo.payments[0].ID != result.InsertedID {
		t.Fatalf("stored id %q != returned id %q", repo.payments[0].ID, result.InsertedID)
	}

	if len(notifier.jobs) != 1 {
		t.Fatalf("expected one receipt job, got %d", len(notifier.jobs))
	}
	if notifier.jobs[0].To != "payer@example.com" {
		t.Fatalf("receipt addressed to %q", notifier.jobs[0].To)
	}
}

func TestPaymentService_Record_NoEmailNoReceipt(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewPaymentService(&stubPaymentRepo{}, &stubGateway{}, notifier, zerolog.Nop())

	if _, err := svc.Record(context.Background(), ports.RecordPaymentInput{Amount: 100}); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if len(notifier.jobs) != 0 {
		t.Fatalf("no receipt expected without payer email")
	}
}

func TestPaymentService_Record_RepoFailure(t *testing.T) {
	repo := &stubPaymentRepo{fail: errors.New("mongo: timeout")}
	notifier := &stubNotifier{}
	svc := NewPaymentService(repo, &stubGateway{}, notifier, zerolog.Nop())

	if _, err := svc.Record(context.Background(), ports.RecordPaymentInput{Email: "x@y.com", Amount: 100}); err == nil {
		t.Fatalf("expected insert error to propagate")
	}
	if len(notifier.jobs) != 0 {
		t.Fatalf("no receipt should be queued when the insert fails")
	}
}
