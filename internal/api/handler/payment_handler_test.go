package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

type stubPaymentService struct {
	createIntentFn func(ctx context.Context, amountCents int64) (string, error)
	recordFn       func(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error)
	listFn         func(ctx context.Context) ([]*domain.Payment, error)
	listByEmailFn  func(ctx context.Context, email string) ([]*domain.Payment, error)
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	return s.createIntentFn(ctx, amountCents)
}

func (s *stubPaymentService) Record(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
	return s.recordFn(ctx, input)
}

func (s *stubPaymentService) List(ctx context.Context) ([]*domain.Payment, error) {
	return s.listFn(ctx)
}

func (s *stubPaymentService) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	return s.listByEmailFn(ctx, email)
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	stub := &stubPaymentService{
		createIntentFn: func(_ context.Context, amountCents int64) (string, error) {
			if amountCents != 500 {
				t.Fatalf("expected amount 500, got %d", amountCents)
			}
			return "pi_123_secret_abc", nil
		},
	}
	c, rec := newTestContext(t, http.MethodPost, "/create-payment-intent", `{"amount":500}`)

	if err := NewPaymentHandler(stub).CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["clientSecret"] != "pi_123_secret_abc" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPaymentHandler_CreateIntent_InvalidAmount(t *testing.T) {
	stub := &stubPaymentService{
		createIntentFn: func(_ context.Context, _ int64) (string, error) {
			t.Fatalf("service must not be called on invalid amount")
			return "", nil
		},
	}

	for _, body := range []string{`{}`, `{"amount":0}`, `{"amount":-5}`} {
		c, rec := newTestContext(t, http.MethodPost, "/create-payment-intent", body)
		if err := NewPaymentHandler(stub).CreateIntent(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestPaymentHandler_CreateIntent_GatewayFailure(t *testing.T) {
	stub := &stubPaymentService{
		createIntentFn: func(_ context.Context, _ int64) (string, error) {
			return "", errors.New("stripe: api unavailable")
		},
	}
	c, _ := newTestContext(t, http.MethodPost, "/create-payment-intent", `{"amount":500}`)

	// The error propagates to the central HTTP error handler.
	if err := NewPaymentHandler(stub).CreateIntent(c); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestPaymentHandler_Record(t *testing.T) {
	stub := &stubPaymentService{
		recordFn: func(_ context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
			if input.Email != "payer@example.com" || input.Amount != 1999 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.RecordPaymentResult{InsertedID: "01HZX"}, nil
		},
	}
	c, rec := newTestContext(t, http.MethodPost, "/payments", `{"email":"payer@example.com","amount":1999,"status":"succeeded"}`)

	if err := NewPaymentHandler(stub).Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["paymentResult"]["insertedId"] != "01HZX" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPaymentHandler_ListByEmail(t *testing.T) {
	stub := &stubPaymentService{
		listByEmailFn: func(_ context.Context, email string) ([]*domain.Payment, error) {
			if email != "payer@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			return []*domain.Payment{{ID: "01HZX", Email: email, Amount: 1999}}, nil
		},
	}
	c, rec := newTestContext(t, http.MethodGet, "/payments/payer@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("payer@example.com")

	if err := NewPaymentHandler(stub).ListByEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
