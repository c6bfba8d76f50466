package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

type stubOTPService struct {
	issueFn   func(ctx context.Context, email string) error
	verifyFn  func(ctx context.Context, email, code string) error
	reissueFn func(ctx context.Context, email string) error
}

func (s *stubOTPService) Issue(ctx context.Context, email string) error {
	return s.issueFn(ctx, email)
}

func (s *stubOTPService) Verify(ctx context.Context, email, code string) error {
	return s.verifyFn(ctx, email, code)
}

func (s *stubOTPService) Reissue(ctx context.Context, email string) error {
	return s.reissueFn(ctx, email)
}

func newOTPContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOTPHandler_Send_Success(t *testing.T) {
	stub := &stubOTPService{
		issueFn: func(_ context.Context, email string) error {
			if email != "a@x.com" {
				t.Fatalf("unexpected email %q", email)
			}
			return nil
		},
	}
	c, rec := newOTPContext(t, "/send-otp", `{"email":"a@x.com"}`)

	if err := NewOTPHandler(stub).Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "OTP sent successfully" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestOTPHandler_Send_MissingEmail(t *testing.T) {
	stub := &stubOTPService{
		issueFn: func(_ context.Context, _ string) error {
			t.Fatalf("service must not be called without an email")
			return nil
		},
	}
	c, rec := newOTPContext(t, "/send-otp", `{}`)

	if err := NewOTPHandler(stub).Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOTPHandler_Send_DeliveryFailure(t *testing.T) {
	stub := &stubOTPService{
		issueFn: func(_ context.Context, _ string) error {
			return domain.ErrDeliveryFailed
		},
	}
	c, rec := newOTPContext(t, "/send-otp", `{"email":"a@x.com"}`)

	if err := NewOTPHandler(stub).Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Failed to send OTP" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestOTPHandler_Verify_Success(t *testing.T) {
	stub := &stubOTPService{
		verifyFn: func(_ context.Context, email, code string) error {
			if email != "a@x.com" || code != "123456" {
				t.Fatalf("unexpected args %q %q", email, code)
			}
			return nil
		},
	}
	c, rec := newOTPContext(t, "/verify-otp", `{"email":"a@x.com","otp":"123456"}`)

	if err := NewOTPHandler(stub).Verify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOTPHandler_Verify_MissingFields(t *testing.T) {
	stub := &stubOTPService{}
	h := NewOTPHandler(stub)

	for _, body := range []string{`{}`, `{"email":"a@x.com"}`, `{"otp":"123456"}`} {
		c, rec := newOTPContext(t, "/verify-otp", body)
		if err := h.Verify(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestOTPHandler_Verify_Outcomes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"not found", domain.ErrOTPNotFound, "No OTP found for this email"},
		{"expired", domain.ErrOTPExpired, "OTP has expired"},
		{"mismatch", domain.ErrOTPMismatch, "Invalid OTP"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubOTPService{
				verifyFn: func(_ context.Context, _, _ string) error { return tc.err },
			}
			c, rec := newOTPContext(t, "/verify-otp", `{"email":"a@x.com","otp":"123456"}`)

			if err := NewOTPHandler(stub).Verify(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}

			var resp map[string]string
			_ = json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp["error"] != tc.msg {
				t.Fatalf("expected %q, got %s", tc.msg, rec.Body.String())
			}
		})
	}
}

func TestOTPHandler_Resend_UserNotFound(t *testing.T) {
	stub := &stubOTPService{
		reissueFn: func(_ context.Context, _ string) error {
			return domain.ErrUserNotFound
		},
	}
	c, rec := newOTPContext(t, "/resend-otp", `{"email":"ghost@x.com"}`)

	if err := NewOTPHandler(stub).Resend(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "User not found" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestOTPHandler_Resend_Success(t *testing.T) {
	stub := &stubOTPService{
		reissueFn: func(_ context.Context, _ string) error { return nil },
	}
	c, rec := newOTPContext(t, "/resend-otp", `{"email":"a@x.com"}`)

	if err := NewOTPHandler(stub).Resend(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
