package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emon00007/easysubstech/internal/api/metrics"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

// PaymentHandler handles payment-intent creation and payment records.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// createIntentRequest carries the charge amount in integer cents. The legacy
// iterations disagreed between "amount" and "fees"; "amount" is canonical.
type createIntentRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent requests a USD payment intent from the gateway.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createIntentRequest  true  "Amount in cents"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	secret, err := h.service.CreateIntent(c.Request().Context(), req.Amount)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.PaymentIntentsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: secret})
}

type recordPaymentRequest struct {
	Email         string         `json:"email" validate:"omitempty,email"`
	Amount        int64          `json:"amount" validate:"required,gt=0"`
	Currency      string         `json:"currency"`
	TransactionID string         `json:"transaction_id"`
	Status        string         `json:"status"`
	Attributes    map[string]any `json:"attributes"`
}

type paymentResult struct {
	InsertedID string `json:"insertedId"`
}

type recordPaymentResponse struct {
	PaymentResult paymentResult `json:"paymentResult"`
}

// Record stores a payment record as reported by the caller.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      recordPaymentRequest  true  "Payment record"
// @Success      200   {object}  recordPaymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.Record(c.Request().Context(), ports.RecordPaymentInput{
		Email:         req.Email,
		Amount:        req.Amount,
		Currency:      req.Currency,
		TransactionID: req.TransactionID,
		Status:        req.Status,
		Attributes:    req.Attributes,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.Inc()
	return c.JSON(http.StatusOK, recordPaymentResponse{
		PaymentResult: paymentResult{InsertedID: result.InsertedID},
	})
}

// List returns all payment records.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Success      200  {array}  domain.Payment
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// ListByEmail returns the payment records for one payer email.
//
// @Summary      List payments by email
// @Tags         payments
// @Produce      json
// @Param        email  path     string  true  "Payer email"
// @Success      200    {array}  domain.Payment
// @Router       /payments/{email} [get]
func (h *PaymentHandler) ListByEmail(c echo.Context) error {
	payments, err := h.service.ListByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}
