package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emon00007/easysubstech/internal/api/metrics"
	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

// OTPHandler exposes the OTP lifecycle over HTTP. All OTP outcomes that stem
// from client input (missing fields, unknown email, expired or wrong code)
// map to 400; only delivery and store failures are server errors.
type OTPHandler struct {
	service ports.OTPService
}

func NewOTPHandler(service ports.OTPService) *OTPHandler {
	return &OTPHandler{service: service}
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Send issues an OTP and mails it to the address.
//
// @Summary      Send an OTP
// @Tags         otp
// @Accept       json
// @Produce      json
// @Param        body  body      sendOTPRequest  true  "Recipient email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /send-otp [post]
func (h *OTPHandler) Send(c echo.Context) error {
	var req sendOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email is required"})
	}

	if err := h.service.Issue(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrDeliveryFailed) {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to send OTP"})
		}
		return err
	}

	metrics.OTPIssuedTotal.WithLabelValues("issue").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "OTP sent successfully"})
}

// Verify checks a submitted OTP and consumes it on success.
//
// @Summary      Verify an OTP
// @Tags         otp
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Email and code"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /verify-otp [post]
func (h *OTPHandler) Verify(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.Email == "" || req.OTP == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email and OTP are required"})
	}

	if err := h.service.Verify(c.Request().Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPNotFound):
			metrics.OTPVerifyTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "No OTP found for this email"})
		case errors.Is(err, domain.ErrOTPExpired):
			metrics.OTPVerifyTotal.WithLabelValues("expired").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "OTP has expired"})
		case errors.Is(err, domain.ErrOTPMismatch):
			metrics.OTPVerifyTotal.WithLabelValues("mismatch").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid OTP"})
		}
		return err
	}

	metrics.OTPVerifyTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "OTP verified successfully"})
}

// Resend issues a fresh OTP for an already-registered email.
//
// @Summary      Resend an OTP
// @Tags         otp
// @Accept       json
// @Produce      json
// @Param        body  body      sendOTPRequest  true  "Recipient email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /resend-otp [post]
func (h *OTPHandler) Resend(c echo.Context) error {
	var req sendOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email is required"})
	}

	if err := h.service.Reissue(c.Request().Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "User not found"})
		case errors.Is(err, domain.ErrDeliveryFailed):
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to send OTP"})
		}
		return err
	}

	metrics.OTPIssuedTotal.WithLabelValues("reissue").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "OTP resent successfully"})
}
