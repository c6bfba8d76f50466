// Package metrics defines and registers all custom Prometheus metrics for
// the EasySubsTech API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "easysubs"

// ── OTP metrics ───────────────────────────────────────────────────────────────

// OTPIssuedTotal counts issued one-time codes.
// Label:
//   - kind: "issue" (first send) or "reissue" (resend)
var OTPIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_issued_total",
		Help:      "Total number of one-time codes issued.",
	},
	[]string{"kind"},
)

// OTPVerifyTotal counts verification attempts by outcome.
// Label:
//   - result: "ok", "not_found", "expired", "mismatch"
var OTPVerifyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verify_total",
		Help:      "Total number of OTP verification attempts, by result.",
	},
	[]string{"result"},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentIntentsTotal counts payment-intent requests by outcome ("ok"/"error").
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intents requested from the gateway.",
	},
	[]string{"result"},
)

// PaymentsRecordedTotal counts stored payment records.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payment records stored.",
	},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// MailDispatchTotal counts queued mail deliveries.
// Label:
//   - result: "ok", "error", or "dropped" (queue full)
var MailDispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_dispatch_total",
		Help:      "Total number of queued mail jobs, by delivery result.",
	},
	[]string{"result"},
)

// MailQueueDepth tracks the number of jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of mail jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
