package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "partner_booking_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partner_booking_bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	BookingsConfirmedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partner_booking_bookings_confirmed_total",
			Help: "Total number of bookings confirmed by a paid deposit",
		},
	)

	SlotsReleasedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partner_booking_slots_released_total",
			Help: "Total number of slots released by reconciliation",
		},
	)

	ReconcileRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partner_booking_reconcile_runs_total",
			Help: "Total number of reconciliation sweeps",
		},
	)

	LatePaymentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partner_booking_late_payments_total",
			Help: "Paid webhooks that arrived after the booking was cancelled",
		},
	)

	SlotCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "partner_booking_slot_cache_total",
			Help: "Slot availability cache lookups",
		},
		[]string{"result"},
	)
)
