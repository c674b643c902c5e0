// Package metrics defines the custom Prometheus metrics of the admin
// dashboard API. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parcelease_admin"

// ── Mutation metrics ──────────────────────────────────────────────────────────

// UsersDeletedTotal counts users removed through the cascading delete.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted.",
	},
)

// TicketsDeletedTotal counts deleted support tickets.
var TicketsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_deleted_total",
		Help:      "Total number of support tickets deleted.",
	},
)

// PaymentsCreatedTotal counts payment create requests.
// Label:
//   - result: "created" or "replayed" (answered from the Idempotency-Key cache)
var PaymentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_created_total",
		Help:      "Total number of payment create requests, by result.",
	},
	[]string{"result"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardQueryFailuresTotal counts failed dashboard aggregations.
// Label:
//   - view: "revenue" or "kpis"
var DashboardQueryFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_query_failures_total",
		Help:      "Total number of dashboard aggregations that failed.",
	},
	[]string{"view"},
)

// ── Event dispatch metrics ────────────────────────────────────────────────────

// EventsQueueDepth tracks the number of admin events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of admin events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventsDeliveredTotal counts admin event deliveries per sink.
// Labels:
//   - sink: sink name (e.g. "mongo_audit", "amqp")
//   - result: "ok" or "error"
var EventsDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_delivered_total",
		Help:      "Total number of admin event deliveries, by sink and result.",
	},
	[]string{"sink", "result"},
)

// EventsDroppedTotal counts events rejected because the dispatcher was stopped or full.
var EventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dropped_total",
		Help:      "Total number of admin events dropped before delivery.",
	},
)

// EventDeliveryDuration measures how long a single sink delivery takes.
// Label:
//   - sink: sink name
var EventDeliveryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_delivery_duration_seconds",
		Help:      "Duration of one admin event delivery to one sink.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"sink"},
)
