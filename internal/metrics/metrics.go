// Package metrics provides Prometheus observability metrics for the CRM
// backend: lead allocation outcomes, booking conflicts and external calendar
// health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// AssignmentsTotal tracks lead assignments by channel and role tier.
var AssignmentsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "allocator",
	Name:      "assignments_total",
	Help:      "Total lead assignments created, by channel and role tier",
}, []string{"channel", "role"})

// AssignmentsReleasedTotal tracks assignment releases by channel.
var AssignmentsReleasedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "allocator",
	Name:      "assignments_released_total",
	Help:      "Total lead assignments released, by channel",
}, []string{"channel"})

// NoneAvailableTotal counts assignment requests that exhausted every role
// tier. Sustained growth means the roster or quotas are undersized.
var NoneAvailableTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "allocator",
	Name:      "none_available_total",
	Help:      "Assignment requests where no eligible employee existed in any role tier",
}, []string{"channel"})

// QuotaExhaustedTotal counts candidates skipped because their monthly quota
// was already consumed.
var QuotaExhaustedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "allocator",
	Name:      "quota_exhausted_total",
	Help:      "Candidates skipped during selection because their monthly quota was reached",
}, []string{"channel"})

// BookingsTotal tracks appointment bookings by outcome.
var BookingsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "scheduler",
	Name:      "bookings_total",
	Help:      "Appointment booking attempts by outcome (created, rescheduled, cancelled)",
}, []string{"outcome"})

// BookingConflictsTotal tracks bookings rejected due to conflicts.
var BookingConflictsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "scheduler",
	Name:      "booking_conflicts_total",
	Help:      "Bookings rejected because of conflicting intervals, by conflict source",
}, []string{"source"})

// CalendarFailuresTotal tracks external calendar provider failures.
var CalendarFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "scheduler",
	Name:      "calendar_failures_total",
	Help:      "External calendar requests that failed, by operation",
}, []string{"operation"})

// CounterDriftTotal counts counter rows corrected by reconciliation.
var CounterDriftTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "allocator",
	Name:      "counter_drift_repaired_total",
	Help:      "Monthly counter rows created or corrected by reconciliation",
})

// FreeSlotRequestsTotal tracks availability queries, split by whether the
// external calendar could be consulted.
var FreeSlotRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "scheduler",
	Name:      "free_slot_requests_total",
	Help:      "Availability queries, by verification state (verified, degraded)",
}, []string{"state"})
