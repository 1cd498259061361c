// Package metrics defines and registers all custom Prometheus metrics for
// the resort portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time and are
// exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resort"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts per portal.
// Labels:
//   - portal: "guest", "staff", or "admin"
//   - result: "success", "invalid", "deactivated", "rate_limited", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by portal and result.",
	},
	[]string{"portal", "result"},
)

// RegistrationsTotal counts registration attempts per portal.
// Labels:
//   - portal: "guest", "staff", or "admin"
//   - result: "success", "invalid", "duplicate", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by portal and result.",
	},
	[]string{"portal", "result"},
)

// SessionChecksTotal counts session cookie resolutions.
// Labels:
//   - portal: "guest", "staff", or "admin"
//   - result: "ok", "rejected"
var SessionChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_checks_total",
		Help:      "Total number of session checks, by portal and result.",
	},
	[]string{"portal", "result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created booking requests.
// Label:
//   - room_type: the requested room type
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by room type.",
	},
	[]string{"room_type"},
)

// NotificationsTotal counts booking notification deliveries.
// Label:
//   - result: "delivered", "skipped", or "error"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of booking notifications, by delivery result.",
	},
	[]string{"result"},
)

// ── Attendance metrics ────────────────────────────────────────────────────────

// AttendanceEventsTotal counts staff clock events.
// Label:
//   - event: "clock_in" or "clock_out"
var AttendanceEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_events_total",
		Help:      "Total number of staff attendance events.",
	},
	[]string{"event"},
)
