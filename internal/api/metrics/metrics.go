// Package metrics defines and registers the custom Prometheus metrics
// for the account service. It is the single source of truth for metric
// names, labels, and help strings; registration happens at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "success" or the failure code (e.g. "USER_ALREADY_EXISTS")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or the failure code (e.g. "ACCOUNT_LOCKED")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// LoginDuration measures how long a login attempt takes end-to-end,
// including the bcrypt comparison and counter writes.
var LoginDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login attempts from request to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
