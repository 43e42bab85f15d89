// Package metrics defines and registers all custom Prometheus metrics for
// the PETSTYLE admin console. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petstyle"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts against the console.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of console login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRefreshTotal counts silent access-token refreshes performed by the
// gateway after an upstream 401.
// Label:
//   - result: "success" or "failure"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of access token refresh attempts, by result.",
	},
	[]string{"result"},
)

// ForcedLogoutsTotal counts sessions invalidated by the gateway because a
// 401 could not be recovered (missing or rejected refresh token).
var ForcedLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Total number of sessions invalidated after an unrecoverable 401.",
	},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts proxied calls to the inventory API.
// Labels:
//   - method: HTTP method of the proxied request
//   - resource: first path segment of the upstream endpoint (e.g. "productos")
//   - status: upstream HTTP status code, or "error" on transport failure
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the inventory API.",
	},
	[]string{"method", "resource", "status"},
)

// UpstreamRequestDuration measures upstream call latency, including any
// refresh+replay performed by the gateway.
// Label:
//   - resource: first path segment of the upstream endpoint
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream inventory API calls.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"resource"},
)
