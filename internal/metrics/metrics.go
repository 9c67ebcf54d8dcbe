// Package metrics holds the Prometheus collectors of the ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ledger"

type Metrics struct {
	// Engine
	CommissionsCreated *prometheus.CounterVec
	CommissionsSettled *prometheus.CounterVec
	CommissionsFailed  prometheus.Counter
	SettledAmount      prometheus.Counter

	// Drainer
	DrainItems    *prometheus.CounterVec
	DrainDuration prometheus.Histogram

	// RPC
	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec

	// Stats cache
	CacheRequests *prometheus.CounterVec
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		CommissionsCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commissions_created_total",
				Help:      "Total number of commissions written",
			},
			[]string{"type", "status"},
		),
		CommissionsSettled: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commissions_settled_total",
				Help:      "Total number of commissions that transitioned to SETTLED",
			},
			[]string{"type"},
		),
		CommissionsFailed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commissions_failed_total",
			Help:      "Total number of commissions that transitioned to FAILED",
		}),
		SettledAmount: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settled_amount_total",
			Help:      "Sum of amounts credited to balances",
		}),
		DrainItems: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "drain_items_total",
				Help:      "Drained commissions by outcome",
			},
			[]string{"outcome"}, // settled, released, failed, lost_claim
		),
		DrainDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "drain_duration_seconds",
			Help:      "Duration of a drain batch",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		}),
		RPCRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_requests_total",
				Help:      "Total number of RPC requests",
			},
			[]string{"procedure", "code"},
		),
		RPCDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_request_duration_seconds",
				Help:      "RPC latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
		CacheRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stats_cache_requests_total",
				Help:      "Stats cache lookups by result",
			},
			[]string{"result"}, // hit, miss, error
		),
	}
}
