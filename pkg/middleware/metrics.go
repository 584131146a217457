package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/weft-dev/weft/pkg/vdom"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "weft").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for reconcile duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "weft",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// reconcileMetrics holds the Prometheus collectors for one middleware
// instance. Each Prometheus() call registers a fresh set, so create one
// middleware per registry.
type reconcileMetrics struct {
	reconcilesTotal     prometheus.Counter
	reconcileDuration   prometheus.Histogram
	patchesTotal        *prometheus.CounterVec
	patchesPerReconcile prometheus.Histogram
	noopReconciles      prometheus.Counter
}

func initMetrics(config MetricsConfig) *reconcileMetrics {
	factory := promauto.With(config.Registry)

	return &reconcileMetrics{
		reconcilesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reconciles_total",
			Help:        "Total number of reconciliation passes",
			ConstLabels: config.ConstLabels,
		}),

		reconcileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reconcile_duration_seconds",
			Help:        "Reconciliation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		patchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total patch operations produced, by op",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		patchesPerReconcile: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_per_reconcile",
			Help:        "Patch operations produced per reconciliation pass",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
		}),

		noopReconciles: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "noop_reconciles_total",
			Help:        "Reconciliation passes that produced no patches",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Prometheus creates middleware that collects Prometheus metrics for every
// reconciliation pass.
//
// Metrics collected:
//   - weft_reconciles_total: Counter of reconciliation passes
//   - weft_reconcile_duration_seconds: Histogram of pass duration
//   - weft_patches_total: Counter of patch operations by op, nested included
//   - weft_patches_per_reconcile: Histogram of patch operations per pass
//   - weft_noop_reconciles_total: Counter of passes that produced no patches
//
// Example:
//
//	reconcile := middleware.Chain(
//	    middleware.Reconciler(),
//	    middleware.Prometheus(middleware.WithNamespace("myapp")),
//	)
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	m := initMetrics(config)

	return func(next ReconcileFunc) ReconcileFunc {
		return instrumented(m, next)
	}
}

// instrumented wraps next with the recording logic for one metrics set.
func instrumented(m *reconcileMetrics, next ReconcileFunc) ReconcileFunc {
	return func(ctx context.Context, prev, nextTree *vdom.VNode) []vdom.Patch {
		start := time.Now()

		patches := next(ctx, prev, nextTree)

		m.reconcileDuration.Observe(time.Since(start).Seconds())
		m.reconcilesTotal.Inc()

		counts := make(map[string]int)
		countByOp(patches, counts)
		total := 0
		for op, n := range counts {
			m.patchesTotal.WithLabelValues(op).Add(float64(n))
			total += n
		}
		m.patchesPerReconcile.Observe(float64(total))
		if total == 0 {
			m.noopReconciles.Inc()
		}

		return patches
	}
}
