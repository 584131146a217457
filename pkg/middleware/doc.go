// Package middleware provides instrumentation for the reconciliation
// pipeline.
//
// The differ itself is a pure function with no hooks; instrumentation
// wraps it instead. A ReconcileFunc is the differ in wrappable form, a
// Middleware decorates one, and Chain composes them:
//
//	reconcile := middleware.Chain(
//	    middleware.Reconciler(),
//	    middleware.Prometheus(middleware.WithNamespace("myapp")),
//	    middleware.OpenTelemetry(),
//	)
//	patches := reconcile(ctx, prev, next)
//
// Both built-in middlewares are configured with functional options and
// observe every pass: Prometheus records counters and histograms (pass
// count, duration, patch operations by op), OpenTelemetry opens a span
// per pass with the patch count as an attribute.
package middleware
