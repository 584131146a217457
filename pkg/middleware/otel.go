package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/weft-dev/weft/pkg/vdom"
)

// Default tracer name for Weft reconciliation spans.
const defaultTracerName = "weft"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "weft").
	TracerName string

	// SpanName is the name given to reconcile spans (default: "weft.reconcile").
	SpanName string

	// IncludeTreeSizes records the node counts of both trees as span
	// attributes. Counting walks each tree, so this costs O(n) per pass;
	// disabled by default.
	IncludeTreeSizes bool

	// Filter determines which passes to trace. Return true to trace the
	// pass, false to skip. If nil, all passes are traced.
	Filter func(prev, next *vdom.VNode) bool

	// AttributeExtractor extracts custom attributes from the two trees.
	// Called for each traced pass before the reconciler runs.
	AttributeExtractor func(prev, next *vdom.VNode) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithSpanName sets the span name for reconcile spans.
func WithSpanName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.SpanName = name
	}
}

// WithTreeSizes enables recording tree node counts on each span.
func WithTreeSizes(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeTreeSizes = include
	}
}

// WithReconcileFilter sets a filter function for reconciliation passes.
func WithReconcileFilter(filter func(prev, next *vdom.VNode) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(prev, next *vdom.VNode) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
		SpanName:   "weft.reconcile",
	}
}

// OpenTelemetry creates middleware that traces every reconciliation pass.
//
// The middleware:
//   - Creates a span per pass with the patch count as an attribute
//   - Records per-op patch counts (weft.patches.create, ...)
//   - Optionally records prev/next tree sizes
//
// The tracer comes from the global OpenTelemetry tracer provider; configure
// it in your main() before serving:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	    sdktrace.WithResource(resource.NewWithAttributes(
//	        semconv.SchemaURL,
//	        semconv.ServiceName("my-app"),
//	    )),
//	)
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return func(next ReconcileFunc) ReconcileFunc {
		return func(ctx context.Context, prev, nextTree *vdom.VNode) []vdom.Patch {
			if config.Filter != nil && !config.Filter(prev, nextTree) {
				return next(ctx, prev, nextTree)
			}

			var attrs []attribute.KeyValue
			if config.IncludeTreeSizes {
				attrs = append(attrs,
					attribute.Int("weft.prev_nodes", vdom.Count(prev)),
					attribute.Int("weft.next_nodes", vdom.Count(nextTree)),
				)
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(prev, nextTree)...)
			}

			spanCtx, span := config.tracer.Start(
				ctx,
				config.SpanName,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attrs...),
				trace.WithTimestamp(time.Now()),
			)
			defer span.End()

			patches := next(spanCtx, prev, nextTree)

			span.SetAttributes(attribute.Int("weft.patch_count", CountPatches(patches)))
			counts := make(map[string]int)
			countByOp(patches, counts)
			for op, n := range counts {
				span.SetAttributes(attribute.Int("weft.patches."+lowerOp(op), n))
			}
			span.SetStatus(codes.Ok, "")

			return patches
		}
	}
}

// lowerOp lowercases the first rune of a patch op name. Op names are ASCII
// (Create, Remove, ...), so a byte tweak is enough.
func lowerOp(op string) string {
	if op == "" {
		return op
	}
	b := []byte(op)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
