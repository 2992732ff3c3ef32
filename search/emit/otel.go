package emit

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelEmitter implements Emitter by creating one OpenTelemetry span per event.
//
// Each event becomes a span with:
//   - Span name: event.Msg (e.g., "search_start", "progress")
//   - Attributes: run ID, step, state, and all event.Meta fields
//   - Status: Error if event.Meta["error"] is set
//
// Spans are ended immediately; events are points in time.
//
// Usage:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//
//	emitter := emit.NewOTelEmitter(otel.Tracer("statesearch"))
//	engine, _ := search.New[int](search.WithEmitter(emitter))
type OTelEmitter struct {
	tracer trace.Tracer

	// provider is flushed by Flush; nil means the global provider.
	provider trace.TracerProvider
}

// NewOTelEmitter creates a new OTelEmitter using tracer. Flush on the
// result targets the global tracer provider, so use
// NewOTelEmitterForProvider when tracer comes from another one.
func NewOTelEmitter(tracer trace.Tracer) *OTelEmitter {
	return &OTelEmitter{tracer: tracer}
}

// NewOTelEmitterForProvider creates an OTelEmitter whose spans come from
// tp under the instrumentation name and whose Flush flushes tp.
func NewOTelEmitterForProvider(tp trace.TracerProvider, name string) *OTelEmitter {
	return &OTelEmitter{tracer: tp.Tracer(name), provider: tp}
}

// Emit creates and immediately ends a span for the event.
func (o *OTelEmitter) Emit(event Event) {
	o.emit(context.Background(), event)
}

// EmitBatch creates one span per event under ctx.
func (o *OTelEmitter) EmitBatch(ctx context.Context, events []Event) error {
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		o.emit(ctx, event)
	}
	return nil
}

func (o *OTelEmitter) emit(ctx context.Context, event Event) {
	_, span := o.tracer.Start(ctx, event.Msg)
	defer span.End()

	span.SetAttributes(
		attribute.String("statesearch.run_id", event.RunID),
		attribute.Int("statesearch.step", event.Step),
		attribute.String("statesearch.state", event.State),
	)
	o.addMetadataAttributes(span, event.Meta)

	if err, ok := event.Meta["error"].(string); ok {
		span.SetStatus(codes.Error, err)
		span.RecordError(fmt.Errorf("%s", err))
	}
}

// Flush forces export of pending spans when the emitter's tracer provider
// supports it (the SDK provider does, the no-op provider does not).
func (o *OTelEmitter) Flush(ctx context.Context) error {
	type flusher interface {
		ForceFlush(context.Context) error
	}

	tp := o.provider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if f, ok := tp.(flusher); ok {
		return f.ForceFlush(ctx)
	}
	return nil
}

// addMetadataAttributes converts event metadata to span attributes.
// Well-known search keys are namespaced; anything else keeps its key.
func (o *OTelEmitter) addMetadataAttributes(span trace.Span, meta map[string]interface{}) {
	for key, value := range meta {
		attrKey := key
		switch key {
		case "strategy", "nodes_visited", "fringe_size", "expanded", "cost", "depth":
			attrKey = "statesearch." + key
		}

		switch v := value.(type) {
		case string:
			span.SetAttributes(attribute.String(attrKey, v))
		case int:
			span.SetAttributes(attribute.Int(attrKey, v))
		case int64:
			span.SetAttributes(attribute.Int64(attrKey, v))
		case float64:
			span.SetAttributes(attribute.Float64(attrKey, v))
		case bool:
			span.SetAttributes(attribute.Bool(attrKey, v))
		case time.Duration:
			span.SetAttributes(attribute.Int64(attrKey, int64(v/time.Millisecond)))
		default:
			span.SetAttributes(attribute.String(attrKey, fmt.Sprintf("%v", v)))
		}
	}
}
