package enhancer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/comalice/statestore"
)

// tracerName is the instrumentation scope name for store tracing.
const tracerName = "github.com/comalice/statestore"

// Tracing returns an enhancer that wraps each dispatch in a "statestore.dispatch" span
// and each reducer replacement in a "statestore.replace_reducer" span.
//
// A nil provider uses the global TracerProvider, which is a noop until one is installed.
// On error the span status is set to codes.Error and the error code is recorded as the
// "statestore.error.code" attribute.
func Tracing(provider trace.TracerProvider) statestore.Enhancer {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	tracer := provider.Tracer(tracerName)
	return wrap(func(s statestore.Store) statestore.Store {
		return &tracingStore{Store: s, tracer: tracer}
	})
}

type tracingStore struct {
	statestore.Store
	tracer trace.Tracer
}

func (s *tracingStore) Dispatch(action any) (statestore.Action, error) {
	_, span := s.tracer.Start(context.Background(), "statestore.dispatch",
		trace.WithAttributes(attribute.String("statestore.action.type", actionType(action))),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	a, err := s.Store.Dispatch(action)
	finish(span, err)
	return a, err
}

func (s *tracingStore) ReplaceReducer(next statestore.Reducer) error {
	_, span := s.tracer.Start(context.Background(), "statestore.replace_reducer",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	err := s.Store.ReplaceReducer(next)
	finish(span, err)
	return err
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("statestore.error.code", string(statestore.CodeOf(err))))
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
