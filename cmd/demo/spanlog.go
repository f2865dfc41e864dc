package main

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// spanLogger is a SpanProcessor that writes finished spans to the demo logger.
type spanLogger struct {
	logger *zap.Logger
}

var _ sdktrace.SpanProcessor = (*spanLogger)(nil)

func (p *spanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *spanLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	fields := []zap.Field{
		zap.String("span", s.Name()),
		zap.String("trace_id", s.SpanContext().TraceID().String()),
		zap.Duration("duration", s.EndTime().Sub(s.StartTime())),
		zap.String("status", s.Status().Code.String()),
	}
	for _, kv := range s.Attributes() {
		fields = append(fields, zap.String(string(kv.Key), kv.Value.Emit()))
	}
	p.logger.Info("span", fields...)
}

func (p *spanLogger) Shutdown(context.Context) error { return nil }

func (p *spanLogger) ForceFlush(context.Context) error { return nil }
