// Package otel traces codegen runs with OpenTelemetry.
package otel

import (
	"context"
	"sync"

	eventbus "github.com/purush7/graphql-engine/internal/eventbus"
	events "github.com/purush7/graphql-engine/internal/events"
	runid "github.com/purush7/graphql-engine/internal/runid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := &subscriber{tracer: tp.Tracer("gqlctl")}
	unsubscribe := sub.register()

	return func(ctx context.Context) error {
		unsubscribe()
		return tp.Shutdown(ctx)
	}, nil
}

type subscriber struct {
	tracer trace.Tracer
	runs   sync.Map // run id -> trace.Span
}

func (s *subscriber) register() (unsubscribe func()) {
	unsubs := []func(){
		eventbus.Subscribe(func(ctx context.Context, e events.CodegenStart) {
			rid, _ := runid.FromContext(ctx)
			_, span := s.tracer.Start(ctx, "codegen.run")
			span.SetAttributes(
				attribute.String("gqlctl.run_id", rid),
				attribute.StringSlice("gqlctl.actions", e.Actions),
			)
			s.runs.Store(rid, span)
		}),
		eventbus.Subscribe(func(ctx context.Context, e events.ActionResolved) {
			rid, _ := runid.FromContext(ctx)
			v, ok := s.runs.Load(rid)
			if !ok {
				return
			}
			v.(trace.Span).AddEvent("action.resolved", trace.WithAttributes(
				attribute.String("gqlctl.action", e.Action),
				attribute.StringSlice("gqlctl.types", e.Types),
				attribute.StringSlice("gqlctl.unresolved", e.Unresolved),
			))
		}),
		eventbus.Subscribe(func(ctx context.Context, e events.CodegenFinish) {
			rid, _ := runid.FromContext(ctx)
			v, ok := s.runs.LoadAndDelete(rid)
			if !ok {
				return
			}
			span := v.(trace.Span)
			span.SetAttributes(attribute.Int("gqlctl.files", e.Files))
			if e.Err != nil {
				span.RecordError(e.Err)
				span.SetStatus(codes.Error, e.Err.Error())
			}
			span.End()
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
