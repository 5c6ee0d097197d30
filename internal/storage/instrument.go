package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cmsapi/internal/storage"

// instrumented decorates a Storage with a span per call and an operation counter.
type instrumented struct {
	next   Storage
	driver string
	ops    *prometheus.CounterVec
	tracer trace.Tracer
}

// Instrument wraps s so every Put, Delete and PresignGet emits an OpenTelemetry span and
// increments storage_operations_total{driver,operation,result}. A collector already
// registered on reg is reused. A nil reg skips registration.
func Instrument(s Storage, driver string, reg prometheus.Registerer) (Storage, error) {
	ops := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_operations_total",
			Help: "Total number of object storage operations by result.",
		},
		[]string{"driver", "operation", "result"},
	)
	if reg != nil {
		if err := reg.Register(ops); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			ops = existing
		}
	}
	return &instrumented{
		next:   s,
		driver: driver,
		ops:    ops,
		tracer: otel.Tracer(tracerName),
	}, nil
}

func (i *instrumented) start(ctx context.Context, op, key string) (context.Context, trace.Span) {
	return i.tracer.Start(ctx, "storage."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("storage.driver", i.driver),
			attribute.String("storage.key", key),
		),
	)
}

func (i *instrumented) finish(span trace.Span, op string, err error) {
	result := "success"
	if err != nil {
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	i.ops.WithLabelValues(i.driver, op, result).Inc()
	span.End()
}

func (i *instrumented) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	ctx, span := i.start(ctx, "put", key)
	span.SetAttributes(attribute.Int64("storage.size", opt.Size), attribute.String("storage.content_type", opt.ContentType))
	info, err := i.next.Put(ctx, key, r, opt)
	i.finish(span, "put", err)
	return info, err
}

func (i *instrumented) Delete(ctx context.Context, key string) error {
	ctx, span := i.start(ctx, "delete", key)
	err := i.next.Delete(ctx, key)
	i.finish(span, "delete", err)
	return err
}

func (i *instrumented) URL(key string) string {
	return i.next.URL(key)
}

func (i *instrumented) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	ctx, span := i.start(ctx, "presign_get", key)
	u, err := i.next.PresignGet(ctx, key, expiry)
	i.finish(span, "presign_get", err)
	return u, err
}
