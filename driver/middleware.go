package driver

import (
	"context"
	"time"

	"github.com/kbukum/qtkit/logger"
	"github.com/kbukum/qtkit/observability"
)

// Middleware wraps a Driver with cross-cutting behavior around Activate.
type Middleware func(Driver) Driver

// Chain composes middlewares; the first middleware is outermost.
func Chain(mws ...Middleware) Middleware {
	return func(d Driver) Driver {
		for i := len(mws) - 1; i >= 0; i-- {
			d = mws[i](d)
		}
		return d
	}
}

// WithLogging returns a Middleware that logs each activation attempt and
// its outcome.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Driver) Driver {
		return &loggingDriver{inner: inner, log: log}
	}
}

type loggingDriver struct {
	inner Driver
	log   *logger.Logger
}

func (d *loggingDriver) Name() string { return d.inner.Name() }

func (d *loggingDriver) Activate(ctx context.Context) (*Handles, error) {
	start := time.Now()
	d.log.Debug("activating binding", logger.Fields(logger.FieldBinding, d.inner.Name()))
	handles, err := d.inner.Activate(ctx)
	if err != nil {
		d.log.WithError(err).Warn("binding activation failed", logger.Fields(
			logger.FieldBinding, d.inner.Name(),
		))
		return nil, err
	}
	d.log.Info("binding activated", logger.Fields(
		logger.FieldBinding, d.inner.Name(),
		logger.FieldVersion, handles.Version,
		"duration_ms", time.Since(start).Milliseconds(),
	))
	return handles, nil
}

// WithTracing returns a Middleware that creates an OpenTelemetry span
// around each Activate call. The span name is "qtkit.activate.{driver}".
func WithTracing() Middleware {
	return func(inner Driver) Driver {
		return &tracingDriver{inner: inner}
	}
}

type tracingDriver struct {
	inner Driver
}

func (d *tracingDriver) Name() string { return d.inner.Name() }

func (d *tracingDriver) Activate(ctx context.Context) (*Handles, error) {
	ctx, span := observability.StartSpan(ctx, "qtkit.activate."+d.inner.Name())
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrBinding, d.inner.Name())
	handles, err := d.inner.Activate(ctx)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	observability.SetSpanAttribute(ctx, observability.AttrVersion, handles.Version)
	return handles, nil
}
