package qt

import (
	"context"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/qtkit/config"
	"github.com/kbukum/qtkit/driver"
	"github.com/kbukum/qtkit/errors"
	"github.com/kbukum/qtkit/logger"
	"github.com/kbukum/qtkit/observability"
	"github.com/kbukum/qtkit/version"
)

// Facade is the normalized, binding-agnostic surface handed to plotting
// and widget code. It is immutable after construction: every namespace
// reference and capability flag is consistent with the one binding that
// was activated.
type Facade struct {
	id      string
	api     API
	rule    Rule
	version *semver.Version

	core    driver.Namespace
	gui     driver.Namespace
	widgets driver.Namespace

	saveFile driver.SaveFileFunc
	colors   driver.ColorAccessors

	modernBinding bool
	qt5           bool
}

// ID returns the facade's instance identifier, used for log correlation.
func (f *Facade) ID() string { return f.id }

// API returns the activated binding identity.
func (f *Facade) API() API { return f.api }

// ResolvedBy returns the resolution rule that selected the binding.
func (f *Facade) ResolvedBy() Rule { return f.rule }

// Version returns the binding's resolved semantic version.
func (f *Facade) Version() *semver.Version { return f.version }

// Core returns the canonical core namespace. Signal, Slot and Property
// resolve under their canonical names regardless of the binding's native
// vocabulary.
func (f *Facade) Core() driver.Namespace { return f.core }

// GUI returns the canonical gui namespace.
func (f *Facade) GUI() driver.Namespace { return f.gui }

// Widgets returns the canonical widgets namespace. For dialects without a
// separate widgets namespace this is the gui namespace.
func (f *Facade) Widgets() driver.Namespace { return f.widgets }

// IsModernBinding reports whether the binding is a generation-5-class
// implementation with the modern signal vocabulary. Computed once at
// build time, never recomputed.
func (f *Facade) IsModernBinding() bool { return f.modernBinding }

// IsQt5 reports whether the activated binding targets a generation-5
// surface. Computed once at build time, never recomputed.
func (f *Facade) IsQt5() bool { return f.qt5 }

// builder collects the options for New.
type builder struct {
	registry    *driver.Registry
	cfg         *config.Config
	log         *logger.Logger
	metrics     *observability.Metrics
	middlewares []driver.Middleware
}

// Option configures facade construction.
type Option func(*builder)

// WithRegistry uses the given driver registry instead of the process-wide
// default.
func WithRegistry(reg *driver.Registry) Option {
	return func(b *builder) { b.registry = reg }
}

// WithConfig supplies configuration directly instead of loading it from
// the environment.
func WithConfig(cfg *config.Config) Option {
	return func(b *builder) { b.cfg = cfg }
}

// WithLogger overrides the component logger.
func WithLogger(log *logger.Logger) Option {
	return func(b *builder) { b.log = log }
}

// WithMetrics enables metric recording. Nil metrics are silently skipped.
func WithMetrics(m *observability.Metrics) Option {
	return func(b *builder) { b.metrics = m }
}

// WithMiddleware wraps every driver activation with the given middlewares.
func WithMiddleware(mws ...driver.Middleware) Option {
	return func(b *builder) { b.middlewares = append(b.middlewares, mws...) }
}

// New resolves a binding and builds the facade. Construction is
// all-or-nothing: no partial or degraded facade is ever returned.
//
// When resolution yields an explicit identity, exactly one activation is
// attempted and any failure is fatal. When it yields a candidate list,
// missing-binding and version-gate failures move probing to the next
// candidate; exhausting the list fails with a candidates-exhausted error.
func New(ctx context.Context, opts ...Option) (*Facade, error) {
	b := &builder{
		registry: driver.Default(),
		log:      logger.Get("qt"),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.cfg == nil {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, err
		}
		b.cfg = cfg
	}

	ctx, span := observability.StartSpan(ctx, "qtkit.init")
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrSurface, string(b.cfg.Surface))

	res, err := Resolve(b.registry, b.cfg)
	if err != nil {
		observability.SetSpanError(ctx, err)
		if b.metrics != nil {
			b.metrics.RecordResolution(ctx, "none", "config_error")
		}
		return nil, err
	}
	observability.SetSpanAttribute(ctx, observability.AttrResolvedBy, string(res.Rule))
	if res.IgnoredOverride != "" {
		observability.SetSpanAttribute(ctx, observability.AttrIgnoredOverride, string(res.IgnoredOverride))
	}
	if b.metrics != nil {
		b.metrics.RecordResolution(ctx, string(res.Rule), "ok")
	}

	if res.Explicit() {
		f, err := b.activate(ctx, res.API, res.Rule)
		if err != nil {
			observability.SetSpanError(ctx, err)
			return nil, err
		}
		return f, nil
	}

	f, err := b.probe(ctx, res.Candidates)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	return f, nil
}

// probe tries candidates in order. Probing is deterministic and
// order-preserving: the first candidate whose activation does not fail
// with a skippable condition wins.
func (b *builder) probe(ctx context.Context, candidates []API) (*Facade, error) {
	tried := make([]string, 0, len(candidates))
	for _, api := range candidates {
		f, err := b.activate(ctx, api, RuleCandidates)
		if err == nil {
			return f, nil
		}
		if !errors.IsSkippable(err) {
			return nil, err
		}
		tried = append(tried, string(api))
		b.log.Debug("candidate skipped", logger.Fields(
			logger.FieldBinding, string(api),
			logger.FieldError, err.Error(),
		))
	}
	err := errors.Exhausted(tried)
	b.log.WithError(err).Error("no usable binding found")
	return nil, err
}

// activate runs the uniform per-binding activation routine: look up the
// driver, initialize it, gate the version, normalize naming, and install
// capability shims.
func (b *builder) activate(ctx context.Context, api API, rule Rule) (*Facade, error) {
	start := time.Now()
	f, err := b.activateDriver(ctx, api, rule)

	if b.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		b.metrics.RecordActivation(ctx, string(api), status, time.Since(start))
	}
	observability.AddSpanEvent(ctx, "activation attempt",
		attribute.String(observability.AttrBinding, string(api)),
		attribute.Bool("ok", err == nil),
	)
	return f, err
}

func (b *builder) activateDriver(ctx context.Context, api API, rule Rule) (*Facade, error) {
	d, ok := b.registry.Lookup(api.DriverName())
	if !ok {
		return nil, errors.Unavailable(api.DriverName())
	}
	if len(b.middlewares) > 0 {
		d = driver.Chain(b.middlewares...)(d)
	}

	handles, err := d.Activate(ctx)
	if err != nil {
		return nil, err
	}

	resolved, err := version.Parse(handles.Version)
	if err != nil {
		return nil, errors.Internal("binding reported an unparseable version").
			WithCause(err).
			WithDetail("binding", string(api)).
			WithDetail("version", handles.Version)
	}
	if min := api.minimumVersion(); min != "" {
		supported, err := version.AtLeast(handles.Version, min)
		if err != nil {
			return nil, errors.Internal("version gate comparison failed").WithCause(err)
		}
		if !supported {
			return nil, errors.UnsupportedVersion(string(api), handles.Version, min)
		}
	}

	f := &Facade{
		id:            uuid.NewString(),
		api:           api,
		rule:          rule,
		version:       resolved,
		core:          aliasNamespace(handles.Core, api.symbolAliases()),
		gui:           handles.GUI,
		widgets:       handles.Widgets,
		saveFile:      normalizeSaveFile(handles),
		colors:        normalizeColors(handles.Colors),
		modernBinding: api == APIPyQt5 || api == APIPySide2,
		qt5:           api.Generation() == 5,
	}
	if f.widgets == nil {
		f.widgets = f.gui
	}

	b.registry.MarkLoaded(api.DriverName())
	b.log.Info("facade built", logger.Fields(
		logger.FieldFacadeID, f.id,
		logger.FieldBinding, string(api),
		logger.FieldVersion, resolved.String(),
		"resolved_by", string(rule),
	))
	return f, nil
}
