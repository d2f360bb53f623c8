package render

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/xssguard/pkg/defuse"
	"github.com/dmitrymomot/xssguard/pkg/logger"
)

// Protector is the Interceptor that runs defuse over rendered HTML.
type Protector struct {
	flags         defuse.Flags
	laxSecondary  bool
	skipSecondary func(ctx context.Context) bool
	logger        *slog.Logger
	metrics       *Metrics
}

// ProtectorOption configures a Protector.
type ProtectorOption func(*Protector)

// WithFlags sets the rewrite flags used on the primary surface.
func WithFlags(flags defuse.Flags) ProtectorOption {
	return func(p *Protector) { p.flags = flags }
}

// WithLaxSecondary leaves the secondary surface completely untouched.
func WithLaxSecondary(lax bool) ProtectorOption {
	return func(p *Protector) { p.laxSecondary = lax }
}

// WithSecondarySkip registers a predicate that exempts a request's secondary
// output from rewriting, for example views that legitimately embed inline
// scripts the rules would break.
func WithSecondarySkip(skip func(ctx context.Context) bool) ProtectorOption {
	return func(p *Protector) { p.skipSecondary = skip }
}

func WithLogger(l *slog.Logger) ProtectorOption {
	return func(p *Protector) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithMetrics(m *Metrics) ProtectorOption {
	return func(p *Protector) { p.metrics = m }
}

// NewProtector returns a Protector. Without options it rewrites the primary
// surface with default flags and the secondary surface with the relaxed
// rule set.
func NewProtector(opts ...ProtectorOption) *Protector {
	p := &Protector{logger: logger.Discard()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Intercept implements Interceptor.
func (p *Protector) Intercept(ctx context.Context, surface Surface, body string) string {
	flags := p.flags
	if surface == SurfaceSecondary {
		if p.laxSecondary || (p.skipSecondary != nil && p.skipSecondary(ctx)) {
			p.metrics.observeSkip(surface)
			return body
		}
		// meta and base are left alone on secondary output
		flags = defuse.Flags{}
	}

	out, report := defuse.RewriteReport(body, defuse.ModeHTML, flags)
	p.metrics.observe(surface, report)

	if report.Changed() {
		counts := make(map[string]int, len(report))
		for _, c := range report {
			counts[c.Rule] = c.Count
		}
		p.logger.DebugContext(ctx, "rendered output rewritten",
			logger.Surface(surface.String()),
			logger.Mode(defuse.ModeHTML.String()),
			logger.Rewrites(report.Total()),
			logger.Rules(counts),
		)
	}
	return out
}
