package main

import (
	"context"
	"embed"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/microcosm-cc/bluemonday"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/xssguard/pkg/config"
	"github.com/dmitrymomot/xssguard/pkg/csp"
	"github.com/dmitrymomot/xssguard/pkg/httpserver"
	"github.com/dmitrymomot/xssguard/pkg/logger"
	"github.com/dmitrymomot/xssguard/pkg/message"
	"github.com/dmitrymomot/xssguard/pkg/render"
)

//go:embed messages
var messagesFS embed.FS

type app struct {
	cfg      config.Config
	log      *slog.Logger
	messages *message.Formatter
	registry *prometheus.Registry
	pipeline *render.Pipeline
}

func newApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*app, error) {
	post := []message.PostProcessor{message.Sanitize(bluemonday.UGCPolicy())}
	if cfg.ProtectMessages {
		post = append(post, message.Protect(cfg.Flags()))
	} else {
		log.WarnContext(ctx, "message protection disabled, plain-text messages will not be defused",
			logger.Component("message"))
	}

	messages, err := message.New(ctx, message.FSSource(messagesFS, "messages"),
		message.WithLogger(log.With(logger.Component("message"))),
		message.WithPostProcessors(post...),
	)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	protector := render.NewProtector(
		render.WithFlags(cfg.Flags()),
		render.WithLaxSecondary(cfg.LaxSecondary),
		render.WithSecondarySkip(isMobileView),
		render.WithLogger(log.With(logger.Component("render"))),
		render.WithMetrics(render.NewMetrics(registry)),
	)

	return &app{
		cfg:      cfg,
		log:      log,
		messages: messages,
		registry: registry,
		// the companion tag is trusted markup and goes in after the protector
		pipeline: render.NewPipeline(protector, render.InjectHead(csp.CompanionTag(csp.CompanionPath))),
	}, nil
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.Get("/healthz", httpserver.Health(a.log))
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	r.Handle(csp.CompanionPath, csp.CompanionHandler())

	r.Group(func(r chi.Router) {
		r.Use(csp.Middleware(a.cfg.Scriptless), detectMobileView)

		r.With(render.Middleware(a.pipeline)).Get("/", a.home)
		r.Route("/preview", func(r chi.Router) {
			r.Use(render.Middleware(a.pipeline, render.WithSurface(render.SurfaceSecondary)))
			r.Get("/", a.preview)
		})
		r.Get("/messages/{key}", a.formatMessage)
	})
	return r
}

// home echoes the query without escaping, the way a careless extension
// would. The protector is what keeps it inert.
func (a *app) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := a.requestLang(r)
	q := r.URL.Query().Get("q")
	site := a.messages.Format(ctx, lang, "site.name", message.FormatPlain)
	title := a.messages.Format(ctx, lang, "home.title", message.FormatEscaped, "site", site)

	var b strings.Builder
	b.WriteString("<h1>" + title + "</h1>")
	b.WriteString("<p>" + a.messages.Format(ctx, lang, "home.intro", message.FormatParse) + "</p>")
	b.WriteString("<p>" + a.protectionStatus(ctx, lang) + "</p>")
	if q != "" {
		b.WriteString("<p>" + a.messages.Format(ctx, lang, "home.search", message.FormatParse, "query", q) + "</p>")
		b.WriteString("<p>" + a.messages.Format(ctx, lang, "home.echo", message.FormatEscaped) + "</p>")
		b.WriteString(`<div class="echo">` + q + "</div>")
		b.WriteString("<p>" + a.messages.Format(ctx, lang, "home.preview-link", message.FormatParse, "query", url.QueryEscape(q)) + "</p>")
	}

	writePage(w, title, b.String())
}

func (a *app) preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := a.requestLang(r)
	site := a.messages.Format(ctx, lang, "site.name", message.FormatPlain)

	var b strings.Builder
	b.WriteString("<p>" + a.messages.Format(ctx, lang, "preview.note", message.FormatEscaped) + "</p>")
	b.WriteString(`<div class="echo">` + r.URL.Query().Get("q") + "</div>")

	writePage(w, a.messages.Format(ctx, lang, "preview.title", message.FormatEscaped, "site", site), b.String())
}

// formatMessage serves one catalog message as plain text. Text formats are
// defused with the word joiner, so the response reads unchanged but cannot
// start a tag when pasted into HTML.
func (a *app) formatMessage(w http.ResponseWriter, r *http.Request) {
	format := message.FormatText
	if name := r.URL.Query().Get("format"); name != "" {
		f, err := message.ParseFormat(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		format = f
	}

	var params []string
	for name, values := range r.URL.Query() {
		if name == "format" || name == "uselang" || len(values) == 0 {
			continue
		}
		params = append(params, name, values[0])
	}

	out := a.messages.Format(r.Context(), a.requestLang(r), chi.URLParam(r, "key"), format, params...)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = io.WriteString(w, out)
}

func (a *app) protectionStatus(ctx context.Context, lang string) string {
	if a.cfg.ProtectMessages {
		return a.messages.Format(ctx, lang, "status.protected", message.FormatEscaped)
	}
	return a.messages.Format(ctx, lang, "status.reduced", message.FormatEscaped)
}

func writePage(w http.ResponseWriter, title, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, "<!DOCTYPE html>\n<html><head><title>"+title+"</title></head><body>"+body+"</body></html>\n")
}

func (a *app) requestLang(r *http.Request) string {
	return a.messages.Negotiate(r.URL.Query().Get("uselang"), r.Header.Get("Accept-Language"))
}

type mobileViewKey struct{}

// detectMobileView marks requests that asked for the mobile skin. Mobile
// previews embed inline scripts of their own, so their secondary output is
// not rewritten.
func detectMobileView(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("useformat") == "mobile" {
			r = r.WithContext(context.WithValue(r.Context(), mobileViewKey{}, true))
		}
		next.ServeHTTP(w, r)
	})
}

func isMobileView(ctx context.Context) bool {
	mobile, _ := ctx.Value(mobileViewKey{}).(bool)
	return mobile
}
