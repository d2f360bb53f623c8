// Package render runs rendered HTML through an ordered list of post-render
// interceptors before it reaches the client.
//
// A Pipeline is an explicit, synchronous chain: each Interceptor receives the
// output of the previous one. Nothing is registered by name and interceptors
// must not assume anything about each other. Protector is the interceptor
// that neutralizes script vectors with package defuse; hosts add it once,
// usually first.
//
// # Surfaces
//
// Output is rendered on one of two surfaces. SurfacePrimary is the main page
// body and receives the full rule set. SurfaceSecondary covers secondary
// output such as tool and admin pages that embed their own markup; it gets
// the relaxed rule set (scriptless rules off), or nothing at all when the
// host configures it as lax or a skip predicate fires.
//
// # HTTP
//
// Middleware buffers text/html responses, runs the pipeline once over the
// full body and sends the result. Other content types are streamed through
// untouched.
//
//	pipeline := render.NewPipeline(
//	    render.NewProtector(render.WithFlags(cfg.Flags()), render.WithMetrics(metrics)),
//	)
//	r.Use(render.Middleware(pipeline))
//	r.With(render.Middleware(pipeline, render.WithSurface(render.SurfaceSecondary))).Get("/tools", tools)
package render
