package render

import "context"

// Interceptor transforms rendered output. Implementations must be safe for
// concurrent use and must not fail; the worst they may do is return body
// unchanged.
type Interceptor interface {
	Intercept(ctx context.Context, surface Surface, body string) string
}

// InterceptorFunc adapts a function to Interceptor.
type InterceptorFunc func(ctx context.Context, surface Surface, body string) string

func (f InterceptorFunc) Intercept(ctx context.Context, surface Surface, body string) string {
	return f(ctx, surface, body)
}

// Pipeline is an ordered list of interceptors.
// Use must not be called concurrently with Render.
type Pipeline struct {
	interceptors []Interceptor
}

// NewPipeline returns a pipeline running interceptors in the given order.
func NewPipeline(interceptors ...Interceptor) *Pipeline {
	p := &Pipeline{}
	p.Use(interceptors...)
	return p
}

// Use appends interceptors. Nil values are ignored.
func (p *Pipeline) Use(interceptors ...Interceptor) {
	for _, i := range interceptors {
		if i != nil {
			p.interceptors = append(p.interceptors, i)
		}
	}
}

// Len returns the number of registered interceptors.
func (p *Pipeline) Len() int {
	return len(p.interceptors)
}

// Render passes body through every interceptor in order.
func (p *Pipeline) Render(ctx context.Context, surface Surface, body string) string {
	for _, i := range p.interceptors {
		body = i.Intercept(ctx, surface, body)
	}
	return body
}
