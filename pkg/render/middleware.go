package render

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	surface Surface
}

// WithSurface sets the surface reported to interceptors. The default is
// SurfacePrimary.
func WithSurface(s Surface) MiddlewareOption {
	return func(c *middlewareConfig) { c.surface = s }
}

// Middleware runs p over every HTML response body exactly once before it is
// sent. Responses that are not HTML, carry a Content-Encoding, or have no
// body are passed through as they are written.
func Middleware(p *Pipeline, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{surface: SurfacePrimary}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		if p == nil || p.Len() == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bw := &bufferedWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(bw, r)
			if bw.buffering {
				body := p.Render(r.Context(), cfg.surface, bw.buf.String())
				bw.flushRendered(body)
				return
			}
			if bw.wroteHeader && !bw.decided {
				bw.decide(nil)
			}
		})
	}
}

// bufferedWriter decides on the first write whether the response is HTML.
// HTML is held in memory until the handler returns; anything else goes
// straight to the client.
type bufferedWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	decided     bool
	buffering   bool
	buf         bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(code int) {
	if code >= 100 && code < 200 && code != http.StatusSwitchingProtocols {
		w.ResponseWriter.WriteHeader(code)
		return
	}
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = code
	if w.Header().Get("Content-Type") != "" || !bodyAllowed(code) {
		w.decide(nil)
	}
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.decided {
		w.decide(b)
	}
	if w.buffering {
		return w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// Flush is a no-op while buffering: a partial body cannot be rewritten.
// Flushing before the response is decided commits the headers as they
// stand, and the body then streams through unmodified.
func (w *bufferedWriter) Flush() {
	if w.buffering {
		return
	}
	if !w.decided {
		w.wroteHeader = true
		w.decided = true
		w.ResponseWriter.WriteHeader(w.status)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *bufferedWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *bufferedWriter) decide(sniff []byte) {
	w.decided = true
	h := w.Header()
	ct := h.Get("Content-Type")
	if ct == "" && len(sniff) > 0 {
		ct = http.DetectContentType(sniff)
		h.Set("Content-Type", ct)
	}
	w.buffering = bodyAllowed(w.status) && h.Get("Content-Encoding") == "" && isHTML(ct)
	if !w.buffering {
		w.ResponseWriter.WriteHeader(w.status)
	}
}

func (w *bufferedWriter) flushRendered(body string) {
	h := w.Header()
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.ResponseWriter.WriteHeader(w.status)
	_, _ = w.ResponseWriter.Write([]byte(body))
}

func bodyAllowed(status int) bool {
	return status != http.StatusNoContent && status != http.StatusNotModified
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
