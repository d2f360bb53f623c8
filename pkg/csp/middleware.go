package csp

import (
	"net/http"
	"sync"
)

// Middleware appends the policy returned by Directives to every response.
// The header is added when the response headers are committed, so a policy
// the handler sets itself is kept alongside ours.
func Middleware(scriptless bool) func(http.Handler) http.Handler {
	value := Directives(scriptless)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hw := &headerWriter{ResponseWriter: w, value: value}
			next.ServeHTTP(hw, r)
			// handlers that never write still get the header
			hw.commit()
		})
	}
}

type headerWriter struct {
	http.ResponseWriter
	value string
	once  sync.Once
}

func (w *headerWriter) commit() {
	w.once.Do(func() {
		w.ResponseWriter.Header().Add(HeaderName, w.value)
	})
}

func (w *headerWriter) WriteHeader(code int) {
	w.commit()
	w.ResponseWriter.WriteHeader(code)
}

func (w *headerWriter) Write(b []byte) (int, error) {
	w.commit()
	return w.ResponseWriter.Write(b)
}

func (w *headerWriter) Flush() {
	w.commit()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *headerWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
