package csp

import (
	_ "embed"
	"net/http"
	"strconv"
)

// CompanionDirective is the policy the companion script adds after
// DOMContentLoaded. It keeps external scripts working but stops inline
// <script> elements and javascript: URLs from running from then on.
const CompanionDirective = "script-src-elem *"

// CompanionPath is the default route for CompanionHandler.
const CompanionPath = "/_xssguard/companion.js"

// CompanionScript is the browser side of the protection. It is served as an
// external file so it is not itself affected by the policy it installs.
//
//go:embed companion.js
var CompanionScript []byte

// CompanionHandler serves CompanionScript.
func CompanionHandler() http.Handler {
	size := strconv.Itoa(len(CompanionScript))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h := w.Header()
		h.Set("Content-Type", "text/javascript; charset=utf-8")
		h.Set("Content-Length", size)
		h.Set("Cache-Control", "public, max-age=86400")
		h.Set("X-Content-Type-Options", "nosniff")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(CompanionScript)
	})
}

// CompanionTag returns the script element that loads the companion from src.
func CompanionTag(src string) string {
	return `<script src="` + src + `" defer></script>`
}
