// Package csp emits the Content-Security-Policy directives that back the
// rewriting done by package defuse, and serves the small browser companion
// script that tightens the policy once the page has loaded.
//
// The header is always appended with Header().Add, never Set, so that a policy
// configured elsewhere by the host application is combined with ours instead
// of being replaced. Browsers enforce every CSP header independently.
//
//	r.Use(csp.Middleware(cfg.Scriptless))
//	r.Handle(csp.CompanionPath, csp.CompanionHandler())
package csp
