// Package browser answers "where is this code running and which engine is it"
// questions from an explicit host descriptor instead of ambient globals.
//
// A Host carries the user-agent string, the navigator app version and a flag
// telling whether browser globals are present. Every predicate takes the Host
// as an argument and re-reads it on each call; nothing is cached, so detection
// logic is testable without a real browser.
//
// # Predicates
//
//   - IsInBrowser / IsServer - mutually exclusive on Host.Window
//   - GetUA - lower-cased user agent, or "" outside a browser
//   - IsMobile - matched against the raw-case AppVersion
//   - IsOpera - matched against the raw-case UserAgent
//   - IsIE, IsIE9, IsEdge, IsChrome, IsPhantomJS, IsFirefox - matched against GetUA
//
// IsMobile and IsOpera deliberately keep their case-sensitive comparison
// against the raw strings while the remaining checks use the lower-cased UA.
// IsChrome excludes Edge, which advertises a Chrome-compatible token.
//
// # Obtaining a Host
//
// Server-side code usually describes the requesting client:
//
//	host := browser.FromRequest(r)
//	if browser.IsMobile(host) {
//	    // serve compact layout
//	}
//
// Middleware stores that host in the request context, and FromContext reads
// it back further down the chain:
//
//	mux.Handle("/", browser.Middleware()(handler))
//
// Code that needs a fixed descriptor uses Static or Server:
//
//	p := browser.Server()
//	browser.IsServer(p.Host()) // true
//
// # Detection summary
//
// Detect collects every predicate together with the vendor name and version
// (see ParseVendor) into an Info value whose Identifier method yields a short
// label for logs, for example "Chrome/91.0.4472.124 (desktop)".
package browser
