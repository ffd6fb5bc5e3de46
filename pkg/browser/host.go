package browser

import (
	"net/http"
	"strings"
)

// Host describes the environment the caller runs in, or the client it serves.
type Host struct {
	// UserAgent is the raw navigator.userAgent value.
	UserAgent string
	// AppVersion is the raw navigator.appVersion value.
	AppVersion string
	// Window reports whether browser globals are present.
	Window bool
}

// Provider supplies the current host descriptor.
type Provider interface {
	Host() Host
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() Host

func (f ProviderFunc) Host() Host { return f() }

type staticProvider struct{ host Host }

func (p staticProvider) Host() Host { return p.host }

// Static returns a Provider that always yields h.
func Static(h Host) Provider {
	return staticProvider{host: h}
}

// Server returns a Provider describing a host without browser globals.
func Server() Provider {
	return staticProvider{}
}

// NewHost builds a browser host from a user-agent string, deriving AppVersion
// the way browsers do: the user agent without its leading "Mozilla/" token.
func NewHost(userAgent string) Host {
	return Host{
		UserAgent:  userAgent,
		AppVersion: appVersion(userAgent),
		Window:     true,
	}
}

// FromRequest describes the client that issued r. Requests without a
// User-Agent header are treated as coming from a non-browser host.
func FromRequest(r *http.Request) Host {
	if r == nil {
		return Host{}
	}
	ua := r.UserAgent()
	if ua == "" {
		return Host{}
	}
	return NewHost(ua)
}

func appVersion(ua string) string {
	return strings.TrimPrefix(ua, "Mozilla/")
}
