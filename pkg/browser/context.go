package browser

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/frontkit/pkg/logger"
)

type contextKey struct{}

// WithContext stores h in ctx.
func WithContext(ctx context.Context, h Host) context.Context {
	return context.WithValue(ctx, contextKey{}, h)
}

// FromContext returns the host stored in ctx. The boolean result is false when
// none was stored, in which case the zero Host (a server) is returned.
func FromContext(ctx context.Context) (Host, bool) {
	if ctx == nil {
		return Host{}, false
	}
	h, ok := ctx.Value(contextKey{}).(Host)
	return h, ok
}

// Middleware attaches the requesting client's host descriptor to every
// request context.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), FromRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerExtractor returns a context extractor that adds the client's short
// identifier to log records under the key "client".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		h, ok := FromContext(ctx)
		if !ok || !h.Window {
			return slog.Attr{}, false
		}
		return logger.Client(Detect(h).Identifier()), true
	}
}
