// Command uaprobe reports how frontkit's browser helpers classify a host.
//
// The user agent comes from the first argument or from UAPROBE_USER_AGENT
// (a .env file in the working directory is honoured). Without either, the
// host is treated as a server.
//
//	uaprobe "Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) ..."
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/frontkit/pkg/browser"
	"github.com/dmitrymomot/frontkit/pkg/config"
	"github.com/dmitrymomot/frontkit/pkg/logger"
)

type probeConfig struct {
	UserAgent  string `env:"UAPROBE_USER_AGENT"`
	AppVersion string `env:"UAPROBE_APP_VERSION"`
	HasWindow  bool   `env:"UAPROBE_HAS_WINDOW" envDefault:"true"`
	Log        logger.Config
}

func main() {
	var cfg probeConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := append(cfg.Log.Options(),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(browser.LoggerExtractor()),
	)
	log := logger.New(opts...)

	if err := run(context.Background(), cfg, os.Args[1:], os.Stdout, log); err != nil {
		log.Error("probe failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg probeConfig, args []string, out io.Writer, log *slog.Logger) error {
	host := hostFor(cfg, args)
	ctx = browser.WithContext(ctx, host)
	info := browser.Detect(host)

	log.DebugContext(ctx, "host classified",
		logger.Component("uaprobe"),
		logger.UserAgent(host.UserAgent),
		logger.Group("vendor",
			slog.String("name", info.Vendor.Name),
			slog.String("version", info.Vendor.Version),
		),
	)

	return writeReport(out, info)
}

func hostFor(cfg probeConfig, args []string) browser.Host {
	if ua := strings.TrimSpace(strings.Join(args, " ")); ua != "" {
		return browser.NewHost(ua)
	}
	if cfg.UserAgent == "" {
		return browser.Server().Host()
	}

	h := browser.NewHost(cfg.UserAgent)
	if cfg.AppVersion != "" {
		h.AppVersion = cfg.AppVersion
	}
	h.Window = cfg.HasWindow
	return h
}

func writeReport(w io.Writer, info browser.Info) error {
	rows := []struct {
		key   string
		value any
	}{
		{"client", info.Identifier()},
		{"in_browser", info.InBrowser},
		{"vendor", info.Vendor.Name},
		{"version", info.Vendor.Version},
		{"mobile", info.Mobile},
		{"opera", info.Opera},
		{"ie", info.IE},
		{"ie9", info.IE9},
		{"edge", info.Edge},
		{"chrome", info.Chrome},
		{"phantomjs", info.PhantomJS},
		{"firefox", info.Firefox},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-10s %v\n", row.key, row.value); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
