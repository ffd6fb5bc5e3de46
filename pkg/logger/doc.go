// Package logger builds *slog.Logger instances from functional options and
// injects context-scoped attributes at log time.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// on each record. Helpers in attr.go keep attribute keys consistent across
// packages (component, event, error, client, user_agent).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "uaprobe"),
//	    logger.WithContextExtractors(browser.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "detected", logger.Component("probe"))
//
// Settings can also come from the environment through Config:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.New(cfg.Options()...)
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Debug("press ignored", logger.Error(err))
//
// needs no nil check.
package logger
