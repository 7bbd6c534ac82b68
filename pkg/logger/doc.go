// Package logger assembles the module's slog loggers: environment-driven
// level and format, shared attribute helpers, and a handler decorator that
// pulls request-scoped values (request ID, tenant ID) out of the context on
// every log call.
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.NewFromConfig(cfg,
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			tenant.LoggerExtractor(),
//		),
//	)
//	slog.SetDefault(log)
//
// Handlers log through the context-aware methods (InfoContext, ErrorContext)
// so the decorator can attach the per-request attributes.
package logger
