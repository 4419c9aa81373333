// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Log lines can be correlated with traces by annotating a logger with
// the active trace context:
//
//	logger := logging.NewDefault()
//	logger.WithTrace(ctx).Info("request accepted", zap.String("route", route))
package logging
