// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON lines on stderr
//   - Development: colored console output with caller and stack traces
//
// Components receive a *zap.Logger (usually Logger.Named("component")) and
// log with structured fields rather than formatted strings.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("token refreshed", zap.String("token_type", pair.TokenType))
//	logger.Warn("refresh failed", zap.Error(err))
package logging
