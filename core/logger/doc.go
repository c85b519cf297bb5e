// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/admingate/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("admingate"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("admingate"))
//
//	log.Info("Server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// # Configuration
//
// NewFromConfig reads LOG_LEVEL, LOG_FORMAT and LOG_FILE. When LOG_FILE is set,
// records go to a size-rotated file (lumberjack) and the returned io.Closer must be
// closed on shutdown:
//
//	log, closer, err := logger.NewFromConfig(cfg.Log)
//	if err != nil {
//		return err
//	}
//	defer closer.Close()
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops:
//
//	log.Error("Login failed",
//		logger.Error(err),          // omitted when err is nil
//		logger.RequestID(reqID),    // omitted when reqID is ""
//		logger.Component("admin"),
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
