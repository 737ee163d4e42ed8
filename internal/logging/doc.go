// Package logging provides structured logging for tripbook.
//
// The terminal belongs to the TUI, so logs never go to stdout. A [Logger]
// writes JSON lines to {dataDir}/debug.log, or to stderr when no data
// directory is configured (plain CLI commands).
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dataDir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("plan submitted", "destination", spec.Destination)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	runLogger := logger.WithSession(uuid.NewString())
//	clientLogger := runLogger.WithComponent("planclient")
//	clientLogger.Warn("plan has duplicate day numbers", "error", err)
//
// Output:
//
//	{"time":"...","level":"WARN","msg":"plan has duplicate day numbers","session_id":"...","component":"planclient","error":"..."}
//
// # Testing
//
// Use [NopLogger] to discard output.
package logging
