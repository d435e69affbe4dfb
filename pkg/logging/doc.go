// Package logging configures structured logging for wwutils.
//
// It wraps log/slog. Libraries take a *slog.Logger through an option and
// fall back to Nop; the CLI builds one from its configuration:
//
//	log := logging.New(logging.Config{
//	    Level:  logging.ParseLevel(cfg.LogLevel),
//	    Format: logging.ParseFormat(cfg.LogFormat),
//	})
//	router := hashroute.NewRouter(history, hashroute.WithLogger(log))
//
// Logs go to stderr so that command output on stdout stays parseable.
package logging
