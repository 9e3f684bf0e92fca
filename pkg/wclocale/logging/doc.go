// Package logging provides a minimal logging facade for the wclocale
// wrapper and its tooling.
//
// The package defines a Logger interface wrapping a subset of log/slog. The
// interface is intentionally small so applications can provide their own
// implementation for testing or integration with existing logging systems.
//
//	logger := logging.New(nil) // binds slog.Default()
//	logger.Info(ctx, "probing ambient locale", "selector", wclocale.Ambient)
//
// The wclocale package itself never logs; the facade exists for the probe
// command, examples and applications embedding the bridge.
package logging
