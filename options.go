package sgl

import "log/slog"

// ManagerOption configures a Manager during construction.
//
// Example:
//
//	// Default: one worker per GOMAXPROCS, silent logging.
//	mgr := sgl.NewManager()
//
//	// Pin the ray-trace worker count for deterministic tests.
//	mgr := sgl.NewManager(sgl.WithWorkers(1))
type ManagerOption func(*managerOptions)

// managerOptions holds optional configuration for Manager construction.
type managerOptions struct {
	logger       *slog.Logger
	workers      int
	antialiasing bool
}

// defaultManagerOptions returns the default manager options: nil logger
// (silent, via the package-level default) and workers <= 0, meaning
// RayTraceScene falls back to runtime.GOMAXPROCS(0).
func defaultManagerOptions() managerOptions {
	return managerOptions{}
}

// WithLogger sets the logger a Manager uses for its own diagnostics
// (context lifecycle, ray-trace worker dispatch, singular-PVM aborts).
// Equivalent to calling the package-level SetLogger before constructing
// the Manager, but scoped for clarity at the call site.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(o *managerOptions) {
		o.logger = l
	}
}

// WithWorkers pins the number of row-band workers RayTraceScene uses,
// overriding the runtime.GOMAXPROCS(0) default. Values <= 0 are
// ignored. Primarily useful for deterministic tests of the row-band
// partitioning and join barrier.
func WithWorkers(n int) ManagerOption {
	return func(o *managerOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithAntialiasing enables the adaptive edge-detect supersampling pass
// after RayTraceScene's join barrier. Corresponds to the original's
// compile-time USE_ANTIALIASING flag, exposed as a runtime option since
// Go has no equivalent build-time toggle for a library consumer to set
// per Manager. Off by default.
func WithAntialiasing(enabled bool) ManagerOption {
	return func(o *managerOptions) {
		o.antialiasing = enabled
	}
}
