// Package roslog is a thread-safe facade over the ROS 2 native logging
// subsystem (librcl / librcutils).
//
// The native libraries keep exactly one mutable global logging
// configuration and provide no internal synchronization: concurrent
// initialization, teardown, level changes or emissions are undefined
// behavior down there. This package serializes every native call behind a
// single process-wide lock and owns the lifecycle rules that make that
// global safe to share:
//
//   - Init configures the subsystem idempotently from a Context's
//     argument set; the context adopts the lifecycle guard.
//   - Closing the owning context finalizes the subsystem; afterwards a
//     fresh Init succeeds again, so tests can start and stop logging
//     repeatedly.
//   - Log is best-effort: before Init or after teardown it is a silent
//     no-op, and it never returns an error.
//   - SetLoggerLevel works even before Init; the native side keeps its
//     own default level table.
//
// # Usage
//
//	cfg, err := rosargs.LoadConfig(configPath)
//	if err != nil {
//		return err
//	}
//	ctx := roslog.NewContext(cfg.BuildArgs())
//	if err := roslog.Init(ctx); err != nil {
//		return err
//	}
//	defer ctx.Close()
//
//	log := roslog.Named("camera.driver")
//	log.Infof("exposure set to %dms", 14)
//
// # Thread safety
//
// All exported functions and methods are safe for concurrent use. Calls
// are linearized by one lock: two racing emissions are each delivered
// whole, in lock-acquisition order, and no emission can observe a
// half-configured subsystem. None of the operations may be called from
// inside the native output path; that would deadlock against the emitting
// caller.
package roslog
