// Package rcl binds the native ROS 2 logging primitives (librcl and
// librcutils) without cgo.
//
// The native subsystem holds exactly one mutable global configuration and
// offers no internal synchronization. This package only marshals calls
// across the foreign boundary; all locking and lifecycle rules live in the
// roslog package above it. The API interface is the complete surface the
// facade consumes:
//
//   - Configure / Fini: install and tear down the global configuration
//   - SetLoggerLevel: per-logger severity thresholds
//   - Log: one synchronous emission with a call-site location
//   - Dispatch: the multi-sink output dispatcher invoked by the relay
//   - DefaultAllocator: the allocator handed to configure
//
// On linux and darwin (amd64/arm64) Load resolves the shared libraries via
// dlopen; elsewhere Load returns ErrUnsupportedPlatform and the facade
// degrades to no-op emission. Library paths can be overridden with the
// ROSLOG_RCUTILS_LIB and ROSLOG_RCL_LIB environment variables.
package rcl
