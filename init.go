package roslog

import (
	"fmt"

	"github.com/Cyberunner23/roslog/internal/rcl"
)

// Init configures the native logging subsystem using the context's
// argument set. It is idempotent: once any caller has initialized, later
// calls return nil immediately, and N concurrent calls produce exactly one
// native configure. On success the context adopts the session's lifecycle
// guard; closing that context finalizes logging and allows a fresh Init.
//
// Lock order is fixed throughout the module: the global state lock is
// taken first and held for the whole call, the context's own lock only
// briefly nested inside it, never the other way around.
func Init(ctx *Context) error {
	if ctx == nil {
		return ErrNilContext
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.active {
		return nil
	}

	api, err := capabilityLocked()
	if err != nil {
		return err
	}

	args, err := ctx.argumentsLocked()
	if err != nil {
		return err
	}

	// The output relay. The native subsystem invokes it synchronously on
	// the emitting thread for every emission once configured. It must not
	// take the state lock: on the facade's emit path the caller already
	// holds it, and thread-unsafe native state sits between the emit call
	// and this callback. It forwards the record verbatim and decides
	// nothing.
	relay := func(ev *rcl.OutputEvent) {
		api.Dispatch(ev)
	}

	if err := api.Configure(args, api.DefaultAllocator(), relay); err != nil {
		return fmt.Errorf("configuring native logging: %w", err)
	}

	if ok := ctx.adoptGuard(begin()); !ok {
		// The context closed while configure was in flight. Its owner is
		// gone, so unwind the session rather than leave it orphaned.
		finalizeLocked()
		return ErrContextClosed
	}
	return nil
}
