package roslog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Cyberunner23/roslog/internal/diag"
	"github.com/Cyberunner23/roslog/internal/rcl"
)

// globalState is the single source of truth for whether the native
// subsystem is configured. The zero value is the uninitialized state;
// nothing is constructed at import time.
//
// One lock guards one logical resource: the native logging configuration
// together with its emission path. Everything that calls into the native
// side (configure, finalize, set-level, emit) serializes here.
type globalState struct {
	mu  sync.Mutex
	api rcl.API // bound capability; nil until first Init or SetLoggerLevel

	active bool   // a configure succeeded and has not been finalized
	gen    uint64 // bumped per successful configure; stale guards no-op

	stats Stats
}

var state globalState

// IsInitialized reports whether the native subsystem is currently
// configured. Observation only, no side effects.
func IsInitialized() bool {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.active
}

// begin transitions Uninitialized to Initialized and issues the guard for
// the new session. Only the initializer calls it, with state.mu held and
// state.active false.
func begin() *Guard {
	state.gen++
	state.active = true
	state.stats.Initializations++
	return &Guard{gen: state.gen}
}

// finalizeLocked tears the native configuration down, best-effort. A
// finalize failure is logged to stderr and swallowed; teardown never fails
// outward. Caller holds state.mu with state.active true.
func finalizeLocked() {
	if err := state.api.Fini(); err != nil {
		diag.Default().Warn("finalizing native logging failed", "error", err)
	}
	state.active = false
	state.stats.Finalizations++
}

// capabilityLocked returns the bound capability, binding the default
// native libraries on first use. Caller holds state.mu.
func capabilityLocked() (rcl.API, error) {
	if state.api == nil {
		api, err := rcl.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("binding native logging libraries: %w", err)
		}
		state.api = api
	}
	return state.api, nil
}

// setCapability swaps the bound capability; tests use it to install
// doubles. It refuses to replace a capability that is currently
// configured, since the old one would be finalized through the new one.
func setCapability(api rcl.API) error {
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.active {
		return errors.New("roslog: cannot replace capability while initialized")
	}
	state.api = api
	return nil
}

// Guard finalizes the native subsystem when closed. Init issues exactly
// one per successful configure and deposits it with the owning Context; it
// is not constructible elsewhere. A guard holds the state lock only during
// construction and inside Close, never across its lifetime.
type Guard struct {
	gen uint64
}

// Close finalizes the native subsystem and returns the global state to
// uninitialized, permitting a later re-initialization. Closing twice, or
// closing after teardown already happened through another path, is a
// silent no-op; a guard from an earlier session can never tear down a
// newer one.
func (g *Guard) Close() {
	if g == nil {
		return
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if !state.active || state.gen != g.gen {
		return
	}
	finalizeLocked()
}
