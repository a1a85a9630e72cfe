package roslog

import (
	"fmt"

	"github.com/Cyberunner23/roslog/internal/rcl"
)

// SetLoggerLevel sets the severity threshold for the named logger. It may
// be called before Init: the native subsystem keeps its own default level
// table independent of the logging configuration. The state lock is taken
// purely to serialize against concurrent configure, finalize and emit
// calls; the state content itself is not consulted.
//
// A name that cannot be represented as a native string (embedded NUL)
// returns an error before any native call. A native failure is surfaced
// as a wrapped rcl.ForeignError.
func SetLoggerLevel(name string, severity Severity) error {
	state.mu.Lock()
	defer state.mu.Unlock()

	cname, err := rcl.NewCString(name)
	if err != nil {
		return fmt.Errorf("logger name: %w", err)
	}

	api, err := capabilityLocked()
	if err != nil {
		return err
	}
	if err := api.SetLoggerLevel(cname, int32(severity)); err != nil {
		return fmt.Errorf("setting level for %q: %w", name, err)
	}
	state.stats.LevelChanges++
	return nil
}
