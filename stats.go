package roslog

// Stats is a snapshot of facade counters.
type Stats struct {
	// Initialized mirrors IsInitialized at snapshot time.
	Initialized bool `json:"initialized"`

	// Initializations counts successful native configures.
	Initializations uint64 `json:"initializations"`

	// Finalizations counts completed teardowns.
	Finalizations uint64 `json:"finalizations"`

	// Emitted counts emissions handed to the native subsystem.
	Emitted uint64 `json:"emitted"`

	// Dropped counts emissions discarded while uninitialized.
	Dropped uint64 `json:"dropped"`

	// LevelChanges counts successful per-logger level updates.
	LevelChanges uint64 `json:"level_changes"`
}

// Snapshot returns the current facade counters, read under the state lock.
func Snapshot() Stats {
	state.mu.Lock()
	defer state.mu.Unlock()
	s := state.stats
	s.Initialized = state.active
	return s
}
