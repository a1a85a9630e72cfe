package roslog

import (
	"sync"

	"github.com/Cyberunner23/roslog/internal/rcl"
)

// locationPool recycles the transient call-site descriptors handed to the
// native emit primitive. A descriptor lives for exactly one call; entries
// are zeroed before going back into the pool so a pointer that escaped its
// lifetime reads as poisoned instead of aliasing a later emission.
var locationPool = sync.Pool{
	New: func() any { return new(rcl.Location) },
}

func getLocation(function, file rcl.CString, line uint64) *rcl.Location {
	loc := locationPool.Get().(*rcl.Location)
	loc.Function = function
	loc.File = file
	loc.Line = line
	return loc
}

func putLocation(loc *rcl.Location) {
	loc.Function = nil
	loc.File = nil
	loc.Line = 0
	locationPool.Put(loc)
}

// Log performs one synchronous emission through the native subsystem,
// attributed to the given call site and logger name.
//
// While uninitialized (before Init or after teardown) it is a silent
// no-op: log statements are best-effort and are dropped, not buffered, and
// never error. An embedded NUL in any argument is a caller contract
// violation and panics; by the time a log call is issued its content is
// expected to be pre-validated by the formatting layer.
//
// The whole call holds the state lock: the native emit path synchronously
// re-enters the output relay before returning, and thread-unsafe native
// state in between belongs to the same critical section.
func Log(function, file string, line int, name string, severity Severity, message string) {
	state.mu.Lock()
	defer state.mu.Unlock()

	if !state.active {
		state.stats.Dropped++
		return
	}

	cfunction := rcl.MustCString(function)
	cfile := rcl.MustCString(file)
	cname := rcl.MustCString(name)
	cmessage := rcl.MustCString(message)

	if line < 0 {
		line = 0
	}
	loc := getLocation(cfunction, cfile, uint64(line))
	state.api.Log(loc, int32(severity), cname, cmessage)
	putLocation(loc)
	state.stats.Emitted++
}
