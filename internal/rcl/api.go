package rcl

// Allocator mirrors rcutils_allocator_t: four function pointers and a
// state pointer, passed to foreign calls by value. Callers treat it as an
// opaque token obtained from DefaultAllocator.
type Allocator struct {
	Allocate     uintptr
	Deallocate   uintptr
	Reallocate   uintptr
	ZeroAllocate uintptr
	State        uintptr
}

// Location mirrors rcutils_log_location_t: the call-site descriptor the
// native subsystem receives with every emission. A Location is valid only
// for the duration of the single Log call it is built for; the native side
// makes no copy, so it must never be retained or reused across calls.
type Location struct {
	Function CString
	File     CString
	Line     uint64
}

// OutputEvent is one record passing through the registered output handler.
// The pointer-sized fields reference foreign memory (location struct,
// logger name, format string, variadic argument list) that is valid only
// while the handler is executing. Handlers forward them; they do not
// dereference or retain them.
type OutputEvent struct {
	Location  uintptr
	Severity  int32
	Name      uintptr
	Timestamp int64
	Format    uintptr
	Args      uintptr
}

// OutputHandler receives every record the native subsystem emits once
// Configure has installed it. It is invoked synchronously on the emitting
// thread and must not panic: native frames sit below it on the stack.
type OutputHandler func(ev *OutputEvent)

// API is the native logging capability. Implementations are not safe for
// concurrent use; the facade serializes every call behind its own lock.
type API interface {
	// DefaultAllocator returns the allocator handed to Configure.
	DefaultAllocator() Allocator

	// Configure parses the ROS-style argument vector and installs the
	// global logging configuration together with the output handler.
	Configure(args []string, alloc Allocator, handler OutputHandler) error

	// Fini tears down the global logging configuration.
	Fini() error

	// SetLoggerLevel sets the severity threshold for one logger name.
	SetLoggerLevel(name CString, severity int32) error

	// Log performs one synchronous emission. loc is borrowed for the
	// duration of the call only. There is no error return; failures past
	// this point are internal to the native subsystem.
	Log(loc *Location, severity int32, name, message CString)

	// Dispatch forwards an output event to the native multi-sink
	// dispatcher. Only the facade's relay calls it.
	Dispatch(ev *OutputEvent)
}
