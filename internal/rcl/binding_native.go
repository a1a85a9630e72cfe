//go:build (linux || darwin) && (amd64 || arm64)

package rcl

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/ebitengine/purego"
)

// cArguments mirrors rcl_arguments_t. The zero value matches
// rcl_get_zero_initialized_arguments().
type cArguments struct {
	impl uintptr
}

// cLocation mirrors the memory layout of rcutils_log_location_t.
type cLocation struct {
	functionName *byte
	fileName     *byte
	lineNumber   uintptr
}

// binding is the dlopen-backed API implementation.
type binding struct {
	getDefaultAllocator func() Allocator
	setLoggerLevel      func(name *byte, level int32) int32
	log                 func(loc *cLocation, severity int32, name *byte, format *byte)
	parseArguments      func(argc int32, argv **byte, alloc Allocator, out *cArguments) int32
	argumentsFini       func(args *cArguments) int32
	loggingConfigure    func(globalArgs *cArguments, alloc *Allocator, handler uintptr) int32
	loggingFini         func() int32
	multipleOutput      func(loc uintptr, severity int32, name uintptr, timestamp int64, format uintptr, args uintptr)

	handler    atomic.Pointer[OutputHandler]
	trampoline uintptr
}

// Load resolves the shared libraries and binds the symbols the facade
// consumes. The output trampoline is created once here; Configure swaps
// the Go handler behind it, so repeated configure/fini cycles never
// allocate additional callback slots.
func Load(opts Options) (API, error) {
	rcutilsPath, rclPath := opts.resolve()

	rcutilsLib, err := purego.Dlopen(rcutilsPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", rcutilsPath, err)
	}
	rclLib, err := purego.Dlopen(rclPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", rclPath, err)
	}

	b := &binding{}
	symbols := []struct {
		lib  uintptr
		name string
		fptr any
	}{
		{rcutilsLib, "rcutils_get_default_allocator", &b.getDefaultAllocator},
		{rcutilsLib, "rcutils_logging_set_logger_level", &b.setLoggerLevel},
		{rcutilsLib, "rcutils_log", &b.log},
		{rclLib, "rcl_parse_arguments", &b.parseArguments},
		{rclLib, "rcl_arguments_fini", &b.argumentsFini},
		{rclLib, "rcl_logging_configure_with_output_handler", &b.loggingConfigure},
		{rclLib, "rcl_logging_fini", &b.loggingFini},
		{rclLib, "rcl_logging_multiple_output_handler", &b.multipleOutput},
	}
	for _, sym := range symbols {
		addr, err := purego.Dlsym(sym.lib, sym.name)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", sym.name, err)
		}
		purego.RegisterFunc(sym.fptr, addr)
	}

	b.trampoline = purego.NewCallback(func(loc, severity, name, timestamp, format, args uintptr) uintptr {
		if h := b.handler.Load(); h != nil && *h != nil {
			(*h)(&OutputEvent{
				Location:  loc,
				Severity:  int32(severity),
				Name:      name,
				Timestamp: int64(timestamp),
				Format:    format,
				Args:      args,
			})
		}
		return 0
	})

	return b, nil
}

func (b *binding) DefaultAllocator() Allocator {
	return b.getDefaultAllocator()
}

func (b *binding) Configure(args []string, alloc Allocator, handler OutputHandler) error {
	cargs := make([]CString, len(args))
	argv := make([]*byte, len(args))
	for i, a := range args {
		c, err := NewCString(a)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
		cargs[i] = c
		argv[i] = c.Ptr()
	}
	var argvPtr **byte
	if len(argv) > 0 {
		argvPtr = &argv[0]
	}

	var parsed cArguments
	if ret := b.parseArguments(int32(len(args)), argvPtr, alloc, &parsed); ret != 0 {
		return &ForeignError{Call: "rcl_parse_arguments", Ret: ret}
	}
	// The parsed handle feeds this one configure call only.
	defer b.argumentsFini(&parsed)

	b.handler.Store(&handler)
	ret := b.loggingConfigure(&parsed, &alloc, b.trampoline)
	runtime.KeepAlive(cargs)
	runtime.KeepAlive(argv)
	if ret != 0 {
		b.handler.Store(nil)
		return &ForeignError{Call: "rcl_logging_configure_with_output_handler", Ret: ret}
	}
	return nil
}

func (b *binding) Fini() error {
	if ret := b.loggingFini(); ret != 0 {
		return &ForeignError{Call: "rcl_logging_fini", Ret: ret}
	}
	return nil
}

func (b *binding) SetLoggerLevel(name CString, severity int32) error {
	ret := b.setLoggerLevel(name.Ptr(), severity)
	runtime.KeepAlive(name)
	if ret != 0 {
		return &ForeignError{Call: "rcutils_logging_set_logger_level", Ret: ret}
	}
	return nil
}

func (b *binding) Log(loc *Location, severity int32, name, message CString) {
	cl := cLocation{
		functionName: loc.Function.Ptr(),
		fileName:     loc.File.Ptr(),
		lineNumber:   uintptr(loc.Line),
	}
	// The message rides in the format parameter with zero variadic
	// arguments, so % directives in user text are never expanded.
	b.log(&cl, severity, name.Ptr(), message.Ptr())
	runtime.KeepAlive(loc)
	runtime.KeepAlive(name)
	runtime.KeepAlive(message)
}

func (b *binding) Dispatch(ev *OutputEvent) {
	b.multipleOutput(ev.Location, ev.Severity, ev.Name, ev.Timestamp, ev.Format, ev.Args)
}
