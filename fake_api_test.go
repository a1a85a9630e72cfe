package roslog

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Cyberunner23/roslog/internal/rcl"
)

// fakeCapability is an in-memory rcl.API double. It records every call,
// re-enters the installed output handler synchronously from Log the way
// the native subsystem does, and counts any overlapping entry into the
// non-thread-safe surface so tests can assert serialization.
type fakeCapability struct {
	mu sync.Mutex

	configureErr error  // returned by Configure
	finiErr      error  // returned by Fini
	levelErr     error  // returned by SetLoggerLevel
	onConfigure  func() // runs inside Configure, before it returns
	relay        bool   // Log re-enters the handler synchronously

	handler    rcl.OutputHandler
	configures [][]string // argv per Configure call
	finis      int
	levels     []levelCall
	logs       []logCall
	sent       []rcl.OutputEvent // events synthesized toward the handler
	dispatched []rcl.OutputEvent // events forwarded back via Dispatch

	inFlight atomic.Int32
	overlaps atomic.Int32
}

type levelCall struct {
	name     string
	severity int32
}

type logCall struct {
	function string
	file     string
	line     uint64
	severity int32
	name     string
	message  string
	loc      *rcl.Location // retained to observe the post-call poisoning
}

// enter and exit bracket calls that the native library forbids to overlap.
func (f *fakeCapability) enter() {
	if !f.inFlight.CompareAndSwap(0, 1) {
		f.overlaps.Add(1)
	}
}

func (f *fakeCapability) exit() {
	f.inFlight.Store(0)
}

func (f *fakeCapability) DefaultAllocator() rcl.Allocator {
	return rcl.Allocator{}
}

func (f *fakeCapability) Configure(args []string, alloc rcl.Allocator, handler rcl.OutputHandler) error {
	f.enter()
	defer f.exit()

	f.mu.Lock()
	argv := append([]string(nil), args...)
	f.configures = append(f.configures, argv)
	err := f.configureErr
	hook := f.onConfigure
	if err == nil {
		f.handler = handler
	}
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return err
}

func (f *fakeCapability) Fini() error {
	f.enter()
	defer f.exit()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.finis++
	f.handler = nil
	return f.finiErr
}

func (f *fakeCapability) SetLoggerLevel(name rcl.CString, severity int32) error {
	f.enter()
	defer f.exit()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.levels = append(f.levels, levelCall{name: name.String(), severity: severity})
	return f.levelErr
}

func (f *fakeCapability) Log(loc *rcl.Location, severity int32, name, message rcl.CString) {
	f.enter()
	defer f.exit()

	// Field copies happen synchronously, during the call: the location is
	// dead the moment Log returns.
	f.mu.Lock()
	f.logs = append(f.logs, logCall{
		function: loc.Function.String(),
		file:     loc.File.String(),
		line:     loc.Line,
		severity: severity,
		name:     name.String(),
		message:  message.String(),
		loc:      loc,
	})
	var ev *rcl.OutputEvent
	var h rcl.OutputHandler
	if f.relay && f.handler != nil {
		seq := len(f.sent) + 1
		e := rcl.OutputEvent{
			Location:  uintptr(seq<<4 | 1),
			Severity:  severity,
			Name:      uintptr(seq<<4 | 2),
			Timestamp: int64(seq),
			Format:    uintptr(seq<<4 | 3),
			Args:      uintptr(seq<<4 | 4),
		}
		f.sent = append(f.sent, e)
		ev = &e
		h = f.handler
	}
	f.mu.Unlock()

	if h != nil {
		h(ev)
	}
}

// Dispatch is invoked re-entrantly from inside Log through the handler, so
// it stays out of the overlap bracket.
func (f *fakeCapability) Dispatch(ev *rcl.OutputEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dispatched = append(f.dispatched, *ev)
}

func (f *fakeCapability) configureCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.configures)
}

func (f *fakeCapability) finiCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finis
}

func (f *fakeCapability) levelCalls() []levelCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]levelCall(nil), f.levels...)
}

func (f *fakeCapability) logCalls() []logCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]logCall(nil), f.logs...)
}

func (f *fakeCapability) events() (sent, dispatched []rcl.OutputEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sent = append([]rcl.OutputEvent(nil), f.sent...)
	dispatched = append([]rcl.OutputEvent(nil), f.dispatched...)
	return sent, dispatched
}

// installFake wires a fresh capability double into the facade and restores
// pristine global state around the test.
func installFake(t *testing.T) *fakeCapability {
	t.Helper()
	resetState(t)
	f := &fakeCapability{relay: true}
	if err := setCapability(f); err != nil {
		t.Fatalf("setCapability() error = %v", err)
	}
	t.Cleanup(func() { resetState(t) })
	return f
}

// resetState forces the facade back to the zero state. The guard
// generation is deliberately left monotonic so stale guards from earlier
// tests stay stale.
func resetState(t *testing.T) {
	t.Helper()
	state.mu.Lock()
	defer state.mu.Unlock()
	state.api = nil
	state.active = false
	state.stats = Stats{}
}
