package roslog

import (
	"sync"

	"github.com/google/uuid"
)

// Context is the collaborator on whose behalf logging runs: it owns the
// ROS-style argument set the native configure call reads and, after a
// successful Init, the lifecycle guard that finalizes logging.
//
// A Context carries its own lock. The initializer nests it strictly inside
// the global state lock; nothing may acquire the state lock while holding
// a context lock. Close honors that by releasing its lock before closing
// the guard.
type Context struct {
	mu     sync.Mutex
	id     uuid.UUID
	args   []string
	guard  *Guard
	closed bool
}

// NewContext creates a context holding a copy of the given ROS-style
// argument vector, typically rosargs.Config.BuildArgs output or a raw
// command-line passthrough.
func NewContext(args []string) *Context {
	c := &Context{
		id:   uuid.New(),
		args: make([]string, len(args)),
	}
	copy(c.args, args)
	return c
}

// InstanceID identifies this context in diagnostics. Immutable.
func (c *Context) InstanceID() uuid.UUID {
	return c.id
}

// Arguments returns a copy of the context's argument set.
func (c *Context) Arguments() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	args := make([]string, len(c.args))
	copy(args, c.args)
	return args
}

// Closed reports whether Close has been called.
func (c *Context) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close invalidates the context and, if it owns the logging session,
// finalizes it. Idempotent. The guard is taken out under the context lock
// and closed only after releasing it, keeping the module's single lock
// nesting order intact.
func (c *Context) Close() {
	c.mu.Lock()
	g := c.guard
	c.guard = nil
	c.closed = true
	c.mu.Unlock()

	g.Close()
}

// argumentsLocked snapshots the argument set for the configure call. The
// initializer calls it with the state lock held; the context lock is taken
// only for the read.
func (c *Context) argumentsLocked() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrContextClosed
	}
	args := make([]string, len(c.args))
	copy(args, c.args)
	return args, nil
}

// adoptGuard hands the session guard to the context. Returns false if the
// context closed while initialization was in flight, in which case the
// initializer unwinds the session itself.
func (c *Context) adoptGuard(g *Guard) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.guard = g
	return true
}
