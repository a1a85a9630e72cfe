package roslog

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewContext_CopiesArguments(t *testing.T) {
	args := []string{"--ros-args", "--log-level", "debug"}
	ctx := NewContext(args)

	args[2] = "mutated"
	got := ctx.Arguments()
	if got[2] != "debug" {
		t.Errorf("Arguments()[2] = %q, caller mutation leaked in", got[2])
	}

	got[0] = "clobbered"
	again := ctx.Arguments()
	if again[0] != "--ros-args" {
		t.Errorf("Arguments()[0] = %q, returned slice is not a copy", again[0])
	}
}

func TestNewContext_EmptyArguments(t *testing.T) {
	ctx := NewContext(nil)
	if got := ctx.Arguments(); len(got) != 0 {
		t.Errorf("Arguments() = %v, want empty", got)
	}
}

func TestContext_InstanceIDUnique(t *testing.T) {
	a := NewContext(nil)
	b := NewContext(nil)
	if a.InstanceID() == uuid.Nil {
		t.Error("InstanceID() = nil UUID")
	}
	if a.InstanceID() == b.InstanceID() {
		t.Errorf("two contexts share instance ID %s", a.InstanceID())
	}
}

func TestContext_CloseIdempotent(t *testing.T) {
	fake := installFake(t)

	ctx := NewContext(nil)
	if err := Init(ctx); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	ctx.Close()
	ctx.Close()

	if !ctx.Closed() {
		t.Error("Closed() = false after Close")
	}
	if got := fake.finiCount(); got != 1 {
		t.Errorf("fini calls = %d, want 1", got)
	}
}

func TestContext_CloseWithoutInit(t *testing.T) {
	fake := installFake(t)

	ctx := NewContext(nil)
	ctx.Close()

	if !ctx.Closed() {
		t.Error("Closed() = false after Close")
	}
	if got := fake.finiCount(); got != 0 {
		t.Errorf("fini calls = %d, want 0", got)
	}
}
