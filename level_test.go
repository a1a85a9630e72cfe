package roslog

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Cyberunner23/roslog/internal/rcl"
)

func TestSetLoggerLevel_BeforeInit(t *testing.T) {
	fake := installFake(t)

	if err := SetLoggerLevel("camera.driver", SeverityDebug); err != nil {
		t.Fatalf("SetLoggerLevel() error = %v", err)
	}
	if IsInitialized() {
		t.Error("IsInitialized() = true, level changes must not initialize")
	}

	levels := fake.levelCalls()
	if len(levels) != 1 {
		t.Fatalf("level calls = %d, want 1", len(levels))
	}
	if levels[0].name != "camera.driver" || levels[0].severity != 10 {
		t.Errorf("level call = %+v, want {camera.driver 10}", levels[0])
	}
}

func TestSetLoggerLevel_OrderAndCodes(t *testing.T) {
	fake := installFake(t)

	if err := SetLoggerLevel("logger.a", SeverityError); err != nil {
		t.Fatalf("SetLoggerLevel(error) error = %v", err)
	}
	if err := SetLoggerLevel("logger.a", SeverityDebug); err != nil {
		t.Fatalf("SetLoggerLevel(debug) error = %v", err)
	}
	if err := SetLoggerLevel("", SeverityWarn); err != nil {
		t.Fatalf("SetLoggerLevel(default) error = %v", err)
	}

	want := []levelCall{
		{name: "logger.a", severity: 40},
		{name: "logger.a", severity: 10},
		{name: "", severity: 30},
	}
	levels := fake.levelCalls()
	if len(levels) != len(want) {
		t.Fatalf("level calls = %d, want %d", len(levels), len(want))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("level call %d = %+v, want %+v", i, levels[i], want[i])
		}
	}
	if snap := Snapshot(); snap.LevelChanges != 3 {
		t.Errorf("LevelChanges = %d, want 3", snap.LevelChanges)
	}
}

func TestSetLoggerLevel_EmbeddedNUL(t *testing.T) {
	fake := installFake(t)

	err := SetLoggerLevel("bad\x00name", SeverityInfo)
	if !errors.Is(err, rcl.ErrEmbeddedNUL) {
		t.Fatalf("SetLoggerLevel() error = %v, want wrapped %v", err, rcl.ErrEmbeddedNUL)
	}
	if got := len(fake.levelCalls()); got != 0 {
		t.Errorf("level calls = %d, want 0 (name rejected before any native call)", got)
	}
	if snap := Snapshot(); snap.LevelChanges != 0 {
		t.Errorf("LevelChanges = %d, want 0", snap.LevelChanges)
	}
}

func TestSetLoggerLevel_ForeignFailure(t *testing.T) {
	fake := installFake(t)

	fake.mu.Lock()
	fake.levelErr = &rcl.ForeignError{Call: "rcutils_logging_set_logger_level", Ret: 1}
	fake.mu.Unlock()

	err := SetLoggerLevel("logger.a", SeverityInfo)
	if err == nil {
		t.Fatal("SetLoggerLevel() error = nil, want foreign failure")
	}
	var fe *rcl.ForeignError
	if !errors.As(err, &fe) {
		t.Fatalf("SetLoggerLevel() error = %v, want *rcl.ForeignError in chain", err)
	}
	if fe.Ret != 1 {
		t.Errorf("foreign return code = %d, want 1", fe.Ret)
	}
}

func TestSetLoggerLevel_ConcurrentSerialized(t *testing.T) {
	fake := installFake(t)

	const (
		workers = 16
		changes = 25
	)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			<-start
			name := fmt.Sprintf("worker.%d", w)
			for i := 0; i < changes; i++ {
				if err := SetLoggerLevel(name, SeverityInfo); err != nil {
					t.Errorf("worker %d: SetLoggerLevel() error = %v", w, err)
					return
				}
			}
		}(w)
	}
	close(start)
	wg.Wait()

	if got := len(fake.levelCalls()); got != workers*changes {
		t.Errorf("level calls = %d, want %d", got, workers*changes)
	}
	if got := fake.overlaps.Load(); got != 0 {
		t.Errorf("overlapping native calls = %d, want 0", got)
	}
}
