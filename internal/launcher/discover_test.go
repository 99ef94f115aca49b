package launcher

import (
	"sync"
	"testing"
	"time"

	"github.com/dmezquita/workspacectl/internal/platform"
)

func TestWaitForNew_ImmediateHit(t *testing.T) {
	query := func() ([]platform.WindowID, error) {
		return []platform.WindowID{"a", "b", "c"}, nil
	}
	existing := idSet([]platform.WindowID{"a"})

	id, ok := waitForNew(query, existing, 100*time.Millisecond, 5*time.Millisecond)
	if !ok {
		t.Fatal("expected a new window")
	}
	// Two new ids in one poll: attribution picks the most recently
	// listed one (best-effort, enumeration order is not contractual).
	if id != "c" {
		t.Errorf("id = %s, want c (last listed)", id)
	}
}

func TestWaitForNew_AppearsLater(t *testing.T) {
	var mu sync.Mutex
	ids := []platform.WindowID{"a"}
	query := func() ([]platform.WindowID, error) {
		mu.Lock()
		defer mu.Unlock()
		return append([]platform.WindowID(nil), ids...), nil
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		ids = append(ids, "b")
		mu.Unlock()
	}()

	id, ok := waitForNew(query, idSet([]platform.WindowID{"a"}), 500*time.Millisecond, 5*time.Millisecond)
	if !ok || id != "b" {
		t.Errorf("got (%s, %v), want (b, true)", id, ok)
	}
}

func TestWaitForNew_Timeout(t *testing.T) {
	query := func() ([]platform.WindowID, error) {
		return []platform.WindowID{"a"}, nil
	}
	start := time.Now()
	_, ok := waitForNew(query, idSet([]platform.WindowID{"a"}), 30*time.Millisecond, 5*time.Millisecond)
	if ok {
		t.Fatal("expected timeout")
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("returned after %s, before the timeout", elapsed)
	}
}

func TestWaitForNew_QueryErrorsAreRetried(t *testing.T) {
	calls := 0
	query := func() ([]platform.WindowID, error) {
		calls++
		if calls < 3 {
			return nil, errTransient
		}
		return []platform.WindowID{"w"}, nil
	}
	id, ok := waitForNew(query, map[platform.WindowID]struct{}{}, 500*time.Millisecond, 2*time.Millisecond)
	if !ok || id != "w" {
		t.Errorf("got (%s, %v), want (w, true)", id, ok)
	}
}

var errTransient = &transientError{}

type transientError struct{}

func (*transientError) Error() string { return "transient" }
