package oslg

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

// TestConcurrency_MultipleLevels verifies that the mutex keeps entries and
// status consistent when many goroutines log simultaneously.
func TestConcurrency_MultipleLevels(t *testing.T) {
	l := New()
	l.Reset(DebugLevel)

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				l.Log(DebugLevel, fmt.Sprintf("goroutine-%d-debug-%d", id, j))
				l.Log(InfoLevel, fmt.Sprintf("goroutine-%d-info-%d", id, j))
				l.Log(WarnLevel, fmt.Sprintf("goroutine-%d-warn-%d", id, j))
				l.Log(ErrorLevel, fmt.Sprintf("goroutine-%d-error-%d", id, j))
			}
		}(i)
	}

	wg.Wait()

	logs := l.Logs()
	expected := numGoroutines * messagesPerGoroutine * 4
	if len(logs) != expected {
		t.Fatalf("expected %d entries, got %d", expected, len(logs))
	}
	if got := l.Status(); got != ErrorLevel {
		t.Fatalf("expected ERROR status, got %v", got)
	}

	seen := make(map[string]bool, len(logs))
	for i, e := range logs {
		if seen[e.Message] {
			t.Fatalf("entry %d duplicated: %q", i, e.Message)
		}
		seen[e.Message] = true
	}
}

// TestConcurrency_GuardsAndClean verifies mutex safety when guards, Reset
// and Clean race with each other.
func TestConcurrency_GuardsAndClean(t *testing.T) {
	l := New()

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines * 3)
	var recorded atomic.Int64

	for i := 0; i < numGoroutines; i++ {
		id := i
		go func() {
			defer wg.Done()
			if l.Invalid(fmt.Sprintf("arg-%d", id), "concurrent", id, ErrorLevel) {
				recorded.Add(1)
			}
		}()
		go func() {
			defer wg.Done()
			if l.Hashkey("dict", map[string]int{"a": 1}, "b", "concurrent", WarnLevel) {
				recorded.Add(1)
			}
		}()
		go func() {
			defer wg.Done()
			if id%10 == 0 {
				l.Clean()
			}
			l.Reset(InfoLevel)
		}()
	}

	wg.Wait()

	if recorded.Load() != numGoroutines*2 {
		t.Fatalf("expected %d recorded diagnostics, got %d", numGoroutines*2, recorded.Load())
	}
	logs := l.Logs()
	status := l.Status()
	if len(logs) == 0 {
		if status != 0 {
			t.Fatalf("status %v without entries", status)
		}
		return
	}
	var high Level
	for _, e := range logs {
		if e.Level > high {
			high = e.Level
		}
	}
	if status != high {
		t.Fatalf("status %v does not match highest entry level %v", status, high)
	}
}
