package handler

import (
	"sync"
	"testing"
)

func TestStats_Counters(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				s.IncrementSubmitted()
				s.IncrementProcessed()
			}
		}()
	}
	wg.Wait()
	s.IncrementSubmitted()
	s.IncrementFailed()
	s.IncrementLate()

	snap := s.GetSnapshot()
	if snap.SubmittedTotal != 1001 {
		t.Errorf("SubmittedTotal = %d, want 1001", snap.SubmittedTotal)
	}
	if snap.ProcessedTotal != 1000 {
		t.Errorf("ProcessedTotal = %d, want 1000", snap.ProcessedTotal)
	}
	if snap.FailedTotal != 1 || snap.LateTotal != 1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if snap.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", snap.Pending())
	}

	s.Reset()
	if snap := s.GetSnapshot(); snap != (Snapshot{}) {
		t.Errorf("Reset() left %+v", snap)
	}
}

func TestSnapshot_Pending(t *testing.T) {
	snap := Snapshot{SubmittedTotal: 10, ProcessedTotal: 6, FailedTotal: 1}
	if got := snap.Pending(); got != 3 {
		t.Errorf("Pending() = %d, want 3", got)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUninitialized, "Uninitialized"},
		{StateRunning, "Running"},
		{StateDraining, "Draining"},
		{StateStopped, "Stopped"},
		{State(7), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
