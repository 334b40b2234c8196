package generator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/san-kum/trajgen/internal/trajectory"
)

func TestSingleVelocitySearch(t *testing.T) {
	gen := NewSingleVelocitySearch(10.0, 2.5)

	trjs := Drain(gen)
	if len(trjs) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(trjs))
	}
	want := trajectory.Trajectory{VX: 10.0, VY: 2.5}
	if trjs[0] != want {
		t.Errorf("candidate = %v, want %v", trjs[0], want)
	}

	// Each Generate call replays the same single candidate.
	if again := Drain(gen); len(again) != 1 || again[0] != want {
		t.Errorf("re-iteration = %v, want one candidate %v", again, want)
	}
}

func TestWith_RunsHooksAndPropagatesError(t *testing.T) {
	gen := &hookedGenerator{SingleVelocitySearch: NewSingleVelocitySearch(1, 2)}

	consumerErr := errors.New("consumer failed")
	err := With(gen, func(it Iterator) error {
		if _, ok := it.Next(); !ok {
			t.Error("expected one candidate inside With")
		}
		return consumerErr
	})
	if !errors.Is(err, consumerErr) {
		t.Errorf("expected consumer error to propagate, got %v", err)
	}
	if !gen.initialized || !gen.closed {
		t.Errorf("hooks not run: initialized=%v closed=%v", gen.initialized, gen.closed)
	}
}

func TestWith_CloseErrorReportedOnSuccess(t *testing.T) {
	closeErr := errors.New("close failed")
	gen := &hookedGenerator{
		SingleVelocitySearch: NewSingleVelocitySearch(1, 2),
		closeErr:             closeErr,
	}

	err := With(gen, func(it Iterator) error { return nil })
	if !errors.Is(err, closeErr) {
		t.Errorf("expected close error, got %v", err)
	}

	// A consumer error takes precedence over a close error.
	consumerErr := errors.New("consumer failed")
	gen.closed = false
	err = With(gen, func(it Iterator) error { return consumerErr })
	if !errors.Is(err, consumerErr) {
		t.Errorf("expected consumer error to win, got %v", err)
	}
	if !gen.closed {
		t.Error("Close did not run after consumer error")
	}
}

func TestWith_InitializeErrorSkipsConsumer(t *testing.T) {
	initErr := errors.New("init failed")
	gen := &hookedGenerator{
		SingleVelocitySearch: NewSingleVelocitySearch(1, 2),
		initErr:              initErr,
	}

	ran := false
	err := With(gen, func(it Iterator) error {
		ran = true
		return nil
	})
	if !errors.Is(err, initErr) {
		t.Errorf("expected init error, got %v", err)
	}
	if ran {
		t.Error("consumer ran despite Initialize failure")
	}
}

func TestGeneratorStrings(t *testing.T) {
	grid, _ := NewVelocityGridSearch(2, 0, 1, 2, 0, 1)
	polar, _ := NewKBMODV1Search(1, 0, 1, 1, 0, 1)
	random, _ := NewRandomVelocitySearch(0, 1, 0, 1, 1)

	tests := []struct {
		gen      Generator
		expected string
	}{
		{NewSingleVelocitySearch(1, 2), "SingleVelocitySearch: vx=1, vy=2"},
		{grid, "VelocityGridSearch: vx=[0, 1] in 2 steps, vy=[0, 1] in 2 steps"},
		{polar, "KBMODV1Search: v=[0, 1) in 1 steps, a=[0, 1) in 1 steps"},
		{random, "RandomVelocitySearch: vx=[0, 1] vy=[0, 1]"},
	}

	for _, tt := range tests {
		if got := fmt.Sprint(tt.gen); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

// hookedGenerator wraps a strategy with observable lifecycle hooks.
type hookedGenerator struct {
	*SingleVelocitySearch
	initialized bool
	closed      bool
	initErr     error
	closeErr    error
}

func (g *hookedGenerator) Initialize() error {
	g.initialized = true
	return g.initErr
}

func (g *hookedGenerator) Close() error {
	g.closed = true
	return g.closeErr
}
