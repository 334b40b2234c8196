// Package generator enumerates and samples candidate trajectories for a
// brute-force image-stack search. Each strategy produces a finite lazy
// sequence of kinematic hypotheses; the search driver consumes them one
// at a time and offsets the position per pixel.
package generator

import (
	"fmt"

	"github.com/san-kum/trajgen/internal/trajectory"
)

// Iterator walks a candidate sequence one trajectory at a time. The
// second return is false once the sequence is exhausted; every iterator
// in this package terminates.
type Iterator interface {
	Next() (trajectory.Trajectory, bool)
}

// Generator is a search strategy producing candidate trajectories.
//
// Generate returns a fresh iterator over the strategy's sequence. Grid
// strategies reproduce the identical sequence on every call; the random
// strategy shares a remaining-sample budget across calls and yields
// nothing once it is spent. Sequences are never unconditionally
// infinite: the consuming search loop relies on termination.
type Generator interface {
	Generate() Iterator

	// Initialize and Close bracket use of the generator as a scoped
	// resource. Both default to no-ops.
	Initialize() error
	Close() error

	fmt.Stringer
}

// base provides the no-op lifecycle hooks shared by the builtin
// strategies.
type base struct{}

func (base) Initialize() error { return nil }
func (base) Close() error      { return nil }

// With runs fn between Initialize and Close. Close runs on every path;
// an error from fn propagates after cleanup, and a Close error is
// reported only when fn itself succeeded.
func With(gen Generator, fn func(Iterator) error) error {
	if err := gen.Initialize(); err != nil {
		return err
	}
	ferr := fn(gen.Generate())
	cerr := gen.Close()
	if ferr != nil {
		return ferr
	}
	return cerr
}

// Drain eagerly collects the full sequence. Only sensible for
// strategies with a bounded output.
func Drain(gen Generator) []trajectory.Trajectory {
	var out []trajectory.Trajectory
	it := gen.Generate()
	for {
		trj, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, trj)
	}
}
