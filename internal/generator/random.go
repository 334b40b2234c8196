package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/trajgen/internal/trajectory"
)

// DefaultMaxSamples bounds the random strategy when no explicit budget
// is configured, so the consuming search loop always terminates.
const DefaultMaxSamples = 1_000_000

// RandomVelocitySearch draws velocities uniformly from a rectangular
// region, [min, max) per axis. A mutable remaining-sample budget is
// shared across iterators from the same instance: once it reaches zero
// the strategy yields nothing until ResetSampleCount. Not safe for
// concurrent consumers; the budget is owned by one consumer at a time.
type RandomVelocitySearch struct {
	base

	minVX, maxVX float64
	minVY, maxVY float64
	samplesLeft  int
	rng          *rand.Rand
}

func NewRandomVelocitySearch(minVX, maxVX, minVY, maxVY float64, maxSamples int) (*RandomVelocitySearch, error) {
	if maxVX < minVX || maxVY < minVY {
		return nil, fmt.Errorf("%w: invalid RandomVelocitySearch bounds", ErrInvalidParameter)
	}
	if maxSamples <= 0 {
		return nil, fmt.Errorf("%w: invalid maximum samples %d", ErrInvalidParameter, maxSamples)
	}

	return &RandomVelocitySearch{
		minVX:       minVX,
		maxVX:       maxVX,
		minVY:       minVY,
		maxVY:       maxVY,
		samplesLeft: maxSamples,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Seed makes subsequent draws deterministic.
func (g *RandomVelocitySearch) Seed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SamplesLeft reports the remaining sample budget.
func (g *RandomVelocitySearch) SamplesLeft() int { return g.samplesLeft }

// ResetSampleCount reinitializes the remaining budget without altering
// the bounds, so the same instance can serve another search pass.
func (g *RandomVelocitySearch) ResetSampleCount(maxSamples int) error {
	if maxSamples <= 0 {
		return fmt.Errorf("%w: invalid maximum samples %d", ErrInvalidParameter, maxSamples)
	}
	g.samplesLeft = maxSamples
	return nil
}

func (g *RandomVelocitySearch) Generate() Iterator {
	return &randomCursor{gen: g}
}

func (g *RandomVelocitySearch) String() string {
	return fmt.Sprintf("RandomVelocitySearch: vx=[%g, %g] vy=[%g, %g]",
		g.minVX, g.maxVX, g.minVY, g.maxVY)
}

type randomCursor struct {
	gen *RandomVelocitySearch
}

func (c *randomCursor) Next() (trajectory.Trajectory, bool) {
	g := c.gen
	if g.samplesLeft <= 0 {
		return trajectory.Trajectory{}, false
	}
	g.samplesLeft--
	vx := g.minVX + g.rng.Float64()*(g.maxVX-g.minVX)
	vy := g.minVY + g.rng.Float64()*(g.maxVY-g.minVY)
	return trajectory.New(vx, vy), true
}
