package generator

import (
	"fmt"

	"github.com/san-kum/trajgen/internal/trajectory"
)

// VelocityGridSearch sweeps a rectangular grid in velocity space.
// Both axes use inclusive bounds: the step size is (max-min)/(steps-1),
// so the first and last samples land exactly on min and max.
type VelocityGridSearch struct {
	base

	vxSteps      int
	minVX, maxVX float64
	vxStepsize   float64
	vySteps      int
	minVY, maxVY float64
	vyStepsize   float64
}

func NewVelocityGridSearch(vxSteps int, minVX, maxVX float64, vySteps int, minVY, maxVY float64) (*VelocityGridSearch, error) {
	if vxSteps < 2 || vySteps < 2 {
		return nil, fmt.Errorf("%w: VelocityGridSearch requires at least 2 steps in each dimension", ErrInvalidParameter)
	}
	if maxVX < minVX || maxVY < minVY {
		return nil, fmt.Errorf("%w: invalid VelocityGridSearch bounds", ErrInvalidParameter)
	}

	return &VelocityGridSearch{
		vxSteps:    vxSteps,
		minVX:      minVX,
		maxVX:      maxVX,
		vxStepsize: (maxVX - minVX) / float64(vxSteps-1),
		vySteps:    vySteps,
		minVY:      minVY,
		maxVY:      maxVY,
		vyStepsize: (maxVY - minVY) / float64(vySteps-1),
	}, nil
}

// Generate sweeps vy in the outer loop and vx in the inner loop, both
// low to high.
func (g *VelocityGridSearch) Generate() Iterator {
	return &gridCursor{gen: g}
}

func (g *VelocityGridSearch) String() string {
	return fmt.Sprintf("VelocityGridSearch: vx=[%g, %g] in %d steps, vy=[%g, %g] in %d steps",
		g.minVX, g.maxVX, g.vxSteps, g.minVY, g.maxVY, g.vySteps)
}

type gridCursor struct {
	gen      *VelocityGridSearch
	vxi, vyi int
}

func (c *gridCursor) exhausted() bool { return c.vyi >= c.gen.vySteps }

func (c *gridCursor) Next() (trajectory.Trajectory, bool) {
	if c.exhausted() {
		return trajectory.Trajectory{}, false
	}
	vx := c.gen.minVX + float64(c.vxi)*c.gen.vxStepsize
	vy := c.gen.minVY + float64(c.vyi)*c.gen.vyStepsize

	c.vxi++
	if c.vxi >= c.gen.vxSteps {
		c.vxi = 0
		c.vyi++
	}
	return trajectory.New(vx, vy), true
}
