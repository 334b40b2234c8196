package generator

import (
	"fmt"

	"github.com/san-kum/trajgen/internal/trajectory"
)

// SingleVelocitySearch tests one fixed velocity from each pixel. The
// emitted position is (0, 0); the search driver offsets it per pixel.
type SingleVelocitySearch struct {
	base
	vx, vy float64
}

func NewSingleVelocitySearch(vx, vy float64) *SingleVelocitySearch {
	return &SingleVelocitySearch{vx: vx, vy: vy}
}

func (g *SingleVelocitySearch) Generate() Iterator {
	return &singleCursor{gen: g}
}

func (g *SingleVelocitySearch) String() string {
	return fmt.Sprintf("SingleVelocitySearch: vx=%g, vy=%g", g.vx, g.vy)
}

type singleCursor struct {
	gen  *SingleVelocitySearch
	done bool
}

func (c *singleCursor) Next() (trajectory.Trajectory, bool) {
	if c.done {
		return trajectory.Trajectory{}, false
	}
	c.done = true
	return trajectory.New(c.gen.vx, c.gen.vy), true
}
