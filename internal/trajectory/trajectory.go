package trajectory

import (
	"fmt"
	"math"
)

// Trajectory is a single kinematic hypothesis: a pixel position at the
// reference time plus pixel velocities per unit time. Generators hand
// ownership of each value to the consumer; nothing is shared between
// successive candidates.
type Trajectory struct {
	X    int
	Y    int
	VX   float64
	VY   float64
	Flux float64
}

func New(vx, vy float64) Trajectory {
	return Trajectory{VX: vx, VY: vy}
}

// Speed returns the velocity magnitude in pixels per unit time.
func (t Trajectory) Speed() float64 {
	return math.Hypot(t.VX, t.VY)
}

// Angle returns the velocity heading in radians, in (-pi, pi].
func (t Trajectory) Angle() float64 {
	return math.Atan2(t.VY, t.VX)
}

// PositionAt returns the predicted pixel position after elapsed time dt.
func (t Trajectory) PositionAt(dt float64) (float64, float64) {
	return float64(t.X) + t.VX*dt, float64(t.Y) + t.VY*dt
}

func (t Trajectory) IsValid() bool {
	for _, v := range []float64{t.VX, t.VY, t.Flux} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (t Trajectory) String() string {
	return fmt.Sprintf("x=%d y=%d vx=%g vy=%g flux=%g", t.X, t.Y, t.VX, t.VY, t.Flux)
}
