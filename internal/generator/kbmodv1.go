package generator

import (
	"fmt"
	"math"

	"github.com/san-kum/trajgen/internal/trajectory"
)

// KBMODV1Search sweeps a polar grid over velocity magnitude and angle.
// Both axes are half-open: the step size is (max-min)/steps, so the
// upper bound itself is never emitted.
type KBMODV1Search struct {
	base

	velSteps       int
	minVel, maxVel float64
	velStepsize    float64
	angSteps       int
	minAng, maxAng float64
	angStepsize    float64
}

func NewKBMODV1Search(velSteps int, minVel, maxVel float64, angSteps int, minAng, maxAng float64) (*KBMODV1Search, error) {
	if velSteps < 1 || angSteps < 1 {
		return nil, fmt.Errorf("%w: KBMODV1Search requires at least 1 step in each dimension", ErrInvalidParameter)
	}
	if maxVel < minVel || maxAng < minAng {
		return nil, fmt.Errorf("%w: invalid KBMODV1Search bounds", ErrInvalidParameter)
	}

	return &KBMODV1Search{
		velSteps:    velSteps,
		minVel:      minVel,
		maxVel:      maxVel,
		velStepsize: (maxVel - minVel) / float64(velSteps),
		angSteps:    angSteps,
		minAng:      minAng,
		maxAng:      maxAng,
		angStepsize: (maxAng - minAng) / float64(angSteps),
	}, nil
}

// Generate sweeps the angle in the outer loop and the speed in the
// inner loop, converting each (speed, angle) pair to Cartesian pixel
// velocities.
func (g *KBMODV1Search) Generate() Iterator {
	return &polarCursor{gen: g}
}

func (g *KBMODV1Search) String() string {
	return fmt.Sprintf("KBMODV1Search: v=[%g, %g) in %d steps, a=[%g, %g) in %d steps",
		g.minVel, g.maxVel, g.velSteps, g.minAng, g.maxAng, g.angSteps)
}

type polarCursor struct {
	gen        *KBMODV1Search
	veli, angi int
}

func (c *polarCursor) exhausted() bool { return c.angi >= c.gen.angSteps }

func (c *polarCursor) Next() (trajectory.Trajectory, bool) {
	if c.exhausted() {
		return trajectory.Trajectory{}, false
	}
	ang := c.gen.minAng + float64(c.angi)*c.gen.angStepsize
	vel := c.gen.minVel + float64(c.veli)*c.gen.velStepsize

	c.veli++
	if c.veli >= c.gen.velSteps {
		c.veli = 0
		c.angi++
	}
	return trajectory.New(vel*math.Cos(ang), vel*math.Sin(ang)), true
}

// KBMODV1SearchConfig adapts the legacy configuration-file layout to a
// KBMODV1Search. vArr is [min_vel, max_vel, vel_steps] and angArr is
// [offset_below, offset_above, ang_steps]; the angle window is centered
// on averageAngle, which should align with the ecliptic in most cases.
// Offset signs are not checked, matching historical behavior: a negative
// offset narrows or inverts the window and is rejected only if the
// derived bounds end up with max < min.
type KBMODV1SearchConfig struct {
	*KBMODV1Search
}

func NewKBMODV1SearchConfig(vArr, angArr []float64, averageAngle *float64) (*KBMODV1SearchConfig, error) {
	if len(vArr) != 3 {
		return nil, fmt.Errorf("%w: KBMODV1SearchConfig requires v_arr to be length 3", ErrInvalidConfiguration)
	}
	if len(angArr) != 3 {
		return nil, fmt.Errorf("%w: KBMODV1SearchConfig requires ang_arr to be length 3", ErrInvalidConfiguration)
	}
	if averageAngle == nil {
		return nil, fmt.Errorf("%w: KBMODV1SearchConfig requires a valid average_angle", ErrInvalidConfiguration)
	}

	inner, err := NewKBMODV1Search(
		int(vArr[2]), vArr[0], vArr[1],
		int(angArr[2]), *averageAngle-angArr[0], *averageAngle+angArr[1],
	)
	if err != nil {
		return nil, err
	}
	return &KBMODV1SearchConfig{KBMODV1Search: inner}, nil
}
