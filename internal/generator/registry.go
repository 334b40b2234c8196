package generator

import (
	"fmt"
	"sort"
)

// Params is a flat name→value mapping for a single strategy, as decoded
// from YAML or JSON. Numeric values may arrive as int or float64
// depending on the decoder.
type Params map[string]any

// Constructor builds a strategy from its named parameters.
type Constructor func(Params) (Generator, error)

// builtins maps the registered strategy names to their constructors.
// The names are a compatibility contract with existing configuration
// files and keep the historical spelling.
var builtins = map[string]Constructor{
	"SingleVelocitySearch": singleVelocityFromParams,
	"VelocityGridSearch":   velocityGridFromParams,
	"KBMODV1Search":        kbmodV1FromParams,
	"KBMODV1SearchConfig":  kbmodV1ConfigFromParams,
	"RandomVelocitySearch": randomVelocityFromParams,
}

// Register adds a strategy constructor under name. Re-registering a
// builtin name is an error.
func Register(name string, ctor Constructor) error {
	if _, ok := builtins[name]; ok {
		return fmt.Errorf("generator %q already registered", name)
	}
	builtins[name] = ctor
	return nil
}

// Lookup returns the constructor registered under name.
func Lookup(name string) (Constructor, bool) {
	ctor, ok := builtins[name]
	return ctor, ok
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func singleVelocityFromParams(p Params) (Generator, error) {
	vx, err := p.float("vx")
	if err != nil {
		return nil, err
	}
	vy, err := p.float("vy")
	if err != nil {
		return nil, err
	}
	return NewSingleVelocitySearch(vx, vy), nil
}

func velocityGridFromParams(p Params) (Generator, error) {
	vxSteps, err := p.intval("vx_steps")
	if err != nil {
		return nil, err
	}
	minVX, err := p.float("min_vx")
	if err != nil {
		return nil, err
	}
	maxVX, err := p.float("max_vx")
	if err != nil {
		return nil, err
	}
	vySteps, err := p.intval("vy_steps")
	if err != nil {
		return nil, err
	}
	minVY, err := p.float("min_vy")
	if err != nil {
		return nil, err
	}
	maxVY, err := p.float("max_vy")
	if err != nil {
		return nil, err
	}
	return NewVelocityGridSearch(vxSteps, minVX, maxVX, vySteps, minVY, maxVY)
}

func kbmodV1FromParams(p Params) (Generator, error) {
	velSteps, err := p.intval("vel_steps")
	if err != nil {
		return nil, err
	}
	minVel, err := p.float("min_vel")
	if err != nil {
		return nil, err
	}
	maxVel, err := p.float("max_vel")
	if err != nil {
		return nil, err
	}
	angSteps, err := p.intval("ang_steps")
	if err != nil {
		return nil, err
	}
	minAng, err := p.float("min_ang")
	if err != nil {
		return nil, err
	}
	maxAng, err := p.float("max_ang")
	if err != nil {
		return nil, err
	}
	return NewKBMODV1Search(velSteps, minVel, maxVel, angSteps, minAng, maxAng)
}

func kbmodV1ConfigFromParams(p Params) (Generator, error) {
	vArr, err := p.floats("v_arr")
	if err != nil {
		return nil, err
	}
	angArr, err := p.floats("ang_arr")
	if err != nil {
		return nil, err
	}
	avgAng, err := p.float("average_angle")
	if err != nil {
		return nil, err
	}
	return NewKBMODV1SearchConfig(vArr, angArr, &avgAng)
}

func randomVelocityFromParams(p Params) (Generator, error) {
	minVX, err := p.float("min_vx")
	if err != nil {
		return nil, err
	}
	maxVX, err := p.float("max_vx")
	if err != nil {
		return nil, err
	}
	minVY, err := p.float("min_vy")
	if err != nil {
		return nil, err
	}
	maxVY, err := p.float("max_vy")
	if err != nil {
		return nil, err
	}
	maxSamples, err := p.intDefault("max_samples", DefaultMaxSamples)
	if err != nil {
		return nil, err
	}
	gen, err := NewRandomVelocitySearch(minVX, maxVX, minVY, maxVY, maxSamples)
	if err != nil {
		return nil, err
	}
	if seed, ok := p["seed"]; ok {
		s, err := toFloat(seed)
		if err != nil {
			return nil, fmt.Errorf("%w: seed: %v", ErrInvalidParameter, err)
		}
		gen.Seed(int64(s))
	}
	return gen, nil
}

func (p Params) float(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing required parameter %q", ErrInvalidParameter, key)
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidParameter, key, err)
	}
	return f, nil
}

func (p Params) intval(key string) (int, error) {
	f, err := p.float(key)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func (p Params) intDefault(key string, def int) (int, error) {
	if _, ok := p[key]; !ok {
		return def, nil
	}
	return p.intval(key)
}

func (p Params) floats(key string) ([]float64, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing required parameter %q", ErrInvalidParameter, key)
	}
	switch vs := v.(type) {
	case []float64:
		return vs, nil
	case []any:
		out := make([]float64, len(vs))
		for i, e := range vs {
			f, err := toFloat(e)
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d]: %v", ErrInvalidParameter, key, i, err)
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a numeric list, got %T", ErrInvalidParameter, key, v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
