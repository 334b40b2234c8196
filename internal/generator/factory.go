package generator

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/trajgen/internal/config"
)

// FromParams resolves a flat name→parameter mapping into a strategy.
// The mapping must carry a "name" entry matching a registered strategy;
// the remaining entries are that strategy's constructor parameters.
func FromParams(p Params) (Generator, error) {
	raw, ok := p["name"]
	if !ok {
		return nil, fmt.Errorf("%w: the generator configuration must contain a name field", ErrUnknownGenerator)
	}
	name, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: name must be a string, got %T", ErrUnknownGenerator, raw)
	}

	ctor, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}

	gen, err := ctor(p)
	if err != nil {
		return nil, err
	}
	slog.Info("creating trajectory generator", "name", name)
	return gen, nil
}

// FromSearchConfig resolves a full search configuration. A nested
// generator_config mapping takes precedence; without one the legacy
// top-level grid fields (v_arr, ang_arr, average_angle) are adapted into
// a KBMODV1SearchConfig, preserving compatibility with pre-registry
// configuration files.
func FromSearchConfig(cfg *config.SearchConfig) (Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil search configuration", ErrInvalidConfiguration)
	}

	if cfg.GeneratorConfig != nil {
		return FromParams(Params(cfg.GeneratorConfig))
	}

	if cfg.VArr == nil && cfg.AngArr == nil && cfg.AverageAngle == nil {
		return nil, fmt.Errorf("%w: no generator_config and no legacy grid fields", ErrInvalidConfiguration)
	}

	gen, err := NewKBMODV1SearchConfig(cfg.VArr, cfg.AngArr, cfg.AverageAngle)
	if err != nil {
		return nil, err
	}
	slog.Info("creating trajectory generator", "name", "KBMODV1SearchConfig")
	return gen, nil
}
