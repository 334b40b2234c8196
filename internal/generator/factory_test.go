package generator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajgen/internal/config"
	"github.com/san-kum/trajgen/internal/generator"
)

var _ = Describe("FromParams", func() {
	It("builds the named strategy from a flat mapping", func() {
		gen, err := generator.FromParams(generator.Params{
			"name": "SingleVelocitySearch",
			"vx":   1.0,
			"vy":   2.0,
		})
		Expect(err).NotTo(HaveOccurred())

		trjs := generator.Drain(gen)
		Expect(trjs).To(HaveLen(1))
		Expect(trjs[0].VX).To(Equal(1.0))
		Expect(trjs[0].VY).To(Equal(2.0))
	})

	It("accepts integer-shaped numbers from decoders", func() {
		gen, err := generator.FromParams(generator.Params{
			"name":     "VelocityGridSearch",
			"vx_steps": 3, "min_vx": 0, "max_vx": 2,
			"vy_steps": 2, "min_vy": -1, "max_vy": 1,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(generator.Drain(gen)).To(HaveLen(6))
	})

	It("defaults the random sample budget", func() {
		gen, err := generator.FromParams(generator.Params{
			"name":   "RandomVelocitySearch",
			"min_vx": 0.0, "max_vx": 1.0,
			"min_vy": 0.0, "max_vy": 1.0,
		})
		Expect(err).NotTo(HaveOccurred())

		random, ok := gen.(*generator.RandomVelocitySearch)
		Expect(ok).To(BeTrue())
		Expect(random.SamplesLeft()).To(Equal(generator.DefaultMaxSamples))
	})

	It("rejects a mapping without a name", func() {
		_, err := generator.FromParams(generator.Params{"vx": 1.0})
		Expect(err).To(MatchError(generator.ErrUnknownGenerator))
		Expect(err.Error()).To(ContainSubstring("name"))
	})

	It("rejects an unregistered name, naming it", func() {
		_, err := generator.FromParams(generator.Params{"name": "Bogus"})
		Expect(err).To(MatchError(generator.ErrUnknownGenerator))
		Expect(err.Error()).To(ContainSubstring("Bogus"))
	})

	It("rejects missing required parameters, naming the key", func() {
		_, err := generator.FromParams(generator.Params{
			"name": "SingleVelocitySearch",
			"vx":   1.0,
		})
		Expect(err).To(MatchError(generator.ErrInvalidParameter))
		Expect(err.Error()).To(ContainSubstring("vy"))
	})

	It("surfaces construction-time validation failures", func() {
		_, err := generator.FromParams(generator.Params{
			"name":     "VelocityGridSearch",
			"vx_steps": 1, "min_vx": 0.0, "max_vx": 1.0,
			"vy_steps": 2, "min_vy": 0.0, "max_vy": 1.0,
		})
		Expect(err).To(MatchError(generator.ErrInvalidParameter))
	})
})

var _ = Describe("FromSearchConfig", func() {
	It("unwraps a nested generator_config", func() {
		cfg := &config.SearchConfig{
			GeneratorConfig: map[string]any{
				"name": "KBMODV1Search",
				"vel_steps": 4, "min_vel": 0.0, "max_vel": 8.0,
				"ang_steps": 3, "min_ang": -0.3, "max_ang": 0.3,
			},
		}
		gen, err := generator.FromSearchConfig(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(generator.Drain(gen)).To(HaveLen(12))
	})

	It("falls back to the legacy grid fields", func() {
		avg := 0.0
		cfg := &config.SearchConfig{
			VArr:         []float64{5, 40, 150},
			AngArr:       []float64{0.1, 0.1, 25},
			AverageAngle: &avg,
		}
		gen, err := generator.FromSearchConfig(cfg)
		Expect(err).NotTo(HaveOccurred())

		direct, err := generator.NewKBMODV1Search(150, 5, 40, 25, -0.1, 0.1)
		Expect(err).NotTo(HaveOccurred())
		Expect(generator.Drain(gen)).To(Equal(generator.Drain(direct)))
	})

	It("prefers the nested config over legacy fields", func() {
		avg := 0.0
		cfg := &config.SearchConfig{
			GeneratorConfig: map[string]any{
				"name": "SingleVelocitySearch",
				"vx":   1.0, "vy": 1.0,
			},
			VArr:         []float64{5, 40, 150},
			AngArr:       []float64{0.1, 0.1, 25},
			AverageAngle: &avg,
		}
		gen, err := generator.FromSearchConfig(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(generator.Drain(gen)).To(HaveLen(1))
	})

	It("rejects a configuration with neither shape", func() {
		_, err := generator.FromSearchConfig(&config.SearchConfig{})
		Expect(err).To(MatchError(generator.ErrInvalidConfiguration))
	})

	It("reports malformed legacy triplets", func() {
		avg := 0.0
		cfg := &config.SearchConfig{
			VArr:         []float64{5, 40},
			AngArr:       []float64{0.1, 0.1, 25},
			AverageAngle: &avg,
		}
		_, err := generator.FromSearchConfig(cfg)
		Expect(err).To(MatchError(generator.ErrInvalidConfiguration))
	})

	It("requires average_angle for legacy resolution", func() {
		cfg := &config.SearchConfig{
			VArr:   []float64{5, 40, 150},
			AngArr: []float64{0.1, 0.1, 25},
		}
		_, err := generator.FromSearchConfig(cfg)
		Expect(err).To(MatchError(generator.ErrInvalidConfiguration))
	})
})

var _ = Describe("Registry", func() {
	It("lists the builtin strategies", func() {
		Expect(generator.Names()).To(ContainElements(
			"SingleVelocitySearch",
			"VelocityGridSearch",
			"KBMODV1Search",
			"KBMODV1SearchConfig",
			"RandomVelocitySearch",
		))
	})

	It("refuses to shadow a builtin", func() {
		err := generator.Register("KBMODV1Search", func(generator.Params) (generator.Generator, error) {
			return nil, nil
		})
		Expect(err).To(HaveOccurred())
	})
})
