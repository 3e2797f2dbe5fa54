package builder_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/builder"
	"github.com/arjun-sk/cellsym/internal/params"
)

var _ = Describe("OptionMatrix", func() {
	It("enumerates only legal combinations of the full matrix", func() {
		sets := builder.FullMatrix().Sets()

		// 48 planar combinations plus 24 each for the two higher
		// dimensionalities, where the collector must be a potential
		// pair and convection must be off.
		Expect(sets).To(HaveLen(96))

		for _, opts := range sets {
			_, err := opts.Validate()
			Expect(err).NotTo(HaveOccurred())
			if opts.Dimensionality >= 1 {
				Expect(opts.CurrentCollector).To(Equal(battery.CollectorPotentialPair))
				Expect(opts.Convection).To(Equal(battery.ConvectionNone))
			} else {
				Expect(opts.CurrentCollector).To(Equal(battery.CollectorUniform))
			}
		}
	})

	It("substitutes defaults for empty axes", func() {
		m := builder.OptionMatrix{
			SurfaceForm: []battery.SurfaceFormOption{
				battery.SurfaceFormNone,
				battery.SurfaceFormAlgebraic,
			},
		}
		sets := m.Sets()
		Expect(sets).To(HaveLen(2))
		for _, opts := range sets {
			Expect(opts.Particle).To(Equal(battery.ParticleFickian))
			Expect(opts.Thermal).To(Equal(battery.ThermalIsothermal))
		}
	})

	It("feeds BuildAll cleanly", func() {
		m := builder.OptionMatrix{
			Particle: []battery.ParticleOption{battery.ParticleFickian, battery.ParticleFast},
			Thermal:  []battery.ThermalOption{battery.ThermalIsothermal, battery.ThermalLumped},
		}
		sets := m.Sets()
		Expect(sets).To(HaveLen(4))

		results := builder.BuildAll(context.Background(), sets, params.Default())
		for _, r := range results {
			Expect(r.Err).NotTo(HaveOccurred())
			Expect(r.Model).NotTo(BeNil())
		}
	})

	It("builds higher-dimensional potential-pair cells", func() {
		m := builder.OptionMatrix{
			Dimensionality:   []int{1, 2},
			CurrentCollector: []battery.CollectorOption{battery.CollectorPotentialPair},
		}
		sets := m.Sets()
		Expect(sets).To(HaveLen(2))

		for _, opts := range sets {
			model, err := builder.Build(opts, params.Default())
			Expect(err).NotTo(HaveOccurred())

			for _, side := range []string{"Negative", "Positive"} {
				name := side + " current collector potential"
				eq, ok := model.Equation(name)
				Expect(ok).To(BeTrue(), "expected equation for %q", name)
				Expect(eq.Kind).To(Equal(battery.Algebraic))
				_, hasBC := model.BoundaryConditions(name)
				Expect(hasBC).To(BeTrue())
			}
		}
	})
})
