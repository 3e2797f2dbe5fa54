package builder_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/builder"
	"github.com/arjun-sk/cellsym/internal/params"
	"github.com/arjun-sk/cellsym/internal/submodels"
)

// fingerprint flattens a model's content for order-independence checks.
func fingerprint(m *battery.Model) map[string]string {
	fp := make(map[string]string)
	for _, name := range m.VariableNames() {
		v, _ := m.VariableDefinition(name)
		fp["var:"+name] = v.Expr.String()
	}
	for _, name := range m.EquationNames() {
		eq, _ := m.Equation(name)
		fp["eq:"+name] = eq.Kind.String() + " " + eq.Expr.String()
	}
	return fp
}

var _ = Describe("Build", func() {
	var p *params.Set

	BeforeEach(func() {
		p = params.Default()
	})

	Context("with default options", func() {
		var m *battery.Model

		BeforeEach(func() {
			var err error
			m, err = builder.Build(battery.Options{}, p)
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces one equation per particle concentration", func() {
			eq, ok := m.Equation("Negative particle concentration")
			Expect(ok).To(BeTrue())
			Expect(eq.Kind).To(Equal(battery.Differential))

			eq, ok = m.Equation("Positive particle concentration")
			Expect(ok).To(BeTrue())
			Expect(eq.Kind).To(Equal(battery.Differential))
		})

		It("produces a single full conductivity equation", func() {
			eq, ok := m.Equation("Electrolyte potential")
			Expect(ok).To(BeTrue())
			Expect(eq.Kind).To(Equal(battery.Algebraic))
		})

		It("produces no per-domain conductivity entries", func() {
			for _, name := range m.EquationNames() {
				Expect(name).NotTo(ContainSubstring("surface potential difference"))
			}
		})

		It("pairs every differential equation with one initial condition", func() {
			for _, name := range m.EquationNames() {
				eq, _ := m.Equation(name)
				_, hasIC := m.InitialCondition(name)
				if eq.Kind == battery.Differential {
					Expect(hasIC).To(BeTrue(), "differential %q needs an IC", name)
				} else {
					Expect(hasIC).To(BeFalse(), "algebraic %q must not have an IC", name)
				}
			}
		})

		It("records provenance for every entry", func() {
			role, ok := m.Provenance("Negative particle concentration")
			Expect(ok).To(BeTrue())
			Expect(role).To(Equal(builder.RoleNegParticle))

			role, ok = m.Provenance("Negative electrode porosity")
			Expect(ok).To(BeTrue())
			Expect(role).To(Equal(builder.RolePorosity))
		})
	})

	Context("with surface form = differential", func() {
		It("produces three per-domain differential conductivity equations", func() {
			m, err := builder.Build(battery.Options{SurfaceForm: battery.SurfaceFormDifferential}, p)
			Expect(err).NotTo(HaveOccurred())

			for _, name := range []string{
				"Negative electrode surface potential difference",
				"Separator surface potential difference",
				"Positive electrode surface potential difference",
			} {
				eq, ok := m.Equation(name)
				Expect(ok).To(BeTrue(), "expected equation for %q", name)
				Expect(eq.Kind).To(Equal(battery.Differential))
				_, hasIC := m.InitialCondition(name)
				Expect(hasIC).To(BeTrue())
			}

			_, ok := m.Equation("Electrolyte potential")
			Expect(ok).To(BeFalse(), "full conductivity equation must be absent")
			_, ok = m.VariableDefinition("Electrolyte potential")
			Expect(ok).To(BeTrue(), "electrolyte potential must still be defined")
		})
	})

	Context("with surface form = algebraic", func() {
		It("produces three per-domain algebraic equations without ICs", func() {
			m, err := builder.Build(battery.Options{SurfaceForm: battery.SurfaceFormAlgebraic}, p)
			Expect(err).NotTo(HaveOccurred())

			for _, name := range []string{
				"Negative electrode surface potential difference",
				"Separator surface potential difference",
				"Positive electrode surface potential difference",
			} {
				eq, ok := m.Equation(name)
				Expect(ok).To(BeTrue())
				Expect(eq.Kind).To(Equal(battery.Algebraic))
				_, hasIC := m.InitialCondition(name)
				Expect(hasIC).To(BeFalse())
			}
		})
	})

	Context("with invalid options", func() {
		It("rejects illegal values before any submodel runs", func() {
			_, err := builder.Build(battery.Options{Particle: "quantum"}, p)
			Expect(errors.Is(err, battery.ErrInvalidOption)).To(BeTrue())
		})

		It("rejects conflicting key pairs naming both keys", func() {
			_, err := builder.Build(battery.Options{Dimensionality: 2}, p)
			Expect(errors.Is(err, battery.ErrOptionConflict)).To(BeTrue())

			var cfgErr *battery.ConfigurationError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Key).NotTo(BeEmpty())
			Expect(cfgErr.ConflictsWith).NotTo(BeEmpty())
		})
	})

	Context("across every legal variant combination", func() {
		It("always returns a model or a typed error, never both", func() {
			particles := []battery.ParticleOption{battery.ParticleFickian, battery.ParticleFast}
			surfaceForms := []battery.SurfaceFormOption{battery.SurfaceFormNone, battery.SurfaceFormDifferential, battery.SurfaceFormAlgebraic}
			thermals := []battery.ThermalOption{battery.ThermalIsothermal, battery.ThermalLumped}
			porosities := []battery.PorosityOption{battery.PorosityConstant, battery.PorosityReactionDriven}

			for _, pt := range particles {
				for _, sf := range surfaceForms {
					for _, th := range thermals {
						for _, po := range porosities {
							opts := battery.Options{Particle: pt, SurfaceForm: sf, Thermal: th, Porosity: po}
							m, err := builder.Build(opts, p)
							Expect(err).NotTo(HaveOccurred(), "options %+v", opts)
							Expect(m).NotTo(BeNil())
						}
					}
				}
			}
		})
	})
})

var _ = Describe("Compose", func() {
	var (
		p    *params.Set
		opts battery.Options
	)

	BeforeEach(func() {
		p = params.Default()
		var err error
		opts, err = battery.Options{}.Validate()
		Expect(err).NotTo(HaveOccurred())
	})

	It("detects variable collisions naming both roles", func() {
		reg := battery.NewRegistry()
		Expect(reg.Register("porosity", submodels.NewConstantPorosity())).To(Succeed())
		Expect(reg.Register("second porosity", submodels.NewConstantPorosity())).To(Succeed())

		_, err := builder.Compose(reg, opts, "collision test")
		Expect(errors.Is(err, battery.ErrVariableCollision)).To(BeTrue())

		var buildErr *battery.BuildError
		Expect(errors.As(err, &buildErr)).To(BeTrue())
		Expect(buildErr.Role).To(Equal("second porosity"))
		Expect(buildErr.OtherRole).To(Equal("porosity"))
	})

	It("rejects orders that violate declared dependencies", func() {
		reg := battery.NewRegistry()
		// Tortuosity reads porosity, so this order must fail.
		Expect(reg.Register(builder.RoleTortuosity, submodels.NewBruggemanTortuosity())).To(Succeed())
		Expect(reg.Register(builder.RolePorosity, submodels.NewConstantPorosity())).To(Succeed())

		_, err := builder.Compose(reg, opts, "order test")
		Expect(errors.Is(err, battery.ErrMissingDependency)).To(BeTrue())
	})

	It("is order-independent across dependency-respecting permutations", func() {
		rx := builder.ReactionsFor()

		m1, err := builder.Build(battery.Options{}, p)
		Expect(err).NotTo(HaveOccurred())

		// Same submodel selection, different (still dependency-respecting)
		// order: thermal and collector first, interfaces last.
		reg := battery.NewRegistry()
		Expect(reg.Register(builder.RoleThermal, submodels.NewIsothermal())).To(Succeed())
		Expect(reg.Register(builder.RoleExternalCircuit, submodels.NewCurrentControl())).To(Succeed())
		Expect(reg.Register(builder.RoleCollector, submodels.NewUniformCollector())).To(Succeed())
		Expect(reg.Register(builder.RolePorosity, submodels.NewConstantPorosity())).To(Succeed())
		Expect(reg.Register(builder.RoleTortuosity, submodels.NewBruggemanTortuosity())).To(Succeed())
		Expect(reg.Register(builder.RoleConvection, submodels.NewNoConvection())).To(Succeed())
		Expect(reg.Register(builder.RoleNegParticle, submodels.NewFickianParticle(battery.Negative, rx))).To(Succeed())
		Expect(reg.Register(builder.RolePosParticle, submodels.NewFickianParticle(battery.Positive, rx))).To(Succeed())
		Expect(reg.Register(builder.RoleNegElectrode, submodels.NewOhmFull(battery.Negative, rx))).To(Succeed())
		Expect(reg.Register(builder.RolePosElectrode, submodels.NewOhmFull(battery.Positive, rx))).To(Succeed())
		Expect(reg.Register(builder.RoleDiffusion, submodels.NewDiffusionFull(p, rx))).To(Succeed())
		Expect(reg.Register(builder.RoleConductivity, submodels.NewConductivityFull(p, rx))).To(Succeed())
		Expect(reg.Register(builder.RoleNegInterface, submodels.NewButlerVolmer(battery.Negative, rx))).To(Succeed())
		Expect(reg.Register(builder.RolePosInterface, submodels.NewButlerVolmer(battery.Positive, rx))).To(Succeed())

		m2, err := builder.Compose(reg, m1.Options(), "permuted")
		Expect(err).NotTo(HaveOccurred())

		Expect(fingerprint(m2)).To(Equal(fingerprint(m1)))
	})

	It("freezes the composed model", func() {
		m, err := builder.Build(battery.Options{}, p)
		Expect(err).NotTo(HaveOccurred())

		err = m.AddEquation("late", nil, battery.Algebraic)
		Expect(errors.Is(err, battery.ErrModelFrozen)).To(BeTrue())
	})
})

var _ = Describe("BuildAll", func() {
	It("builds independent configurations concurrently", func() {
		p := params.Default()
		sets := []battery.Options{
			{},
			{SurfaceForm: battery.SurfaceFormDifferential},
			{Particle: battery.ParticleFast, Thermal: battery.ThermalLumped},
			{Particle: "bogus"},
		}

		results := builder.BuildAll(context.Background(), sets, p)
		Expect(results).To(HaveLen(4))

		for i := 0; i < 3; i++ {
			Expect(results[i].Err).NotTo(HaveOccurred())
			Expect(results[i].Model).NotTo(BeNil())
		}
		Expect(errors.Is(results[3].Err, battery.ErrInvalidOption)).To(BeTrue())
		Expect(results[3].Model).To(BeNil())
	})
})
