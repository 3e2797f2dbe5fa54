package params

import "github.com/arjun-sk/cellsym/internal/symbolic"

// Measured transport properties of LiPF6 in EC:DMC (1:1), from Landesfeind
// and Gasteiger, "Temperature and Concentration Dependence of the Ionic
// Transport Properties of Lithium-Ion Battery Electrolytes", J. Electrochem.
// Soc. 166(14) A3079-A3097, 2019.

var (
	conductivityCoeffsECDMC11 = [6]float64{7.98e-1, 2.28e2, -1.22, 5.09e-1, -4e-3, 3.79e-3}
	diffusivityCoeffsECDMC11  = [4]float64{1.47e3, 1.33, -1.69e3, -5.63e2}
)

// ConductivityLandesfeind2019ECDMC11 returns the electrolyte conductivity
// in S/m as a function of concentration (mol/m^3) and temperature (K).
func ConductivityLandesfeind2019ECDMC11(ce, T symbolic.Expr) symbolic.Expr {
	return conductivityLandesfeind2019(ce, T, conductivityCoeffsECDMC11)
}

// DiffusivityLandesfeind2019ECDMC11 returns the electrolyte diffusivity
// in m^2/s as a function of concentration (mol/m^3) and temperature (K).
func DiffusivityLandesfeind2019ECDMC11(ce, T symbolic.Expr) symbolic.Expr {
	return diffusivityLandesfeind2019(ce, T, diffusivityCoeffsECDMC11)
}

func conductivityLandesfeind2019(ce, T symbolic.Expr, p [6]float64) symbolic.Expr {
	// Concentration enters in mol/l.
	c := symbolic.Div(ce, symbolic.Num(1000))
	expT := symbolic.Exp(symbolic.Div(symbolic.Num(1000), T))

	a := symbolic.Mul(symbolic.Num(p[0]), symbolic.Add(symbolic.Num(1), symbolic.Sub(T, symbolic.Num(p[1]))))
	b := symbolic.Add(
		symbolic.Num(1),
		symbolic.Add(
			symbolic.Mul(symbolic.Num(p[2]), symbolic.Sqrt(c)),
			symbolic.Mul(
				symbolic.Mul(symbolic.Num(p[3]), symbolic.Add(symbolic.Num(1), symbolic.Mul(symbolic.Num(p[4]), expT))),
				c,
			),
		),
	)
	d := symbolic.Add(
		symbolic.Num(1),
		symbolic.Mul(symbolic.Pow(c, symbolic.Num(4)), symbolic.Mul(symbolic.Num(p[5]), expT)),
	)

	// The correlation is fitted in mS/cm; scale to S/m.
	sigma := symbolic.Div(symbolic.Mul(symbolic.Mul(a, c), b), d)
	return symbolic.Mul(sigma, symbolic.Num(0.1))
}

func diffusivityLandesfeind2019(ce, T symbolic.Expr, p [4]float64) symbolic.Expr {
	c := symbolic.Div(ce, symbolic.Num(1000))

	a := symbolic.Mul(symbolic.Num(p[0]), symbolic.Exp(symbolic.Mul(symbolic.Num(p[1]), c)))
	b := symbolic.Exp(symbolic.Div(symbolic.Num(p[2]), T))
	d := symbolic.Exp(symbolic.Div(symbolic.Mul(symbolic.Num(p[3]), c), T))

	return symbolic.Mul(symbolic.Mul(symbolic.Mul(a, b), d), symbolic.Num(1e-10))
}

// Arrhenius returns ref * exp(E/R * (1/Tref - 1/T)), the standard
// temperature scaling applied to kinetic and transport parameters.
func Arrhenius(ref, activationEnergy, T symbolic.Expr) symbolic.Expr {
	r := symbolic.Param("Ideal gas constant")
	tref := symbolic.Param("Reference temperature")
	return symbolic.Mul(ref, symbolic.Exp(
		symbolic.Mul(
			symbolic.Div(activationEnergy, r),
			symbolic.Sub(symbolic.Div(symbolic.Num(1), tref), symbolic.Div(symbolic.Num(1), T)),
		),
	))
}
