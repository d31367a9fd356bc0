package calib

// G141 field-dependent dispersion coefficients, first order.
// Kuntschner et al. (2009), refit by Wilkins et al. (2014).

// DLDP0: wavelength zero-point, linear in xc (angstrom).
const (
	dldp0Const = 8949.40742544
	dldp0X     = 0.08044032819916265
)

// DLDP1: dispersion slope, quadratic in xc and yc (angstrom/pixel).
const (
	dldp1Const = 44.97227893276267
	dldp1X     = 0.0004927891511929662
	dldp1Y     = 0.0035782416625653765
	dldp1XX    = -9.175233345083485e-7
	dldp1XY    = 2.2355060371418054e-7
	dldp1YY    = -9.258690000316504e-7
)

// Coefficient vector lengths.
const (
	DLDP0Terms = 2
	DLDP1Terms = 6
)
