// Package calib holds the WFC3 grism dispersion model: the fixed DLDP
// calibration constants and the evaluation of the field-dependent
// coefficients for a source position.
package calib

// Coefficients are the field-dependent dispersion terms for one centroid.
type Coefficients struct {
	// P0 is the wavelength at the centroid column, in angstrom.
	P0 float64

	// P1 is the dispersion, in angstrom per pixel.
	P1 float64
}

// DLDP0 returns a copy of the zero-point coefficients.
func DLDP0() [DLDP0Terms]float64 {
	return [DLDP0Terms]float64{dldp0Const, dldp0X}
}

// DLDP1 returns a copy of the slope coefficients, ordered
// 1, x, y, x², xy, y².
func DLDP1() [DLDP1Terms]float64 {
	return [DLDP1Terms]float64{dldp1Const, dldp1X, dldp1Y, dldp1XX, dldp1XY, dldp1YY}
}

// Zeropoint evaluates DLDP0 at xc.
func Zeropoint(xc float64) float64 {
	return dldp0Const + float64(dldp0X*xc)
}

// Slope evaluates DLDP1 at (xc, yc).
//
// Terms are accumulated left to right. The float64 conversions round each
// product on its own so the compiler cannot fuse it into the running sum;
// results must not depend on whether the target has FMA.
func Slope(xc, yc float64) float64 {
	p := dldp1Const + float64(dldp1X*xc)
	p += float64(dldp1Y * yc)
	p += float64(dldp1XX * float64(xc*xc))
	p += float64(float64(dldp1XY*xc) * yc)
	p += float64(dldp1YY * float64(yc*yc))
	return p
}

// Evaluate returns both coefficients for a centroid.
func Evaluate(xc, yc float64) Coefficients {
	return Coefficients{
		P0: Zeropoint(xc),
		P1: Slope(xc, yc),
	}
}
